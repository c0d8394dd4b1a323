// Package sbt implements the on-disk String B-Tree: fixed-size blocks,
// each one node of a bottom-up tree whose leaves hold suffix-array
// positions and whose inner nodes hold (left, right, child) triples, with
// a blind Patricia trie over each node's own keys (spec §4.5).
package sbt

import "github.com/scigolib/seqidx/internal/patricia"

// DefaultBlockSize is the typical SBT block size (spec §4.5, §6).
const DefaultBlockSize = 4096

const (
	TypeInner byte = 0
	TypeLeaf  byte = 1
)

const (
	headerSize    = 5 // 1-byte type tag + u32 sa_left_size
	leafItemSize  = 4 // LeafExtItem{str_pos u32}
	innerItemSize = 12 // InnerExtItem{left_str_pos, right_str_pos, child_block u32 each}
	strPosSize    = 4  // sizeof(u32); width of one addressable key slot
)

// leafCapacity and innerFanout are derived from the block size rather
// than hand-tuned (spec §9's Open Question on the PT capacity formula):
// the largest even key count whose worst-case serialized node still fits
// in one block, per spec §4.5's formula.
func leafCapacity(blockSize int) int {
	return capacityForKeys(blockSize, 1, leafItemSize)
}

// innerFanout returns the number of children (not keys) an inner node can
// hold; the PT underneath indexes 2*fanout keys, one pair per child.
func innerFanout(blockSize int) int {
	return capacityForKeys(blockSize, 2, innerItemSize) / 2
}

func capacityForKeys(blockSize, itemsPerKeyGroup, itemSize int) int {
	k := 2
	for nodeSize(k+2, itemsPerKeyGroup, itemSize) <= blockSize {
		k += 2
	}
	return k
}

func nodeSize(keys, itemsPerKeyGroup, itemSize int) int {
	return headerSize + patricia.CalcMaxSize(keys) + (keys/itemsPerKeyGroup)*itemSize
}

func leafPTSize(blockSize int) int {
	return patricia.CalcMaxSize(leafCapacity(blockSize))
}

func innerPTSize(blockSize int) int {
	return patricia.CalcMaxSize(2 * innerFanout(blockSize))
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

// chunkSizes partitions n items into the chunk sizes spec §4.5's build
// step uses: ceil(n/capacity) chunks, the fewest that keep every chunk
// within capacity, sized as evenly as possible with the remainder
// distributed one each to the later chunks.
func chunkSizes(n, capacity int) []int {
	if n == 0 {
		return nil
	}
	numNodes := ceilDiv(n, capacity)
	floor := n / numNodes
	numRight := n - floor*numNodes
	sizes := make([]int, numNodes)
	for i := range sizes {
		if i >= numNodes-numRight {
			sizes[i] = floor + 1
		} else {
			sizes[i] = floor
		}
	}
	return sizes
}
