package sbt

import (
	"github.com/scigolib/seqidx/internal/mmapfile"
	"github.com/scigolib/seqidx/internal/patricia"
	"github.com/scigolib/seqidx/internal/symbol"
	"github.com/scigolib/seqidx/internal/utils"
)

// childBound is the (leftmost, rightmost, block) triple recorded per node
// during a bottom-up build, propagated to the next layer up.
type childBound struct {
	leftmostStrPos  uint32
	rightmostStrPos uint32
	block           int
}

// Build lays out the full SBT file for the given suffix array over text,
// blocked by d (spec §4.5's bottom-up construction), and writes it to
// path via a truncate-then-map writer (spec §4.7): the final block count
// is known exactly from the capacity formula before any bytes are
// written, so no intermediate Grow is needed.
func Build(path string, text *symbol.PackedBuffer, sa []uint32, d, blockSize int) error {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	layerCounts := computeLayerCounts(len(sa), blockSize)
	totalBlocks := 0
	for _, c := range layerCounts {
		totalBlocks += c
	}

	rw, err := mmapfile.CreateReadWrite(path, int64(totalBlocks)*int64(blockSize))
	if err != nil {
		return err
	}
	defer rw.Close()

	data := rw.Bytes()
	txt := patricia.TextAccessor{Buf: text}

	leafSizes := chunkSizes(len(sa), leafCapacity(blockSize))
	bounds := make([]childBound, len(leafSizes))
	saOff := 0
	saLeft := uint64(0)
	for i, size := range leafSizes {
		blk := i
		bound, err := buildLeaf(data[blk*blockSize:(blk+1)*blockSize], txt, sa[saOff:saOff+size], uint64(d), saLeft)
		if err != nil {
			return err
		}
		bound.block = blk
		bounds[i] = bound
		saOff += size
		saLeft += uint64(size)
	}

	blockCursor := len(leafSizes)
	layer := bounds
	for len(layer) > 1 {
		fanout := innerFanout(blockSize)
		sizes := chunkSizes(len(layer), fanout)
		next := make([]childBound, len(sizes))
		off := 0
		for i, size := range sizes {
			blk := blockCursor + i
			chunk := layer[off : off+size]
			bound, err := buildInner(data[blk*blockSize:(blk+1)*blockSize], txt, chunk, blockSize)
			if err != nil {
				return err
			}
			bound.block = blk
			next[i] = bound
			off += size
		}
		blockCursor += len(sizes)
		layer = next
	}

	return nil
}

func computeLayerCounts(n, blockSize int) []int {
	numLeaves := ceilDiv(n, leafCapacity(blockSize))
	counts := []int{numLeaves}
	cur := numLeaves
	fanout := innerFanout(blockSize)
	for cur > 1 {
		cur = ceilDiv(cur, fanout)
		counts = append(counts, cur)
	}
	return counts
}

func buildLeaf(block []byte, txt patricia.TextAccessor, positions []uint32, d, saLeftSize uint64) (childBound, error) {
	block[0] = TypeLeaf
	utils.PutU32(block[1:5], uint32(saLeftSize))

	ptSize := leafPTSize(len(block))
	entries := make([]patricia.Entry, len(positions))
	for i, p := range positions {
		strPos := uint64(p) * d
		entries[i] = patricia.Entry{StrPos: strPos, ExtPos: uint64(ptSize + i*leafItemSize)}
	}

	ptRegion := block[headerSize : headerSize+ptSize]
	if err := patricia.BuildAndSerialize(txt, entries, ptRegion); err != nil {
		return childBound{}, err
	}

	extRegion := block[headerSize+ptSize:]
	for i, e := range entries {
		off := i * leafItemSize
		utils.PutU32(extRegion[off:off+4], uint32(e.StrPos))
	}

	return childBound{
		leftmostStrPos:  uint32(entries[0].StrPos),
		rightmostStrPos: uint32(entries[len(entries)-1].StrPos),
	}, nil
}

func buildInner(block []byte, txt patricia.TextAccessor, children []childBound, blockSize int) (childBound, error) {
	block[0] = TypeInner

	ptSize := innerPTSize(blockSize)
	entries := make([]patricia.Entry, 0, 2*len(children))
	for i, c := range children {
		base := uint64(ptSize + i*innerItemSize)
		entries = append(entries,
			patricia.Entry{StrPos: uint64(c.leftmostStrPos), ExtPos: base},
			patricia.Entry{StrPos: uint64(c.rightmostStrPos), ExtPos: base + strPosSize},
		)
	}

	ptRegion := block[headerSize : headerSize+ptSize]
	if err := patricia.BuildAndSerialize(txt, entries, ptRegion); err != nil {
		return childBound{}, err
	}

	extRegion := block[headerSize+ptSize:]
	for i, c := range children {
		off := i * innerItemSize
		utils.PutU32(extRegion[off:off+4], c.leftmostStrPos)
		utils.PutU32(extRegion[off+4:off+8], c.rightmostStrPos)
		utils.PutU32(extRegion[off+8:off+12], uint32(c.block))
	}

	return childBound{
		leftmostStrPos:  children[0].leftmostStrPos,
		rightmostStrPos: children[len(children)-1].rightmostStrPos,
	}, nil
}
