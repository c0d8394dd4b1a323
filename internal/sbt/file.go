package sbt

import (
	"github.com/scigolib/seqidx/internal/mmapfile"
	"github.com/scigolib/seqidx/internal/patricia"
	"github.com/scigolib/seqidx/internal/utils"
)

// File is an opened, memory-mapped SBT artifact (spec §4.5, §6).
type File struct {
	data       []byte
	blockSize  int
	numBlocks  int
	numLeaves  int
	leafPT     int
	innerPT    int
	root       int

	ro *mmapfile.ReadOnly
}

// Open memory-maps path read-only and derives the block layout.
func Open(path string, blockSize int) (*File, error) {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	ro, err := mmapfile.OpenReadOnly(path)
	if err != nil {
		return nil, err
	}
	data := ro.Bytes()
	if len(data) == 0 || len(data)%blockSize != 0 {
		ro.Close()
		return nil, utils.WrapError(utils.ErrCorrupt, "sbt file length not block-aligned", nil)
	}
	numBlocks := len(data) / blockSize

	f := &File{
		data:      data,
		blockSize: blockSize,
		numBlocks: numBlocks,
		leafPT:    leafPTSize(blockSize),
		innerPT:   innerPTSize(blockSize),
		root:      numBlocks - 1,
		ro:        ro,
	}
	f.numLeaves = f.countLeaves()
	return f, nil
}

// countLeaves scans forward from block 0 while blocks are tagged Leaf;
// the build layout writes all leaves first, contiguously, at indices
// 0..numLeaves-1.
func (f *File) countLeaves() int {
	n := 0
	for n < f.numBlocks && f.blockType(n) == TypeLeaf {
		n++
	}
	return n
}

func (f *File) Close() error {
	if f.ro == nil {
		return nil
	}
	err := f.ro.Close()
	f.ro = nil
	return err
}

func (f *File) block(i int) []byte {
	return f.data[i*f.blockSize : (i+1)*f.blockSize]
}

func (f *File) blockType(i int) byte {
	return f.block(i)[0]
}

func (f *File) leafSaLeftSize(i int) uint64 {
	return uint64(utils.U32(f.block(i)[1:5]))
}

func (f *File) ptView(i int) patricia.View {
	b := f.block(i)
	if f.blockType(i) == TypeLeaf {
		return patricia.View{Data: b[headerSize:], ExtPosBegin: uint16(f.leafPT)}
	}
	return patricia.View{Data: b[headerSize:], ExtPosBegin: uint16(f.innerPT)}
}

func (f *File) localLeafIndex(extPos uint16) uint64 {
	return uint64(int(extPos)-f.leafPT) / leafItemSize
}

// localLeafIndexClamped resolves extPos to an item index within blk,
// clamping to the leaf's real last item when extPos overflows past it
// (the blind search's "rightmost + sizeof(u32)" one-past-end sentinel
// landing inside a leaf rather than being caught by an ancestor inner
// node's pair rounding — spec §9's unaligned-right-end open question;
// see DESIGN.md).
func (f *File) localLeafIndexClamped(blk int, extPos uint16, totalItems uint64) uint64 {
	idx := f.localLeafIndex(extPos)
	count := f.leafItemCount(blk, totalItems)
	if idx >= count {
		idx = count - 1
	}
	return idx
}

// decodeInnerSlot resolves an ext_pos within an Inner node's PT region to
// a (child pair index, slot) pair, applying spec §4.5's "off > sizeof(u32)
// rounds up to the next item" rule, and clamping to the node's real
// rightmost key (derived structurally from its PT, not from a stored
// count) if the rounding would overrun this node's actual pairs.
func (f *File) decodeInnerSlot(view patricia.View, extPos uint16) (pairIdx int, slot int) {
	rel := int(extPos) - f.innerPT
	pairIdx = rel / innerItemSize
	slot = rel % innerItemSize
	if slot > strPosSize {
		pairIdx++
		slot = 0
	}

	maxExt := view.rightmostExt(0)
	maxRel := int(maxExt) - f.innerPT
	maxPair := maxRel / innerItemSize
	if pairIdx > maxPair {
		pairIdx = maxPair
		slot = strPosSize
	}
	return pairIdx, slot
}

func (f *File) innerExtChild(blk, pairIdx int) int {
	off := f.innerPT + pairIdx*innerItemSize + 8
	return int(utils.U32(f.block(blk)[headerSize+off : headerSize+off+4]))
}

func (f *File) leftmostLeaf(blk int) int {
	for f.blockType(blk) != TypeLeaf {
		v := f.ptView(blk)
		extPos := v.leftmostExtOfNode(0)
		pairIdx, _ := f.decodeInnerSlot(v, extPos)
		blk = f.innerExtChild(blk, pairIdx)
	}
	return blk
}

func (f *File) rightmostLeaf(blk int) int {
	for f.blockType(blk) != TypeLeaf {
		v := f.ptView(blk)
		extPos := v.rightmostExt(0)
		pairIdx, _ := f.decodeInnerSlot(v, extPos)
		blk = f.innerExtChild(blk, pairIdx)
	}
	return blk
}

func (f *File) leftmostSaIndex(blk int) uint64 {
	return f.leafSaLeftSize(f.leftmostLeaf(blk))
}

// rightmostSaIndex needs the leaf's actual item count, derived from the
// next leaf's sa_left_size (leaves are contiguous blocks 0..numLeaves-1
// in SA order) or, for the last leaf, the caller-supplied total item
// count (the SBT file itself carries no global header).
func (f *File) rightmostSaIndex(blk int, totalItems uint64) uint64 {
	leaf := f.rightmostLeaf(blk)
	return f.leafSaLeftSize(leaf) + f.leafItemCount(leaf, totalItems) - 1
}

func (f *File) leafItemCount(leafBlk int, totalItems uint64) uint64 {
	if leafBlk == f.numLeaves-1 {
		return totalItems - f.leafSaLeftSize(leafBlk)
	}
	return f.leafSaLeftSize(leafBlk+1) - f.leafSaLeftSize(leafBlk)
}
