package patricia

import (
	"github.com/scigolib/seqidx/internal/symbol"
	"github.com/scigolib/seqidx/internal/utils"
)

// strPosSize is sizeof(u32): the width of one addressable external key
// slot, used by the "+sizeof(u32)" exclusive-right-bound trick in Search.
const strPosSize = 4

// View is a read-only walk over an already-serialized PT region plus its
// node's External region, addressed as one contiguous byte range starting
// at the PT root (offset 0), per spec §4.4's Wrapper.
type View struct {
	Data        []byte
	ExtPosBegin uint16
}

func (v View) lenAt(off uint16) uint32   { return utils.U32(v.Data[off : off+4]) }
func (v View) numBranch(off uint16) int  { return int(v.Data[off+4]) }

func (v View) branch(off uint16, i int) (symbol.Symbol, uint16) {
	base := off + innerHeaderSize + uint16(i)*branchSize
	return symbol.Symbol(v.Data[base]), utils.U16(v.Data[base+1 : base+3])
}

// lowerBoundIdx returns the first branch index with symbol >= s, or
// numBranch(off) if none (std::lower_bound equivalent).
func (v View) lowerBoundIdx(off uint16, s symbol.Symbol) int {
	nb := v.numBranch(off)
	lo, hi := 0, nb
	for lo < hi {
		mid := (lo + hi) / 2
		sym, _ := v.branch(off, mid)
		if sym < s {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// leftmostExtOfNode follows branch[0] repeatedly until it reaches an
// external (non-PT) position.
func (v View) leftmostExtOfNode(off uint16) uint16 {
	return v.leftmostExtOfBranch(off, 0)
}

// leftmostExtOfBranch follows branch index i of node off, then keeps
// following branch[0] of whatever inner node it leads to.
func (v View) leftmostExtOfBranch(off uint16, i int) uint16 {
	_, pos := v.branch(off, i)
	for pos < v.ExtPosBegin {
		_, pos = v.branch(pos, 0)
	}
	return pos
}

// rightmostExt follows the last branch repeatedly until external.
func (v View) rightmostExt(off uint16) uint16 {
	for {
		nb := v.numBranch(off)
		_, pos := v.branch(off, nb-1)
		if pos < v.ExtPosBegin {
			off = pos
			continue
		}
		return pos
	}
}

// strPosAt reads the u32 "str_pos"-shaped value at an external address.
// This is alphabet- and layout-agnostic: for a Leaf node the address is
// the start of a LeafExtItem; for an Inner node it may alias into either
// field of an InnerExtItem pair (see decodeInnerSlot in internal/sbt for
// how the two addressable slots of one pair are interpreted).
func (v View) strPosAt(off uint16) uint32 {
	return utils.U32(v.Data[off : off+4])
}

// LeftmostStrPos returns the suffix position of the node's leftmost key.
func (v View) LeftmostStrPos() uint32 {
	return v.strPosAt(v.ExtPosBegin)
}

// RightmostStrPos returns the suffix position of the node's rightmost key.
func (v View) RightmostStrPos() uint32 {
	return v.strPosAt(v.rightmostExt(0))
}
