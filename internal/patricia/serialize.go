package patricia

import "github.com/scigolib/seqidx/internal/utils"

// innerHeaderSize is sizeof(PTInnerNode): u32 len + u8 num_branch.
const innerHeaderSize = 5

// branchSize is sizeof(PTBranch): u8 symbol + u16 local node_pos.
const branchSize = 3

// CalcMaxSize returns the worst-case PT region size for numLeafs keys:
// (k-1) inner nodes of 2 branches each below a root that may itself
// carry a single branch (when every key shares its first symbol).
func CalcMaxSize(numLeafs int) int {
	if numLeafs <= 1 {
		return innerHeaderSize + branchSize // a single-key PT is one root with one branch.
	}
	numInner := numLeafs - 1
	return numInner*(innerHeaderSize+2*branchSize) + innerHeaderSize + branchSize
}

// BuildAndSerialize builds a naive trie over entries and serializes it
// pre-order into dest (the node's reserved PT region; ext_pos_begin ==
// len(dest)), per spec §4.4a/b. Fails with ErrCapacityExceeded if the
// encoding does not fit.
func BuildAndSerialize(text Accessor, entries []Entry, dest []byte) error {
	b := NewBuilder()
	for _, e := range entries {
		b.Insert(text, e)
	}

	offset := 0
	_, err := serializeNode(b, rootIdx, dest, &offset)
	return err
}

func serializeNode(b *Builder, idx int, dest []byte, offset *int) (uint16, error) {
	n := b.nodes[idx]
	start := *offset
	need := innerHeaderSize + branchSize*len(n.branches)
	if start+need > len(dest) {
		return 0, utils.WrapError(utils.ErrCapacityExceeded, "PT region overflow", nil)
	}

	utils.PutU32(dest[start:start+4], n.len)
	dest[start+4] = byte(len(n.branches))
	*offset = start + need

	branchOff := start + innerHeaderSize
	for _, br := range n.branches {
		dest[branchOff] = byte(br.sym)

		var nodePos uint16
		if b.nodes[br.target].kind == kindInner {
			pos, err := serializeNode(b, br.target, dest, offset)
			if err != nil {
				return 0, err
			}
			nodePos = pos
		} else {
			nodePos = uint16(b.nodes[br.target].extPos)
		}
		utils.PutU16(dest[branchOff+1:branchOff+3], nodePos)
		branchOff += 3
	}

	return uint16(start), nil
}
