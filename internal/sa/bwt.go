package sa

import "github.com/scigolib/seqidx/internal/symbol"

// BuildBWT computes the array the wavelet tree is built over: for each
// SA position i, the super-symbol immediately following the one SA[i]
// names, wrapping to super-symbol 0 past the last one. A query whose
// pattern length isn't a multiple of d resolves its aligned prefix via
// the SBT and then narrows the resulting SA range by the leftover
// trailing symbols, which only needs what comes right *after* each
// matched suffix — so this array, not the textbook preceding-symbol
// BWT[i] = text[SA[i]-1], is what the wavelet tree needs to answer that
// (see DESIGN.md's Open Question on this point).
func BuildBWT(cf *symbol.CompressedFile, positions []uint32, d int) []uint32 {
	numSuper := cf.Buf.Len() / uint64(d)
	bwt := make([]uint32, len(positions))
	for i, pos := range positions {
		superIdx := uint64(pos) + 1
		if superIdx >= numSuper {
			superIdx = 0
		}
		bwt[i] = cf.Buf.ReadSeq(superIdx, d).Value()
	}
	return bwt
}
