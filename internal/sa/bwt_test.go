package sa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/seqidx/internal/symbol"
)

func TestBuildBWTWrapsPastLastSuperSymbol(t *testing.T) {
	// Two super-symbols of width d=2: [A,C] then [G,T].
	cf := makeCompressed(t, []symbol.Symbol{symbol.A, symbol.C, symbol.G, symbol.T})

	positions := []uint32{0, 1} // super-symbol indices, already in SA order for this test
	bwt := BuildBWT(cf, positions, 2)
	require.Len(t, bwt, 2)

	// Successor of super-symbol 0 is super-symbol 1 ([G,T]).
	gt := packSuperSymbol(t, symbol.G, symbol.T)
	require.Equal(t, gt, bwt[0])

	// Successor of the last super-symbol wraps to super-symbol 0 ([A,C]).
	ac := packSuperSymbol(t, symbol.A, symbol.C)
	require.Equal(t, ac, bwt[1])
}

func packSuperSymbol(t *testing.T, syms ...symbol.Symbol) uint32 {
	t.Helper()
	buf := symbol.MakePackedBuffer(uint64(len(syms)))
	for i, s := range syms {
		buf.Write(uint64(i), s)
	}
	return buf.ReadSeq(0, len(syms)).Value()
}
