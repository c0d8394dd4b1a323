package patricia

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/seqidx/internal/symbol"
	"github.com/scigolib/seqidx/internal/utils"
)

// buildText packs an ASCII-ish string of A/C/T/G/N bytes (plus a
// trailing TERM) into a TextAccessor for use as the shared text in
// these tests.
func buildText(t *testing.T, s string) TextAccessor {
	t.Helper()
	syms := make([]symbol.Symbol, 0, len(s)+1)
	for i := 0; i < len(s); i++ {
		sym, ok := symbol.FromByte(s[i])
		require.True(t, ok)
		syms = append(syms, sym)
	}
	syms = append(syms, symbol.TERM)

	buf := symbol.MakePackedBuffer(uint64(len(syms)))
	for i, sym := range syms {
		buf.Write(uint64(i), sym)
	}
	return TextAccessor{Buf: buf}
}

// buildPT serializes a PT over every suffix position given, each
// addressed by a unique, increasing ExtPos (as the SBT leaf builder
// does), and returns a View plus a lookup from ExtPos back to strPos.
func buildPT(t *testing.T, text TextAccessor, strPositions []uint64) (View, map[uint16]uint64) {
	t.Helper()
	ptSize := CalcMaxSize(len(strPositions))
	dest := make([]byte, ptSize+strPosSize*len(strPositions))
	entries := make([]Entry, len(strPositions))
	extOf := make(map[uint16]uint64, len(strPositions))
	for i, sp := range strPositions {
		ext := uint64(ptSize + i*strPosSize)
		entries[i] = Entry{StrPos: sp, ExtPos: ext}
		extOf[uint16(ext)] = sp
		utils.PutU32(dest[ext:ext+strPosSize], uint32(sp))
	}

	require.NoError(t, BuildAndSerialize(text, entries, dest[:ptSize]))

	return View{Data: dest, ExtPosBegin: uint16(ptSize)}, extOf
}

func patternFor(t *testing.T, s string) PatternAccessor {
	t.Helper()
	syms := make([]symbol.Symbol, len(s))
	for i := 0; i < len(s); i++ {
		sym, ok := symbol.FromByte(s[i])
		require.True(t, ok)
		syms[i] = sym
	}
	pb := NewPatternBuffer(syms)
	return pb.Accessor()
}

func TestSearchFindsExactMatch(t *testing.T) {
	text := buildText(t, "BANANA")
	// B folds to N. Suffixes: 0:NANANA$ 1:ANANA$ 2:NANA$ 3:ANA$ 4:NA$ 5:A$ 6:$
	strPositions := []uint64{0, 1, 2, 3, 4, 5, 6}
	view, extOf := buildPT(t, text, strPositions)

	pat := patternFor(t, "ANA")
	res := Search(pat, text, view, 0)
	strPos := extOf[res.ExtPos]
	require.GreaterOrEqual(t, res.Lcp, uint32(3))
	require.True(t, strPos == 1 || strPos == 3, "expected a suffix starting with ANA, got strPos=%d", strPos)
}

func TestSearchNoMatchReturnsClosestNeighbor(t *testing.T) {
	text := buildText(t, "BANANA")
	strPositions := []uint64{0, 1, 2, 3, 4, 5, 6}
	view, _ := buildPT(t, text, strPositions)

	pat := patternFor(t, "C")
	res := Search(pat, text, view, 0)
	require.LessOrEqual(t, res.Lcp, uint32(1))
}

func TestRSearchFindsRightNeighbor(t *testing.T) {
	text := buildText(t, "BANANA")
	strPositions := []uint64{0, 1, 2, 3, 4, 5, 6}
	view, extOf := buildPT(t, text, strPositions)

	pat := patternFor(t, "A")
	r := RSearch(pat, text, view)
	if !r.Rightmost {
		strPos := extOf[r.ExtPos]
		require.Equal(t, uint64(4), strPos)
	}
}
