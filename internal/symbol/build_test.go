package symbol

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/seqidx/internal/textio"
)

func TestBuildPackedAppendsTerminatorAndPads(t *testing.T) {
	src := textio.NewSymbolReader(bufio.NewReader(strings.NewReader(">h1\nACGT\n")))
	buf, n, err := BuildPacked(src, 3)
	require.NoError(t, err)
	// ACGT -> A C G T, plus appended TERM = 5 symbols, rounded up to a
	// multiple of 3 is 6.
	require.EqualValues(t, 6, n)
	require.Equal(t, []Symbol{A, C, G, T, TERM, TERM}, unpack(buf, n))
}

func TestBuildPackedFoldsLowerCaseAndDegradesAmbiguityCodes(t *testing.T) {
	src := textio.NewSymbolReader(bufio.NewReader(strings.NewReader("acgtR")))
	buf, n, err := BuildPacked(src, 1)
	require.NoError(t, err)
	require.Equal(t, []Symbol{A, C, G, T, N, TERM}, unpack(buf, n))
}

func TestBuildPackedRejectsDOutOfRange(t *testing.T) {
	src := textio.NewSymbolReader(bufio.NewReader(strings.NewReader("ACGT")))
	_, _, err := BuildPacked(src, 0)
	require.Error(t, err)
	_, _, err = BuildPacked(src, MaxD+1)
	require.Error(t, err)
}

func unpack(buf *PackedBuffer, n uint64) []Symbol {
	out := make([]Symbol, n)
	for i := uint64(0); i < n; i++ {
		out[i] = buf.Read(i)
	}
	return out
}
