package sa

import (
	"context"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/seqidx/internal/symbol"
)

func makeCompressed(t *testing.T, syms []symbol.Symbol) *symbol.CompressedFile {
	t.Helper()
	buf := symbol.MakePackedBuffer(uint64(len(syms)))
	for i, s := range syms {
		buf.Write(uint64(i), s)
	}
	path := filepath.Join(t.TempDir(), "text.comp")
	require.NoError(t, symbol.WriteCompressedFile(path, buf))
	cf, err := symbol.OpenCompressedFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { cf.Close() })
	return cf
}

// TestBuildMatchesNaiveSortD1 checks the d=1 suffix array against a
// brute-force lexicographic sort of every suffix.
func TestBuildMatchesNaiveSortD1(t *testing.T) {
	syms := []symbol.Symbol{symbol.A, symbol.C, symbol.G, symbol.T, symbol.A, symbol.C, symbol.TERM}
	cf := makeCompressed(t, syms)

	got, err := Build(context.Background(), cf, 1)
	require.NoError(t, err)

	want := naiveSuffixOrder(syms)
	require.Equal(t, want, got)
}

func TestBuildRejectsCountNotMultipleOfD(t *testing.T) {
	cf := makeCompressed(t, []symbol.Symbol{symbol.A, symbol.C, symbol.T})
	_, err := Build(context.Background(), cf, 2)
	require.Error(t, err)
}

func TestBuildEmptyText(t *testing.T) {
	cf := makeCompressed(t, nil)
	got, err := Build(context.Background(), cf, 1)
	require.NoError(t, err)
	require.Empty(t, got)
}

func naiveSuffixOrder(syms []symbol.Symbol) []uint32 {
	n := len(syms)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	less := func(a, b int) bool {
		for a < n && b < n {
			if syms[a] != syms[b] {
				return syms[a] < syms[b]
			}
			a++
			b++
		}
		return b < n // a's suffix ran out first, so it's the shorter (and smaller) one
	}
	sort.Slice(idx, func(i, j int) bool { return less(idx[i], idx[j]) })

	out := make([]uint32, n)
	for i, p := range idx {
		out[i] = uint32(p)
	}
	return out
}
