package seqidx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildAndOpen(t *testing.T, text string, d int) *Index {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.fa")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	arts, err := BuildIndex(path, d)
	require.NoError(t, err)

	idx, err := OpenIndex(*arts)
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })
	return idx
}

// Scenario 1: build over "ACGTACGT", d=1, query "ACG".
func TestQueryScenario1MatchWithTwoOccurrences(t *testing.T) {
	idx := buildAndOpen(t, "ACGTACGT", 1)

	res, err := idx.Query("ACG")
	require.NoError(t, err)
	require.True(t, res.Found)
	require.EqualValues(t, 3, res.MatchedLen)
	require.Contains(t, []uint64{0, 4}, res.Position)
	require.EqualValues(t, 2, res.SaHi-res.SaLo, "two occurrences of ACG")
}

// Scenario 2: same text, query "TTTTT" does not occur.
func TestQueryScenario2NotFound(t *testing.T) {
	idx := buildAndOpen(t, "ACGTACGT", 1)

	res, err := idx.Query("TTTTT")
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Less(t, res.MatchedLen, uint32(5))
}

// Scenario 3: "AAAAAAA", query "AA" matches at every prefix position,
// landing on the lexicographically smallest occurrence (the one
// immediately preceding TERM).
func TestQueryScenario3AllOverlappingOccurrences(t *testing.T) {
	idx := buildAndOpen(t, "AAAAAAA", 1)

	res, err := idx.Query("AA")
	require.NoError(t, err)
	require.True(t, res.Found)
	require.EqualValues(t, 6, res.SaHi-res.SaLo)
	require.Contains(t, []uint64{0, 1, 2, 3, 4, 5}, res.Position)
}

// Scenario 4: the empty pattern reports matched_len=0 and Found=false
// (the CLI's "not found" reporting), per spec §8.
func TestQueryScenario4EmptyPattern(t *testing.T) {
	idx := buildAndOpen(t, "ACGTACGT", 1)

	res, err := idx.Query("")
	require.NoError(t, err)
	require.False(t, res.Found)
	require.EqualValues(t, 0, res.MatchedLen)
}

// Scenario 5: d=2 blocked build over "ACGTACGT". A pattern whose
// length is a multiple of d takes the SBT-only path; a pattern whose
// length isn't takes the SBT+WT refinement path.
func TestQueryScenario5AlignedAndMisalignedPatterns(t *testing.T) {
	idx := buildAndOpen(t, "ACGTACGT", 2)

	aligned, err := idx.Query("ACGT")
	require.NoError(t, err)
	require.True(t, aligned.Found)
	require.EqualValues(t, 4, aligned.MatchedLen)

	// "CGT" only occurs in the raw text at odd offsets (1 and 5), which
	// are never super-symbol-aligned for d=2, so the d=2 index cannot
	// report it as found — but the SBT+WT refinement path must still run
	// to completion without error.
	misaligned, err := idx.Query("CGT")
	require.NoError(t, err)
	require.LessOrEqual(t, misaligned.MatchedLen, uint32(3))
}

// Scenario 6: d=2, pattern "ACGTA" (length 5, not a multiple of d). The
// aligned prefix "ACGT" spans two super-symbols (AC, GT), so the
// lead's next super-symbol lives two positions past each matching
// suffix's start, not one — this only resolves correctly via the
// scanLeadMatch fallback, not the wavelet tree's single-super-symbol
// fast path. "ACGT" starts super-symbol-aligned at raw offsets 0 and
// 4, but only offset 0 is followed by "A"; offset 4 is followed by
// the text's trailing TERM padding.
func TestQueryScenario6MisalignedPrefixSpanningTwoSuperSymbols(t *testing.T) {
	idx := buildAndOpen(t, "ACGTACGT", 2)

	res, err := idx.Query("ACGTA")
	require.NoError(t, err)
	require.True(t, res.Found)
	require.EqualValues(t, 5, res.MatchedLen)
	require.EqualValues(t, 0, res.Position)
	require.EqualValues(t, 1, res.SaHi-res.SaLo, "only one occurrence of ACGTA")
}

func TestQueryRejectsInvalidSymbol(t *testing.T) {
	idx := buildAndOpen(t, "ACGTACGT", 1)

	_, err := idx.Query("AC-GT")
	require.Error(t, err)
}

func TestBuildIndexRejectsDOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.fa")
	require.NoError(t, os.WriteFile(path, []byte("ACGT"), 0o644))

	_, err := BuildIndex(path, 0)
	require.Error(t, err)
	_, err = BuildIndex(path, 9)
	require.Error(t, err)
}

func TestArtifactPathsNamingByD(t *testing.T) {
	a1 := ArtifactPaths("text.fa", 1)
	require.Equal(t, "text.fa.comp.sa", a1.SAPath)

	a2 := ArtifactPaths("text.fa", 2)
	require.Equal(t, "text.fa.comp.d2.sa", a2.SAPath)
	require.Equal(t, "text.fa.comp.d2", a2.CompPath)
}
