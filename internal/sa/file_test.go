package sa

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/seqidx/internal/utils"
)

func TestSuffixArrayFileRoundTrip(t *testing.T) {
	positions := []uint32{3, 1, 4, 1, 5, 9, 2, 6}
	path := filepath.Join(t.TempDir(), "text.comp.sa")
	require.NoError(t, Write(path, positions))

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	require.EqualValues(t, len(positions), f.Count)
	for i, want := range positions {
		require.Equal(t, want, f.At(uint64(i)))
	}
}

func TestOpenSuffixArrayRejectsShortFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.sa")

	// A header claiming 3 positions but only one u32 of payload.
	raw := make([]byte, headerSize+4)
	utils.PutU64(raw[:headerSize], 3)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	_, err := Open(path)
	require.Error(t, err)
}
