package wavelet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteOpenRoundTrip(t *testing.T) {
	values := []uint32{3, 1, 4, 1, 5, 9, 2, 6, 1, 3}
	tr := Build(values, 4)

	path := filepath.Join(t.TempDir(), "text.comp.wt")
	require.NoError(t, Write(path, tr))

	got, err := Open(path)
	require.NoError(t, err)

	for v := uint32(0); v < 10; v++ {
		for pos := 0; pos <= len(values); pos++ {
			require.Equal(t, tr.Rank(v, uint64(pos)), got.Rank(v, uint64(pos)), "v=%d pos=%d", v, pos)
		}
	}
	for v := uint32(0); v < 10; v++ {
		for k := uint64(0); k < 4; k++ {
			wantPos, wantOK := tr.Select(v, k)
			gotPos, gotOK := got.Select(v, k)
			require.Equal(t, wantOK, gotOK)
			if wantOK {
				require.Equal(t, wantPos, gotPos)
			}
		}
	}
}
