package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunBuildsArtifactsForEachD(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.fa")
	require.NoError(t, os.WriteFile(path, []byte(">s\nACGTACGT\n"), 0o644))

	code := run([]string{"-d", "1,2", path})
	require.Equal(t, 0, code)

	for _, suffix := range []string{".comp", ".comp.sa", ".comp.sbt", ".comp.wt"} {
		_, err := os.Stat(path + suffix)
		require.NoError(t, err, "expected d=1 artifact %s", suffix)
	}
	for _, suffix := range []string{".comp.d2", ".comp.d2.sa", ".comp.d2.sbt", ".comp.d2.wt"} {
		_, err := os.Stat(path + suffix)
		require.NoError(t, err, "expected d=2 artifact %s", suffix)
	}
}

func TestRunRejectsMissingArgument(t *testing.T) {
	require.Equal(t, 1, run(nil))
}

func TestRunRejectsBadDList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.fa")
	require.NoError(t, os.WriteFile(path, []byte("ACGT"), 0o644))
	require.Equal(t, 1, run([]string{"-d", "not-a-number", path}))
}

func TestParseDList(t *testing.T) {
	ds, err := parseDList("1, 2,3")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, ds)

	_, err = parseDList("x")
	require.Error(t, err)
}
