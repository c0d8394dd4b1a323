package seqidx

import (
	"bufio"
	"context"
	"os"

	"github.com/scigolib/seqidx/internal/sa"
	"github.com/scigolib/seqidx/internal/sbt"
	"github.com/scigolib/seqidx/internal/symbol"
	"github.com/scigolib/seqidx/internal/textio"
	"github.com/scigolib/seqidx/internal/utils"
	"github.com/scigolib/seqidx/internal/wavelet"
)

// BuildIndex reads textPath, blocks it into super-symbols of width d,
// and writes the compressed text, suffix array, string B-tree and
// wavelet tree artifacts named by ArtifactPaths(textPath, d). It
// returns the Artifacts it wrote so the caller can open or relocate
// them without recomputing the naming scheme.
func BuildIndex(textPath string, d int) (*Artifacts, error) {
	if d < 1 || d > symbol.MaxD {
		return nil, utils.WrapError(utils.ErrInputOutOfRange, "d must be in [1,8]", nil)
	}

	arts := ArtifactPaths(textPath, d)

	f, err := os.Open(textPath)
	if err != nil {
		return nil, utils.WrapError(utils.ErrIO, "open "+textPath, err)
	}
	reader := textio.NewSymbolReader(bufio.NewReader(f))
	buf, _, err := symbol.BuildPacked(reader, d)
	closeErr := f.Close()
	if err != nil {
		return nil, err
	}
	if closeErr != nil {
		return nil, utils.WrapError(utils.ErrIO, "close "+textPath, closeErr)
	}

	if err := symbol.WriteCompressedFile(arts.CompPath, buf); err != nil {
		return nil, err
	}

	cf, err := symbol.OpenCompressedFile(arts.CompPath)
	if err != nil {
		return nil, err
	}
	defer cf.Close()

	positions, err := sa.Build(context.Background(), cf, d)
	if err != nil {
		return nil, err
	}
	if err := sa.Write(arts.SAPath, positions); err != nil {
		return nil, err
	}

	if err := sbt.Build(arts.SBTPath, cf.Buf, positions, d, sbt.DefaultBlockSize); err != nil {
		return nil, err
	}

	bwt := sa.BuildBWT(cf, positions, d)
	tree := wavelet.Build(bwt, wavelet.NumLevels(d))
	if err := wavelet.Write(arts.WTPath, tree); err != nil {
		return nil, err
	}

	return &arts, nil
}
