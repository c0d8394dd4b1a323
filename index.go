package seqidx

import (
	"github.com/scigolib/seqidx/internal/sa"
	"github.com/scigolib/seqidx/internal/sbt"
	"github.com/scigolib/seqidx/internal/symbol"
	"github.com/scigolib/seqidx/internal/wavelet"
)

// Index is an opened, memory-mapped set of artifacts ready for queries.
type Index struct {
	d  int
	cf *symbol.CompressedFile
	sa *sa.File
	bt *sbt.File
	wt *wavelet.Tree
}

// OpenIndex memory-maps the artifacts named by arts. Call Close when
// done.
func OpenIndex(arts Artifacts) (*Index, error) {
	cf, err := symbol.OpenCompressedFile(arts.CompPath)
	if err != nil {
		return nil, err
	}
	saFile, err := sa.Open(arts.SAPath)
	if err != nil {
		cf.Close()
		return nil, err
	}
	btFile, err := sbt.Open(arts.SBTPath, sbt.DefaultBlockSize)
	if err != nil {
		saFile.Close()
		cf.Close()
		return nil, err
	}
	wt, err := wavelet.Open(arts.WTPath)
	if err != nil {
		btFile.Close()
		saFile.Close()
		cf.Close()
		return nil, err
	}

	return &Index{d: arts.D, cf: cf, sa: saFile, bt: btFile, wt: wt}, nil
}

// Close releases every underlying memory mapping.
func (idx *Index) Close() error {
	var first error
	record := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}
	record(idx.bt.Close())
	record(idx.sa.Close())
	record(idx.cf.Close())
	return first
}
