package sa

import (
	"github.com/scigolib/seqidx/internal/mmapfile"
	"github.com/scigolib/seqidx/internal/utils"
)

const headerSize = 8

// File is a SuffixArrayFile artifact: an 8-byte count header followed by
// count u32 positions (spec §3, §6).
type File struct {
	Count uint64
	data  []byte // mapped region, header included

	ro *mmapfile.ReadOnly
}

// Write creates path and writes the header and positions array.
func Write(path string, positions []uint32) error {
	total := int64(headerSize + 4*len(positions))
	rw, err := mmapfile.CreateReadWrite(path, total)
	if err != nil {
		return err
	}
	defer rw.Close()

	out := rw.Bytes()
	utils.PutU64(out[:headerSize], uint64(len(positions)))
	off := headerSize
	for _, p := range positions {
		utils.PutU32(out[off:off+4], p)
		off += 4
	}
	return nil
}

// Open memory-maps path read-only.
func Open(path string) (*File, error) {
	ro, err := mmapfile.OpenReadOnly(path)
	if err != nil {
		return nil, err
	}
	data := ro.Bytes()
	if len(data) < headerSize {
		ro.Close()
		return nil, utils.WrapError(utils.ErrCorrupt, "suffix array file truncated header", nil)
	}
	count := utils.U64(data[:headerSize])
	want := headerSize + 4*int(count)
	if len(data) < want {
		ro.Close()
		return nil, utils.WrapError(utils.ErrCorrupt, "suffix array file shorter than header count", nil)
	}
	return &File{Count: count, data: data, ro: ro}, nil
}

// At returns the suffix-array position at index i.
func (f *File) At(i uint64) uint32 {
	off := headerSize + 4*int(i)
	return utils.U32(f.data[off : off+4])
}

// Close releases the underlying mapping.
func (f *File) Close() error {
	if f.ro == nil {
		return nil
	}
	err := f.ro.Close()
	f.ro = nil
	return err
}
