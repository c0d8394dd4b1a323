package symbol

import (
	"github.com/scigolib/seqidx/internal/mmapfile"
	"github.com/scigolib/seqidx/internal/utils"
)

// headerSize is the 8-byte symbol count header preceding the packed
// buffer in a CompressedDNAFile (spec §6).
const headerSize = 8

// CompressedFile is a CompressedDNAFile artifact: an 8-byte count header
// followed by a PackedBuffer of that many symbols (spec §3, §6).
type CompressedFile struct {
	Count uint64
	Buf   *PackedBuffer

	ro *mmapfile.ReadOnly
}

// WriteCompressedFile builds the on-disk artifact at path from buf,
// sized exactly to the header plus buf's packed bytes, then truncates to
// the minimal required size per spec §4.2.
func WriteCompressedFile(path string, buf *PackedBuffer) error {
	total := int64(headerSize + ByteLen(buf.Len()))

	rw, err := mmapfile.CreateReadWrite(path, total)
	if err != nil {
		return err
	}
	defer rw.Close()

	out := rw.Bytes()
	utils.PutU64(out[:headerSize], buf.Len())
	copy(out[headerSize:], buf.Bytes()[:ByteLen(buf.Len())])
	return nil
}

// OpenCompressedFile memory-maps path read-only and returns a view over
// its header and packed buffer. Call Close when done.
func OpenCompressedFile(path string) (*CompressedFile, error) {
	ro, err := mmapfile.OpenReadOnly(path)
	if err != nil {
		return nil, err
	}
	data := ro.Bytes()
	if len(data) < headerSize {
		ro.Close()
		return nil, utils.WrapError(utils.ErrCorrupt, "compressed file truncated header", nil)
	}

	count := utils.U64(data[:headerSize])
	want := ByteLen(count)
	if uint64(len(data)-headerSize) < want {
		ro.Close()
		return nil, utils.WrapError(utils.ErrCorrupt, "compressed file shorter than header count", nil)
	}

	return &CompressedFile{
		Count: count,
		Buf:   NewPackedBuffer(data[headerSize:], count),
		ro:    ro,
	}, nil
}

// Close releases the underlying mapping. Idempotent.
func (c *CompressedFile) Close() error {
	if c.ro == nil {
		return nil
	}
	err := c.ro.Close()
	c.ro = nil
	return err
}
