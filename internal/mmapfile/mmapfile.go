// Package mmapfile provides read-only and read-write memory mappings over
// on-disk index artifacts, per spec §4.7: read-only mappings are
// MAP_PRIVATE, read-write mappings are MAP_SHARED and must be truncated
// before mapping, and unmap-on-Close is the sole release path.
package mmapfile

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/scigolib/seqidx/internal/utils"
)

// ReadOnly is a MAP_PRIVATE mapping of an existing file, opened and then
// immediately closed (POSIX retains the mapping across close).
type ReadOnly struct {
	data []byte
}

// OpenReadOnly maps path read-only. The file descriptor is closed as soon
// as the mapping is established.
func OpenReadOnly(path string) (*ReadOnly, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, utils.WrapError(utils.ErrIO, "open "+path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, utils.WrapError(utils.ErrIO, "stat "+path, err)
	}
	size := fi.Size()
	if size == 0 {
		return &ReadOnly{data: nil}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, utils.WrapError(utils.ErrIO, "mmap "+path, err)
	}
	return &ReadOnly{data: data}, nil
}

// Bytes returns the mapped region. The slice is invalid after Close.
func (m *ReadOnly) Bytes() []byte { return m.data }

// Close unmaps the region. Idempotent.
func (m *ReadOnly) Close() error {
	if m.data == nil {
		return nil
	}
	err := unix.Munmap(m.data)
	m.data = nil
	if err != nil {
		return utils.WrapError(utils.ErrIO, "munmap", err)
	}
	return nil
}

// ReadWrite is a MAP_SHARED mapping used during builds. The backing file
// is truncated to the requested size before mapping, and Grow unmaps,
// truncates, and re-maps to extend it.
type ReadWrite struct {
	f    *os.File
	data []byte
}

// CreateReadWrite creates (truncating if present) path, sizes it to size
// bytes, and maps it read-write.
func CreateReadWrite(path string, size int64) (*ReadWrite, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, utils.WrapError(utils.ErrIO, "create "+path, err)
	}

	rw := &ReadWrite{f: f}
	if size > 0 {
		if err := rw.mapSize(size); err != nil {
			f.Close()
			return nil, err
		}
	}
	return rw, nil
}

func (m *ReadWrite) mapSize(size int64) error {
	if err := m.f.Truncate(size); err != nil {
		return utils.WrapError(utils.ErrIO, "truncate", err)
	}
	data, err := unix.Mmap(int(m.f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return utils.WrapError(utils.ErrIO, "mmap", err)
	}
	m.data = data
	return nil
}

// Bytes returns the mapped region.
func (m *ReadWrite) Bytes() []byte { return m.data }

// Grow unmaps, truncates the file to newSize, and re-maps.
func (m *ReadWrite) Grow(newSize int64) error {
	if m.data != nil {
		if err := unix.Munmap(m.data); err != nil {
			return utils.WrapError(utils.ErrIO, "munmap before grow", err)
		}
		m.data = nil
	}
	return m.mapSize(newSize)
}

// Truncate shrinks the mapping (and backing file) to newSize, re-mapping.
func (m *ReadWrite) Truncate(newSize int64) error {
	return m.Grow(newSize)
}

// Close unmaps the region and closes the file. Idempotent.
func (m *ReadWrite) Close() error {
	var err error
	if m.data != nil {
		err = unix.Munmap(m.data)
		m.data = nil
	}
	if m.f != nil {
		if cerr := m.f.Close(); err == nil {
			err = cerr
		}
		m.f = nil
	}
	if err != nil {
		return utils.WrapError(utils.ErrIO, "close mapped file", err)
	}
	return nil
}
