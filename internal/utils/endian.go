package utils

import "encoding/binary"

// All on-disk integers in seqidx are little-endian, per spec §6.

// PutU16 writes v little-endian at the start of dst.
func PutU16(dst []byte, v uint16) { binary.LittleEndian.PutUint16(dst, v) }

// PutU32 writes v little-endian at the start of dst.
func PutU32(dst []byte, v uint32) { binary.LittleEndian.PutUint32(dst, v) }

// PutU64 writes v little-endian at the start of dst.
func PutU64(dst []byte, v uint64) { binary.LittleEndian.PutUint64(dst, v) }

// U16 reads a little-endian uint16 from the start of src.
func U16(src []byte) uint16 { return binary.LittleEndian.Uint16(src) }

// U32 reads a little-endian uint32 from the start of src.
func U32(src []byte) uint32 { return binary.LittleEndian.Uint32(src) }

// U64 reads a little-endian uint64 from the start of src.
func U64(src []byte) uint64 { return binary.LittleEndian.Uint64(src) }
