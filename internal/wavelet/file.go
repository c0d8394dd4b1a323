package wavelet

import (
	"github.com/scigolib/seqidx/internal/mmapfile"
	"github.com/scigolib/seqidx/internal/utils"
)

// Write serializes t to path (spec §6): a self-describing header
// (num_levels, n), the bit vectors in pre-order (presence flag + packed
// bits, 8-byte aligned), then the select table. Rank-support
// superblock/block arrays are not persisted; Open recomputes them from
// the raw bits, the same way the in-memory Tree is built.
func Write(path string, t *Tree) error {
	var enc encoder
	enc.putU32(uint32(t.numLevels))
	enc.putU64(t.n)
	enc.putNode(t.root, 0, t.numLevels)
	enc.putSelectTable(t.selectIndex)

	rw, err := mmapfile.CreateReadWrite(path, int64(len(enc.buf)))
	if err != nil {
		return err
	}
	defer rw.Close()
	copy(rw.Bytes(), enc.buf)
	return nil
}

// Open memory-maps path read-only and rebuilds the in-memory Tree,
// recomputing rank support over the stored raw bits.
func Open(path string) (*Tree, error) {
	ro, err := mmapfile.OpenReadOnly(path)
	if err != nil {
		return nil, err
	}
	data := ro.Bytes()

	d := decoder{buf: data}
	numLevels := int(d.u32())
	n := d.u64()

	t := &Tree{numLevels: numLevels, n: n}
	t.root = d.node(0, numLevels)
	t.selectIndex = d.selectTable()

	// Rank-mapped data is fully consumed into in-memory structures above;
	// the mapping itself is no longer needed once decoded.
	return t, ro.Close()
}

// encoder appends little-endian fields and 8-byte-aligned byte blocks.
type encoder struct {
	buf []byte
}

func (e *encoder) putU32(v uint32) {
	var b [4]byte
	utils.PutU32(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

func (e *encoder) putU64(v uint64) {
	var b [8]byte
	utils.PutU64(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

func (e *encoder) align8() {
	for len(e.buf)%8 != 0 {
		e.buf = append(e.buf, 0)
	}
}

func (e *encoder) putNode(n *node, level, numLevels int) {
	if n == nil {
		e.buf = append(e.buf, 0)
		return
	}
	e.buf = append(e.buf, 1)
	e.putU64(n.bits.Len())
	e.align8()
	nbytes := (n.bits.Len() + 7) / 8
	wordBytes := make([]byte, nbytes)
	for i := uint64(0); i < n.bits.Len(); i++ {
		if n.bits.Get(i) {
			wordBytes[i/8] |= 1 << (i % 8)
		}
	}
	e.buf = append(e.buf, wordBytes...)
	e.align8()

	if level+1 < numLevels {
		e.putNode(n.left, level+1, numLevels)
		e.putNode(n.right, level+1, numLevels)
	}
}

func (e *encoder) putSelectTable(m map[uint32][]uint64) {
	e.putU32(uint32(len(m)))
	for v, positions := range m {
		e.putU32(v)
		e.putU32(uint32(len(positions)))
		for _, p := range positions {
			e.putU64(p)
		}
	}
}

type decoder struct {
	buf []byte
	off int
}

func (d *decoder) u32() uint32 {
	v := utils.U32(d.buf[d.off : d.off+4])
	d.off += 4
	return v
}

func (d *decoder) u64() uint64 {
	v := utils.U64(d.buf[d.off : d.off+8])
	d.off += 8
	return v
}

func (d *decoder) align8() {
	for d.off%8 != 0 {
		d.off++
	}
}

func (d *decoder) byte() byte {
	b := d.buf[d.off]
	d.off++
	return b
}

func (d *decoder) node(level, numLevels int) *node {
	present := d.byte()
	if present == 0 {
		return nil
	}
	bitLen := d.u64()
	d.align8()
	nbytes := int((bitLen + 7) / 8)
	wordBytes := d.buf[d.off : d.off+nbytes]
	d.off += nbytes
	d.align8()

	bv := NewBitVector(bitLen)
	for i := uint64(0); i < bitLen; i++ {
		if wordBytes[i/8]&(1<<(i%8)) != 0 {
			bv.Set(i)
		}
	}
	bv.BuildRankSupport()

	n := &node{bits: bv}
	if level+1 < numLevels {
		n.left = d.node(level+1, numLevels)
		n.right = d.node(level+1, numLevels)
	}
	return n
}

func (d *decoder) selectTable() map[uint32][]uint64 {
	count := d.u32()
	m := make(map[uint32][]uint64, count)
	for i := uint32(0); i < count; i++ {
		v := d.u32()
		n := d.u32()
		positions := make([]uint64, n)
		for j := uint32(0); j < n; j++ {
			positions[j] = d.u64()
		}
		m[v] = positions
	}
	return m
}
