package symbol

import (
	"github.com/scigolib/seqidx/internal/textio"
	"github.com/scigolib/seqidx/internal/utils"
)

// MaxD is the largest supported super-symbol block width (spec §7,
// InputOutOfRange: d must be in [1, 8]).
const MaxD = 8

// BuildPacked scans src (header-stripped by SymbolReader) and returns a
// packed, TERM-terminated, dMax-padded buffer plus the padded symbol
// count, per spec §4.2.
func BuildPacked(src *textio.SymbolReader, dMax int) (*PackedBuffer, uint64, error) {
	if dMax < 1 || dMax > MaxD {
		return nil, 0, utils.WrapError(utils.ErrInputOutOfRange, "d out of [1,8]", nil)
	}

	var syms []Symbol
	lastIsTerm := false
	for {
		b, ok := src.Next()
		if !ok {
			break
		}
		s, recognized := FromByte(b)
		if !recognized {
			continue
		}
		syms = append(syms, s)
		lastIsTerm = s == TERM
	}

	n := uint64(len(syms))
	if !lastIsTerm {
		syms = append(syms, TERM)
		n++
	}

	nPadded := roundUpToMultiple(n, uint64(dMax))
	if err := utils.CheckU32Range(nPadded); err != nil {
		return nil, 0, err
	}

	buf := MakePackedBuffer(nPadded) // zero-initialized: padding symbols are TERM (0).
	for i, s := range syms {
		buf.Write(uint64(i), s)
	}

	return buf, nPadded, nil
}

func roundUpToMultiple(n, d uint64) uint64 {
	if d <= 1 {
		return n
	}
	rem := n % d
	if rem == 0 {
		return n
	}
	return n + (d - rem)
}
