// Package patricia implements the in-block blind Patricia trie (spec
// §4.4): a naive pointer-based builder used only at construction time,
// serialization into a node's reserved PT region, and the blind Search /
// RSearch walks used at query time directly over the serialized bytes.
package patricia

import "github.com/scigolib/seqidx/internal/symbol"

// Accessor reads symbols from a text or pattern by position, returning
// TERM once past the end — this lets Search/RSearch compare one symbol
// past either operand without a separate bounds branch, matching the
// original `pattern.Size() > len ? pattern[len] : CharT{}` idiom.
type Accessor interface {
	Symbol(i uint64) symbol.Symbol
	// SuffixLen is the number of symbols available starting at position i
	// (for a pattern this is constant; for text it is Len()-i).
	SuffixLen(i uint64) uint64
}

// TextAccessor adapts a packed symbol buffer (the full compressed text)
// to Accessor, addressed by absolute text position.
type TextAccessor struct {
	Buf *symbol.PackedBuffer
}

// Symbol implements Accessor.
func (t TextAccessor) Symbol(i uint64) symbol.Symbol {
	if i >= t.Buf.Len() {
		return symbol.TERM
	}
	return t.Buf.Read(i)
}

// SuffixLen implements Accessor.
func (t TextAccessor) SuffixLen(i uint64) uint64 {
	if i >= t.Buf.Len() {
		return 0
	}
	return t.Buf.Len() - i
}

// PatternAccessor adapts a packed pattern buffer (spec §3's transient
// PatternBuffer) to Accessor. Positions are relative to the pattern start.
type PatternAccessor struct {
	Buf  *symbol.PackedBuffer
	Size uint64
}

// Symbol implements Accessor.
func (p PatternAccessor) Symbol(i uint64) symbol.Symbol {
	if i >= p.Size {
		return symbol.TERM
	}
	return p.Buf.Read(i)
}

// SuffixLen implements Accessor; a pattern has no "rest of suffix" beyond
// its own length, so this answers how many pattern symbols remain.
func (p PatternAccessor) SuffixLen(i uint64) uint64 {
	if i >= p.Size {
		return 0
	}
	return p.Size - i
}

// PatternBuffer owns the packed bits of a transient query pattern and
// yields a borrowed PatternAccessor, per spec §3.
type PatternBuffer struct {
	buf *symbol.PackedBuffer
	n   uint64
}

// NewPatternBuffer packs the given symbols into an owned buffer.
func NewPatternBuffer(syms []symbol.Symbol) *PatternBuffer {
	buf := symbol.MakePackedBuffer(uint64(len(syms)))
	for i, s := range syms {
		buf.Write(uint64(i), s)
	}
	return &PatternBuffer{buf: buf, n: uint64(len(syms))}
}

// Accessor returns a borrowed, read-only view for search.
func (p *PatternBuffer) Accessor() PatternAccessor {
	return PatternAccessor{Buf: p.buf, Size: p.n}
}

// Len returns the pattern length in symbols.
func (p *PatternBuffer) Len() uint64 { return p.n }
