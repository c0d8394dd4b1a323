// Package textio implements the FASTA-like header-stripping scanner that
// feeds the compressed-text builder (spec §1 names this collaborator;
// spec §4.2 specifies its exact behavior, so it is implemented here rather
// than assumed external).
package textio

import "bufio"

// SymbolReader scans an underlying byte stream, skipping FASTA headers,
// and yields only the alphabetic bytes of non-header content. A header
// runs from a '>' byte through the following newline; a '>' starts a
// header wherever it occurs, not only at the start of a line.
type SymbolReader struct {
	src       *bufio.Reader
	inHeader  bool
}

// NewSymbolReader wraps src.
func NewSymbolReader(src *bufio.Reader) *SymbolReader {
	return &SymbolReader{src: src}
}

// Next returns the next alphabetic byte from non-header content, or
// ok=false at end of stream.
func (r *SymbolReader) Next() (b byte, ok bool) {
	for {
		c, err := r.src.ReadByte()
		if err != nil {
			return 0, false
		}

		if r.inHeader {
			if c == '\n' {
				r.inHeader = false
			}
			continue
		}

		if c == '>' {
			r.inHeader = true
			continue
		}

		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			return c, true
		}
		// all other bytes (whitespace, digits, punctuation) are discarded.
	}
}
