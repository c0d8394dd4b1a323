// Package symbol implements the 3-bit-per-symbol packed buffer over the
// five-nucleotide-plus-terminator alphabet (spec §3, §4.1) and the
// compressed-text file format built from it (spec §4.2, §6).
package symbol

// Symbol is one of the six alphabet values, 3-bit encoded. TERM is the
// smallest value so that it sorts before every nucleotide in lexicographic
// suffix comparisons.
type Symbol uint8

const (
	TERM Symbol = iota
	A
	C
	T
	G
	N
)

// MaxValue is the largest valid encoded symbol.
const MaxValue = N

// Valid reports whether s is one of the six defined alphabet values.
func (s Symbol) Valid() bool { return s <= MaxValue }

// String renders the symbol for diagnostics and CLI output.
func (s Symbol) String() string {
	switch s {
	case TERM:
		return "$"
	case A:
		return "A"
	case C:
		return "C"
	case T:
		return "T"
	case G:
		return "G"
	case N:
		return "N"
	default:
		return "?"
	}
}

// FromByte maps an ASCII input byte to a Symbol. Lower-case nucleotide
// letters are folded to their upper-case form; any other alphabetic byte
// (an IUPAC ambiguity code) degrades to N, per SPEC_FULL.md §4.2. ok is
// false for non-alphabetic bytes, which the caller discards.
func FromByte(b byte) (sym Symbol, ok bool) {
	switch {
	case b >= 'a' && b <= 'z':
		b -= 'a' - 'A'
	}
	switch b {
	case 'A':
		return A, true
	case 'C':
		return C, true
	case 'T':
		return T, true
	case 'G':
		return G, true
	case 'N':
		return N, true
	default:
		if b >= 'A' && b <= 'Z' {
			return N, true
		}
		return 0, false
	}
}
