package seqidx

import (
	"github.com/scigolib/seqidx/internal/patricia"
	"github.com/scigolib/seqidx/internal/sbt"
	"github.com/scigolib/seqidx/internal/symbol"
	"github.com/scigolib/seqidx/internal/utils"
)

// Result is the outcome of a Query: Found reports whether the pattern
// occurs at all (an empty pattern is reported as not found); Position is
// the text position of the lexicographically smallest suffix that has
// the pattern as a prefix; SaLo/SaHi bound the suffix-array interval of
// all occurrences when the pattern length is a multiple of d, and cover
// only that first occurrence's entry otherwise; MatchedLen is the length actually matched before divergence (useful
// even when Found is false, to report how much of the pattern exists
// as a prefix of the nearest suffix).
type Result struct {
	Found      bool
	Position   uint64
	SaLo       uint64
	SaHi       uint64
	MatchedLen uint32
}

// Query searches for pattern, an ASCII nucleotide string (spec §4.2's
// alphabet folding applies: lower-case is folded, unrecognized letters
// degrade to N). A pattern containing a non-alphabetic byte is an
// InvalidSymbol error.
func (idx *Index) Query(pattern string) (Result, error) {
	syms, err := toSymbols(pattern)
	if err != nil {
		return Result{}, err
	}

	if len(syms)%idx.d == 0 {
		return idx.queryAligned(syms), nil
	}
	return idx.queryMisaligned(syms), nil
}

func toSymbols(pattern string) ([]symbol.Symbol, error) {
	syms := make([]symbol.Symbol, len(pattern))
	for i := 0; i < len(pattern); i++ {
		s, ok := symbol.FromByte(pattern[i])
		if !ok {
			return nil, utils.WrapError(utils.ErrInvalidSymbol, "query pattern byte", nil)
		}
		syms[i] = s
	}
	return syms, nil
}

// queryAligned runs the plain SBT search: the pattern's own length is a
// multiple of d, so every suffix the SBT indexes is directly comparable
// to it symbol by symbol (spec §4.5; the blind-PT comparisons are exact
// at raw-symbol granularity regardless of d).
func (idx *Index) queryAligned(syms []symbol.Symbol) Result {
	pat := patricia.NewPatternBuffer(syms)
	res := idx.search(pat.Accessor())
	return Result{
		Found:      len(syms) > 0 && res.MatchedLen >= uint32(len(syms)),
		Position:   uint64(res.StrPos),
		SaLo:       res.SaLo,
		SaHi:       res.SaHi,
		MatchedLen: res.MatchedLen,
	}
}

// queryMisaligned handles a pattern whose length isn't a multiple of d
// (spec §4.6, scenario 5): the SBT resolves the largest d-aligned
// prefix to an SA range, then the leftover trailing symbols (padded
// with TERM to a full super-symbol width, matched on their high-order
// significant bits only, sig_bits = leftover length * 3) narrow that
// range further.
//
// The wavelet tree's BWT array names, for each SA position, the
// super-symbol exactly one past that suffix's own start — correct
// only when the SBT has matched exactly one super-symbol of the
// prefix (aligned == d, spec scenario 5's case). For any other
// aligned-prefix depth the array names the wrong super-symbol, so
// those depths fall back to scanLeadMatch, which reads each
// candidate's actual next super-symbol straight out of the compressed
// text instead of trusting the precomputed array (see DESIGN.md).
func (idx *Index) queryMisaligned(syms []symbol.Symbol) Result {
	aligned := len(syms) - len(syms)%idx.d
	prefix := syms[:aligned]
	lead := syms[aligned:]

	pat := patricia.NewPatternBuffer(prefix)
	res := idx.search(pat.Accessor())
	if res.MatchedLen < uint32(aligned) {
		return Result{Found: false, Position: uint64(res.StrPos), MatchedLen: res.MatchedLen}
	}

	probe := symbol.MakePackedBuffer(uint64(idx.d))
	for i, s := range lead {
		probe.Write(uint64(i), s)
	}
	value := probe.ReadSeq(0, idx.d).Value()
	sigBits := len(lead) * 3

	numSuper := aligned / idx.d
	var saIdx uint64
	var ok bool
	if numSuper == 1 {
		saIdx, ok = idx.wt.FirstRankInRange(value, sigBits, res.SaLo, res.SaHi)
	} else {
		saIdx, ok = idx.scanLeadMatch(res.SaLo, res.SaHi, uint64(numSuper), value, sigBits)
	}
	if !ok {
		return Result{Found: false, Position: uint64(res.StrPos), MatchedLen: uint32(aligned)}
	}

	strPos := uint64(idx.sa.At(saIdx)) * uint64(idx.d)
	return Result{
		Found:      true,
		Position:   strPos,
		SaLo:       saIdx,
		SaHi:       saIdx + 1,
		MatchedLen: uint32(len(syms)),
	}
}

// scanLeadMatch returns the first SA index in [lo, hi) whose
// super-symbol superOffset positions past its own suffix start has
// value's top sigBits bits as its own top bits, wrapping to
// super-symbol 0 past the text's end the same way BuildBWT does. It is
// the general-depth counterpart to the wavelet tree's
// FirstRankInRange, used whenever superOffset isn't the one depth
// (exactly 1) the precomputed wavelet-tree array was built for.
func (idx *Index) scanLeadMatch(lo, hi, superOffset uint64, value uint32, sigBits int) (uint64, bool) {
	numLevels := uint(3 * idx.d)
	shift := numLevels - uint(sigBits)
	numSuper := idx.cf.Buf.Len() / uint64(idx.d)
	for i := lo; i < hi; i++ {
		superIdx := uint64(idx.sa.At(i)) + superOffset
		if superIdx >= numSuper {
			superIdx -= numSuper
		}
		v := idx.cf.Buf.ReadSeq(superIdx, idx.d).Value()
		if v>>shift == value>>shift {
			return i, true
		}
	}
	return 0, false
}

func (idx *Index) search(pat patricia.PatternAccessor) sbt.Result {
	text := patricia.TextAccessor{Buf: idx.cf.Buf}
	return sbt.Search(idx.bt, text, pat, idx.sa.Count)
}
