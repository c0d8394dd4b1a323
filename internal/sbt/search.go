package sbt

import "github.com/scigolib/seqidx/internal/patricia"

// Result is the outcome of an SBT search (spec §4.5): the str_pos closest
// to the pattern, the matching SA interval [SaLo, SaHi), and the matched
// prefix length. The match succeeds iff MatchedLen >= the pattern length.
type Result struct {
	StrPos     uint32
	SaLo       uint64
	SaHi       uint64
	MatchedLen uint32
}

// Search walks the tree from the root (spec §4.5). totalItems is the
// suffix array's item count, supplied by the caller (the .sa file's own
// header) rather than re-derived here.
func Search(f *File, text, pat patricia.Accessor, totalItems uint64) Result {
	patLen := pat.SuffixLen(0)

	rootView := f.ptView(f.root)
	leftmost := rootView.LeftmostStrPos()
	rightmost := rootView.RightmostStrPos()

	if cmp, lcp := comparePatternToText(pat, text, uint64(leftmost)); cmp <= 0 {
		return Result{StrPos: leftmost, SaLo: 0, SaHi: 0, MatchedLen: lcp}
	}
	if cmp, lcp := comparePatternToText(pat, text, uint64(rightmost)); cmp > 0 {
		saLo := totalItems - 1
		return Result{StrPos: rightmost, SaLo: saLo, SaHi: totalItems, MatchedLen: lcp}
	}

	strPos, saLo, saHi, matchedLen := f.search(f.root, text, pat, patLen, 0, totalItems)
	return Result{StrPos: strPos, SaLo: saLo, SaHi: saHi, MatchedLen: matchedLen}
}

// comparePatternToText compares the pattern (in full) against
// text[textPos..textPos+|P|), returning sign and the length compared
// before divergence (or |P| if no divergence within the pattern).
func comparePatternToText(pat, text patricia.Accessor, textPos uint64) (sign int, lcp uint32) {
	patLen := pat.SuffixLen(0)
	var i uint64
	for i = 0; i < patLen; i++ {
		ps := pat.Symbol(i)
		ts := text.Symbol(textPos + i)
		if ps != ts {
			if ps < ts {
				return -1, uint32(i)
			}
			return 1, uint32(i)
		}
	}
	return 0, uint32(patLen)
}

// search performs the main descent of spec §4.5 starting at blk, with
// curLcp the accumulated LCP on entry. It also detects the node at which
// curLcp first reaches patLen and, at that node, resolves the right
// boundary of the SA interval via RSearch.
func (f *File) search(blk int, text, pat patricia.Accessor, patLen uint64, curLcp uint32, totalItems uint64) (strPos uint32, saLo, saHi uint64, matchedLen uint32) {
	view := f.ptView(blk)
	res := patricia.Search(pat, text, view, curLcp)
	newLcp := res.Lcp
	hitNow := uint64(curLcp) < patLen && uint64(newLcp) >= patLen

	if f.blockType(blk) == TypeLeaf {
		strPos = view.strPosAt(res.ExtPos)
		saLo = f.leafSaLeftSize(blk) + f.localLeafIndexClamped(blk, res.ExtPos, totalItems)
		matchedLen = newLcp
		if hitNow {
			saHi = f.resolveRight(blk, view, pat, text, totalItems, saLo)
		}
		return
	}

	pairIdx, slot := f.decodeInnerSlot(view, res.ExtPos)
	child := f.innerExtChild(blk, pairIdx)

	if slot == 0 {
		strPos = view.strPosAt(res.ExtPos)
		saLo = f.leftmostSaIndex(child)
		matchedLen = newLcp
		if hitNow {
			saHi = f.resolveRight(blk, view, pat, text, totalItems, saLo)
		}
		return
	}

	// slot == strPosSize: descend into child, refining str_pos/saLo further.
	childStrPos, childSaLo, childSaHi, childMatched := f.search(child, text, pat, patLen, newLcp, totalItems)
	strPos, saLo, matchedLen = childStrPos, childSaLo, childMatched
	if hitNow {
		saHi = f.resolveRight(blk, view, pat, text, totalItems, childSaLo)
	} else {
		saHi = childSaHi
	}
	return
}

// resolveRight computes the right boundary of the SA interval at the node
// where the match was first established. When no key of blk follows the
// match, the interval ends at the right edge of blk's subtree; when the
// first following key is the right key of a child pair, the boundary
// lies inside that child and is resolved there.
func (f *File) resolveRight(blk int, view patricia.View, pat, text patricia.Accessor, totalItems, saLo uint64) uint64 {
	r := patricia.RSearch(pat, text, view)
	if r.Rightmost {
		return f.rightmostSaIndex(blk, totalItems) + 1
	}

	if f.blockType(blk) == TypeLeaf {
		return f.leafSaLeftSize(blk) + f.localLeafIndexClamped(blk, r.ExtPos, totalItems)
	}

	pairIdx, slot := f.decodeInnerSlot(view, r.ExtPos)
	child := f.innerExtChild(blk, pairIdx)
	if slot == 0 {
		return f.leftmostSaIndex(child)
	}
	return f.resolveRight(child, f.ptView(child), pat, text, totalItems, saLo)
}
