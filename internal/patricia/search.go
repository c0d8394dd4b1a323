package patricia

// SearchResult is the outcome of a blind PT search: the external-region
// byte address of the closest candidate key, and the LCP established
// against it.
type SearchResult struct {
	ExtPos uint16
	Lcp    uint32
}

// Search performs the two-phase (plus recheck) blind search of spec §4.4:
// a descend phase with no text access, one full comparison against the
// candidate it lands on, then a recheck descent that adjusts the result
// to the correct boundary given the measured LCP.
func Search(pattern, text Accessor, view View, lastLcp uint32) SearchResult {
	patternLen := pattern.SuffixLen(0)

	// Phase 1: blind descend.
	offset := uint16(0)
	var extPos uint16
	for {
		nlen := view.lenAt(offset)
		curSymb := pattern.Symbol(uint64(nlen))
		idx := view.lowerBoundIdx(offset, curSymb)
		nb := view.numBranch(offset)

		if idx < nb {
			sym, pos := view.branch(offset, idx)
			if sym == curSymb {
				if pos < view.ExtPosBegin {
					offset = pos
					continue
				}
				extPos = pos
				break
			}
		}
		extPos = view.leftmostExtOfNode(offset)
		break
	}

	// Compare phase: one full comparison against the candidate.
	strPos := uint64(view.strPosAt(extPos))
	lcp := lastLcp
	maxLcp := patternLen
	if sl := text.SuffixLen(strPos); sl < maxLcp {
		maxLcp = sl
	}
	for uint64(lcp) < maxLcp && pattern.Symbol(uint64(lcp)) == text.Symbol(strPos+uint64(lcp)) {
		lcp++
	}

	// Recheck phase: re-descend, stopping at the first node whose len >=
	// lcp, or when the branch taken leads directly to an external item.
	offset = 0
	var hitOffset uint16
	hitIsInnerNode := true
	for {
		nlen := view.lenAt(offset)
		if nlen >= lcp {
			hitOffset = offset
			hitIsInnerNode = true
			break
		}
		curSymb := pattern.Symbol(uint64(nlen))
		idx := view.lowerBoundIdx(offset, curSymb)
		_, pos := view.branch(offset, idx)
		if pos >= view.ExtPosBegin {
			hitOffset = pos
			hitIsInnerNode = false
			break
		}
		offset = pos
	}

	if hitIsInnerNode {
		patSymb := pattern.Symbol(uint64(lcp))
		textSymb := text.Symbol(strPos + uint64(lcp))
		nlen := view.lenAt(hitOffset)
		nb := view.numBranch(hitOffset)
		firstSym, _ := view.branch(hitOffset, 0)
		lastSym, _ := view.branch(hitOffset, nb-1)

		switch {
		case lcp == nlen && patSymb < firstSym:
			extPos = view.leftmostExtOfNode(hitOffset)
		case lcp == nlen && lastSym < patSymb:
			extPos = view.rightmostExt(hitOffset) + strPosSize
		case lcp == nlen:
			idx := view.lowerBoundIdx(hitOffset, patSymb)
			extPos = view.leftmostExtOfBranch(hitOffset, idx)
		case patSymb < textSymb:
			extPos = view.leftmostExtOfNode(hitOffset)
		default:
			extPos = view.rightmostExt(hitOffset) + strPosSize
		}
	} else {
		// offset still holds the parent node examined just before taking
		// the branch into this external item (spec §4.4's "stopped at a
		// leaf" case; the relevant length is the branching depth).
		parentLen := view.lenAt(offset)
		if lcp == parentLen {
			extPos = hitOffset
		} else {
			patSymb := pattern.Symbol(uint64(lcp))
			textSymb := text.Symbol(strPos + uint64(lcp))
			if patSymb <= textSymb {
				extPos = hitOffset
			} else {
				extPos = hitOffset + strPosSize
			}
		}
	}

	return SearchResult{ExtPos: extPos, Lcp: lcp}
}
