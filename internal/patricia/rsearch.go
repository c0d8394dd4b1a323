package patricia

// RSearchResult is the outcome of a right-neighbor search: the byte
// address of the external item immediately after the last occurrence of
// the pattern in this node, or Rightmost=true if no such item exists
// within the node (the match extends to the node's right edge).
type RSearchResult struct {
	ExtPos    uint16
	Rightmost bool
}

// RSearch walks down following the pattern exactly (it is only meaningful
// once the caller already knows the pattern matches along this path, i.e.
// after Search has established cur_lcp == |P|) and, on exhausting the
// pattern, backtracks to the nearest ancestor with a larger sibling
// branch, per spec §4.4.
//
// The "stopped at a leaf" branch of the walk reads the suffix position
// straight from the branch just taken (rather than a stale outer
// variable, as the original source's prototype did).
func RSearch(pattern, text Accessor, view View) RSearchResult {
	patternLen := pattern.SuffixLen(0)

	var path []uint16
	curLen := uint64(0)
	offset := uint16(0)

	for {
		if patternLen <= curLen {
			if len(path) == 0 {
				return RSearchResult{0, true}
			}
			node := path[len(path)-1]
			path = path[:len(path)-1]

			for {
				curSymb := pattern.Symbol(uint64(view.lenAt(node)))
				idx := view.lowerBoundIdx(node, curSymb)
				nb := view.numBranch(node)

				if idx+1 == nb {
					if len(path) == 0 {
						return RSearchResult{0, true}
					}
					node = path[len(path)-1]
					path = path[:len(path)-1]
					continue
				}
				return RSearchResult{ExtPos: view.leftmostExtOfBranch(node, idx+1), Rightmost: false}
			}
		}

		path = append(path, offset)

		curSymb := pattern.Symbol(uint64(view.lenAt(offset)))
		idx := view.lowerBoundIdx(offset, curSymb)
		nb := view.numBranch(offset)
		if idx >= nb {
			return RSearchResult{0, true}
		}

		_, pos := view.branch(offset, idx)
		if pos < view.ExtPosBegin {
			offset = pos
			curLen = uint64(view.lenAt(pos))
			continue
		}

		strPos := uint64(view.strPosAt(pos))
		curLen = text.SuffixLen(strPos)
		offset = pos
	}
}
