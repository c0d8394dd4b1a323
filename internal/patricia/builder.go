package patricia

import "github.com/scigolib/seqidx/internal/symbol"

type nodeKind uint8

const (
	kindInner nodeKind = iota
	kindLeaf
)

// branchEntry is one (symbol, child) pair of an in-memory inner node,
// kept sorted ascending by symbol.
type branchEntry struct {
	sym    symbol.Symbol
	target int // index into Builder.nodes
}

// node is a naive-trie node: either an Inner node with a sorted branch
// list, or a Leaf carrying the suffix position and pre-assigned external
// byte offset it will serialize to.
type node struct {
	kind     nodeKind
	len      uint32 // inner: shared LCP depth; leaf: suffix length at creation (dna.StrSize)
	branches []branchEntry
	strPos   uint64
	extPos   uint64
}

// Entry is one suffix to insert, with its pre-assigned external-region
// byte offset (computed by the SBT builder before PT construction, since
// the PT region's reserved capacity — and hence ext_pos_begin — is fixed
// ahead of time; see SPEC_FULL.md §4.5).
type Entry struct {
	StrPos uint64
	ExtPos uint64
}

// Builder is the naive pointer-based trie used only during construction
// (spec §4.4a, §9's arena-allocated NodeId replacement for the pointer
// tree: nodes live in a flat slice, released with the Builder).
type Builder struct {
	nodes []node
}

// NewBuilder creates an empty trie with a single inner root.
func NewBuilder() *Builder {
	return &Builder{nodes: []node{{kind: kindInner, len: 0}}}
}

const rootIdx = 0

// Insert adds one suffix to the trie, per spec §4.4a.
func (b *Builder) Insert(text Accessor, e Entry) {
	insIdx, lcp, symbOld, hadChild := b.searchInsertNode(text, e.StrPos)

	suffixLen := text.SuffixLen(e.StrPos)
	if uint64(lcp) == suffixLen {
		return // duplicate suffix; nothing to insert.
	}

	newLeafIdx := b.newLeaf(uint32(suffixLen), e.StrPos, e.ExtPos)

	insNode := &b.nodes[insIdx]
	key := text.Symbol(e.StrPos + uint64(insNode.len))

	if !hadChild {
		insNode.branches = insertBranch(insNode.branches, branchEntry{sym: key, target: newLeafIdx})
		return
	}

	existingIdx, _ := findBranch(insNode.branches, key)
	newInnerIdx := b.newInner(lcp)
	leafKey := text.Symbol(e.StrPos + uint64(lcp))
	b.nodes[newInnerIdx].branches = insertBranch(nil, branchEntry{sym: leafKey, target: newLeafIdx})
	b.nodes[newInnerIdx].branches = insertBranch(b.nodes[newInnerIdx].branches, branchEntry{sym: symbOld, target: existingIdx})

	setBranchTarget(insNode.branches, key, newInnerIdx)
}

// searchInsertNode descends to the node at which e's suffix diverges from
// the existing trie, per PatriciaTrieNaive::SearchInsertNode.
func (b *Builder) searchInsertNode(text Accessor, strPos uint64) (insIdx int, lcp uint32, symbOld symbol.Symbol, hadChild bool) {
	idx := rootIdx
	for {
		n := &b.nodes[idx]
		key := text.Symbol(strPos + uint64(n.len))
		childIdx, found := findBranch(n.branches, key)
		if !found {
			return idx, n.len, 0, false
		}

		child := &b.nodes[childIdx]
		leftmost := b.leftmostStrPos(childIdx)
		minLen := text.SuffixLen(strPos)
		if uint64(child.len) < minLen {
			minLen = uint64(child.len)
		}

		l := uint64(n.len)
		for l < minLen && text.Symbol(strPos+l) == text.Symbol(leftmost+l) {
			l++
		}

		if l < uint64(child.len) || child.kind == kindLeaf {
			return idx, uint32(l), text.Symbol(leftmost + l), true
		}
		idx = childIdx
	}
}

func (b *Builder) leftmostStrPos(idx int) uint64 {
	for b.nodes[idx].kind != kindLeaf {
		idx = b.nodes[idx].branches[0].target
	}
	return b.nodes[idx].strPos
}

func (b *Builder) newLeaf(length uint32, strPos, extPos uint64) int {
	b.nodes = append(b.nodes, node{kind: kindLeaf, len: length, strPos: strPos, extPos: extPos})
	return len(b.nodes) - 1
}

func (b *Builder) newInner(length uint32) int {
	b.nodes = append(b.nodes, node{kind: kindInner, len: length})
	return len(b.nodes) - 1
}

func findBranch(branches []branchEntry, s symbol.Symbol) (idx int, found bool) {
	for _, br := range branches {
		if br.sym == s {
			return br.target, true
		}
	}
	return 0, false
}

func setBranchTarget(branches []branchEntry, s symbol.Symbol, target int) {
	for i := range branches {
		if branches[i].sym == s {
			branches[i].target = target
			return
		}
	}
}

func insertBranch(branches []branchEntry, e branchEntry) []branchEntry {
	i := 0
	for i < len(branches) && branches[i].sym < e.sym {
		i++
	}
	branches = append(branches, branchEntry{})
	copy(branches[i+1:], branches[i:])
	branches[i] = e
	return branches
}
