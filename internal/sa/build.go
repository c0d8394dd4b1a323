// Package sa builds the suffix array over super-symbols by parallel
// prefix-doubling (spec §4.3) and reads/writes its on-disk file format
// (spec §6).
package sa

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/scigolib/seqidx/internal/symbol"
	"github.com/scigolib/seqidx/internal/utils"
)

// item is one candidate suffix during construction: its super-symbol
// index and its current (rank0, rank1) pair.
type item struct {
	pos          uint32
	rank0, rank1 int64
}

// Build runs parallel prefix-doubling sort over cf's super-symbols of
// width d and returns the sorted super-symbol positions (spec §4.3).
func Build(ctx context.Context, cf *symbol.CompressedFile, d int) ([]uint32, error) {
	if d < 1 || d > symbol.MaxD {
		return nil, utils.WrapError(utils.ErrInputOutOfRange, "d out of [1,8]", nil)
	}
	if cf.Count%uint64(d) != 0 {
		return nil, utils.WrapError(utils.ErrCorrupt, "compressed symbol count not a multiple of d", nil)
	}
	nItems := cf.Count / uint64(d)
	if err := utils.CheckU32Range(nItems); err != nil {
		return nil, err
	}
	if nItems == 0 {
		return []uint32{}, nil
	}

	items := make([]item, nItems)
	for i := uint64(0); i < nItems; i++ {
		items[i] = item{pos: uint32(i), rank0: seqRank(cf, i, d)}
	}
	for i := range items {
		if i+1 < len(items) {
			items[i].rank1 = items[i+1].rank0
		} else {
			items[i].rank1 = -1
		}
	}

	if err := parallelSort(ctx, items); err != nil {
		return nil, err
	}

	n := int64(len(items))
	for k := int64(4); k < 2*n; k *= 2 {
		newRank := make([]int64, n)
		newRank[items[0].pos] = 0
		for j := int64(1); j < n; j++ {
			prev, cur := items[j-1], items[j]
			r := newRank[prev.pos]
			if prev.rank0 != cur.rank0 || prev.rank1 != cur.rank1 {
				r++
			}
			newRank[cur.pos] = r
		}

		distinct := newRank[items[n-1].pos] + 1

		half := k / 2
		for i := range items {
			p := int64(items[i].pos)
			items[i].rank0 = newRank[p]
			if p+half < n {
				items[i].rank1 = newRank[p+half]
			} else {
				items[i].rank1 = -1
			}
		}

		if err := parallelSort(ctx, items); err != nil {
			return nil, err
		}

		if distinct == n {
			break
		}
	}

	out := make([]uint32, n)
	for i, it := range items {
		out[i] = it.pos
	}
	return out, nil
}

// seqRank reinterprets the i-th super-symbol's packed bytes (high-bit
// aligned, ≤3 bytes for d≤8) as a big-endian integer, giving a total order
// equal to lexicographic symbol comparison, per spec §4.1's SymbolSeq
// order-consistency invariant.
func seqRank(cf *symbol.CompressedFile, i uint64, d int) int64 {
	b := cf.Buf.ReadSeq(i, d).Bytes()
	var v int64
	for _, byt := range b {
		v = (v << 8) | int64(byt)
	}
	return v
}

func less(a, b item) bool {
	if a.rank0 != b.rank0 {
		return a.rank0 < b.rank0
	}
	return a.rank1 < b.rank1
}

// parallelSort sorts items by (rank0, rank1) using a goroutine-parallel
// merge sort: the comparator is pure, so splitting across workers and
// merging sequentially is deterministic regardless of scheduling
// (spec §4.3 concurrency note, §5.1).
func parallelSort(ctx context.Context, items []item) error {
	scratch := make([]item, len(items))
	return mergeSortParallel(ctx, items, scratch, maxSortDepth())
}

func maxSortDepth() int {
	procs := runtime.GOMAXPROCS(0)
	depth := 0
	for (1 << depth) < procs {
		depth++
	}
	return depth
}

const sequentialCutoff = 2048

func mergeSortParallel(ctx context.Context, items, scratch []item, depth int) error {
	n := len(items)
	if n <= sequentialCutoff || depth <= 0 {
		sort.Slice(items, func(i, j int) bool { return less(items[i], items[j]) })
		return nil
	}

	mid := n / 2
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return mergeSortParallel(gctx, items[:mid], scratch[:mid], depth-1) })
	g.Go(func() error { return mergeSortParallel(gctx, items[mid:], scratch[mid:], depth-1) })
	if err := g.Wait(); err != nil {
		return err
	}

	merge(items[:mid], items[mid:], scratch[:n])
	copy(items, scratch[:n])
	return nil
}

func merge(left, right, out []item) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			out[k] = right[j]
			j++
		} else {
			out[k] = left[i]
			i++
		}
		k++
	}
	for ; i < len(left); i++ {
		out[k] = left[i]
		k++
	}
	for ; j < len(right); j++ {
		out[k] = right[j]
		k++
	}
}
