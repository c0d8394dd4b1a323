package wavelet

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitVectorRankMatchesNaiveCount(t *testing.T) {
	const n = 500
	bv := NewBitVector(n)
	bits := make([]bool, n)
	rng := rand.New(rand.NewSource(1))
	for i := uint64(0); i < n; i++ {
		if rng.Intn(3) == 0 {
			bv.Set(i)
			bits[i] = true
		}
	}
	bv.BuildRankSupport()

	var running uint64
	for i := uint64(0); i <= n; i++ {
		require.Equal(t, running, bv.Rank(i), "pos %d", i)
		if i < n && bits[i] {
			running++
		}
	}
}

func TestBitVectorGetSet(t *testing.T) {
	bv := NewBitVector(10)
	bv.Set(2)
	bv.Set(7)
	for i := uint64(0); i < 10; i++ {
		want := i == 2 || i == 7
		require.Equal(t, want, bv.Get(i), "bit %d", i)
	}
}
