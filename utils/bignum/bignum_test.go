package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDivRound(t *testing.T) {
	for _, tc := range []struct{ a, b, want int64 }{
		{7, 2, 4},
		{-7, 2, -4},
		{5, 3, 2},
		{-5, 3, -2},
		{4, 3, 1},
		{0, 5, 0},
	} {
		i := new(big.Int)
		DivRound(big.NewInt(tc.a), big.NewInt(tc.b), i)
		require.Equal(t, tc.want, i.Int64(), "round(%d/%d)", tc.a, tc.b)
	}
}

func TestDivRoundAliasing(t *testing.T) {
	a := big.NewInt(-9)
	DivRound(a, big.NewInt(2), a)
	require.Equal(t, int64(-5), a.Int64())

	b := big.NewInt(3)
	DivRound(big.NewInt(10), b, b)
	require.Equal(t, int64(3), b.Int64())
}

func TestMaxAbs(t *testing.T) {
	v := []big.Int{*big.NewInt(3), *big.NewInt(-9), *big.NewInt(5)}
	require.Equal(t, int64(9), MaxAbs(v).Int64())
	require.Equal(t, int64(0), MaxAbs(nil).Int64())
}

func TestLog2(t *testing.T) {

	t.Run("Exact", func(t *testing.T) {
		require.InDelta(t, 10.0, Log2Int(big.NewInt(1024)), 1e-12)
		require.InDelta(t, 0.0, Log2Int(big.NewInt(1)), 1e-12)
	})

	t.Run("Large", func(t *testing.T) {
		x := new(big.Int).Lsh(big.NewInt(3), 500)
		require.InDelta(t, 500+math.Log2(3), Log2Int(x), 1e-9)
	})

	t.Run("NonPositive", func(t *testing.T) {
		require.True(t, math.IsInf(Log2Int(new(big.Int)), -1))
		require.True(t, math.IsInf(Log2(NewFloat(-1.0, 64)), -1))
	})
}
