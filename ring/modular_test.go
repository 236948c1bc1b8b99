package ring

import (
	"fmt"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModInverse(t *testing.T) {

	for numBits := 7; numBits <= 16; numBits++ {

		p, err := FindNTTPrime(numBits, 2)
		require.NoError(t, err)

		t.Run(fmt.Sprintf("Prime=%s", p), func(t *testing.T) {
			x := new(big.Int)
			tmp := new(big.Int)
			for i := int64(1); i < p.Int64(); i++ {
				x.SetInt64(i)
				inv, err := ModInverse(x, p)
				require.NoError(t, err)
				require.Equal(t, int64(1), tmp.Mod(tmp.Mul(inv, x), p).Int64(), "x=%d", i)
			}
		})
	}

	t.Run("NotInvertible", func(t *testing.T) {
		_, err := ModInverse(big.NewInt(6), big.NewInt(9))
		require.ErrorIs(t, err, ErrInvalidModulus)
		_, err = ModInverse(big.NewInt(0), big.NewInt(17))
		require.ErrorIs(t, err, ErrInvalidModulus)
	})

	t.Run("Negative", func(t *testing.T) {
		inv, err := ModInverse(big.NewInt(-1), big.NewInt(17))
		require.NoError(t, err)
		require.Equal(t, int64(16), inv.Int64())
	})
}

func TestRoundToNearestMultiple(t *testing.T) {

	r := rand.New(rand.NewPCG(1, 2))

	check := func(t *testing.T, a *big.Rat, b *big.Int) {
		m := RoundToNearestMultiple(a, b)

		require.Equal(t, 0, new(big.Int).Mod(m, b).Sign())

		dist := func(x *big.Int) *big.Rat {
			d := new(big.Rat).Sub(new(big.Rat).SetInt(x), a)
			return d.Abs(d)
		}

		d := dist(m)
		require.True(t, d.Cmp(dist(new(big.Int).Add(m, b))) <= 0)
		require.True(t, d.Cmp(dist(new(big.Int).Sub(m, b))) <= 0)
	}

	t.Run("Random", func(t *testing.T) {
		for i := 0; i < 1024; i++ {
			a := new(big.Rat).SetFloat64(1 + 99*r.Float64())
			if r.IntN(2) == 0 {
				a.Neg(a)
			}
			check(t, a, big.NewInt(int64(1+r.IntN(100))))
		}
	})

	t.Run("Ties", func(t *testing.T) {
		check(t, big.NewRat(5, 1), big.NewInt(2))
		check(t, big.NewRat(-5, 1), big.NewInt(2))
		check(t, big.NewRat(3, 2), big.NewInt(1))
	})

	t.Run("Exact", func(t *testing.T) {
		require.Equal(t, int64(21), RoundToNearestMultiple(big.NewRat(22, 1), big.NewInt(7)).Int64())
		require.Equal(t, int64(-21), RoundToNearestMultiple(big.NewRat(-22, 1), big.NewInt(7)).Int64())
		require.Equal(t, int64(0), RoundToNearestMultiple(big.NewRat(1, 3), big.NewInt(1)).Int64())
	})
}

func TestSignedHalfRange(t *testing.T) {

	for _, modulus := range []int64{2, 7, 8, 257} {

		m := big.NewInt(modulus)

		t.Run(fmt.Sprintf("Modulus=%d", modulus), func(t *testing.T) {

			half := new(big.Rat).SetFrac(m, big.NewInt(2))

			y := new(big.Int)
			z := new(big.Int)

			for x := -3 * modulus; x <= 3*modulus; x++ {

				X := big.NewInt(x)

				ToSignedHalfRange(X, m, y)

				yr := new(big.Rat).SetInt(y)
				require.True(t, yr.Cmp(new(big.Rat).Neg(half)) > 0, "x=%d y=%s", x, y)
				require.True(t, yr.Cmp(half) <= 0, "x=%d y=%s", x, y)

				FromSignedHalfRange(y, m, z)
				require.Equal(t, 0, z.Cmp(new(big.Int).Mod(X, m)))
				require.True(t, z.Sign() >= 0 && z.Cmp(m) < 0)
			}
		})
	}
}
