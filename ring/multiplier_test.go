package ring

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// schoolbookNegacyclic is the reference O(N^2) product in Z[X]/(X^N+1).
func schoolbookNegacyclic(p1, p2 Poly) (p3 Poly) {
	N := len(p1)
	p3 = NewPoly(N)
	tmp := new(big.Int)
	for i := range p1 {
		for j := range p2 {
			tmp.Mul(&p1[i], &p2[j])
			if k := i + j; k < N {
				p3[k].Add(&p3[k], tmp)
			} else {
				p3[k-N].Sub(&p3[k-N], tmp)
			}
		}
	}
	return
}

func randomPoly(r *rand.Rand, N int, bound *big.Int) (p Poly) {
	p = NewPoly(N)
	twice := new(big.Int).Lsh(bound, 1)
	twice.Add(twice, big.NewInt(1))
	for i := range p {
		// [-bound, bound]
		p[i].Rand(r, twice)
		p[i].Sub(&p[i], bound)
	}
	return
}

func TestMulNegacyclic(t *testing.T) {

	/* #nosec G404 */
	r := rand.New(rand.NewSource(0x42))

	t.Run("Monomials", func(t *testing.T) {
		// X^{N-1} * X = X^N = -1
		N := 8
		a := NewPoly(N)
		b := NewPoly(N)
		a[N-1].SetInt64(1)
		b[1].SetInt64(1)
		c := MulNegacyclic(a, b)
		require.True(t, c.Equal(NewPolyFromInt64([]int64{-1, 0, 0, 0, 0, 0, 0, 0})))
	})

	for _, N := range []int{1, 2, 4, 16, 64} {
		for _, logBound := range []uint{1, 8, 40, 130} {

			bound := new(big.Int).Lsh(big.NewInt(1), logBound)

			t.Run(fmt.Sprintf("Convolution/N=%d/logBound=%d", N, logBound), func(t *testing.T) {
				for range 4 {
					p1 := randomPoly(r, N, bound)
					p2 := randomPoly(r, N, bound)
					want := schoolbookNegacyclic(p1, p2)
					require.True(t, MulNegacyclic(p1, p2).Equal(want))
					require.True(t, ConvolutionMultiplier{Workers: 1}.MulNegacyclic(p1, p2).Equal(want))
				}
			})
		}
	}

	t.Run("OperandsUnchanged", func(t *testing.T) {
		p1 := randomPoly(r, 16, big.NewInt(100))
		p2 := randomPoly(r, 16, big.NewInt(100))
		c1, c2 := p1.Clone(), p2.Clone()
		MulNegacyclic(p1, p2)
		require.True(t, p1.Equal(c1))
		require.True(t, p2.Equal(c2))
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		require.Panics(t, func() { MulNegacyclic(NewPoly(4), NewPoly(8)) })
	})
}

func TestNTTMultiplier(t *testing.T) {

	/* #nosec G404 */
	r := rand.New(rand.NewSource(7))

	for _, N := range []int{2, 16, 128} {

		m, err := NewNTTMultiplier(N, 96)
		require.NoError(t, err)

		t.Run(fmt.Sprintf("N=%d/InRange", N), func(t *testing.T) {
			bound := new(big.Int).Lsh(big.NewInt(1), 40)
			for range 4 {
				p1 := randomPoly(r, N, bound)
				p2 := randomPoly(r, N, bound)
				require.True(t, m.MulNegacyclic(p1, p2).Equal(MulNegacyclic(p1, p2)))
			}
		})

		t.Run(fmt.Sprintf("N=%d/Fallback", N), func(t *testing.T) {
			bound := new(big.Int).Lsh(big.NewInt(1), 80)
			p1 := randomPoly(r, N, bound)
			p2 := randomPoly(r, N, bound)
			require.True(t, m.MulNegacyclic(p1, p2).Equal(MulNegacyclic(p1, p2)))
		})
	}

	t.Run("InvalidBound", func(t *testing.T) {
		_, err := NewNTTMultiplier(16, 0)
		require.ErrorIs(t, err, ErrInvalidModulus)
	})

	t.Run("InvalidDegree", func(t *testing.T) {
		_, err := NewNTTMultiplier(12, 64)
		require.ErrorIs(t, err, ErrInvalidModulus)
	})
}
