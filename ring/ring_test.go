package ring

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func testString(opname string, N int, modulus *big.Int) string {
	return fmt.Sprintf("%s/N=%d/logQ=%d", opname, N, modulus.BitLen())
}

func TestRing(t *testing.T) {

	/* #nosec G404 */
	r := rand.New(rand.NewSource(0))

	for _, logN := range []int{1, 3, 6, 10} {
		for _, logQ := range []int{17, 60, 130} {

			N := 1 << logN

			Q, err := FindNTTPrime(logQ, uint64(N)<<1)
			require.NoError(t, err)

			ring, err := NewRing(N, Q)
			require.NoError(t, err)
			require.NoError(t, ring.GenNTTTable())
			require.Equal(t, logN, ring.LogN())

			t.Run(testString("PrimitiveRoot", N, Q), func(t *testing.T) {
				psi := ring.PrimitiveRoot
				one := big.NewInt(1)
				require.Equal(t, 0, new(big.Int).Exp(psi, big.NewInt(int64(2*N)), Q).Cmp(one))
				require.Equal(t, 0, new(big.Int).Exp(psi, big.NewInt(int64(N)), Q).Cmp(new(big.Int).Sub(Q, one)))
			})

			t.Run(testString("NTT/INTT", N, Q), func(t *testing.T) {
				p := randomPoly(r, N, Q)
				want := p.Clone().Mod(p, Q)

				pNTT := ring.NewPoly()
				ring.NTT(p, pNTT)
				ring.INTT(pNTT, pNTT)

				require.True(t, pNTT.Equal(want))
			})

			t.Run(testString("NTT/Evaluation", N, Q), func(t *testing.T) {
				// The NTT evaluates p at the odd powers of psi.
				p := randomPoly(r, N, Q)
				p.Mod(p, Q)

				pNTT := ring.NewPoly()
				ring.NTT(p, pNTT)

				evals := map[string]bool{}
				for _, v := range pNTT {
					evals[v.String()] = true
				}

				x := new(big.Int).Set(ring.PrimitiveRoot)
				psi2 := new(big.Int).Exp(ring.PrimitiveRoot, big.NewInt(2), Q)
				for i := 0; i < N; i++ {
					require.True(t, evals[horner(p, x, Q).String()])
					x.Mul(x, psi2).Mod(x, Q)
				}
			})

			t.Run(testString("NTT/Product", N, Q), func(t *testing.T) {
				bound := big.NewInt(1 << 8)
				p1 := randomPoly(r, N, bound)
				p2 := randomPoly(r, N, bound)

				want := MulNegacyclic(p1, p2)
				want.Mod(want, Q)

				a := ring.NewPoly()
				b := ring.NewPoly()
				ring.NTT(p1, a)
				ring.NTT(p2, b)
				for i := range a {
					a[i].Mul(&a[i], &b[i]).Mod(&a[i], Q)
				}
				ring.INTT(a, a)

				require.True(t, a.Equal(want))
			})
		}
	}
}

func horner(p Poly, x, Q *big.Int) (y *big.Int) {
	y = new(big.Int)
	for i := len(p) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, &p[i])
		y.Mod(y, Q)
	}
	return
}

func TestRingErrors(t *testing.T) {

	t.Run("NotPowerOfTwo", func(t *testing.T) {
		_, err := NewRing(12, big.NewInt(97))
		require.ErrorIs(t, err, ErrInvalidModulus)
	})

	t.Run("ModulusTooSmall", func(t *testing.T) {
		_, err := NewRing(16, big.NewInt(1))
		require.ErrorIs(t, err, ErrInvalidModulus)
	})

	t.Run("NotPrime", func(t *testing.T) {
		ring, err := NewRing(4, big.NewInt(33))
		require.NoError(t, err)
		require.ErrorIs(t, ring.GenNTTTable(), ErrInvalidModulus)
	})

	t.Run("NotNTTFriendly", func(t *testing.T) {
		// 19 != 1 mod 8
		ring, err := NewRing(4, big.NewInt(19))
		require.NoError(t, err)
		require.ErrorIs(t, ring.GenNTTTable(), ErrInvalidModulus)
	})

	t.Run("PrimitiveNthRoot", func(t *testing.T) {
		_, err := PrimitiveNthRoot(big.NewInt(17), 6)
		require.ErrorIs(t, err, ErrInvalidModulus)
		_, err = PrimitiveNthRoot(big.NewInt(19), 8)
		require.ErrorIs(t, err, ErrInvalidModulus)
		root, err := PrimitiveNthRoot(big.NewInt(17), 16)
		require.NoError(t, err)
		// 3 is the smallest non-residue mod 17 and a generator.
		require.Equal(t, int64(3), root.Int64())
	})
}
