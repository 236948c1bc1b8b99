package ring

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pro7ech/vanillabgv/utils"
)

func TestFindNTTPrime(t *testing.T) {

	t.Run("Smallest", func(t *testing.T) {
		q, err := FindNTTPrime(4, 8)
		require.NoError(t, err)
		require.Equal(t, int64(17), q.Int64())
	})

	for _, numBits := range []int{4, 7, 13, 16, 32, 61, 64, 100, 128} {
		for _, logM := range []int{5, 8, 12, 17, 32} {

			m := uint64(1) << logM

			t.Run(fmt.Sprintf("Congruence/numBits=%d/m=2^%d", numBits, logM), func(t *testing.T) {
				q, err := FindNTTPrime(numBits, m)
				require.NoError(t, err)
				require.True(t, IsPrime(q))
				require.GreaterOrEqual(t, q.BitLen(), numBits)
				require.Equal(t, int64(1), new(big.Int).Mod(q, new(big.Int).SetUint64(m)).Int64())
			})
		}
	}

	t.Run("Degenerate", func(t *testing.T) {
		_, err := FindNTTPrime(0, 8)
		require.ErrorIs(t, err, ErrInvalidModulus)
		_, err = FindNTTPrime(4, 0)
		require.ErrorIs(t, err, ErrInvalidModulus)
	})
}

func TestFindNTTPrimes(t *testing.T) {

	for _, numBits := range []int{4, 13, 30, 60, 128} {
		for _, logM := range []int{5, 11, 32} {

			m := uint64(1) << logM

			t.Run(fmt.Sprintf("Distinct/numBits=%d/m=2^%d", numBits, logM), func(t *testing.T) {

				primes, err := FindNTTPrimes(numBits, m, 5)
				require.NoError(t, err)
				require.Len(t, primes, 5)

				values := make([]string, len(primes))
				for i, q := range primes {
					require.True(t, IsPrime(q))
					require.GreaterOrEqual(t, q.BitLen(), numBits)
					require.Equal(t, int64(1), new(big.Int).Mod(q, new(big.Int).SetUint64(m)).Int64())
					if i > 0 {
						require.Equal(t, 1, q.Cmp(primes[i-1]))
					}
					values[i] = q.String()
				}

				require.True(t, utils.AllDistinct(values))
			})
		}
	}

	t.Run("FirstIsFindNTTPrime", func(t *testing.T) {
		q, err := FindNTTPrime(13, 32)
		require.NoError(t, err)
		primes, err := FindNTTPrimes(13, 32, 2)
		require.NoError(t, err)
		require.Equal(t, 0, q.Cmp(primes[0]))
		require.Equal(t, int64(8353), primes[0].Int64())
	})
}
