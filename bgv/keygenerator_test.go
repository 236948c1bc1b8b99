package bgv_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pro7ech/vanillabgv/bgv"
	"github.com/Pro7ech/vanillabgv/ring"
)

func TestKeyGenerator(t *testing.T) {

	params, err := bgv.NewParametersFromLiteral(bgv.ExampleParametersLogN4)
	require.NoError(t, err)

	N := params.N()
	QL := params.QMax()

	t.Run(testString("KeyGenerator/PublicKey", params, params.MaxLevel()), func(t *testing.T) {

		pk, sk, debug := bgv.NewKeyGenerator(params, newTestSource(1)).GenKeys()

		for _, v := range sk.Value.Int64() {
			require.True(t, v >= -1 && v <= 1)
		}

		require.True(t, sk.Value.Equal(debug.SecretKey))

		for i := range pk.Value {
			require.Equal(t, N, pk.Value[i].N())
			for j := range pk.Value[i] {
				require.True(t, pk.Value[i][j].Sign() >= 0 && pk.Value[i][j].Cmp(QL) < 0)
			}
		}

		// pk0 + pk1 * sk = t * e mod Q_L
		have := ring.MulNegacyclic(pk.Value[1], sk.Value)
		have.Add(have, pk.Value[0])
		have.CenterMod(have, QL)

		want := ring.NewPoly(N).MulScalar(debug.ErrorSample, params.T())

		require.True(t, have.Equal(want))
	})

	t.Run(testString("KeyGenerator/Deterministic", params, params.MaxLevel()), func(t *testing.T) {

		pk0, sk0, debug0 := bgv.NewKeyGenerator(params, newTestSource(2)).GenKeys()
		pk1, sk1, debug1 := bgv.NewKeyGenerator(params, newTestSource(2)).GenKeys()

		require.True(t, pk0.Equal(pk1))
		require.True(t, sk0.Equal(sk1))
		require.True(t, debug0.Equal(debug1))

		pk2, _, _ := bgv.NewKeyGenerator(params, newTestSource(3)).GenKeys()
		require.False(t, pk0.Equal(pk2))

		pkCopy := pk0.Clone()
		pkCopy.Value[0][0].Add(&pkCopy.Value[0][0], big.NewInt(1))
		require.False(t, pk0.Equal(pkCopy))
	})

	t.Run(testString("KeyGenerator/HammingWeight", params, params.MaxLevel()), func(t *testing.T) {

		pl := bgv.ExampleParametersLogN4
		pl.H = 5

		params, err := bgv.NewParametersFromLiteral(pl)
		require.NoError(t, err)

		sk := bgv.NewKeyGenerator(params, newTestSource(4)).GenSecretKeyNew()

		var weight int
		for _, v := range sk.Value.Int64() {
			if v != 0 {
				weight++
			}
		}

		require.Equal(t, 5, weight)
	})

	t.Run(testString("KeySample", params, params.MaxLevel()), func(t *testing.T) {

		s := bgv.KeySample(newTestSource(5), 1024)
		require.Equal(t, 1024, s.N())

		counts := map[int64]int{}
		for _, v := range s.Int64() {
			counts[v]++
		}

		require.Len(t, counts, 3)
		for _, v := range []int64{-1, 0, 1} {
			require.Greater(t, counts[v], 256)
		}

		require.True(t, s.Equal(bgv.KeySample(newTestSource(5), 1024)))
	})

	t.Run(testString("ErrorSample", params, params.MaxLevel()), func(t *testing.T) {

		e := bgv.ErrorSample(params, newTestSource(6), 1024)
		require.Equal(t, 1024, e.N())
		require.False(t, e.IsZero())

		// 12 sigma
		require.True(t, e.MaxAbs().Cmp(big.NewInt(int64(12*params.Sigma()))) < 0)

		errorFree, err := bgv.NewParametersFromLiteral(bgv.ExampleParametersLogN4ErrorFree)
		require.NoError(t, err)
		require.True(t, bgv.ErrorSample(errorFree, newTestSource(6), 1024).IsZero())
	})
}

func TestMultiplierEquivalence(t *testing.T) {

	pl := bgv.ExampleParametersLogN4

	params, err := bgv.NewParametersFromLiteral(pl)
	require.NoError(t, err)

	pl.NTTMul = true
	paramsNTT, err := bgv.NewParametersFromLiteral(pl)
	require.NoError(t, err)

	require.IsType(t, ring.ConvolutionMultiplier{}, params.Multiplier())
	require.IsType(t, &ring.NTTMultiplier{}, paramsNTT.Multiplier())

	pk, sk, _ := bgv.NewKeyGenerator(params, newTestSource(7)).GenKeys()
	pkNTT, skNTT, _ := bgv.NewKeyGenerator(paramsNTT, newTestSource(7)).GenKeys()

	require.True(t, pk.Equal(pkNTT))
	require.True(t, sk.Equal(skNTT))

	pt, err := bgv.NewEncoder(params).EncodeUint64([]uint64{1, 2, 3, 4})
	require.NoError(t, err)

	ct, err := bgv.NewEncryptor(params, pk, newTestSource(8)).EncryptNew(pt)
	require.NoError(t, err)
	ctNTT, err := bgv.NewEncryptor(paramsNTT, pkNTT, newTestSource(8)).EncryptNew(pt)
	require.NoError(t, err)

	require.True(t, ct.Equal(ctNTT))
}
