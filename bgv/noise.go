package bgv

import (
	"fmt"
	"math/big"

	"github.com/montanaflynn/stats"

	"github.com/Pro7ech/vanillabgv/ring"
	"github.com/Pro7ech/vanillabgv/utils/bignum"
)

// FreshNoise recomputes the noise u*e + e1*sk + e0 of a fresh ciphertext from the
// [DebugData] of the public key and the [EncryptionTrace] of the encryption.
// The phase of the ciphertext is equal to pt + t * FreshNoise.
func FreshNoise(params Parameters, debug *DebugData, trace *EncryptionTrace) (noise ring.Poly) {
	noise = params.mul(trace.U, debug.ErrorSample)
	noise.Add(noise, params.mul(trace.E1, debug.SecretKey))
	return noise.Add(noise, trace.E0)
}

// CheckFreshNoise returns an error wrapping [ErrNoiseBound] if the infinity norm of
// [FreshNoise] is not strictly smaller than [Parameters.NoiseBound] at level L.
// Such an error indicates that the parameters are misconfigured.
func CheckFreshNoise(params Parameters, debug *DebugData, trace *EncryptionTrace) (err error) {

	norm := FreshNoise(params, debug, trace).MaxAbs()

	if bound := params.NoiseBound(params.MaxLevel()); new(big.Float).SetInt(norm).Cmp(bound) >= 0 {
		return fmt.Errorf("%w: |noise|=%s >= Q/(2t) - 0.5 = %s", ErrNoiseBound, norm, bound.Text('f', 1))
	}

	return
}

// ErrorPoly returns the noise E of a ciphertext encrypting the plaintext pt, i.e.
// the polynomial such that [a0 + a1*sk]_{Q_i} = [pt * C_i^{-1}]_t + t * E, where
// C_i is the [Parameters.LevelCorrection] at the level i of the ciphertext.
func ErrorPoly(params Parameters, ct *Ciphertext, pt *Plaintext, sk *SecretKey) (e ring.Poly, err error) {

	if e, err = phase(params, ct, sk); err != nil {
		return
	}

	t := params.t

	m := pt.Value.Clone()

	if ct.Level != params.MaxLevel() {
		var cInv *big.Int
		if cInv, err = ring.ModInverse(params.LevelCorrection(ct.Level), t); err != nil {
			// Sanity check, this error should not happen.
			panic(err)
		}
		m.MulScalar(m, cInv)
	}

	m.CenterMod(m, t)

	if _, err = e.Sub(e, m).QuoExact(e, t); err != nil {
		return nil, fmt.Errorf("phase minus plaintext is not a multiple of t: %w", err)
	}

	return
}

// ExtractErrorMagnitude returns the infinity norm of the noise of a ciphertext encrypting
// the plaintext pt. The ciphertext decrypts correctly as long as it is strictly smaller
// than [Parameters.NoiseBound] at the level of the ciphertext.
func ExtractErrorMagnitude(params Parameters, ct *Ciphertext, pt *Plaintext, sk *SecretKey) (*big.Int, error) {
	e, err := ErrorPoly(params, ct, pt, sk)
	if err != nil {
		return nil, fmt.Errorf("cannot ExtractErrorMagnitude: %w", err)
	}
	return e.MaxAbs(), nil
}

// NoiseDistribution is a struct storing statistics about the
// coefficients of the noise of a ciphertext.
type NoiseDistribution struct {
	Mean     float64
	StdDev   float64
	Max      *big.Int
	LogMax   float64
	Level    int
	LogBound float64 // log2(Q_level/(2t) - 0.5)
}

func (n NoiseDistribution) String() string {
	return fmt.Sprintf("level=%d mean=%.3f std=%.3f log2(max)=%.3f log2(bound)=%.3f", n.Level, n.Mean, n.StdDev, n.LogMax, n.LogBound)
}

// NoiseStats returns the [NoiseDistribution] of the noise of a ciphertext encrypting the plaintext pt.
func NoiseStats(params Parameters, ct *Ciphertext, pt *Plaintext, sk *SecretKey) (dist NoiseDistribution, err error) {

	var e ring.Poly
	if e, err = ErrorPoly(params, ct, pt, sk); err != nil {
		return dist, fmt.Errorf("cannot NoiseStats: %w", err)
	}

	values := make(stats.Float64Data, len(e))
	var f big.Float
	for i := range e {
		values[i], _ = f.SetInt(&e[i]).Float64()
	}

	if dist.Mean, err = stats.Mean(values); err != nil {
		return dist, fmt.Errorf("cannot NoiseStats: %w", err)
	}

	if dist.StdDev, err = stats.StandardDeviation(values); err != nil {
		return dist, fmt.Errorf("cannot NoiseStats: %w", err)
	}

	dist.Max = e.MaxAbs()
	dist.LogMax = bignum.Log2Int(dist.Max)
	dist.Level = ct.Level
	dist.LogBound = params.LogNoiseBound(ct.Level)

	return
}

// NoiseBudget returns log2(Q_i/(2t) - 0.5) - log2(|E|), the number of bits by which the
// noise of a ciphertext at level i encrypting pt can still grow before decryption fails.
// A noise-free ciphertext has an infinite budget.
func NoiseBudget(params Parameters, ct *Ciphertext, pt *Plaintext, sk *SecretKey) (float64, error) {
	norm, err := ExtractErrorMagnitude(params, ct, pt, sk)
	if err != nil {
		return 0, fmt.Errorf("cannot NoiseBudget: %w", err)
	}
	return params.LogNoiseBound(ct.Level) - bignum.Log2Int(norm), nil
}
