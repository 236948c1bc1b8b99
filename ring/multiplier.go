package ring

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/Pro7ech/vanillabgv/utils/concurrency"
)

// Multiplier is an interface for the negacyclic product in Z[X]/(X^N+1).
// All implementations return the same result for the same inputs.
type Multiplier interface {
	MulNegacyclic(p1, p2 Poly) (p3 Poly)
}

// MulNegacyclic returns p1 * p2 mod (X^N+1), computed with the
// [ConvolutionMultiplier] using all available CPUs.
func MulNegacyclic(p1, p2 Poly) (p3 Poly) {
	return ConvolutionMultiplier{}.MulNegacyclic(p1, p2)
}

// ConvolutionMultiplier computes the negacyclic product through a cyclic
// convolution of length 2N: each operand p is mapped to (p || -p), which
// represents p * (1 - X^N) in Z[X]/(X^{2N} - 1). The cyclic product of
// two such preimages is 2 * (p1*p2 mod X^N+1) * (1 - X^N), thus the negacyclic
// product is recovered as (c[:N] - c[N:]) / 4.
type ConvolutionMultiplier struct {
	// Workers is the number of goroutines used to compute the
	// convolution. If <= 0, defaults to [concurrency.Workers].
	Workers int
}

// MulNegacyclic returns p1 * p2 mod (X^N+1).
func (m ConvolutionMultiplier) MulNegacyclic(p1, p2 Poly) (p3 Poly) {

	N := len(p1)

	if len(p2) != N {
		panic(fmt.Errorf("cannot MulNegacyclic: len(p1)=%d != len(p2)=%d", N, len(p2)))
	}

	a := preimageNegacyclic(p1)

	// (p2 || -p2 || p2 || -p2): the valid window of the linear
	// convolution of a with this sequence is the cyclic convolution.
	b := preimageNegacyclic(p2)
	b = append(b, b.Clone()...)

	c := NewPoly(2 * N)

	workers := m.Workers
	if workers <= 0 {
		workers = concurrency.Workers()
	}

	scratch := make([]*big.Int, workers)
	for i := range scratch {
		scratch[i] = new(big.Int)
	}

	if err := concurrency.ParallelFor(scratch, 2*N, func(tmp *big.Int, start, end int) error {
		for k := start; k < end; k++ {
			for j := range a {
				if a[j].Sign() != 0 {
					c[k].Add(&c[k], tmp.Mul(&a[j], &b[k+2*N-j]))
				}
			}
		}
		return nil
	}); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	p3 = NewPoly(N)

	four := big.NewInt(4)

	if _, err := p3.Sub(c[:N], c[N:]).QuoExact(p3, four); err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot MulNegacyclic: invalid convolution: %w", err))
	}

	return
}

// preimageNegacyclic returns (p || -p).
func preimageNegacyclic(p Poly) (q Poly) {
	N := len(p)
	q = NewPoly(2 * N)
	q[:N].Set(p)
	q[N:].Neg(p)
	return
}

// NTTMultiplier computes the negacyclic product by lifting the operands
// to an auxiliary NTT-friendly prime P large enough to hold the exact
// integer result, and multiplying them in the NTT domain.
// Operands whose product may not fit are delegated to the [ConvolutionMultiplier].
type NTTMultiplier struct {
	*Ring
	// LogBound is such that N * |p1|_inf * |p2|_inf < 2^{LogBound}
	// is guaranteed to be computed in the NTT domain.
	LogBound int
	fallback ConvolutionMultiplier
}

// NewNTTMultiplier instantiates a new [NTTMultiplier] for the ring degree N,
// supporting products whose coefficients are bounded in absolute value by 2^{logBound}.
func NewNTTMultiplier(N, logBound int) (m *NTTMultiplier, err error) {

	if logBound < 1 {
		return nil, fmt.Errorf("%w: logBound must be at least 1 but is %d", ErrInvalidModulus, logBound)
	}

	// P > 2^{logBound+1} so that centered residues mod P are exact.
	var P *big.Int
	if P, err = FindNTTPrime(logBound+1, uint64(N)<<1); err != nil {
		return
	}

	var r *Ring
	if r, err = NewRing(N, P); err != nil {
		return
	}

	if err = r.GenNTTTable(); err != nil {
		return
	}

	return &NTTMultiplier{Ring: r, LogBound: logBound}, nil
}

// MulNegacyclic returns p1 * p2 mod (X^N+1).
func (m NTTMultiplier) MulNegacyclic(p1, p2 Poly) (p3 Poly) {

	if len(p1) != m.N || len(p2) != m.N {
		panic(fmt.Errorf("cannot MulNegacyclic: len(p1)=%d and len(p2)=%d must be equal to N=%d", len(p1), len(p2), m.N))
	}

	if p1.MaxAbs().BitLen()+p2.MaxAbs().BitLen()+bits.Len64(uint64(m.N)) > m.LogBound {
		return m.fallback.MulNegacyclic(p1, p2)
	}

	P := m.Modulus

	a := NewPoly(m.N)
	b := NewPoly(m.N)

	m.NTT(a.Mod(p1, P), a)
	m.NTT(b.Mod(p2, P), b)

	for i := range a {
		a[i].Mul(&a[i], &b[i])
		a[i].Mod(&a[i], P)
	}

	m.INTT(a, a)

	return a.CenterMod(a, P)
}
