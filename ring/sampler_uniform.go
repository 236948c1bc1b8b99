package ring

import (
	"fmt"
	"math/big"

	"github.com/Pro7ech/vanillabgv/utils/bignum"
	"github.com/Pro7ech/vanillabgv/utils/sampling"
)

// UniformSampler wraps a [sampling.Source] and represents
// the state of a sampler of uniform polynomials modulo Modulus.
type UniformSampler struct {
	*sampling.Source
	Modulus *big.Int
}

// NewUniformSampler creates a new instance of [UniformSampler] from a
// [sampling.Source] and a modulus.
func NewUniformSampler(source *sampling.Source, modulus *big.Int) (u *UniformSampler, err error) {
	if modulus == nil || modulus.Sign() < 1 {
		return nil, fmt.Errorf("%w: uniform sampler modulus must be strictly positive", ErrInvalidModulus)
	}
	return &UniformSampler{Source: source, Modulus: new(big.Int).Set(modulus)}, nil
}

// GetSource returns the underlying [sampling.Source] used by the sampler.
func (u UniformSampler) GetSource() *sampling.Source {
	return u.Source
}

// WithSource returns an instance of the underlying sampler with
// a new [sampling.Source].
// It can be used concurrently with the original sampler.
func (u UniformSampler) WithSource(source *sampling.Source) Sampler {
	return &UniformSampler{Source: source, Modulus: u.Modulus}
}

// Read samples the coefficients of pol uniformly in [0, Modulus).
func (u *UniformSampler) Read(pol Poly) {
	for i := range pol {
		pol[i].Set(bignum.RandInt(u.Source, u.Modulus))
	}
}

// ReadNew generates a new polynomial of N coefficients following
// a uniform distribution over [0, Modulus).
func (u *UniformSampler) ReadNew(N int) (pol Poly) {
	pol = NewPoly(N)
	u.Read(pol)
	return
}
