package ring

import (
	"fmt"
	"math/big"

	"github.com/Pro7ech/vanillabgv/utils/sampling"
)

// Sampler is an interface for random polynomial samplers.
// It has a single Read method which takes as argument the polynomial to be
// populated according to the Sampler's distribution.
type Sampler interface {
	GetSource() *sampling.Source
	Read(pol Poly)
	ReadNew(N int) (pol Poly)
	WithSource(source *sampling.Source) Sampler
}

// NewSampler instantiates a new [Sampler] interface from the provided [sampling.Source],
// modulus and [DistributionParameters].
// The modulus is only used by the [Uniform] distribution; [Ternary] and [DiscreteGaussian]
// samplers return signed integers.
func NewSampler(source *sampling.Source, modulus *big.Int, X DistributionParameters) (Sampler, error) {
	switch X := X.(type) {
	case DiscreteGaussian:
		return NewGaussianSampler(source, X)
	case *DiscreteGaussian:
		return NewGaussianSampler(source, *X)
	case Ternary:
		return NewTernarySampler(source, X)
	case *Ternary:
		return NewTernarySampler(source, *X)
	case Uniform, *Uniform:
		return NewUniformSampler(source, modulus)
	default:
		return nil, fmt.Errorf("invalid distribution: want ring.DiscreteGaussian, ring.Ternary or ring.Uniform but have %T", X)
	}
}
