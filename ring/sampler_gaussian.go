package ring

import (
	"math"
	"math/big"
	"math/rand/v2"

	"github.com/Pro7ech/vanillabgv/utils/sampling"
)

// GaussianSampler keeps the state of a rounded Gaussian polynomial sampler.
type GaussianSampler struct {
	*sampling.Source
	Xe DiscreteGaussian
}

// NewGaussianSampler creates a new instance of [GaussianSampler] from a [sampling.Source]
// and a [DiscreteGaussian] distribution parameter.
func NewGaussianSampler(source *sampling.Source, Xe DiscreteGaussian) (g *GaussianSampler, err error) {
	if err = Xe.Validate(); err != nil {
		return nil, err
	}
	return &GaussianSampler{Source: source, Xe: Xe}, nil
}

// GetSource returns the underlying [sampling.Source] used by the sampler.
func (g GaussianSampler) GetSource() *sampling.Source {
	return g.Source
}

// WithSource returns an instance of the underlying sampler with
// a new [sampling.Source].
// It can be used concurrently with the original sampler.
func (g GaussianSampler) WithSource(source *sampling.Source) Sampler {
	return &GaussianSampler{Source: source, Xe: g.Xe}
}

// Read samples each coefficient of pol as round(x) with x drawn from
// a centered normal distribution of standard deviation Sigma.
// If Bound > 0, samples with |x| > Bound are rejected.
func (g *GaussianSampler) Read(pol Poly) {

	sigma := g.Xe.Sigma
	bound := g.Xe.Bound

	/* #nosec G404: seeded deterministic source */
	r := rand.New(g.Source)

	var f big.Float

	for i := range pol {

		var v float64
		for {
			v = r.NormFloat64() * sigma
			if bound <= 0 || math.Abs(v) <= bound {
				break
			}
		}

		f.SetFloat64(math.Round(v))
		f.Int(&pol[i])
	}
}

// ReadNew samples a new rounded Gaussian polynomial of N coefficients.
func (g *GaussianSampler) ReadNew(N int) (pol Poly) {
	pol = NewPoly(N)
	g.Read(pol)
	return pol
}
