package ring

import (
	"fmt"
	"math/rand/v2"

	"github.com/Pro7ech/vanillabgv/utils/sampling"
)

// TernarySampler keeps the state of a polynomial sampler in the ternary distribution.
type TernarySampler struct {
	*sampling.Source
	X Ternary
}

// NewTernarySampler creates a new instance of [TernarySampler] from a [sampling.Source]
// and a ternary distribution parameters (see type [Ternary]).
func NewTernarySampler(source *sampling.Source, X Ternary) (s *TernarySampler, err error) {
	if err = X.Validate(); err != nil {
		return nil, err
	}
	return &TernarySampler{Source: source, X: X}, nil
}

// GetSource returns the underlying [sampling.Source] used by the sampler.
func (s TernarySampler) GetSource() *sampling.Source {
	return s.Source
}

// WithSource returns an instance of the underlying sampler with
// a new [sampling.Source].
// It can be used concurrently with the original sampler.
func (s TernarySampler) WithSource(source *sampling.Source) Sampler {
	return &TernarySampler{Source: source, X: s.X}
}

// Read samples a polynomial into pol.
func (s *TernarySampler) Read(pol Poly) {

	/* #nosec G404: seeded deterministic source */
	r := rand.New(s.Source)

	if s.X.H != 0 {
		s.sampleSparse(r, pol)
	} else {
		s.sampleProba(r, pol)
	}
}

// ReadNew allocates and samples a polynomial of N coefficients.
func (s *TernarySampler) ReadNew(N int) (pol Poly) {
	pol = NewPoly(N)
	s.Read(pol)
	return pol
}

func (s *TernarySampler) sampleProba(r *rand.Rand, pol Poly) {
	P := s.X.P
	for i := range pol {
		if r.Float64() < P {
			pol[i].SetInt64(1 - 2*int64(r.Uint64()&1))
		} else {
			pol[i].SetInt64(0)
		}
	}
}

func (s *TernarySampler) sampleSparse(r *rand.Rand, pol Poly) {

	N := len(pol)

	if s.X.H > N {
		panic(fmt.Errorf("cannot sampleSparse: hamming weight H=%d is larger than N=%d", s.X.H, N))
	}

	for i := range pol {
		pol[i].SetInt64(0)
	}

	for _, i := range r.Perm(N)[:s.X.H] {
		pol[i].SetInt64(1 - 2*int64(r.Uint64()&1))
	}
}
