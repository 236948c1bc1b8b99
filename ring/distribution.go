package ring

import (
	"fmt"
	"math"
)

// DistributionParameters is an interface for distribution
// parameters in the ring.
// There are three implementation of this interface:
//   - DiscreteGaussian for sampling polynomials with rounded
//     gaussian coefficient of given standard deviation and bound.
//   - Ternary for sampling polynomials with coefficients in [-1, 1].
//   - Uniform for sampling polynomial with uniformly random
//     coefficients modulo a given modulus.
type DistributionParameters interface {
	Equal(DistributionParameters) bool
	mustBeDist()
}

// DiscreteGaussian represents the parameters of a
// rounded Gaussian distribution with standard
// deviation Sigma. If Bound > 0, samples are
// restricted to [-Bound, Bound].
type DiscreteGaussian struct {
	Sigma float64
	Bound float64 `json:",omitempty"`
}

// Ternary represent the parameters of a distribution with coefficients
// in [-1, 0, 1]. Only one of its field must be set to a non-zero value:
//
//   - If P is set, each coefficient in the polynomial is sampled in [-1, 0, 1]
//     with probabilities [0.5*P, 1-P, 0.5*P]. P = 2/3 is the uniform distribution.
//   - if H is set, the coefficients are sampled uniformly in the set of ternary
//     polynomials with H non-zero coefficients (i.e., of hamming weight H).
type Ternary struct {
	P float64 `json:",omitempty"`
	H int     `json:",omitempty"`
}

// UniformTernary is the uniform distribution over {-1, 0, 1}.
var UniformTernary = Ternary{P: 2.0 / 3.0}

// Uniform represents the parameters of a uniform distribution
// i.e., with coefficients uniformly distributed modulo the
// modulus given to the sampler.
type Uniform struct{}

func (d DiscreteGaussian) Equal(other DistributionParameters) bool {
	switch other := other.(type) {
	case *DiscreteGaussian:
		return d == *other
	case DiscreteGaussian:
		return d == other
	default:
		return false
	}
}

func (d Ternary) Equal(other DistributionParameters) bool {
	switch other := other.(type) {
	case *Ternary:
		return d == *other
	case Ternary:
		return d == other
	default:
		return false
	}
}

func (d Uniform) Equal(other DistributionParameters) bool {
	switch other.(type) {
	case *Uniform, Uniform:
		return true
	default:
		return false
	}
}

func (d DiscreteGaussian) mustBeDist() {}

func (d Ternary) mustBeDist() {}

func (d Uniform) mustBeDist() {}

// Validate returns an error if the distribution parameters are invalid.
func (d DiscreteGaussian) Validate() error {
	if math.IsNaN(d.Sigma) || math.IsInf(d.Sigma, 0) {
		return fmt.Errorf("invalid DiscreteGaussian: Sigma=%f must be finite", d.Sigma)
	}
	if math.IsNaN(d.Bound) || math.IsInf(d.Bound, 0) {
		return fmt.Errorf("invalid DiscreteGaussian: Bound=%f must be finite", d.Bound)
	}
	if d.Sigma < 0 {
		return fmt.Errorf("invalid DiscreteGaussian: Sigma=%f cannot be negative", d.Sigma)
	}
	if d.Bound < 0 {
		return fmt.Errorf("invalid DiscreteGaussian: Bound=%f cannot be negative", d.Bound)
	}
	return nil
}

// Validate returns an error if the distribution parameters are invalid.
func (d Ternary) Validate() error {
	switch {
	case d.P != 0 && d.H == 0:
		if d.P < 0 || d.P > 1 {
			return fmt.Errorf("invalid Ternary: P=%f must be in (0, 1]", d.P)
		}
	case d.P == 0 && d.H != 0:
		if d.H < 0 {
			return fmt.Errorf("invalid Ternary: H=%d cannot be negative", d.H)
		}
	default:
		return fmt.Errorf("invalid Ternary: exactly one of (H, P) should be > 0")
	}
	return nil
}
