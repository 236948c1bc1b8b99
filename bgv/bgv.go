// Package bgv implements the Brakerski-Gentry-Vaikuntanathan (BGV) leveled
// homomorphic encryption scheme over the negacyclic ring Z[X]/(X^N+1), with
// a chain of ciphertext moduli Q_0 | Q_1 | ... | Q_L.
//
// The package supports key generation, public key encryption, decryption,
// homomorphic addition and modulus switching, as well as diagnostics on the
// noise of ciphertexts. It is a pedagogical implementation: it is neither
// constant time nor backed by a cryptographically secure random source.
package bgv

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/Pro7ech/vanillabgv/ring"
	"github.com/Pro7ech/vanillabgv/utils/sampling"
)

var (
	// ErrInvalidParameters is returned when the number-theoretic relations
	// between N, t and the moduli chain cannot be satisfied.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrLevelMismatch is returned when a binary operation is given
	// ciphertexts at different levels.
	ErrLevelMismatch = errors.New("ciphertext level mismatch")

	// ErrLevelFloor is returned when switching the modulus of a ciphertext
	// already at level zero.
	ErrLevelFloor = errors.New("ciphertext is at the lowest level")

	// ErrNoiseBound is returned by the noise diagnostics when the noise
	// of a ciphertext exceeds the decryption bound Q/(2t) - 0.5.
	ErrNoiseBound = errors.New("noise exceeds the decryption bound")

	// ErrMessageTooLong is returned when encoding more than N values.
	ErrMessageTooLong = errors.New("message is longer than the ring degree")
)

// KeySample returns a polynomial of n coefficients sampled uniformly in {-1, 0, 1}.
func KeySample(source *sampling.Source, n int) ring.Poly {
	return mustSampler(source, nil, ring.UniformTernary).ReadNew(n)
}

// ErrorSample returns a polynomial of n coefficients sampled from
// a centered Gaussian of standard deviation params.Sigma(), each
// rounded to the nearest integer.
func ErrorSample(params Parameters, source *sampling.Source, n int) ring.Poly {
	return mustSampler(source, nil, params.Xe()).ReadNew(n)
}

// mustSampler instantiates a sampler from distribution
// parameters that have already been validated.
func mustSampler(source *sampling.Source, modulus *big.Int, X ring.DistributionParameters) ring.Sampler {
	s, err := ring.NewSampler(source, modulus, X)
	if err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot instantiate sampler: %w", err))
	}
	return s
}
