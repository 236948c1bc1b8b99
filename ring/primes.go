package ring

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidModulus is returned when a modulus does not satisfy
// the number-theoretic relations required by an operation.
var ErrInvalidModulus = errors.New("invalid modulus")

// IsPrime applies the Baillie-PSW primality test on the input.
func IsPrime(q *big.Int) bool {
	return q.ProbablyPrime(20)
}

// NTTFriendlyPrimesGenerator is a struct used to generate
// NTT-friendly primes, i.e. primes of the form m*k + 1.
type NTTFriendlyPrimesGenerator struct {
	m    *big.Int
	next *big.Int
}

// NewNTTFriendlyPrimesGenerator instantiates a new [NTTFriendlyPrimesGenerator]
// that generates, in increasing order, the primes q = 1 mod m with bit-length
// at least numBits.
// The first candidate is m*k+1 with k = ceil((2^{numBits} - 1)/m).
func NewNTTFriendlyPrimesGenerator(numBits int, m uint64) (*NTTFriendlyPrimesGenerator, error) {

	if numBits < 1 {
		return nil, fmt.Errorf("%w: number of bits must be at least 1 but is %d", ErrInvalidModulus, numBits)
	}

	if m == 0 {
		return nil, fmt.Errorf("%w: congruence modulus m cannot be zero", ErrInvalidModulus)
	}

	M := new(big.Int).SetUint64(m)

	// k = ceil((2^numBits - 1) / m)
	k := new(big.Int).Lsh(big.NewInt(1), uint(numBits))
	k.Sub(k, big.NewInt(1))
	k.Add(k, M)
	k.Sub(k, big.NewInt(1))
	k.Quo(k, M)

	next := new(big.Int).Mul(M, k)
	next.Add(next, big.NewInt(1))

	return &NTTFriendlyPrimesGenerator{
		m:    M,
		next: next,
	}, nil
}

// NextUpstreamPrime returns the next NTT-friendly prime.
// The search is not bounded.
func (g *NTTFriendlyPrimesGenerator) NextUpstreamPrime() (q *big.Int) {
	for !IsPrime(g.next) {
		g.next.Add(g.next, g.m)
	}
	q = new(big.Int).Set(g.next)
	g.next.Add(g.next, g.m)
	return
}

// NextUpstreamPrimes returns the next k NTT-friendly primes.
func (g *NTTFriendlyPrimesGenerator) NextUpstreamPrimes(k int) (primes []*big.Int) {
	primes = make([]*big.Int, k)
	for i := range primes {
		primes[i] = g.NextUpstreamPrime()
	}
	return
}

// FindNTTPrime returns the smallest prime q = 1 mod m with
// bit-length at least numBits.
func FindNTTPrime(numBits int, m uint64) (q *big.Int, err error) {
	g, err := NewNTTFriendlyPrimesGenerator(numBits, m)
	if err != nil {
		return nil, err
	}
	return g.NextUpstreamPrime(), nil
}

// FindNTTPrimes returns the qty smallest distinct primes q = 1 mod m
// with bit-length at least numBits, in increasing order.
func FindNTTPrimes(numBits int, m uint64, qty int) (primes []*big.Int, err error) {

	if qty < 0 {
		return nil, fmt.Errorf("%w: number of primes cannot be negative", ErrInvalidModulus)
	}

	g, err := NewNTTFriendlyPrimesGenerator(numBits, m)
	if err != nil {
		return nil, err
	}

	return g.NextUpstreamPrimes(qty), nil
}
