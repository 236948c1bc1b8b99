package bgv

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/google/go-cmp/cmp"

	"github.com/Pro7ech/vanillabgv/ring"
	"github.com/Pro7ech/vanillabgv/utils"
	"github.com/Pro7ech/vanillabgv/utils/bignum"
)

// MaxLogN is the log2 of the largest supported ring degree.
const MaxLogN = 17

// Parameters represents a parameter set for the BGV cryptosystem. Its fields are private and
// immutable. See [ParametersLiteral] for user-specified parameters.
type Parameters struct {
	logN       int
	logT       int
	logQi      int
	t          *big.Int
	qi         []*big.Int
	q          []*big.Int
	xs         ring.Ternary
	xe         ring.DiscreteGaussian
	nttMul     bool
	ringT      *ring.Ring
	multiplier ring.Multiplier
}

// NewParametersFromLiteral instantiate a set of BGV parameters from a [ParametersLiteral] specification.
// It returns the empty parameters Parameters{} and a non-nil error wrapping [ErrInvalidParameters]
// if the specified parameters are invalid.
//
// The plaintext modulus t and the primes q_0, ..., q_L must be primes equal to 1 mod 2N, the
// q_j must be pairwise distinct with non-decreasing bit-size and every modulus of the chain
// Q_i = q_0 * ... * q_i must be coprime with and larger than t.
func NewParametersFromLiteral(pl ParametersLiteral) (p Parameters, err error) {

	if pl.LogN < 1 || pl.LogN > MaxLogN {
		return Parameters{}, fmt.Errorf("%w: LogN=%d must be in [1, %d]", ErrInvalidParameters, pl.LogN, MaxLogN)
	}

	N := 1 << pl.LogN
	NthRoot := uint64(N) << 1

	var t *big.Int
	if t, err = genPlaintextModulus(pl, NthRoot); err != nil {
		return Parameters{}, err
	}

	var qi []*big.Int
	if qi, err = genModuliChain(pl, NthRoot); err != nil {
		return Parameters{}, err
	}

	if err = checkNTTFriendly("t", t, NthRoot); err != nil {
		return Parameters{}, err
	}

	for j := range qi {
		if err = checkNTTFriendly(fmt.Sprintf("q[%d]", j), qi[j], NthRoot); err != nil {
			return Parameters{}, err
		}
		if j > 0 && qi[j].BitLen() < qi[j-1].BitLen() {
			return Parameters{}, fmt.Errorf("%w: q[%d] has fewer bits than q[%d]", ErrInvalidParameters, j, j-1)
		}
	}

	qStr := make([]string, len(qi))
	for j := range qi {
		qStr[j] = qi[j].String()
	}

	if !utils.AllDistinct(qStr) {
		return Parameters{}, fmt.Errorf("%w: primes of the moduli chain must be distinct", ErrInvalidParameters)
	}

	q := make([]*big.Int, len(qi))
	gcd := new(big.Int)
	for i := range qi {

		if i == 0 {
			q[i] = new(big.Int).Set(qi[i])
		} else {
			q[i] = new(big.Int).Mul(q[i-1], qi[i])
		}

		if q[i].Cmp(t) < 1 {
			return Parameters{}, fmt.Errorf("%w: Q[%d]=%s must be larger than t=%s", ErrInvalidParameters, i, q[i], t)
		}

		if gcd.GCD(nil, nil, q[i], t).Cmp(big.NewInt(1)) != 0 {
			return Parameters{}, fmt.Errorf("%w: gcd(Q[%d], t) = %s != 1", ErrInvalidParameters, i, gcd)
		}
	}

	xe := ring.DiscreteGaussian{Sigma: pl.Sigma, Bound: pl.Bound}
	if err = xe.Validate(); err != nil {
		return Parameters{}, fmt.Errorf("%w: %w", ErrInvalidParameters, err)
	}

	xs := ring.UniformTernary
	if pl.H != 0 {
		if pl.H < 0 || pl.H > N {
			return Parameters{}, fmt.Errorf("%w: secret Hamming weight H=%d must be in [0, %d]", ErrInvalidParameters, pl.H, N)
		}
		xs = ring.Ternary{H: pl.H}
	}

	var ringT *ring.Ring
	if ringT, err = ring.NewRing(N, t); err != nil {
		return Parameters{}, fmt.Errorf("%w: %w", ErrInvalidParameters, err)
	}

	if err = ringT.GenNTTTable(); err != nil {
		return Parameters{}, fmt.Errorf("%w: %w", ErrInvalidParameters, err)
	}

	var multiplier ring.Multiplier = ring.ConvolutionMultiplier{}
	if pl.NTTMul {
		// Products of two polynomials reduced modulo Q_L.
		logBound := 2*q[len(q)-1].BitLen() + pl.LogN + 1
		var m *ring.NTTMultiplier
		if m, err = ring.NewNTTMultiplier(N, logBound); err != nil {
			return Parameters{}, fmt.Errorf("%w: %w", ErrInvalidParameters, err)
		}
		multiplier = m
	}

	return Parameters{
		logN:       pl.LogN,
		logT:       pl.LogT,
		logQi:      pl.LogQi,
		t:          t,
		qi:         qi,
		q:          q,
		xs:         xs,
		xe:         xe,
		nttMul:     pl.NTTMul,
		ringT:      ringT,
		multiplier: multiplier,
	}, nil
}

func genPlaintextModulus(pl ParametersLiteral, NthRoot uint64) (t *big.Int, err error) {

	if pl.T != 0 {
		return new(big.Int).SetUint64(pl.T), nil
	}

	if pl.LogT < 1 {
		return nil, fmt.Errorf("%w: either T or LogT must be set", ErrInvalidParameters)
	}

	if t, err = ring.FindNTTPrime(pl.LogT, NthRoot); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameters, err)
	}

	return
}

func genModuliChain(pl ParametersLiteral, NthRoot uint64) (qi []*big.Int, err error) {

	if len(pl.Qi) != 0 {
		qi = make([]*big.Int, len(pl.Qi))
		for i := range qi {
			qi[i] = new(big.Int).SetUint64(pl.Qi[i])
		}
		return
	}

	if pl.LogQi < 1 || pl.QCount < 1 {
		return nil, fmt.Errorf("%w: either Qi or (LogQi, QCount) must be set", ErrInvalidParameters)
	}

	if qi, err = ring.FindNTTPrimes(pl.LogQi, NthRoot, pl.QCount); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameters, err)
	}

	return
}

func checkNTTFriendly(name string, q *big.Int, NthRoot uint64) error {

	if !ring.IsPrime(q) {
		return fmt.Errorf("%w: %s=%s is not prime", ErrInvalidParameters, name, q)
	}

	if new(big.Int).Mod(q, new(big.Int).SetUint64(NthRoot)).Cmp(big.NewInt(1)) != 0 {
		return fmt.Errorf("%w: %s=%s != 1 mod 2N=%d", ErrInvalidParameters, name, q, NthRoot)
	}

	return nil
}

// ParametersLiteral returns the [ParametersLiteral] of the target Parameters.
// Moduli that fit on 64 bits are given explicitly, the others by their bit-size.
func (p Parameters) ParametersLiteral() (pl ParametersLiteral) {

	pl = ParametersLiteral{
		LogN:   p.logN,
		Sigma:  p.xe.Sigma,
		Bound:  p.xe.Bound,
		H:      p.xs.H,
		NTTMul: p.nttMul,
	}

	if p.t.IsUint64() {
		pl.T = p.t.Uint64()
	} else {
		pl.LogT = p.logT
	}

	pl.Qi = make([]uint64, len(p.qi))
	for i := range p.qi {
		if !p.qi[i].IsUint64() {
			pl.Qi = nil
			pl.LogQi = p.logQi
			pl.QCount = len(p.qi)
			break
		}
		pl.Qi[i] = p.qi[i].Uint64()
	}

	return
}

// N returns the ring degree.
func (p Parameters) N() int {
	return 1 << p.logN
}

// LogN returns log2(N).
func (p Parameters) LogN() int {
	return p.logN
}

// T returns the plaintext modulus t.
func (p Parameters) T() *big.Int {
	return new(big.Int).Set(p.t)
}

// LogT returns log2(t).
func (p Parameters) LogT() float64 {
	return bignum.Log2Int(p.t)
}

// Qi returns the i-th prime q_i of the moduli chain.
func (p Parameters) Qi(i int) *big.Int {
	return new(big.Int).Set(p.qi[i])
}

// Q returns the modulus Q_level = q_0 * ... * q_level.
func (p Parameters) Q(level int) *big.Int {
	return new(big.Int).Set(p.q[level])
}

// QMax returns the largest modulus of the chain Q_L.
func (p Parameters) QMax() *big.Int {
	return p.Q(p.MaxLevel())
}

// LogQ returns log2(Q_L).
func (p Parameters) LogQ() float64 {
	return bignum.Log2Int(p.q[p.MaxLevel()])
}

// MaxLevel returns L, the level of freshly encrypted ciphertexts.
func (p Parameters) MaxLevel() int {
	return len(p.q) - 1
}

// QCount returns the number of primes of the moduli chain.
func (p Parameters) QCount() int {
	return len(p.qi)
}

// Sigma returns the standard deviation of the error distribution.
func (p Parameters) Sigma() float64 {
	return p.xe.Sigma
}

// Xs returns the distribution of the secret.
func (p Parameters) Xs() ring.Ternary {
	return p.xs
}

// Xe returns the distribution of the error.
func (p Parameters) Xe() ring.DiscreteGaussian {
	return p.xe
}

// RingT returns the [ring.Ring] of the plaintext space, used by the encoding.
func (p Parameters) RingT() *ring.Ring {
	return p.ringT
}

// Multiplier returns the [ring.Multiplier] used for negacyclic products.
func (p Parameters) Multiplier() ring.Multiplier {
	return p.multiplier
}

// NoiseBound returns Q_level/(2t) - 0.5, the magnitude that the noise of a
// ciphertext at the given level must stay strictly below for it to decrypt correctly.
func (p Parameters) NoiseBound(level int) *big.Float {
	bound := bignum.NewFloat(p.q[level], bignum.DefaultPrecision)
	bound.Quo(bound, bignum.NewFloat(new(big.Int).Lsh(p.t, 1), bignum.DefaultPrecision))
	return bound.Sub(bound, bignum.NewFloat(0.5, bignum.DefaultPrecision))
}

// LogNoiseBound returns log2(Q_level/(2t) - 0.5).
func (p Parameters) LogNoiseBound(level int) float64 {
	return bignum.Log2(p.NoiseBound(level))
}

// LevelCorrection returns [Q_L/Q_level]_t, the factor by which the plaintext
// of a ciphertext switched down from level L to the given level has been divided.
func (p Parameters) LevelCorrection(level int) *big.Int {
	c := big.NewInt(1)
	for j := level + 1; j <= p.MaxLevel(); j++ {
		c.Mul(c, p.qi[j])
		c.Mod(c, p.t)
	}
	return c
}

// Equal compares two sets of parameters for equality.
func (p Parameters) Equal(other *Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(params)
	return
}

// mul returns p1 * p2 mod (X^N+1) with the multiplier of the parameters.
func (p Parameters) mul(p1, p2 ring.Poly) ring.Poly {
	return p.multiplier.MulNegacyclic(p1, p2)
}
