// Package ring implements the number theory and the arithmetic of the
// negacyclic polynomial ring Z[X]/(X^N+1): NTT-friendly prime search,
// modular helpers, polynomials with arbitrary precision coefficients,
// negacyclic multiplication, number theoretic transforms and samplers.
package ring

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/Pro7ech/vanillabgv/utils"
)

// Ring is a struct storing the precomputations for
// the negacyclic NTT of degree N modulo a prime.
type Ring struct {

	// Polynomial nb.Coefficients
	N int

	// Modulus
	Modulus *big.Int

	*NTTTable // NTT related constants
}

// NTTTable store all the constants that are specifically tied to the NTT.
type NTTTable struct {
	NthRoot       uint64   // Nthroot used for the NTT
	PrimitiveRoot *big.Int // 2N-th primitive root of unity
	RootsForward  []big.Int
	RootsBackward []big.Int
	NInv          *big.Int // [N^-1] mod Modulus
}

// NewRing creates a new [Ring] of degree N and modulus Modulus.
// NTT constants still need to be generated using [Ring.GenNTTTable].
func NewRing(N int, Modulus *big.Int) (r *Ring, err error) {

	// Checks if N is a power of 2
	if !utils.IsPowerOfTwo(N) {
		return nil, fmt.Errorf("%w: ring degree must be a power of two but is %d", ErrInvalidModulus, N)
	}

	if Modulus == nil || Modulus.Cmp(big.NewInt(2)) < 0 {
		return nil, fmt.Errorf("%w: modulus must be at least 2", ErrInvalidModulus)
	}

	return &Ring{
		N:        N,
		Modulus:  new(big.Int).Set(Modulus),
		NTTTable: &NTTTable{NthRoot: uint64(N) << 1},
	}, nil
}

// LogN returns log2(N).
func (r Ring) LogN() int {
	return bits.Len64(uint64(r.N)) - 1
}

// NewPoly allocates a new zero [Poly] of N coefficients.
func (r Ring) NewPoly() Poly {
	return NewPoly(r.N)
}

// GenNTTTable generates the NTT tables for the target Ring.
func (r *Ring) GenNTTTable() (err error) {

	Modulus := r.Modulus
	NthRoot := r.NthRoot

	// Checks if the modulus is prime and equal to 1 mod NthRoot
	if !IsPrime(Modulus) {
		return fmt.Errorf("%w: %s is not prime", ErrInvalidModulus, Modulus)
	}

	if new(big.Int).Mod(Modulus, new(big.Int).SetUint64(NthRoot)).Cmp(big.NewInt(1)) != 0 {
		return fmt.Errorf("%w: %s != 1 mod NthRoot=%d", ErrInvalidModulus, Modulus, NthRoot)
	}

	if r.PrimitiveRoot, err = PrimitiveNthRoot(Modulus, NthRoot); err != nil {
		return
	}

	N := NthRoot >> 1

	logN := bits.Len64(N) - 1

	if r.NInv, err = ModInverse(new(big.Int).SetUint64(N), Modulus); err != nil {
		return
	}

	Psi := r.PrimitiveRoot

	PsiInv, err := ModInverse(Psi, Modulus)
	if err != nil {
		return
	}

	r.RootsForward = make([]big.Int, N)
	r.RootsBackward = make([]big.Int, N)

	r.RootsForward[0].SetUint64(1)
	r.RootsBackward[0].SetUint64(1)

	// Computes RootsForward[brv(j)] = Psi^j and RootsBackward[brv(j)] = Psi^-j
	for j := uint64(1); j < N; j++ {

		indexReversePrev := utils.BitReverse64(j-1, logN)
		indexReverseNext := utils.BitReverse64(j, logN)

		r.RootsForward[indexReverseNext].Mul(&r.RootsForward[indexReversePrev], Psi)
		r.RootsForward[indexReverseNext].Mod(&r.RootsForward[indexReverseNext], Modulus)

		r.RootsBackward[indexReverseNext].Mul(&r.RootsBackward[indexReversePrev], PsiInv)
		r.RootsBackward[indexReverseNext].Mod(&r.RootsBackward[indexReverseNext], Modulus)
	}

	return
}

// PrimitiveNthRoot returns a primitive NthRoot-th root of unity modulo the prime q,
// where NthRoot is a power of two dividing q-1.
//
// The root is g^{(q-1)/NthRoot} for the smallest quadratic non-residue g, which
// guarantees that root^{NthRoot/2} = g^{(q-1)/2} = -1 mod q, hence that its order
// is exactly NthRoot.
func PrimitiveNthRoot(q *big.Int, NthRoot uint64) (root *big.Int, err error) {

	if NthRoot < 2 || NthRoot&(NthRoot-1) != 0 {
		return nil, fmt.Errorf("%w: NthRoot must be a power of two greater than one but is %d", ErrInvalidModulus, NthRoot)
	}

	qMinusOne := new(big.Int).Sub(q, big.NewInt(1))

	exp, rem := new(big.Int).QuoRem(qMinusOne, new(big.Int).SetUint64(NthRoot), new(big.Int))

	if rem.Sign() != 0 {
		return nil, fmt.Errorf("%w: NthRoot=%d does not divide %s-1", ErrInvalidModulus, NthRoot, q)
	}

	g := big.NewInt(2)
	for ; big.Jacobi(g, q) != -1; g.Add(g, big.NewInt(1)) {
		if g.Cmp(q) >= 0 {
			return nil, fmt.Errorf("%w: no quadratic non-residue mod %s", ErrInvalidModulus, q)
		}
	}

	root = new(big.Int).Exp(g, exp, q)

	// Checks that root^{NthRoot} = 1 mod q
	if new(big.Int).Exp(root, new(big.Int).SetUint64(NthRoot), q).Cmp(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("invalid %d-th primitive root: root^{%d} != 1 mod %s, something went wrong", NthRoot, NthRoot, q)
	}

	// Checks that root^{NthRoot/2} = -1 mod q
	if new(big.Int).Exp(root, new(big.Int).SetUint64(NthRoot>>1), q).Cmp(qMinusOne) != 0 {
		return nil, fmt.Errorf("invalid %d-th primitive root: root^{%d} != -1 mod %s, something went wrong", NthRoot, NthRoot>>1, q)
	}

	return
}
