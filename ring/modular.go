package ring

import (
	"fmt"
	"math/big"

	"github.com/Pro7ech/vanillabgv/utils/bignum"
)

// ModInverse returns n^{-1} mod modulus, computed with the extended
// Euclidean algorithm. An error is returned if gcd(n, modulus) != 1.
func ModInverse(n, modulus *big.Int) (inv *big.Int, err error) {

	if modulus.Cmp(big.NewInt(1)) < 1 {
		return nil, fmt.Errorf("%w: modulus must be greater than 1 but is %s", ErrInvalidModulus, modulus)
	}

	a := new(big.Int).Mod(n, modulus)

	inv = new(big.Int)

	if gcd := new(big.Int).GCD(inv, nil, a, modulus); gcd.Cmp(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("%w: %s is not invertible mod %s (gcd=%s)", ErrInvalidModulus, n, modulus, gcd)
	}

	return inv.Mod(inv, modulus), nil
}

// RoundToNearestMultiple returns the multiple of b closest to a.
// Ties are rounded away from zero. b must be strictly positive.
func RoundToNearestMultiple(a *big.Rat, b *big.Int) (m *big.Int) {

	if b.Sign() < 1 {
		panic(fmt.Errorf("cannot RoundToNearestMultiple: b must be strictly positive but is %s", b))
	}

	// round(a/b) * b = round(num / (den * b)) * b
	den := new(big.Int).Mul(a.Denom(), b)

	m = new(big.Int)
	bignum.DivRound(a.Num(), den, m)

	return m.Mul(m, b)
}

// ToSignedHalfRange sets y to the representative of x mod modulus in
// the signed half-range (-modulus/2, modulus/2] and returns y.
func ToSignedHalfRange(x, modulus, y *big.Int) *big.Int {
	y.Mod(x, modulus)
	if twice := new(big.Int).Lsh(y, 1); twice.Cmp(modulus) == 1 {
		y.Sub(y, modulus)
	}
	return y
}

// FromSignedHalfRange sets y to the representative of x mod modulus
// in [0, modulus) and returns y. It is the inverse of [ToSignedHalfRange].
func FromSignedHalfRange(x, modulus, y *big.Int) *big.Int {
	return y.Mod(x, modulus)
}
