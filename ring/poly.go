package ring

import (
	"fmt"
	"math/big"

	"github.com/google/go-cmp/cmp"

	"github.com/Pro7ech/vanillabgv/utils"
	"github.com/Pro7ech/vanillabgv/utils/bignum"
)

// Poly is a polynomial of Z[X]/(X^N+1) in coefficient representation.
// Coefficients are arbitrary precision integers, thus a Poly
// carries no modulus: reductions are explicit.
//
// Methods follow the convention of [math/big]: the receiver is
// the output, operands may alias the receiver.
type Poly []big.Int

// NewPoly allocates a new zero [Poly] with N coefficients.
func NewPoly(N int) Poly {
	return make(Poly, N)
}

// NewPolyFromInt64 allocates a new [Poly] with the given coefficients.
func NewPolyFromInt64(coeffs []int64) Poly {
	return Poly(utils.ToBigInts(coeffs))
}

// N returns the number of coefficients of the receiver.
func (p Poly) N() int {
	return len(p)
}

// Clone returns a deep copy of the receiver.
func (p Poly) Clone() (pcpy Poly) {
	pcpy = NewPoly(len(p))
	for i := range p {
		pcpy[i].Set(&p[i])
	}
	return
}

var bigIntComparer = cmp.Comparer(func(x, y big.Int) bool {
	return x.Cmp(&y) == 0
})

// Equal returns true if the receiver and other have the same coefficients.
// The comparison runs on the underlying []big.Int, so that cmp does
// not dispatch back to this method.
func (p Poly) Equal(other Poly) bool {
	return cmp.Equal([]big.Int(p), []big.Int(other), bigIntComparer)
}

// Set copies a on the receiver.
func (p Poly) Set(a Poly) Poly {
	checkSize("Set", p, a)
	for i := range p {
		p[i].Set(&a[i])
	}
	return p
}

// Add sets the receiver to a + b.
func (p Poly) Add(a, b Poly) Poly {
	checkSize("Add", p, a, b)
	for i := range p {
		p[i].Add(&a[i], &b[i])
	}
	return p
}

// Sub sets the receiver to a - b.
func (p Poly) Sub(a, b Poly) Poly {
	checkSize("Sub", p, a, b)
	for i := range p {
		p[i].Sub(&a[i], &b[i])
	}
	return p
}

// Neg sets the receiver to -a.
func (p Poly) Neg(a Poly) Poly {
	checkSize("Neg", p, a)
	for i := range p {
		p[i].Neg(&a[i])
	}
	return p
}

// MulScalar sets the receiver to a * c.
func (p Poly) MulScalar(a Poly, c *big.Int) Poly {
	checkSize("MulScalar", p, a)
	for i := range p {
		p[i].Mul(&a[i], c)
	}
	return p
}

// Mod sets the receiver to a mod modulus, with coefficients in [0, modulus).
func (p Poly) Mod(a Poly, modulus *big.Int) Poly {
	checkSize("Mod", p, a)
	for i := range p {
		FromSignedHalfRange(&a[i], modulus, &p[i])
	}
	return p
}

// CenterMod sets the receiver to a mod modulus, with coefficients
// in the signed half-range (-modulus/2, modulus/2].
func (p Poly) CenterMod(a Poly, modulus *big.Int) Poly {
	checkSize("CenterMod", p, a)
	for i := range p {
		ToSignedHalfRange(&a[i], modulus, &p[i])
	}
	return p
}

// QuoExact sets the receiver to a / d and returns an error
// if any coefficient of a is not divisible by d.
func (p Poly) QuoExact(a Poly, d *big.Int) (Poly, error) {
	checkSize("QuoExact", p, a)
	r := new(big.Int)
	for i := range p {
		if p[i].QuoRem(&a[i], d, r); r.Sign() != 0 {
			return p, fmt.Errorf("coefficient %d is not divisible by %s", i, d)
		}
	}
	return p, nil
}

// MaxAbs returns the infinity norm of the receiver.
func (p Poly) MaxAbs() *big.Int {
	return bignum.MaxAbs(p)
}

// IsZero returns true if all coefficients of the receiver are zero.
func (p Poly) IsZero() bool {
	for i := range p {
		if p[i].Sign() != 0 {
			return false
		}
	}
	return true
}

// Int64 returns the coefficients of the receiver as int64.
// Coefficients that do not fit in an int64 are truncated as per [big.Int.Int64].
func (p Poly) Int64() (coeffs []int64) {
	coeffs = make([]int64, len(p))
	for i := range p {
		coeffs[i] = p[i].Int64()
	}
	return
}

func checkSize(op string, p Poly, operands ...Poly) {
	for _, o := range operands {
		if len(o) != len(p) {
			// Sanity check, this error should not happen.
			panic(fmt.Errorf("cannot %s: operand has %d coefficients but receiver has %d", op, len(o), len(p)))
		}
	}
}
