// Package bignum implements arbitrary precision arithmetic helpers for integers and floats.
package bignum

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// RandInt returns a uniform integer in [0, max) drawn from reader.
// Equal byte streams give equal outputs.
func RandInt(reader io.Reader, max *big.Int) (n *big.Int) {
	var err error
	if n, err = rand.Int(reader, max); err != nil {
		panic(fmt.Errorf("cannot RandInt: %w", err))
	}
	return
}

// DivRound sets i to a/b rounded to the nearest integer,
// ties away from zero.
func DivRound(a, b, i *big.Int) {

	q, r := new(big.Int).QuoRem(a, b, new(big.Int))

	// |2r| >= |b| means the fractional part is at least one half.
	if r.Lsh(r, 1).CmpAbs(b) >= 0 {
		if a.Sign()*b.Sign() > 0 {
			q.Add(q, big.NewInt(1))
		} else {
			q.Sub(q, big.NewInt(1))
		}
	}

	i.Set(q)
}

// MaxAbs returns max |v[i]|, or zero if v is empty.
func MaxAbs(v []big.Int) (max *big.Int) {
	max = new(big.Int)
	for i := range v {
		if v[i].CmpAbs(max) > 0 {
			max.Abs(&v[i])
		}
	}
	return
}
