package ring

import (
	"fmt"
	"math/big"
)

// NTT evaluates p1 at the roots of X^N+1 modulo the ring modulus and writes
// the result on p2, in bit-reversed order. Coefficients of p1 can be any
// integers, coefficients of p2 are in [0, Modulus). p1 and p2 can alias.
func (r Ring) NTT(p1, p2 Poly) {
	r.checkNTTOperands("NTT", p1, p2)
	p2.Mod(p1, r.Modulus)
	nttCore(p2, r.N, r.Modulus, r.RootsForward)
}

// INTT interpolates p1, given in bit-reversed evaluation order, and writes the
// coefficients on p2 in [0, Modulus). p1 and p2 can alias.
func (r Ring) INTT(p1, p2 Poly) {
	r.checkNTTOperands("INTT", p1, p2)
	p2.Mod(p1, r.Modulus)
	inttCore(p2, r.N, r.Modulus, r.RootsBackward)
	for i := range p2 {
		p2[i].Mul(&p2[i], r.NInv)
		p2[i].Mod(&p2[i], r.Modulus)
	}
}

func (r Ring) checkNTTOperands(op string, p1, p2 Poly) {

	// Sanity check
	if r.NTTTable == nil || len(r.RootsForward) != r.N {
		panic(fmt.Errorf("cannot %s: NTT tables have not been generated", op))
	}

	if len(p1) != r.N || len(p2) != r.N {
		panic(fmt.Errorf("cannot %s: ensure that len(p1)=%d and len(p2)=%d are equal to N=%d", op, len(p1), len(p2), r.N))
	}
}

// nttCore computes the forward Cooley-Tukey negacyclic NTT in place.
func nttCore(p Poly, N int, Q *big.Int, roots []big.Int) {

	U, V := new(big.Int), new(big.Int)

	t := N
	for m := 1; m < N; m <<= 1 {

		t >>= 1

		for i := 0; i < m; i++ {

			j1 := (i * t) << 1

			F := &roots[m+i]

			for jx, jy := j1, j1+t; jx < j1+t; jx, jy = jx+1, jy+1 {
				butterfly(&p[jx], &p[jy], F, Q, U, V)
			}
		}
	}
}

// inttCore computes the backward Gentleman-Sande negacyclic NTT in place,
// without the final scaling by N^{-1}.
func inttCore(p Poly, N int, Q *big.Int, roots []big.Int) {

	U, V := new(big.Int), new(big.Int)

	t := 1
	for m := N; m > 1; m >>= 1 {

		h := m >> 1

		for i, j1 := 0, 0; i < h; i, j1 = i+1, j1+2*t {

			F := &roots[h+i]

			for jx, jy := j1, j1+t; jx < j1+t; jx, jy = jx+1, jy+1 {
				invbutterfly(&p[jx], &p[jy], F, Q, U, V)
			}
		}

		t <<= 1
	}
}

// butterfly sets (x, y) to (x + y*F, x - y*F) mod Q.
func butterfly(x, y, F, Q, U, V *big.Int) {
	U.Set(x)
	V.Mul(y, F)
	V.Mod(V, Q)
	x.Add(U, V)
	if x.Cmp(Q) >= 0 {
		x.Sub(x, Q)
	}
	y.Sub(U, V)
	if y.Sign() < 0 {
		y.Add(y, Q)
	}
}

// invbutterfly sets (x, y) to (x + y, (x - y)*F) mod Q.
func invbutterfly(x, y, F, Q, U, V *big.Int) {
	U.Set(x)
	V.Set(y)
	x.Add(U, V)
	if x.Cmp(Q) >= 0 {
		x.Sub(x, Q)
	}
	y.Sub(U, V)
	y.Mul(y, F)
	y.Mod(y, Q)
}
