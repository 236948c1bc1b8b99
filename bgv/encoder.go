package bgv

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/Pro7ech/vanillabgv/ring"
	"github.com/Pro7ech/vanillabgv/utils"
)

// Encoder is a structure that stores the parameters to encode vectors of
// integers modulo t on plaintexts.
//
// A vector m is mapped to the polynomial whose evaluations at the roots of
// X^N+1 modulo t (the odd powers of a primitive 2N-th root of unity) are the
// entries of m, such that the product of two plaintexts corresponds to the
// entrywise product of their messages.
type Encoder struct {
	parameters Parameters
}

// NewEncoder creates a new [Encoder] from the provided parameters.
func NewEncoder(parameters Parameters) *Encoder {
	return &Encoder{parameters: parameters}
}

// Encode encodes at most N integers on a new [Plaintext].
// Values are reduced modulo t and zero-padded to N, and the
// coefficients of the plaintext are in (-t/2, t/2].
func (ecd Encoder) Encode(values []big.Int) (pt *Plaintext, err error) {

	rT := ecd.parameters.RingT()

	if len(values) > rT.N {
		return nil, fmt.Errorf("cannot Encode: %w: len(values)=%d > N=%d", ErrMessageTooLong, len(values), rT.N)
	}

	pt = NewPlaintext(ecd.parameters)

	for i := range values {
		pt.Value[i].Mod(&values[i], rT.Modulus)
	}

	rT.INTT(pt.Value, pt.Value)

	pt.Value.CenterMod(pt.Value, rT.Modulus)

	return
}

// EncodeInt64 encodes at most N int64 on a new [Plaintext]. See [Encoder.Encode].
func (ecd Encoder) EncodeInt64(values []int64) (pt *Plaintext, err error) {
	return EncodeIntegers(ecd, values)
}

// EncodeUint64 encodes at most N uint64 on a new [Plaintext]. See [Encoder.Encode].
func (ecd Encoder) EncodeUint64(values []uint64) (pt *Plaintext, err error) {
	return EncodeIntegers(ecd, values)
}

// EncodeIntegers encodes at most N integers of any type on a new [Plaintext].
// See [Encoder.Encode].
func EncodeIntegers[T constraints.Integer](ecd Encoder, values []T) (pt *Plaintext, err error) {
	return ecd.Encode(utils.ToBigInts(values))
}

// Decode decodes a [Plaintext] into a new slice of N integers in [0, t).
func (ecd Encoder) Decode(pt *Plaintext) (values []big.Int) {

	rT := ecd.parameters.RingT()

	values = ring.NewPoly(rT.N).Mod(pt.Value, rT.Modulus)

	rT.NTT(values, values)

	return
}

// DecodeUint64 decodes a [Plaintext] into a new slice of N uint64 in [0, t).
// It returns an error if t does not fit on 64 bits.
func (ecd Encoder) DecodeUint64(pt *Plaintext) (values []uint64, err error) {

	if !ecd.parameters.t.IsUint64() {
		return nil, fmt.Errorf("cannot DecodeUint64: t=%s does not fit on 64 bits", ecd.parameters.t)
	}

	coeffs := ecd.Decode(pt)

	values = make([]uint64, len(coeffs))
	for i := range coeffs {
		values[i] = coeffs[i].Uint64()
	}

	return
}
