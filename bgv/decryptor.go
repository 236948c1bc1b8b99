package bgv

import (
	"fmt"

	"github.com/Pro7ech/vanillabgv/ring"
)

// Decryptor is a structure used to decrypt [Ciphertext].
// It stores the secret-key.
type Decryptor struct {
	params Parameters
	sk     *SecretKey
}

// NewDecryptor instantiates a new [Decryptor].
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {

	if sk != nil && sk.Value.N() != params.N() {
		panic(fmt.Errorf("secret_key ring degree does not match parameters ring degree"))
	}

	return &Decryptor{
		params: params,
		sk:     sk,
	}
}

// DecryptNew decrypts a [Ciphertext] at level i and returns the result in a new [Plaintext]:
// the phase a0 + a1*sk is reduced in the signed half-range of Q_i, then in the signed half-range
// of t, and finally multiplied by [Parameters.LevelCorrection] to undo the modulus switchings.
func (d Decryptor) DecryptNew(ct *Ciphertext) (pt *Plaintext, err error) {

	if d.sk == nil {
		return nil, fmt.Errorf("cannot DecryptNew: secret key is nil")
	}

	var v ring.Poly
	if v, err = phase(d.params, ct, d.sk); err != nil {
		return nil, fmt.Errorf("cannot DecryptNew: %w", err)
	}

	t := d.params.t

	pt = NewPlaintext(d.params)
	pt.Value.CenterMod(v, t)

	if ct.Level != d.params.MaxLevel() {
		pt.Value.MulScalar(pt.Value, d.params.LevelCorrection(ct.Level))
		pt.Value.CenterMod(pt.Value, t)
	}

	return
}

// phase returns [a0 + a1*sk]_{Q_i} in the signed half-range of Q_i.
func phase(params Parameters, ct *Ciphertext, sk *SecretKey) (p ring.Poly, err error) {

	if err = checkCiphertext(params, ct); err != nil {
		return
	}

	p = params.mul(ct.Value[1], sk.Value)
	p.Add(p, ct.Value[0])

	return p.CenterMod(p, params.q[ct.Level]), nil
}

func checkCiphertext(params Parameters, ct *Ciphertext) error {

	if ct == nil {
		return fmt.Errorf("ciphertext is nil")
	}

	if ct.Level < 0 || ct.Level > params.MaxLevel() {
		return fmt.Errorf("ciphertext level %d is not in [0, %d]", ct.Level, params.MaxLevel())
	}

	if ct.Value[0].N() != params.N() || ct.Value[1].N() != params.N() {
		return fmt.Errorf("ciphertext ring degree does not match parameters ring degree")
	}

	return nil
}
