package bgv

import (
	"github.com/google/go-cmp/cmp"

	"github.com/Pro7ech/vanillabgv/ring"
)

// polyComparer compares [ring.Poly] values coefficient-wise.
var polyComparer = cmp.Comparer(func(x, y ring.Poly) bool {
	return x.Equal(y)
})

// Plaintext is a polynomial of the plaintext space with
// coefficients in the signed half-range (-t/2, t/2].
type Plaintext struct {
	Value ring.Poly
}

// NewPlaintext allocates a new zero [Plaintext].
func NewPlaintext(params Parameters) *Plaintext {
	return &Plaintext{Value: ring.NewPoly(params.N())}
}

// Clone returns a deep copy of the receiver.
func (pt Plaintext) Clone() *Plaintext {
	return &Plaintext{Value: pt.Value.Clone()}
}

// Equal performs a deep equal.
func (pt Plaintext) Equal(other *Plaintext) bool {
	return pt.Value.Equal(other.Value)
}

// Ciphertext is a pair of polynomials (a0, a1) modulo Q_Level.
// A ciphertext is created at level L and can only move down the
// moduli chain, see [Evaluator.SwitchModulusNew]. Below level L, the
// decrypted phase carries the factor [Q_Level/Q_L]_t, which decryption
// removes with [Parameters.LevelCorrection].
type Ciphertext struct {
	Value [2]ring.Poly
	Level int
}

// NewCiphertext allocates a new zero [Ciphertext] at the given level.
func NewCiphertext(params Parameters, level int) *Ciphertext {
	return &Ciphertext{
		Value: [2]ring.Poly{ring.NewPoly(params.N()), ring.NewPoly(params.N())},
		Level: level,
	}
}

// Clone returns a deep copy of the receiver.
func (ct Ciphertext) Clone() *Ciphertext {
	return &Ciphertext{
		Value: [2]ring.Poly{ct.Value[0].Clone(), ct.Value[1].Clone()},
		Level: ct.Level,
	}
}

// Equal performs a deep equal.
func (ct Ciphertext) Equal(other *Ciphertext) bool {
	return ct.Level == other.Level && cmp.Equal(ct.Value, other.Value, polyComparer)
}

// SecretKey is a polynomial with coefficients in {-1, 0, 1}.
type SecretKey struct {
	Value ring.Poly
}

// Clone returns a deep copy of the receiver.
func (sk SecretKey) Clone() *SecretKey {
	return &SecretKey{Value: sk.Value.Clone()}
}

// Equal performs a deep equal.
func (sk SecretKey) Equal(other *SecretKey) bool {
	return sk.Value.Equal(other.Value)
}

// PublicKey is an encryption of zero at level L:
// ([a*sk + t*e]_{Q_L}, [-a]_{Q_L}).
type PublicKey struct {
	Value [2]ring.Poly
}

// Clone returns a deep copy of the receiver.
func (pk PublicKey) Clone() *PublicKey {
	return &PublicKey{Value: [2]ring.Poly{pk.Value[0].Clone(), pk.Value[1].Clone()}}
}

// Equal performs a deep equal.
func (pk PublicKey) Equal(other *PublicKey) bool {
	return cmp.Equal(pk.Value, other.Value, polyComparer)
}

// DebugData stores the error sample and the secret key used to generate
// a [PublicKey]. It is only meant for the noise diagnostics.
type DebugData struct {
	ErrorSample ring.Poly
	SecretKey   ring.Poly
}

// Clone returns a deep copy of the receiver.
func (d DebugData) Clone() *DebugData {
	return &DebugData{ErrorSample: d.ErrorSample.Clone(), SecretKey: d.SecretKey.Clone()}
}

// Equal performs a deep equal.
func (d DebugData) Equal(other *DebugData) bool {
	return cmp.Equal([2]ring.Poly{d.ErrorSample, d.SecretKey}, [2]ring.Poly{other.ErrorSample, other.SecretKey}, polyComparer)
}

// EncryptionTrace stores the randomness of an encryption:
// the ternary polynomial U and the errors E0 and E1.
type EncryptionTrace struct {
	U, E0, E1 ring.Poly
}

// Clone returns a deep copy of the receiver.
func (tr EncryptionTrace) Clone() *EncryptionTrace {
	return &EncryptionTrace{U: tr.U.Clone(), E0: tr.E0.Clone(), E1: tr.E1.Clone()}
}

// Equal performs a deep equal.
func (tr EncryptionTrace) Equal(other *EncryptionTrace) bool {
	return cmp.Equal([3]ring.Poly{tr.U, tr.E0, tr.E1}, [3]ring.Poly{other.U, other.E0, other.E1}, polyComparer)
}
