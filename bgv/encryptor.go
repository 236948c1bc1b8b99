package bgv

import (
	"fmt"

	"github.com/Pro7ech/vanillabgv/ring"
	"github.com/Pro7ech/vanillabgv/utils/sampling"
)

// Encryptor is a structure used to encrypt [Plaintext] with a [PublicKey].
// Its samplers read from the same [sampling.Source], thus an Encryptor
// must not be used concurrently.
type Encryptor struct {
	params    Parameters
	pk        *PublicKey
	xuSampler ring.Sampler
	xeSampler ring.Sampler
}

// NewEncryptor instantiates a new [Encryptor] sampling its randomness from source.
func NewEncryptor(params Parameters, pk *PublicKey, source *sampling.Source) *Encryptor {

	if pk != nil && (pk.Value[0].N() != params.N() || pk.Value[1].N() != params.N()) {
		panic(fmt.Errorf("public key ring degree does not match parameters ring degree"))
	}

	return &Encryptor{
		params:    params,
		pk:        pk,
		xuSampler: mustSampler(source, nil, ring.UniformTernary),
		xeSampler: mustSampler(source, nil, params.Xe()),
	}
}

// EncryptNew encrypts a [Plaintext] on a new [Ciphertext] at level L:
//
//	a0 = [pt + pk0*u + t*e0]_{Q_L}
//	a1 = [pk1*u + t*e1]_{Q_L}
//
// with u uniform ternary and e0, e1 Gaussian.
func (enc Encryptor) EncryptNew(pt *Plaintext) (ct *Ciphertext, err error) {
	ct, _, err = enc.EncryptWithTrace(pt)
	return
}

// EncryptWithTrace is as [Encryptor.EncryptNew] and also returns the randomness of the
// encryption, from which the noise of the ciphertext can be recomputed with [FreshNoise].
func (enc Encryptor) EncryptWithTrace(pt *Plaintext) (ct *Ciphertext, trace *EncryptionTrace, err error) {

	if enc.pk == nil {
		return nil, nil, fmt.Errorf("cannot EncryptNew: public key is nil")
	}

	params := enc.params
	N := params.N()
	QL := params.QMax()
	t := params.t

	if pt == nil || pt.Value.N() != N {
		return nil, nil, fmt.Errorf("cannot EncryptNew: plaintext ring degree does not match parameters ring degree")
	}

	trace = &EncryptionTrace{
		U:  enc.xuSampler.ReadNew(N),
		E0: enc.xeSampler.ReadNew(N),
		E1: enc.xeSampler.ReadNew(N),
	}

	ct = NewCiphertext(params, params.MaxLevel())

	a0 := params.mul(enc.pk.Value[0], trace.U)
	a0.Add(a0, pt.Value)
	a0.Add(a0, ring.NewPoly(N).MulScalar(trace.E0, t))
	ct.Value[0].Mod(a0, QL)

	a1 := params.mul(enc.pk.Value[1], trace.U)
	a1.Add(a1, ring.NewPoly(N).MulScalar(trace.E1, t))
	ct.Value[1].Mod(a1, QL)

	return
}
