package bgv

import (
	"github.com/Pro7ech/vanillabgv/ring"
	"github.com/Pro7ech/vanillabgv/utils/sampling"
)

// KeyGenerator is a structure that stores the elements required to create new keys.
// All its samplers read from the same [sampling.Source], thus a KeyGenerator
// must not be used concurrently.
type KeyGenerator struct {
	params         Parameters
	xsSampler      ring.Sampler
	xeSampler      ring.Sampler
	uniformSampler ring.Sampler
}

// NewKeyGenerator creates a new [KeyGenerator] sampling its randomness from source.
func NewKeyGenerator(params Parameters, source *sampling.Source) *KeyGenerator {
	return &KeyGenerator{
		params:         params,
		xsSampler:      mustSampler(source, nil, params.Xs()),
		xeSampler:      mustSampler(source, nil, params.Xe()),
		uniformSampler: mustSampler(source, params.QMax(), ring.Uniform{}),
	}
}

// GenSecretKeyNew generates a new [SecretKey] with distribution [Parameters.Xs].
func (kgen KeyGenerator) GenSecretKeyNew() (sk *SecretKey) {
	return &SecretKey{Value: kgen.xsSampler.ReadNew(kgen.params.N())}
}

// GenPublicKeyNew generates a new [PublicKey] ([a*sk + t*e]_{Q_L}, [-a]_{Q_L})
// for a uniform a and a Gaussian e, and returns it along with e.
func (kgen KeyGenerator) GenPublicKeyNew(sk *SecretKey) (pk *PublicKey, e ring.Poly) {

	params := kgen.params
	N := params.N()
	QL := params.QMax()

	a := kgen.uniformSampler.ReadNew(N)
	e = kgen.xeSampler.ReadNew(N)

	pk0 := params.mul(a, sk.Value)
	pk0.Add(pk0, ring.NewPoly(N).MulScalar(e, params.t))
	pk0.Mod(pk0, QL)

	pk1 := ring.NewPoly(N).Neg(a)
	pk1.Mod(pk1, QL)

	return &PublicKey{Value: [2]ring.Poly{pk0, pk1}}, e
}

// GenKeys generates a new key pair, and the [DebugData] recording
// the error of the public key and the secret key.
func (kgen KeyGenerator) GenKeys() (pk *PublicKey, sk *SecretKey, debug *DebugData) {
	sk = kgen.GenSecretKeyNew()
	pk, e := kgen.GenPublicKeyNew(sk)
	return pk, sk, &DebugData{ErrorSample: e, SecretKey: sk.Value.Clone()}
}
