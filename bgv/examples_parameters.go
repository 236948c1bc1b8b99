package bgv

// The following parameters are insecure and meant for
// testing and for illustrating the behavior of the scheme.
var (
	// ExampleParametersLogN4ErrorFree is an error-free parameters set with N=16,
	// the plaintext modulus t=257 and two 17-bit primes.
	ExampleParametersLogN4ErrorFree = ParametersLiteral{
		LogN:   4,
		LogT:   8,
		LogQi:  16,
		QCount: 2,
	}

	// ExampleParametersLogN4 is a parameters set with N=16, the plaintext
	// modulus t=257 and three 31-bit primes, enough to switch down to level 0.
	ExampleParametersLogN4 = ParametersLiteral{
		LogN:   4,
		LogT:   8,
		LogQi:  30,
		QCount: 3,
		Sigma:  3.2,
	}

	// ExampleParametersLogN4IteratedAdd is a parameters set with N=16, the
	// plaintext modulus t=257, two 14-bit primes and a large error, for which the noise
	// of repeated additions exceeds the decryption bound after a few thousand additions.
	ExampleParametersLogN4IteratedAdd = ParametersLiteral{
		LogN:   4,
		LogT:   8,
		LogQi:  13,
		QCount: 2,
		Sigma:  5,
	}

	// ExampleParametersLogN11 is a parameters set with N=2048, a 33-bit plaintext
	// modulus and a single 51-bit prime, using the NTT for negacyclic products.
	ExampleParametersLogN11 = ParametersLiteral{
		LogN:   11,
		LogT:   32,
		LogQi:  50,
		QCount: 1,
		Sigma:  128,
		NTTMul: true,
	}
)
