package bgv

// ParametersLiteral is a literal representation of BGV parameters. It has public
// fields and is used to express unchecked user-defined parameters literally into
// Go programs. The [NewParametersFromLiteral] function is used to generate the actual
// checked parameters from the literal representation.
//
// Users must set the ring degree (LogN) and the plaintext and ciphertext moduli, either
// by giving their bit-size (LogT, LogQi and QCount), in which case the smallest suitable
// NTT-friendly primes are selected, or by giving them explicitly (T and Qi).
//
// Optionally, users may specify the error standard deviation (Sigma), a truncation
// bound for the error (Bound) and the Hamming weight of the secret (H).
// Sigma = 0 yields error-free encryptions, Bound = 0 an untruncated error
// distribution and H = 0 a uniform ternary secret.
type ParametersLiteral struct {
	LogN   int      `json:",omitempty"`
	LogT   int      `json:",omitempty"` // Bit-size of the plaintext modulus
	LogQi  int      `json:",omitempty"` // Bit-size of each prime of the moduli chain
	QCount int      `json:",omitempty"` // Number of primes in the moduli chain (L+1)
	Sigma  float64  `json:",omitempty"`
	Bound  float64  `json:",omitempty"`
	T      uint64   `json:",omitempty"` // Plaintext modulus, overrides LogT
	Qi     []uint64 `json:",omitempty"` // Primes of the moduli chain, override LogQi and QCount
	H      int      `json:",omitempty"`
	NTTMul bool     `json:",omitempty"` // Negacyclic products are computed in the NTT domain
}
