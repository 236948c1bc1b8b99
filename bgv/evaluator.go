package bgv

import (
	"fmt"
	"math/big"

	"github.com/Pro7ech/vanillabgv/ring"
	"github.com/Pro7ech/vanillabgv/utils/concurrency"
)

// Evaluator is a struct that holds the necessary elements to perform
// the homomorphic operations between ciphertexts.
type Evaluator struct {
	params Parameters

	// qInvModT[j] = q_j^{-1} mod t
	qInvModT []*big.Int

	// Workers is the number of goroutines used by [Evaluator.SwitchModulusNew].
	// If <= 0, defaults to [concurrency.Workers].
	Workers int
}

// NewEvaluator instantiates a new [Evaluator].
func NewEvaluator(params Parameters) *Evaluator {

	qInvModT := make([]*big.Int, params.QCount())

	var err error
	for j := range qInvModT {
		if qInvModT[j], err = ring.ModInverse(params.qi[j], params.t); err != nil {
			// Sanity check, this error should not happen.
			panic(fmt.Errorf("cannot NewEvaluator: %w", err))
		}
	}

	return &Evaluator{
		params:   params,
		qInvModT: qInvModT,
	}
}

// AddNew adds ct1 to ct2 and returns the result in a new [Ciphertext]
// at the same level. It returns an error wrapping [ErrLevelMismatch]
// if the two ciphertexts are not at the same level.
func (eval Evaluator) AddNew(ct1, ct2 *Ciphertext) (ctOut *Ciphertext, err error) {

	if err = checkCiphertext(eval.params, ct1); err != nil {
		return nil, fmt.Errorf("cannot AddNew: ct1: %w", err)
	}

	if err = checkCiphertext(eval.params, ct2); err != nil {
		return nil, fmt.Errorf("cannot AddNew: ct2: %w", err)
	}

	if ct1.Level != ct2.Level {
		return nil, fmt.Errorf("cannot AddNew: %w: ct1.Level=%d != ct2.Level=%d", ErrLevelMismatch, ct1.Level, ct2.Level)
	}

	Q := eval.params.q[ct1.Level]

	ctOut = NewCiphertext(eval.params, ct1.Level)
	for i := range ctOut.Value {
		ctOut.Value[i].Add(ct1.Value[i], ct2.Value[i])
		ctOut.Value[i].Mod(ctOut.Value[i], Q)
	}

	return
}

// SwitchModulusNew switches a [Ciphertext] at level j > 0 from Q_j to Q_{j-1}
// and returns the result in a new [Ciphertext] at level j-1. It returns an
// error wrapping [ErrLevelFloor] if the ciphertext is at level 0.
//
// Each coefficient c is mapped to the integer c' closest to c * Q_{j-1}/Q_j
// such that c' = c * q_j^{-1} mod t, then reduced in the signed half-range of Q_{j-1}.
// This scales the noise down by q_j and divides the plaintext by q_j modulo t,
// which decryption accounts for with [Parameters.LevelCorrection].
func (eval Evaluator) SwitchModulusNew(ct *Ciphertext) (ctOut *Ciphertext, err error) {

	if err = checkCiphertext(eval.params, ct); err != nil {
		return nil, fmt.Errorf("cannot SwitchModulusNew: %w", err)
	}

	level := ct.Level

	if level == 0 {
		return nil, fmt.Errorf("cannot SwitchModulusNew: %w", ErrLevelFloor)
	}

	ctOut = NewCiphertext(eval.params, level-1)

	workers := eval.Workers
	if workers <= 0 {
		workers = concurrency.Workers()
	}

	buffers := make([]*switchBuffer, workers)
	for i := range buffers {
		buffers[i] = newSwitchBuffer()
	}

	for i := range ct.Value {
		if err = concurrency.ParallelFor(buffers, eval.params.N(), func(buff *switchBuffer, start, end int) error {
			for k := start; k < end; k++ {
				eval.switchCoefficient(buff, level, &ct.Value[i][k], &ctOut.Value[i][k])
			}
			return nil
		}); err != nil {
			return nil, fmt.Errorf("cannot SwitchModulusNew: %w", err)
		}
	}

	return
}

type switchBuffer struct {
	r    *big.Int
	tmp  *big.Int
	x    *big.Rat
	rRat *big.Rat
}

func newSwitchBuffer() *switchBuffer {
	return &switchBuffer{
		r:    new(big.Int),
		tmp:  new(big.Int),
		x:    new(big.Rat),
		rRat: new(big.Rat),
	}
}

// switchCoefficient sets out to r + RoundToNearestMultiple(c * Q_{j-1}/Q_j - r, t)
// in the signed half-range of Q_{j-1}, where r = [c * q_j^{-1}]_t.
func (eval Evaluator) switchCoefficient(buff *switchBuffer, j int, c, out *big.Int) {

	t := eval.params.t
	Qj := eval.params.q[j]
	QjMinusOne := eval.params.q[j-1]

	r := buff.r.Mul(c, eval.qInvModT[j])
	r.Mod(r, t)

	x := buff.x.SetFrac(buff.tmp.Mul(c, QjMinusOne), Qj)
	x.Sub(x, buff.rRat.SetInt(r))

	out.Add(r, ring.RoundToNearestMultiple(x, t))

	ring.ToSignedHalfRange(out, QjMinusOne, out)
}
