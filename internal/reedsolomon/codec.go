// Package reedsolomon implements the Reed-Solomon encoder/decoder over
// GF(16) used by multicode: syndrome computation, Berlekamp-Massey
// error-locator synthesis, Chien search, and Forney error-magnitude
// evaluation, plus a rotation-tolerant retry wrapper for codes that have
// lost leading symbols in transcription.
package reedsolomon

import "github.com/jalphad/multicode/internal/gf16"

// Status classifies the outcome of a Decode call, distinguishing a clean
// codeword from one that needed correction, rather than relying on an
// empty-vs-nonempty result to carry that information.
type Status int

const (
	// NoErrors means every syndrome was already zero.
	NoErrors Status = iota
	// Corrected means errors were found and successfully corrected.
	Corrected
	// Uncorrectable means decoding failed; Data is not meaningful.
	Uncorrectable
)

// Result is the outcome of a decode attempt.
type Result struct {
	Status Status
	Data   []int
}

// Encode produces a systematic Reed-Solomon codeword of length
// len(payload)+s from payload symbols in [0,16) and s check symbols.
//
// The working buffer is built by the standard shift-register division by
// the generator polynomial, then the first len(payload) positions of the
// output are overwritten with the original payload. This second copy is
// not redundant: intermediate steps of the division can touch positions
// within the payload region, and systematic encoding requires those
// positions hold the original payload regardless.
func Encode(payload []int, s int) []int {
	gen := gf16.GeneratorPoly(s)
	d := len(payload)

	buf := make([]int, d+len(gen)-1)
	copy(buf, payload)

	for i := 0; i < d; i++ {
		coeff := buf[i]
		if coeff == 0 {
			continue
		}
		for j := 1; j < len(gen); j++ {
			buf[i+j] ^= gf16.Mul(gen[j], coeff)
		}
	}

	codeword := make([]int, len(buf))
	copy(codeword, buf)
	copy(codeword, payload)
	return codeword
}

// Decode attempts to correct errors in received, given s check symbols and
// expectedLen (the uncorrupted D+S length). received may be shorter than
// expectedLen; the shortfall is treated as known-position erasures.
func Decode(received []int, s int, expectedLen int) (Result, error) {
	erases := expectedLen - len(received)

	synd := syndromes(received, s)
	if allZero(synd) {
		out := make([]int, len(received))
		copy(out, received)
		return Result{Status: NoErrors, Data: out}, nil
	}

	errLoc := errorLocator(synd, s, erases)
	if len(errLoc)-1-erases > s {
		return Result{Status: Uncorrectable}, ErrTooManyErrors
	}

	positions := chienSearch(errLoc, len(received))
	if len(positions) != len(errLoc)-1 {
		return Result{Status: Uncorrectable}, ErrTooManyErrors
	}

	corrected := correctErrors(received, synd, positions)

	verify := syndromes(corrected, s)
	if !allZero(verify) {
		return Result{Status: Uncorrectable}, ErrUncorrectable
	}

	return Result{Status: Corrected, Data: corrected}, nil
}

// TryHardDecode wraps Decode with the rotation-tolerant retry: if straight
// decode fails and the received word starts with zero symbols (plausibly
// dropped during transcription), it retries decode at each left rotation
// that still begins with a zero, then mirrors the same search from the
// tail. It returns the first successful decode. received is never mutated;
// every rotation attempt operates on a private copy.
func TryHardDecode(received []int, s int, expectedLen int) (Result, error) {
	if res, err := Decode(received, s, expectedLen); err == nil {
		return res, nil
	}

	msg := append([]int(nil), received...)
	half := len(msg) / 2

	rotations := 0
	for i := 0; i < half; i++ {
		r := msg[0]
		msg = msg[1:]
		if r != 0 {
			msg = prepend(msg, r)
			break
		}
		msg = append(msg, r)
		rotations++

		if res, err := Decode(msg, s, expectedLen); err == nil {
			return res, nil
		}
	}

	for rotations > 0 {
		rotations--
		last := msg[len(msg)-1]
		msg = msg[:len(msg)-1]
		msg = prepend(msg, last)
	}

	for i := 0; i < half; i++ {
		r := msg[len(msg)-1]
		msg = msg[:len(msg)-1]
		if r != 0 {
			msg = append(msg, r)
			break
		}
		msg = prepend(msg, r)

		if res, err := Decode(msg, s, expectedLen); err == nil {
			return res, nil
		}
	}

	return Result{Status: Uncorrectable}, ErrUncorrectable
}

func prepend(s []int, v int) []int {
	out := make([]int, 0, len(s)+1)
	out = append(out, v)
	return append(out, s...)
}

// syndromes computes synd[0]=0, synd[i+1]=Eval(r, 2^i) for i in [0,s).
func syndromes(r []int, s int) []int {
	synd := make([]int, s+1)
	for i := 0; i < s; i++ {
		synd[i+1] = gf16.Eval(r, gf16.Pow(gf16.Generator, i))
	}
	return synd
}

func allZero(xs []int) bool {
	for _, x := range xs {
		if x != 0 {
			return false
		}
	}
	return true
}

// errorLocator runs the Berlekamp-Massey iteration to find the minimal
// error-locator polynomial from the syndrome sequence.
func errorLocator(synd []int, s, erases int) gf16.Poly {
	errLoc := gf16.Poly{1}
	oldLoc := gf16.Poly{1}

	shift := 0
	if len(synd) > s {
		shift = len(synd) - s
	}

	for i := 0; i < s-erases; i++ {
		kappa := i + shift
		delta := synd[kappa]
		for j := 1; j < len(errLoc); j++ {
			delta ^= gf16.Mul(errLoc[len(errLoc)-(j+1)], synd[kappa-j])
		}
		oldLoc = append(oldLoc, 0)
		if delta != 0 {
			if len(oldLoc) > len(errLoc) {
				newLoc := gf16.ScalarMul(oldLoc, delta)
				oldLoc = gf16.ScalarMul(errLoc, gf16.Inverse(delta))
				errLoc = newLoc
			}
			errLoc = gf16.PolyAdd(errLoc, gf16.ScalarMul(oldLoc, delta))
		}
	}

	return trimLeadingZeros(errLoc)
}

func trimLeadingZeros(p gf16.Poly) gf16.Poly {
	i := 0
	for i < len(p) && p[i] == 0 {
		i++
	}
	return p[i:]
}

// chienSearch evaluates the reversed error-locator polynomial at every
// power of the generator to find error positions in codewordLen symbols.
func chienSearch(errLoc gf16.Poly, codewordLen int) []int {
	rev := reversed(errLoc)
	var positions []int
	for i := 0; i < codewordLen; i++ {
		if gf16.Eval(rev, gf16.Pow(gf16.Generator, i)) == 0 {
			positions = append(positions, codewordLen-1-i)
		}
	}
	return positions
}

func reversed(p gf16.Poly) gf16.Poly {
	out := make(gf16.Poly, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// correctErrors computes error magnitudes via Forney's formula and applies
// them, producing the corrected codeword.
func correctErrors(received, synd []int, positions []int) []int {
	n := len(received)
	syndRev := reversed(synd)

	coeffPos := make([]int, len(positions))
	for i, p := range positions {
		coeffPos[i] = n - 1 - p
	}

	dataErrLoc := gf16.Poly{1}
	for _, p := range coeffPos {
		term := gf16.PolyAdd(gf16.Poly{1}, gf16.Poly{gf16.Pow(gf16.Generator, p), 0})
		dataErrLoc = gf16.PolyMul(dataErrLoc, term)
	}

	omega := errorEvaluator(syndRev, dataErrLoc)

	chi := make([]int, len(coeffPos))
	for i, p := range coeffPos {
		chi[i] = gf16.Pow(gf16.Generator, p)
	}

	e := make([]int, n)
	for i := range chi {
		iChi := gf16.Inverse(chi[i])
		prime := 1
		for j := range chi {
			if i == j {
				continue
			}
			prime = gf16.Mul(prime, gf16.Add(1, gf16.Mul(iChi, chi[j])))
		}

		y := gf16.Eval(omega, iChi)
		// Spec-specified multiplier: pow(X_k, 1), i.e. X_k itself. See
		// DESIGN.md Open Question 1 for why this is kept as specified
		// rather than the conventional consecutive-root compensation.
		y = gf16.Mul(gf16.Pow(chi[i], 1), y)

		e[positions[i]] = gf16.Div(y, prime)
	}

	out := make([]int, n)
	for i := range out {
		out[i] = gf16.Add(received[i], e[i])
	}
	return out
}

// errorEvaluator computes the error-evaluator polynomial omega from the
// (already reversed) syndromes and the data error-locator polynomial,
// truncated to len(errLoc) trailing coefficients.
func errorEvaluator(syndRev, errLoc gf16.Poly) gf16.Poly {
	product := gf16.PolyMul(syndRev, errLoc)
	shift := len(product) - len(errLoc)
	if shift < 0 {
		shift = 0
	}
	out := make(gf16.Poly, len(product)-shift)
	copy(out, product[shift:])
	return out
}
