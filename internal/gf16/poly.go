package gf16

// Poly is a polynomial over GF(16), coefficients stored most-significant
// first (matching how Reed-Solomon codewords and error-locator polynomials
// are evaluated via Horner's rule elsewhere in this module).
type Poly []int

// ScalarMul multiplies every coefficient of p by sc. The result has the
// same length as p.
func ScalarMul(p Poly, sc int) Poly {
	out := make(Poly, len(p))
	for i, c := range p {
		out[i] = Mul(c, sc)
	}
	return out
}

// PolyAdd adds two polynomials. The result has length max(len(p), len(q));
// both inputs are right-aligned (i.e. aligned on their lowest-degree /
// final coefficient) before being XORed together.
func PolyAdd(p, q Poly) Poly {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(Poly, n)
	for i, c := range p {
		out[i+n-len(p)] = c
	}
	for i, c := range q {
		idx := i + n - len(q)
		out[idx] = out[idx] ^ c
	}
	return out
}

// PolyMul multiplies two polynomials. The result has length
// len(p) + len(q) - 1.
func PolyMul(p, q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return Poly{}
	}
	out := make(Poly, len(p)+len(q)-1)
	for i, pc := range p {
		if pc == 0 {
			continue
		}
		for j, qc := range q {
			out[i+j] ^= Mul(pc, qc)
		}
	}
	return out
}

// Eval evaluates p at x via Horner's rule, treating p[0] as the
// highest-degree coefficient. Result is masked to 4 bits.
func Eval(p Poly, x int) int {
	if len(p) == 0 {
		return 0
	}
	y := p[0]
	for i := 1; i < len(p); i++ {
		y = (Mul(y, x) ^ p[i]) & 0xF
	}
	return y & 0xF
}

// GeneratorPoly builds the irreducible generator polynomial for s
// Reed-Solomon check symbols: gen = product_{i=0}^{s-1} (x - generator^i),
// i.e. [1, pow(2,i)] for each i, matching spec.md's §4.2 construction.
func GeneratorPoly(s int) Poly {
	gen := Poly{1}
	for i := 0; i < s; i++ {
		gen = PolyMul(gen, Poly{1, Pow(Generator, i)})
	}
	return gen
}
