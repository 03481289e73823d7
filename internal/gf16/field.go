// Package gf16 implements GF(16) arithmetic: the 4-bit-symbol finite field
// used throughout the multicode Reed-Solomon layer, plus polynomials over
// that field.
//
// The field is fixed across the whole system: symbol size 4 bits, primitive
// polynomial 19 (binary 10011, i.e. x^4 + x + 1), generator 2. There is
// exactly one instance of this field, so unlike a general GF(p^n)
// implementation there is no Field/Element object graph — symbols are plain
// ints in [0,16) and the table is process-wide state, built once.
package gf16

import "sync"

const (
	// Prime is the primitive polynomial defining the field (binary 10011).
	Prime = 19
	// Generator is the field's multiplicative generator.
	Generator = 2
)

var (
	once   sync.Once
	expTbl [32]int
	logTbl [16]int
)

// createTables builds the exp/log lookup tables.
//
// exp[i] holds generator^i for i in 0..14, duplicated into 15..31 so that
// (log a + log b) can be looked up directly without a modulo when the sum
// is less than 30.
func createTables() {
	x := 1
	for i := 0; i < 16; i++ {
		expTbl[i] = x & 0xF
		logTbl[x] = i & 0xF
		x <<= 1
		if x&0x110 != 0 {
			x ^= Prime
		}
	}
	for i := 15; i < 32; i++ {
		expTbl[i] = expTbl[i-15] & 0xF
	}
}

func tables() {
	once.Do(createTables)
}

// Add returns a XOR b, masked to 4 bits. Addition and subtraction coincide
// in characteristic 2.
func Add(a, b int) int {
	return (a ^ b) & 0xF
}

// Sub returns a - b. Identical to Add: GF(16) has characteristic 2.
func Sub(a, b int) int {
	return Add(a, b)
}

// Mul returns a * b in GF(16).
func Mul(a, b int) int {
	tables()
	if a == 0 || b == 0 {
		return 0
	}
	return expTbl[(logTbl[a]+logTbl[b])%15]
}

// Div returns a / b in GF(16). Callers must not pass b == 0.
func Div(a, b int) int {
	tables()
	if a == 0 || b == 0 {
		return 0
	}
	return expTbl[(logTbl[a]+15-logTbl[b])%15]
}

// Pow returns n^p in GF(16). Behavior of Pow(0, p) is undefined; callers
// must not invoke it.
func Pow(n, p int) int {
	tables()
	return expTbl[(logTbl[n]*p)%15]
}

// Inverse returns the multiplicative inverse of n. Behavior of Inverse(0)
// is undefined; callers must not invoke it.
func Inverse(n int) int {
	tables()
	return expTbl[15-logTbl[n]]
}
