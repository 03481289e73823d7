// Package transcribe implements the two-alphabet printable encoding for
// multicode symbols, the chirality-based transcription-error repair loop,
// and the glyph normalization rules (case folding, space-like character
// filtering, ambiguous-glyph remapping) that feed it.
package transcribe

// OddAlphabet holds the 16 glyphs used at even symbol positions (0, 2, 4,
// ...), index i giving symbol value i.
var OddAlphabet = [16]byte{'0', '1', '2', '3', '6', '7', '8', '9', 'b', 'G', 'J', 'N', 'q', 'X', 'Y', 'Z'}

// EvenAlphabet holds the 16 glyphs used at odd symbol positions (1, 3, 5,
// ...), index i giving symbol value i.
var EvenAlphabet = [16]byte{'4', '5', 'A', 'C', 'D', 'E', 'F', 'H', 'K', 'M', 'P', 'R', 's', 'T', 'V', 'W'}

// errorGlyph is emitted in place of an out-of-range symbol value; this
// should never happen with a correctly produced codeword.
const errorGlyph = '~'

// isSpaceLike reports whether c is one of the punctuation characters
// treated as a separator and discarded on input.
func isSpaceLike(c byte) bool {
	switch c {
	case ' ', '-', '.', '_', '+', '*', '#':
		return true
	default:
		return false
	}
}

// applyCaseChanges re-lowercases the glyphs that were chosen specifically
// to be visually distinct from digits once case-folded: B/b, Q/q, S/s.
func applyCaseChanges(c byte) byte {
	switch c {
	case 'B':
		return 'b'
	case 'Q':
		return 'q'
	case 'S':
		return 's'
	default:
		return c
	}
}

// applyAmbiguityCorrection maps commonly-mistyped glyphs to the character
// they are most likely to have been: O->0, L/I->1, U->V.
func applyAmbiguityCorrection(c byte) byte {
	switch c {
	case 'O':
		return '0'
	case 'L', 'I':
		return '1'
	case 'U':
		return 'V'
	default:
		return c
	}
}

// indexOf returns the index of target in alphabet, or -1 if absent.
func indexOf(alphabet [16]byte, target byte) int {
	for i, c := range alphabet {
		if c == target {
			return i
		}
	}
	return -1
}

// Normalize applies the full per-character normalization pipeline
// (upper-case, space-like filtering is the caller's responsibility, case
// distinction swaps, then ambiguity correction) and looks the result up in
// both alphabets.
//
// Returns (oddIndex, evenIndex), each -1 if not found in that alphabet. By
// construction a glyph can match at most one of the two disjoint
// alphabets; both non-negative indicates a structural impossibility.
func Normalize(c byte) (oddIndex, evenIndex int) {
	// Clear the 0x20 bit of lower-case letters to force upper-case (the
	// `c & 0xDF` trick); digits and other bytes are left as they are.
	upper := c
	if upper >= 'a' && upper <= 'z' {
		upper &= 0xDF
	}
	upper = applyCaseChanges(upper)
	upper = applyAmbiguityCorrection(upper)

	return indexOf(OddAlphabet, upper), indexOf(EvenAlphabet, upper)
}
