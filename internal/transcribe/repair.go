package transcribe

// firstChiralityError returns the first position whose recorded chirality
// does not match its expected value (position&1), or -1 if the whole
// stream is consistent.
func firstChiralityError(chirality []int) int {
	for i, c := range chirality {
		if c != i&1 {
			return i
		}
	}
	return -1
}

// repairOnce runs a single iteration of the chirality repair rule against
// codes/chirality, appending the position it touched to transposeLog, and
// reports whether the stream is now believed complete (true) or needs
// another pass (false).
//
// codes and chirality are always kept the same length; every branch that
// inserts into one inserts into the other at the same position, and every
// branch that deletes from one deletes from the other.
func repairOnce(expectedLen int, codes, chirality, transposeLog *[]int) bool {
	c, chi := *codes, *chirality

	if len(c) != len(chi) {
		return true
	}

	current := len(c)
	minLength := (2 * expectedLen) / 3
	if current < minLength {
		// Too degraded to recover accurately.
		return true
	}

	firstErr := firstChiralityError(chi)
	if current == expectedLen && firstErr < 0 {
		return true
	}

	if current < expectedLen {
		if firstErr < 0 {
			chiAtEnd := current & 1
			diff := expectedLen - current
			if diff == 1 && chiAtEnd != 1 {
				c = insertAt(c, 0, 0)
				chi = insertAt(chi, 0, 0)
				*transposeLog = append(*transposeLog, 0)
			} else {
				c = append(c, 0)
				chi = append(chi, chiAtEnd)
				*transposeLog = append(*transposeLog, current)
			}
		} else {
			chiAtErr := firstErr & 1
			c = insertAt(c, firstErr, 0)
			chi = insertAt(chi, firstErr, chiAtErr)
			*transposeLog = append(*transposeLog, firstErr)
		}

		*codes, *chirality = c, chi
		return false
	}

	if current > expectedLen {
		expectedLastChi := (1 + expectedLen) & 1
		if chi[current-1] != expectedLastChi {
			*codes = c[:current-1]
			*chirality = chi[:current-1]
			*transposeLog = append(*transposeLog, current-1)
			return false
		}

		pos := firstErr
		if pos < 0 {
			pos = current - 1
		}
		c = deleteAt(c, pos)
		chi = deleteAt(chi, pos)
		*transposeLog = append(*transposeLog, pos)

		*codes, *chirality = c, chi
		return false
	}

	// Correct length, but characters may be transposed.
	if firstErr >= expectedLen-1 {
		return true
	}

	if chi[firstErr] == chi[firstErr+1] {
		// A swap cannot fix this; flip chirality in place so the scan can
		// continue past it.
		chi[firstErr] = 1 - chi[firstErr]
		*transposeLog = append(*transposeLog, firstErr)
		return false
	}

	c[firstErr], c[firstErr+1] = c[firstErr+1], c[firstErr]
	chi[firstErr], chi[firstErr+1] = chi[firstErr+1], chi[firstErr]
	*transposeLog = append(*transposeLog, firstErr)
	return false
}

func insertAt(s []int, pos, v int) []int {
	out := make([]int, 0, len(s)+1)
	out = append(out, s[:pos]...)
	out = append(out, v)
	out = append(out, s[pos:]...)
	return out
}

func deleteAt(s []int, pos int) []int {
	out := make([]int, 0, len(s)-1)
	out = append(out, s[:pos]...)
	out = append(out, s[pos+1:]...)
	return out
}
