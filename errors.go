package multicode

import (
	"errors"

	"github.com/jalphad/multicode/internal/transcribe"
)

// ErrInvalidArgument is returned when Encode or Decode is called with
// arguments that can never succeed: empty data, a non-positive payload
// length, or a negative correction-symbol count.
var ErrInvalidArgument = errors.New("multicode: invalid argument")

// ErrTooManyErrors is returned when a code carries more corruption than
// its correction symbols can repair.
var ErrTooManyErrors = errors.New("multicode: too many errors to correct")

// ErrLengthMismatch is returned when the cleaned, repaired input is not
// exactly the expected length, meaning the transcription repair loop gave
// up rather than converging.
var ErrLengthMismatch = errors.New("multicode: decoded length mismatch")

// ErrStructuralImpossibility is returned when a single glyph matches both
// alphabets, which cannot happen by construction; see
// transcribe.ErrStructuralImpossibility.
var ErrStructuralImpossibility = transcribe.ErrStructuralImpossibility
