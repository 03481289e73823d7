package reedsolomon

import "errors"

// ErrTooManyErrors is returned when the received word carries more errors
// than the configured correction-symbol count can locate or correct.
var ErrTooManyErrors = errors.New("reedsolomon: too many errors to correct")

// ErrUncorrectable is returned when a corrected codeword fails
// re-verification, or when every rotation attempted by TryHardDecode fails.
var ErrUncorrectable = errors.New("reedsolomon: uncorrectable")
