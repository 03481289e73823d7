package multicode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := []byte("Hello, world!\x00")
	code, err := Encode(payload, 8)
	require.NoError(t, err)

	// 14 bytes -> 28 nybbles + 8 check symbols = 36 symbols; 8 '-'
	// separators land at i%4==0 for i in [4,8,...,32], i.e. 8 of them.
	stripped := strings.ReplaceAll(strings.ReplaceAll(code, "-", ""), " ", "")
	assert.Len(t, stripped, 36)
	assert.Equal(t, 8, strings.Count(code, "-"))

	got, err := Decode(code, len(payload), 8)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDecodeRecoversFromSwapAndDeletion(t *testing.T) {
	payload := []byte("Hello, world!\x00")
	code, err := Encode(payload, 8)
	require.NoError(t, err)

	b := []byte(code)
	b[0], b[1] = b[1], b[0]
	if len(b) > 19 {
		b[18], b[19] = b[19], b[18]
	}
	corrupted := string(b)
	if len(corrupted) > 52 {
		corrupted = corrupted[:52] + corrupted[53:]
	}

	got, err := Decode(corrupted, len(payload), 8)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDecodeToleratesAmbiguousOForLeadingZeroGlyph(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	code, err := Encode(payload, 6)
	require.NoError(t, err)

	ambiguous := strings.Replace(code, "0", "O0", 1)

	got, err := Decode(ambiguous, len(payload), 6)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDecodeIgnoresStraySeparatorsOnAllZeroPayload(t *testing.T) {
	payload := []byte{0, 0, 0, 0}
	code, err := Encode(payload, 4)
	require.NoError(t, err)

	noisy := "._" + code + "_.."
	got, err := Decode(noisy, len(payload), 4)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDecodeRotationTolerant(t *testing.T) {
	payload := []byte{0x00, 0x00, 0xFF}
	code, err := Encode(payload, 4)
	require.NoError(t, err)

	stripped := strings.ReplaceAll(strings.ReplaceAll(code, "-", ""), " ", "")
	rotated := stripped[1:] + stripped[:1]

	got, err := Decode(rotated, len(payload), 4)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDecodeNeverSilentlyWrongOnOverwhelmingCorruption(t *testing.T) {
	payload := []byte{1, 2, 3, 4}
	s := 4
	code, err := Encode(payload, s)
	require.NoError(t, err)

	b := []byte(code)
	corrupted := 0
	for i := range b {
		if corrupted > s {
			break
		}
		if b[i] == ' ' || b[i] == '-' {
			continue
		}
		b[i] = '~'
		corrupted++
	}

	got, err := Decode(string(b), len(payload), s)
	if err == nil {
		assert.Equal(t, payload, got)
	}
}

func TestEncodeDecodeAreDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		// 2*n+s must stay within the GF(16) codeword-length bound (spec.md
		// §6: 2N+S <= 15), so draw n first and cap s by what's left.
		n := rapid.IntRange(1, 6).Draw(t, "n")
		payload := make([]byte, n)
		for i := range payload {
			payload[i] = byte(rapid.IntRange(0, 255).Draw(t, "b"))
		}
		s := rapid.IntRange(0, 15-2*n).Draw(t, "s")

		code1, err1 := Encode(payload, s)
		code2, err2 := Encode(payload, s)
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, code1, code2)

		got1, errd1 := Decode(code1, n, s)
		got2, errd2 := Decode(code1, n, s)
		require.NoError(t, errd1)
		require.NoError(t, errd2)
		assert.Equal(t, got1, got2)
		assert.Equal(t, payload, got1)
	})
}

func TestEncodeRejectsInvalidArguments(t *testing.T) {
	_, err := Encode(nil, 4)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Encode([]byte{1}, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDecodeRejectsInvalidArguments(t *testing.T) {
	_, err := Decode("abcd", 0, 4)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Decode("abcd", 4, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDecodeRejectsTruncatedInput(t *testing.T) {
	payload := []byte{1, 2, 3, 4}
	code, err := Encode(payload, 4)
	require.NoError(t, err)

	stripped := strings.ReplaceAll(strings.ReplaceAll(code, "-", ""), " ", "")
	_, err = Decode(stripped[:len(stripped)/2], len(payload), 4)
	assert.Error(t, err)
}
