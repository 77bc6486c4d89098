package common

import (
	"crypto/rand"
	"io"
)

// GenerateRandByteArray returns size cryptographically random bytes.
// It panics if the system RNG fails, which is unrecoverable anyway.
func GenerateRandByteArray(size int) []byte {
	buf := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		panic(err)
	}
	return buf
}

// WipeByteArray overwrites the buffer with zeros. Safe to call with nil.
// Use it to clear password bytes once they are no longer needed.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

// TruncateText shortens text to at most max runes, appending suffix when
// anything was cut off.
func TruncateText(text string, max int, suffix string) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + suffix
}
