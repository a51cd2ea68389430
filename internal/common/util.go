package common

import "crypto/rand"

// GenerateRandByteArray returns n cryptographically random bytes.
// It panics if the system random source fails.
func GenerateRandByteArray(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray overwrites b with zeros. A nil slice is ignored.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ClampCredits keeps a response-credit balance within [0, MaxResponseCredits].
func ClampCredits(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxResponseCredits {
		return MaxResponseCredits
	}
	return n
}
