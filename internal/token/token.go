package token

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// alphabet is the character set of generated tokens; alphanumeric only so
// every generated token passes the scanner's opaque-token check
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// BodyLength is the number of characters following the prefix
const BodyLength = 15

// Prefixes in the Gotify style: A for application tokens, C for clients
const (
	AppPrefix    = "A"
	ClientPrefix = "C"
)

// Random generates a fresh token of the given prefix from crypto/rand
func Random(prefix string) (string, error) {
	buf := make([]byte, BodyLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	out := make([]byte, BodyLength)
	for i, b := range buf {
		out[i] = alphabet[int(b)%len(alphabet)]
	}

	return prefix + string(out), nil
}

// Derive generates a token deterministically from a seed and label, so
// repeated runs with the same seed produce identical fixtures
func Derive(seed, label, prefix string) string {
	sum := Seed(seed, label)

	out := make([]byte, BodyLength)
	for i := 0; i < BodyLength; i++ {
		out[i] = alphabet[int(sum[i])%len(alphabet)]
	}

	return prefix + string(out)
}

// Seed returns 32 bytes of key material derived from seed and label, for
// uses that need raw bytes rather than a token string
func Seed(seed, label string) []byte {
	sum := blake2b.Sum256([]byte(seed + "\x00" + label))
	return sum[:]
}
