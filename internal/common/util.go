package common

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// MakeRandHexString returns size random bytes encoded as hex, so the
// resulting string is 2*size characters long.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeByteArray overwrites b with zeros. Used for passwords read from the
// terminal once they have been sent. Nil-safe.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// BearerToken extracts the token from an Authorization header value.
// The second result is false when the scheme is not Bearer or the token is empty.
func BearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if !strings.HasPrefix(header, BearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
	return token, token != ""
}
