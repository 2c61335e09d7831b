package common

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString returns a hex string derived from size random bytes,
// so the result is 2*size characters long. Used for OAuth state values.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
