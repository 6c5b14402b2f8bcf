package helpers

import (
	"crypto/rand"
	"encoding/hex"
)

// GenResetToken returns a hex-encoded random token with 256 bits of entropy,
// used for single-use password-reset tickets.
func GenResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
