package secrets

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// SecretKeyLength is the number of characters in a generated master secret.
	SecretKeyLength = 50

	secretKeyChars = "abcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*(-_=+)"
)

// GenerateSecretKey returns a random master secret.
// '%' is replaced by '0' so the secret never collides with interpolation syntax
// in settings loaders that read the generated file.
func GenerateSecretKey() (string, error) {
	var b strings.Builder
	b.Grow(SecretKeyLength)

	charCount := big.NewInt(int64(len(secretKeyChars)))
	for i := 0; i < SecretKeyLength; i++ {
		n, err := rand.Int(randReader, charCount)
		if err != nil {
			return "", fmt.Errorf("failed to generate secret key: %w", err)
		}
		b.WriteByte(secretKeyChars[n.Int64()])
	}

	return strings.ReplaceAll(b.String(), "%", "0"), nil
}
