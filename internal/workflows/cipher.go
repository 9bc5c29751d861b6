package workflows

import (
	"github.com/PolarWolf314/confgen/internal/secrets"
)

// Cipher encrypts and decrypts settings values under a master secret.
type Cipher interface {
	Encrypt(plaintext, secret string) (string, error)
	Decrypt(ciphertext, secret string) (string, error)
}

// AESCipher is the AES-256-CBC envelope from the secrets package.
type AESCipher struct{}

func (AESCipher) Encrypt(plaintext, secret string) (string, error) {
	return secrets.Encrypt(plaintext, secret)
}

func (AESCipher) Decrypt(ciphertext, secret string) (string, error) {
	return secrets.Decrypt(ciphertext, secret)
}

func cipherOrDefault(c Cipher) Cipher {
	if c == nil {
		return AESCipher{}
	}
	return c
}
