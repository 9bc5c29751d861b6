package secrets

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"unicode/utf8"

	kerrors "github.com/PolarWolf314/confgen/internal/errors"
)

const (
	// KeySize is the length of the AES-256 key derived from a passphrase.
	KeySize = sha256.Size

	// IVSize is the length of the random initialization vector prefixed to every envelope.
	IVSize = aes.BlockSize
)

// randReader is the entropy source for initialization vectors.
var randReader io.Reader = rand.Reader

// DeriveKey hashes the passphrase into a 32-byte AES key.
func DeriveKey(passphrase string) []byte {
	sum := sha256.Sum256([]byte(passphrase))
	return sum[:]
}

// Encrypt encrypts plaintext with AES-256-CBC under the key derived from passphrase.
// The result is base64(IV || ciphertext). Every call uses a fresh IV, so encrypting
// the same value twice yields different envelopes.
func Encrypt(plaintext, passphrase string) (string, error) {
	return EncryptBytes([]byte(plaintext), passphrase)
}

// EncryptBytes is Encrypt for raw bytes.
func EncryptBytes(plaintext []byte, passphrase string) (string, error) {
	block, err := aes.NewCipher(DeriveKey(passphrase))
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	padded := pad(plaintext, aes.BlockSize)
	envelope := make([]byte, IVSize+len(padded))
	iv := envelope[:IVSize]
	if _, err := io.ReadFull(randReader, iv); err != nil {
		return "", fmt.Errorf("failed to generate IV: %w", err)
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(envelope[IVSize:], padded)

	return base64.StdEncoding.EncodeToString(envelope), nil
}

// Decrypt reverses Encrypt. Padding is the only integrity check: there is no MAC,
// so a wrong passphrase usually fails with ErrInvalidPadding but can occasionally
// produce garbage that happens to be well padded.
func Decrypt(ciphertext, passphrase string) (string, error) {
	plaintext, err := DecryptBytes(ciphertext, passphrase)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8", kerrors.ErrDecryptFailed)
	}
	return string(plaintext), nil
}

// DecryptBytes is Decrypt without the final UTF-8 check.
func DecryptBytes(ciphertext, passphrase string) ([]byte, error) {
	envelope, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", kerrors.ErrDecryptFailed, kerrors.ErrInvalidCiphertext, err)
	}

	// At least one full block of padding always follows the IV.
	if len(envelope) < IVSize+aes.BlockSize || (len(envelope)-IVSize)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %w: length %d", kerrors.ErrDecryptFailed, kerrors.ErrInvalidCiphertext, len(envelope))
	}

	block, err := aes.NewCipher(DeriveKey(passphrase))
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	iv := envelope[:IVSize]
	data := make([]byte, len(envelope)-IVSize)
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(data, envelope[IVSize:])

	plaintext, err := unpad(data, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrDecryptFailed, err)
	}
	return plaintext, nil
}

// pad appends PKCS#7 padding. Block-aligned input gets a full block.
func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data), len(data)+n)
	copy(out, data)
	return append(out, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, kerrors.ErrInvalidPadding
	}
	n := int(data[len(data)-1])
	if n < 1 || n > blockSize || n > len(data) {
		return nil, kerrors.ErrInvalidPadding
	}
	if !bytes.Equal(data[len(data)-n:], bytes.Repeat([]byte{byte(n)}, n)) {
		return nil, kerrors.ErrInvalidPadding
	}
	return data[:len(data)-n], nil
}
