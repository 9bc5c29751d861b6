package workflows

import (
	"context"

	"github.com/PolarWolf314/confgen/internal/audit"
	kerrors "github.com/PolarWolf314/confgen/internal/errors"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// Value is the plaintext to encrypt.
	Value string

	// Secret is the master secret. Required.
	Secret string

	// Cipher defaults to AESCipher.
	Cipher Cipher
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	// Ciphertext is the base64 envelope, ready to paste into a settings file.
	Ciphertext string
}

// EncryptValue encrypts a single value with the settings-file envelope.
//
// Returns ErrEmptySecretKey if no secret is given.
func EncryptValue(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	if opts.Secret == "" {
		return nil, kerrors.ErrEmptySecretKey
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ciphertext, err := cipherOrDefault(opts.Cipher).Encrypt(opts.Value, opts.Secret)

	entry := audit.LogWithUser("encrypt")
	entry.Outcome = outcome(err)
	audit.Log(entry)

	if err != nil {
		return nil, err
	}
	return &EncryptResult{Ciphertext: ciphertext}, nil
}

func outcome(err error) string {
	if err != nil {
		return "failed"
	}
	return "success"
}
