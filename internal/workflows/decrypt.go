package workflows

import (
	"context"
	"strings"

	"github.com/PolarWolf314/confgen/internal/audit"
	kerrors "github.com/PolarWolf314/confgen/internal/errors"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// Ciphertext is the base64 envelope to decrypt. Surrounding whitespace is ignored.
	Ciphertext string

	// Secret is the master secret. Required.
	Secret string

	// Cipher defaults to AESCipher.
	Cipher Cipher
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	Plaintext string
}

// DecryptValue decrypts a single settings value.
//
// Returns ErrEmptySecretKey if no secret is given.
// Returns ErrDecryptFailed if the envelope does not validate under the secret.
func DecryptValue(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	if opts.Secret == "" {
		return nil, kerrors.ErrEmptySecretKey
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	plaintext, err := cipherOrDefault(opts.Cipher).Decrypt(strings.TrimSpace(opts.Ciphertext), opts.Secret)

	entry := audit.LogWithUser("decrypt")
	entry.Outcome = outcome(err)
	audit.Log(entry)

	if err != nil {
		return nil, err
	}
	return &DecryptResult{Plaintext: plaintext}, nil
}
