package workflows

import (
	"context"
	"errors"
	"fmt"

	kerrors "github.com/PolarWolf314/confgen/internal/errors"
)

type secretState int

const (
	secretAwaiting secretState = iota
	secretValidating
	secretAccepted
	secretFailed
)

// acceptance is the outcome of a successful validation loop.
type acceptance struct {
	secret    string
	encrypted map[FieldRef]string
	attempts  int
}

// acceptSecret finds a master secret under which every encrypted field
// survives an encrypt/decrypt round trip. A generated secret is replaced up to
// maxRetries times; an entered secret gets a single attempt.
func (p *GeneratePlan) acceptSecret(ctx context.Context) (*acceptance, error) {
	maxRetries := p.maxRetries
	if p.SecretSource == SecretEntered {
		maxRetries = 0
	}

	var (
		state     = secretAwaiting
		attempts  int
		candidate string
		encrypted map[FieldRef]string
		lastErr   error
	)

	for {
		switch state {
		case secretAwaiting:
			if attempts > maxRetries {
				state = secretFailed
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			if p.SecretSource == SecretEntered {
				candidate = p.secret
			} else {
				secret, err := p.generate()
				if err != nil {
					return nil, err
				}
				candidate = secret
			}
			attempts++
			state = secretValidating

		case secretValidating:
			var err error
			encrypted, err = p.roundTrip(candidate)
			switch {
			case err == nil:
				state = secretAccepted
			case retryable(err):
				lastErr = err
				state = secretAwaiting
			default:
				return nil, err
			}

		case secretAccepted:
			return &acceptance{secret: candidate, encrypted: encrypted, attempts: attempts}, nil

		case secretFailed:
			return nil, fmt.Errorf("%w: tried %d secret key(s), retried %d: %w",
				kerrors.ErrRetriesExhausted, attempts, attempts-1, lastErr)
		}
	}
}

// roundTrip encrypts every registered field with secret and checks that it
// decrypts back to the exact plaintext. The validated ciphertexts are reused
// for the output.
func (p *GeneratePlan) roundTrip(secret string) (map[FieldRef]string, error) {
	encrypted := make(map[FieldRef]string, len(p.encrypted))

	for _, ref := range p.encrypted {
		plaintext := p.values[ref]

		ciphertext, err := p.cipher.Encrypt(plaintext, secret)
		if err != nil {
			return nil, fmt.Errorf("encrypting [%s] %s: %w", ref.Section, ref.Key, err)
		}

		decrypted, err := p.cipher.Decrypt(ciphertext, secret)
		if err != nil {
			return nil, fmt.Errorf("validating [%s] %s: %w", ref.Section, ref.Key, err)
		}
		if decrypted != plaintext {
			return nil, fmt.Errorf("validating [%s] %s: %w", ref.Section, ref.Key, kerrors.ErrRoundTripMismatch)
		}

		encrypted[ref] = ciphertext
	}

	return encrypted, nil
}

func retryable(err error) bool {
	return errors.Is(err, kerrors.ErrDecryptFailed) || errors.Is(err, kerrors.ErrRoundTripMismatch)
}
