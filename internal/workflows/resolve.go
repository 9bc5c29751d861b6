package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/confgen/internal/prompt"
	"github.com/PolarWolf314/confgen/internal/template"
)

// resolve applies one policy per directive, in template order:
//   - DJANGO_SECRET_KEY: deferred until the master secret is accepted
//   - ENCRYPTED_USER_VALUE: masked prompt, encrypted later under the accepted secret
//   - USER_VALUE: visible prompt, written as typed
//   - anything else: empty value, reported through UnknownFields
func (p *GeneratePlan) resolve(ctx context.Context, fields []template.Field, pr prompt.Prompter) error {
	for _, f := range fields {
		if err := ctx.Err(); err != nil {
			return err
		}

		ref := FieldRef{Section: f.Section, Key: f.Key}
		switch f.Directive {
		case template.SecretKey:
			p.secretFields = append(p.secretFields, ref)

		case template.EncryptedUserValue:
			value, err := pr.AskMasked(fmt.Sprintf("Value for [%s] %s (will be encrypted) : ", f.Section, f.Key))
			if err != nil {
				return fmt.Errorf("reading value for [%s] %s: %w", f.Section, f.Key, err)
			}
			p.values[ref] = value
			p.encrypted = append(p.encrypted, ref)

		case template.UserValue:
			value, err := pr.AskVisible(fmt.Sprintf("Value for [%s] %s : ", f.Section, f.Key))
			if err != nil {
				return fmt.Errorf("reading value for [%s] %s: %w", f.Section, f.Key, err)
			}
			p.values[ref] = value

		default:
			p.UnknownFields = append(p.UnknownFields, f)
		}
	}
	return nil
}
