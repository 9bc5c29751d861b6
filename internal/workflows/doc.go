// Package workflows provides the business logic behind confgen commands.
//
// The cmd/ package stays a thin layer that parses flags, runs spinners and
// formats results. Workflows do everything else and return typed errors from
// the internal/errors package.
//
// # Settings Generation
//
// Generation is split in two so the CLI can show a spinner only once all
// interactive input is collected:
//
//	plan, err := workflows.PrepareGenerate(ctx, opts) // prompts, no output
//	result, err := workflows.Generate(ctx, plan)      // validate, encrypt, write
//
// PrepareGenerate walks the template placeholders in order. USER_VALUE fields
// are read on the echoing channel, ENCRYPTED_USER_VALUE fields on the masked
// channel, and DJANGO_SECRET_KEY fields are set aside for the master secret.
//
// Generate then runs the secret validation loop: each encrypted field is
// encrypted with the candidate secret and decrypted again, and the result must
// equal the original value. A generated secret that fails is replaced, up to
// MaxRetries times. An entered secret gets exactly one attempt. Only when a
// secret is accepted is the settings file written.
//
// # Value Commands
//
// EncryptValue and DecryptValue apply the same envelope to single values.
//
// # Context Usage
//
// Workflow functions take a context.Context and check it between prompts and
// between validation attempts.
package workflows
