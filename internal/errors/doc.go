// Package errors provides typed error values for confgen.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Precondition errors: missing paths, missing template, empty secret key,
//     declined overwrite (ErrTemplateNotFound, ErrGenerationCancelled)
//   - Template errors: unparsable template, unknown directive (ErrUnknownDirective)
//   - Crypto errors: envelope validation failures (ErrDecryptFailed, ErrInvalidPadding)
//   - Prompt errors: no terminal for masked input (ErrNotATerminal)
//
// # Usage
//
// Crypto failures wrap the umbrella error so callers can test for either:
//
//	return "", fmt.Errorf("%w: %w", errors.ErrDecryptFailed, errors.ErrInvalidPadding)
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Generate(ctx, plan)
//	if errors.Is(err, kerrors.ErrRetriesExhausted) {
//	    // Show user-friendly message
//	}
package errors
