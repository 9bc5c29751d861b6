package utils

import (
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/confgen/internal/errors"
	"golang.org/x/term"
)

// ReadPassphrase prompts on stderr and reads a line from stdin without echoing it.
// Returns ErrNotATerminal if stdin is not a terminal.
func ReadPassphrase(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return nil, kerrors.ErrNotATerminal
	}

	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // ReadPassword swallows the newline

	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}

	return passphrase, nil
}
