package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinIsPiped reports whether stdin carries piped data rather than a terminal.
func StdinIsPiped() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// ReadStdin reads all content from stdin with one trailing line ending removed.
// Returns an error if stdin is a terminal (no piped data) or cannot be read.
func ReadStdin() (string, error) {
	if !StdinIsPiped() {
		return "", fmt.Errorf("no data provided on stdin")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}

	return strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r"), nil
}
