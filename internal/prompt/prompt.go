package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/confgen/internal/errors"
	"github.com/PolarWolf314/confgen/internal/utils"
)

// Prompter asks the operator for values.
type Prompter interface {
	// AskVisible reads a line on an echoing channel.
	AskVisible(prompt string) (string, error)

	// AskMasked reads a line on a non-echoing channel.
	AskMasked(prompt string) (string, error)
}

// Terminal is the interactive console Prompter.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer

	// readMasked reads without echo; replaced in tests.
	readMasked func(prompt string) ([]byte, error)

	// OnEchoFallback is called when a masked prompt has to fall back to an
	// echoing read because stdin is not a terminal.
	OnEchoFallback func()
}

// NewTerminal returns a Prompter reading from stdin and prompting on stdout.
func NewTerminal() *Terminal {
	return &Terminal{
		in:         bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		readMasked: utils.ReadPassphrase,
	}
}

// AskVisible prints prompt and returns the next input line without its line ending.
func (t *Terminal) AskVisible(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	return t.readLine()
}

// AskMasked reads a value without echoing it. When stdin is not a terminal
// (piped input) the value is read as a plain line instead.
func (t *Terminal) AskMasked(prompt string) (string, error) {
	value, err := t.readMasked(prompt)
	if err == nil {
		return string(value), nil
	}
	if !errors.Is(err, kerrors.ErrNotATerminal) {
		return "", err
	}

	if t.OnEchoFallback != nil {
		t.OnEchoFallback()
	}
	return t.AskVisible(prompt)
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
