package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/PolarWolf314/confgen/internal/ui"
	"github.com/briandowns/spinner"
)

// startSpinner shows message behind a spinner while quiet is set. With quiet
// unset the message is only logged so verbose and debug output stay readable.
// The returned finish prints its argument on a line of its own and must be
// called exactly once.
func startSpinner(message string, quiet bool) (finish func(msg string)) {
	Logger.Debugf("Starting spinner with message: %s", message)
	if !quiet {
		Logger.Infof("%s", message)
		return printFinal
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(os.Stderr))
	s.Suffix = " " + message
	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	// Stray log.Print calls would tear the spinner line.
	log.SetOutput(io.Discard)
	s.Start()

	return func(msg string) {
		s.Stop()
		log.SetOutput(os.Stderr)
		printFinal(msg)
	}
}

func printFinal(msg string) {
	if msg != "" {
		fmt.Print(ui.EnsureNewline(msg))
	}
}

// fail formats a one-line failure message.
func fail(msg string) string {
	return ui.Error.Sprint("✗") + " " + msg
}

// hint formats a follow-up suggestion shown under a failure.
func hint(msg string) string {
	return ui.Info.Sprint("→") + " " + msg
}
