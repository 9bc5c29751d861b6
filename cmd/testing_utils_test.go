package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/confgen/internal/configs"
	logger "github.com/PolarWolf314/confgen/internal/logging"
	"github.com/PolarWolf314/confgen/internal/prompt"
	"github.com/spf13/cobra"
)

const testTemplate = `[DJANGO]
KEY = {DJANGO_SECRET_KEY}

[DATABASE_CREDENTIALS]
USER = {USER_VALUE}
PASSWORD = {ENCRYPTED_USER_VALUE}
`

// setupTestEnvironment moves into a temp directory, points user settings at
// another one, and scripts the prompter.
func setupTestEnvironment(t *testing.T, p *prompt.Scripted) string {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	originalUserSettings := configs.UserConfgenSettings

	tempDir := t.TempDir()
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	configs.UserConfgenSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(t.TempDir(), "config"),
		Username:        "testuser",
	}

	restorePrompter := SetPrompter(p)

	t.Cleanup(func() {
		restorePrompter()
		ResetGlobalState()
		configs.UserConfgenSettings = originalUserSettings
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
	})

	return tempDir
}

func writeTemplate(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "settings.ini.template")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write template: %v", err)
	}
	return path
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)
	for _, r := range []io.Reader{stdoutReader, stderrReader} {
		go func(r io.Reader) {
			var buf bytes.Buffer
			_, _ = io.Copy(&buf, r)
			outputChan <- buf.String()
		}(r)
	}

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-outputChan + <-outputChan, err
}

// runCLI executes "confgen settings <args...>" against the real commands.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	Logger = logger.Logger{}
	rootCmd := &cobra.Command{Use: "confgen"}
	rootCmd.AddCommand(SettingsCmd)
	rootCmd.SetArgs(append([]string{"settings"}, args...))

	var out bytes.Buffer
	encryptCmd.SetOut(&out)
	decryptCmd.SetOut(&out)

	output, err := captureOutput(rootCmd.Execute)
	return output + out.String(), err
}

func assertContains(t *testing.T, output string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(output, w) {
			t.Errorf("Expected %q in output:\n%s", w, output)
		}
	}
}
