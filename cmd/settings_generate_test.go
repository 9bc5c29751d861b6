package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/confgen/internal/configs"
	kerrors "github.com/PolarWolf314/confgen/internal/errors"
	"github.com/PolarWolf314/confgen/internal/prompt"
	"github.com/PolarWolf314/confgen/internal/secrets"
	"github.com/PolarWolf314/confgen/internal/template"
)

func TestGenerateCommand(t *testing.T) {
	p := &prompt.Scripted{Visible: []string{"n", "S", "user"}, Masked: []string{"pass"}}
	dir := setupTestEnvironment(t, p)
	templatePath := writeTemplate(t, dir, testTemplate)

	output, err := runCLI(t, "generate", templatePath, "settings.ini")
	if err != nil {
		t.Fatalf("Command failed: %v\n%s", err, output)
	}
	assertContains(t, output, "Settings written to", "encrypted: [DATABASE_CREDENTIALS] PASSWORD")

	out, err := template.Load(filepath.Join(dir, "settings.ini"))
	if err != nil {
		t.Fatalf("Failed to load output: %v", err)
	}
	ciphertext, _ := out.Value("DATABASE_CREDENTIALS", "PASSWORD")
	if plaintext, err := secrets.Decrypt(ciphertext, "S"); err != nil || plaintext != "pass" {
		t.Errorf("PASSWORD does not decrypt under S: %q, %v", plaintext, err)
	}
}

func TestGenerateCommandForceFlag(t *testing.T) {
	p := &prompt.Scripted{Visible: []string{"user"}, Masked: []string{"pass"}}
	dir := setupTestEnvironment(t, p)
	templatePath := writeTemplate(t, dir, testTemplate)

	output, err := runCLI(t, "generate", "--force-secret-key", templatePath, "settings.ini")
	if err != nil {
		t.Fatalf("Command failed: %v\n%s", err, output)
	}
	assertContains(t, output, "generated secret key is stored in [DJANGO] KEY")

	for _, asked := range p.Asked {
		if strings.Contains(asked, "secret key") {
			t.Errorf("Unexpected secret prompt: %q", asked)
		}
	}
}

func TestGenerateCommandUsesConfigFile(t *testing.T) {
	p := &prompt.Scripted{Visible: []string{"user"}, Masked: []string{"pass"}}
	dir := setupTestEnvironment(t, p)
	writeTemplate(t, dir, testTemplate)

	err := configs.SaveConfig(filepath.Join(dir, configs.ConfigFileName), configs.Config{
		TemplatePath:   "settings.ini.template",
		OutputPath:     "out/settings.ini",
		ForceSecretKey: true,
		MaxRetries:     1,
	})
	if err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	output, err := runCLI(t, "generate")
	if err != nil {
		t.Fatalf("Command failed: %v\n%s", err, output)
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "settings.ini")); err != nil {
		t.Errorf("Expected settings file from config paths: %v", err)
	}
}

func TestGenerateCommandMissingPaths(t *testing.T) {
	setupTestEnvironment(t, &prompt.Scripted{})

	output, err := runCLI(t, "generate")
	if !errors.Is(err, kerrors.ErrMissingTemplatePath) {
		t.Errorf("Expected ErrMissingTemplatePath, got %v", err)
	}
	assertContains(t, output, "Settings template path undefined")
}

func TestGenerateCommandMissingTemplate(t *testing.T) {
	setupTestEnvironment(t, &prompt.Scripted{})

	output, err := runCLI(t, "generate", "nope.template", "settings.ini")
	if !errors.Is(err, kerrors.ErrTemplateNotFound) {
		t.Errorf("Expected ErrTemplateNotFound, got %v", err)
	}
	assertContains(t, output, "does not exist")
}

func TestGenerateCommandCancelledOverwrite(t *testing.T) {
	dir := setupTestEnvironment(t, &prompt.Scripted{Visible: []string{"n"}})
	templatePath := writeTemplate(t, dir, testTemplate)
	if err := os.WriteFile("settings.ini", []byte("keep me"), 0600); err != nil {
		t.Fatal(err)
	}

	output, err := runCLI(t, "generate", templatePath, "settings.ini")
	if !errors.Is(err, kerrors.ErrGenerationCancelled) {
		t.Errorf("Expected ErrGenerationCancelled so the process exits non-zero, got %v", err)
	}
	assertContains(t, output, "Generation cancelled")

	data, _ := os.ReadFile("settings.ini")
	if string(data) != "keep me" {
		t.Errorf("Existing file was modified: %q", data)
	}
}

func TestGenerateCommandEmptySecret(t *testing.T) {
	dir := setupTestEnvironment(t, &prompt.Scripted{Visible: []string{"no", ""}})
	templatePath := writeTemplate(t, dir, testTemplate)

	output, err := runCLI(t, "generate", templatePath, "settings.ini")
	if !errors.Is(err, kerrors.ErrEmptySecretKey) {
		t.Errorf("Expected ErrEmptySecretKey, got %v", err)
	}
	assertContains(t, output, "Secret key is needed for encryption")
	if _, statErr := os.Stat("settings.ini"); !os.IsNotExist(statErr) {
		t.Error("No file should be written")
	}
}

func TestGenerateCommandUnknownDirectiveWarns(t *testing.T) {
	dir := setupTestEnvironment(t, &prompt.Scripted{})
	templatePath := writeTemplate(t, dir, "[APP]\nKEY = {SECRET_KEY}\nMYSTERY = {OTHER}\n")

	output, err := runCLI(t, "generate", "--force-secret-key", templatePath, "settings.ini")
	if err != nil {
		t.Fatalf("Command failed: %v\n%s", err, output)
	}
	assertContains(t, output, "Unknown directive '{OTHER}' at [APP] MYSTERY")
}

func TestGenerateCommandTooManyArgs(t *testing.T) {
	setupTestEnvironment(t, &prompt.Scripted{})

	if _, err := runCLI(t, "generate", "a", "b", "c"); err == nil {
		t.Error("Expected an error for three positional arguments")
	}
}
