package cmd

import (
	"strings"
	"testing"

	"github.com/PolarWolf314/confgen/internal/prompt"
	"github.com/PolarWolf314/confgen/internal/secrets"
)

func TestEncryptCommandWithSecretFlag(t *testing.T) {
	setupTestEnvironment(t, &prompt.Scripted{})

	output, err := runCLI(t, "encrypt", "--secret", "S", "hunter2")
	if err != nil {
		t.Fatalf("Command failed: %v\n%s", err, output)
	}

	plaintext, err := secrets.Decrypt(strings.TrimSpace(output), "S")
	if err != nil || plaintext != "hunter2" {
		t.Errorf("Output does not decrypt to the value: %q, %v", plaintext, err)
	}
}

func TestDecryptCommandPromptsForSecret(t *testing.T) {
	p := &prompt.Scripted{Masked: []string{"S"}}
	setupTestEnvironment(t, p)

	ciphertext, err := secrets.Encrypt("hunter2", "S")
	if err != nil {
		t.Fatal(err)
	}

	output, err := runCLI(t, "decrypt", ciphertext)
	if err != nil {
		t.Fatalf("Command failed: %v\n%s", err, output)
	}
	if strings.TrimSpace(output) != "hunter2" {
		t.Errorf("Expected hunter2, got %q", output)
	}
	if len(p.Asked) != 1 || !strings.HasPrefix(p.Asked[0], "masked: ") {
		t.Errorf("Expected one masked prompt, got %v", p.Asked)
	}
}

func TestDecryptCommandBadValue(t *testing.T) {
	setupTestEnvironment(t, &prompt.Scripted{})

	output, err := runCLI(t, "decrypt", "--secret", "S", "Bad value")
	if err == nil {
		t.Fatal("Expected decryption of a malformed value to fail")
	}
	assertContains(t, output, "Error in decryption")
}
