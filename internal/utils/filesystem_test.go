package utils

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.ini")

	if FileExists(path) {
		t.Errorf("Expected %s not to exist", path)
	}
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if !FileExists(path) {
		t.Errorf("Expected %s to exist", path)
	}
}

func TestWriteFileAtomicCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "conf", "settings.ini")

	err := WriteFileAtomic(path, 0600, func(w io.Writer) error {
		_, err := io.WriteString(w, "[DJANGO]\nKEY = S\n")
		return err
	})
	if err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if string(data) != "[DJANGO]\nKEY = S\n" {
		t.Errorf("Unexpected content %q", data)
	}

	info, _ := os.Stat(path)
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected 0600 permissions, got %o", info.Mode().Perm())
	}
}

func TestWriteFileAtomicLeavesExistingFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.ini")
	if err := os.WriteFile(path, []byte("An existing settings file"), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	writeErr := errors.New("render failed")
	err := WriteFileAtomic(path, 0600, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return writeErr
	})
	if !errors.Is(err, writeErr) {
		t.Fatalf("Expected write error, got %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "An existing settings file" {
		t.Errorf("Expected existing file to be untouched, got %q", data)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Expected temporary file to be cleaned up, found %d entries", len(entries))
	}
}
