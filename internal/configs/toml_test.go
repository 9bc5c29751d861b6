package configs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadTOML(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "test.toml")

	type TestStruct struct {
		Name    string
		Retries int
	}

	originalData := TestStruct{Name: "confgen", Retries: 3}

	if err := SaveTOML(testFile, originalData); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loadedData := TestStruct{}
	undecoded, err := LoadTOML(testFile, &loadedData)
	if err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}
	if len(undecoded) != 0 {
		t.Errorf("Expected no undecoded keys, got %v", undecoded)
	}

	if loadedData != originalData {
		t.Errorf("Expected %+v, got %+v", originalData, loadedData)
	}
}

func TestLoadTOMLNonExistent(t *testing.T) {
	data := struct{ Name string }{}
	if _, err := LoadTOML(filepath.Join(t.TempDir(), "nonexistent.toml"), &data); err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
}

func TestLoadTOMLReportsUndecodedKeys(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.toml")
	if err := os.WriteFile(testFile, []byte("Name = \"x\"\nExtra = 1\n"), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	data := struct{ Name string }{}
	undecoded, err := LoadTOML(testFile, &data)
	if err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}
	if len(undecoded) != 1 || undecoded[0].String() != "Extra" {
		t.Errorf("Expected [Extra] undecoded, got %v", undecoded)
	}
}

func TestSaveTOMLCreatesDirectory(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "subdir", "test.toml")

	if err := SaveTOML(testFile, struct{ Name string }{"Test"}); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	info, err := os.Stat(testFile)
	if err != nil {
		t.Fatalf("File was not created: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected 0600 permissions, got %o", info.Mode().Perm())
	}
}
