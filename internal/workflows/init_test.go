package workflows

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/confgen/internal/configs"
	kerrors "github.com/PolarWolf314/confgen/internal/errors"
)

func TestInitWritesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", configs.ConfigFileName)

	want := configs.Config{
		TemplatePath:     "settings.ini.template",
		OutputPath:       "settings.ini",
		StrictDirectives: true,
		MaxRetries:       5,
	}
	result, err := Init(context.Background(), InitOptions{Path: path, Config: want})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if result.Path != path {
		t.Errorf("Expected path %s, got %s", path, result.Path)
	}

	loaded, err := configs.LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load written config: %v", err)
	}
	dir := filepath.Dir(path)
	if loaded.TemplatePath != filepath.Join(dir, "settings.ini.template") ||
		loaded.OutputPath != filepath.Join(dir, "settings.ini") ||
		!loaded.StrictDirectives || loaded.MaxRetries != 5 {
		t.Errorf("Unexpected config read back: %+v", loaded)
	}
}

func TestInitRefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), configs.ConfigFileName)
	if err := os.WriteFile(path, []byte("# mine\n"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := Init(context.Background(), InitOptions{Path: path, Config: configs.DefaultConfig()})
	if !errors.Is(err, kerrors.ErrConfigExists) {
		t.Fatalf("Expected ErrConfigExists, got %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "# mine\n" {
		t.Errorf("Existing config was modified: %q", data)
	}

	if _, err := Init(context.Background(), InitOptions{Path: path, Config: configs.DefaultConfig(), Overwrite: true}); err != nil {
		t.Fatalf("Init with Overwrite failed: %v", err)
	}
}

func TestInitRejectsNegativeRetries(t *testing.T) {
	path := filepath.Join(t.TempDir(), configs.ConfigFileName)

	_, err := Init(context.Background(), InitOptions{Path: path, Config: configs.Config{MaxRetries: -1}})
	if !errors.Is(err, kerrors.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("No config should be written")
	}
}
