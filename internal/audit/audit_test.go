package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/confgen/internal/configs"
)

func withUserConfigDir(t *testing.T, dir string) {
	t.Helper()
	original := configs.UserConfgenSettings
	configs.UserConfgenSettings = &configs.UserSettings{UserConfigsPath: dir, Username: "testuser"}
	t.Cleanup(func() { configs.UserConfgenSettings = original })
}

func TestLog_CreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "confgen")
	withUserConfigDir(t, dir)

	Log(Entry{User: "testuser", Operation: "generate", OutputPath: "conf/settings.ini"})

	info, err := os.Stat(filepath.Join(dir, "audit.jsonl"))
	if err != nil {
		t.Fatalf("Audit log file was not created: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected 0600 permissions, got %o", info.Mode().Perm())
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	withUserConfigDir(t, t.TempDir())

	first := LogWithUser("generate")
	first.EncryptedFields = []string{"DATABASE_CREDENTIALS.PASSWORD"}
	first.Attempts = 2
	first.Outcome = "success"
	Log(first)
	Log(LogWithUser("decrypt"))

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	if entries[0].Operation != "generate" || entries[1].Operation != "decrypt" {
		t.Errorf("Expected operations in order, got %q and %q", entries[0].Operation, entries[1].Operation)
	}
	if entries[0].User != "testuser" {
		t.Errorf("Expected user %q, got %q", "testuser", entries[0].User)
	}
	if entries[0].Attempts != 2 || entries[0].EncryptedFields[0] != "DATABASE_CREDENTIALS.PASSWORD" {
		t.Errorf("Expected generate details to survive, got %+v", entries[0])
	}
	if entries[0].RunID == "" || entries[0].RunID == entries[1].RunID {
		t.Errorf("Expected distinct run IDs, got %q and %q", entries[0].RunID, entries[1].RunID)
	}
	if entries[0].Timestamp == "" {
		t.Errorf("Expected timestamp to be set")
	}
}

func TestLog_SkipsWithoutConfigDir(t *testing.T) {
	withUserConfigDir(t, "")

	Log(Entry{Operation: "generate"})

	if LogPath() != "" {
		t.Errorf("Expected empty log path")
	}
	entries, err := ReadEntries()
	if err != nil || entries != nil {
		t.Errorf("Expected (nil, nil), got (%v, %v)", entries, err)
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := strings.Join([]string{
		`{"ts":"2026-01-01T00:00:00.000000Z","op":"generate","user":"a"}`,
		`not json`,
		``,
		`{"ts":"2026-01-02T00:00:00.000000Z","op":"encrypt","user":"b"}`,
	}, "\n")

	entries, err := ParseEntries([]byte(data))
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].Operation != "encrypt" {
		t.Errorf("Expected second entry to be encrypt, got %q", entries[1].Operation)
	}
}

func TestParseEntries_Empty(t *testing.T) {
	entries, err := ParseEntries(nil)
	if err != nil || entries != nil {
		t.Errorf("Expected (nil, nil), got (%v, %v)", entries, err)
	}
}
