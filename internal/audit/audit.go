package audit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/confgen/internal/configs"
	"github.com/google/uuid"
)

// Entry represents a single audit log entry. No value, secret or ciphertext is ever recorded.
type Entry struct {
	Timestamp string `json:"ts"`     // RFC3339 with microseconds.
	RunID     string `json:"run_id"` // Unique per command invocation.
	User      string `json:"user"`   // System username.
	Operation string `json:"op"`     // generate, encrypt or decrypt.

	// Optional fields depending on operation.
	TemplatePath    string   `json:"template,omitempty"`         // For generate.
	OutputPath      string   `json:"output,omitempty"`           // For generate.
	EncryptedFields []string `json:"encrypted_fields,omitempty"` // For generate, as "SECTION.key".
	SecretSource    string   `json:"secret_source,omitempty"`    // For generate: generated or entered.
	Attempts        int      `json:"attempts,omitempty"`         // For generate.
	Outcome         string   `json:"outcome,omitempty"`          // success or failed.
}

// NewRunID returns an identifier shared by the entries of one invocation.
func NewRunID() string {
	return uuid.New().String()
}

// Log appends an entry to the audit log.
// Failures are ignored: a settings file must not fail to generate because
// the audit trail could not be written.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}
	if entry.RunID == "" {
		entry.RunID = NewRunID()
	}

	logPath := LogPath()
	if logPath == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogWithUser returns an entry with the user and a new run ID filled in.
func LogWithUser(op string) Entry {
	return Entry{
		Operation: op,
		RunID:     NewRunID(),
		User:      configs.UserConfgenSettings.Username,
	}
}

// LogPath returns the path to the audit log file, or "" if there is no user config dir.
func LogPath() string {
	dir := configs.UserConfgenSettings.UserConfigsPath
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "audit.jsonl")
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	logPath := LogPath()
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	var entries []Entry

	for len(data) > 0 {
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			data = nil
		}
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
