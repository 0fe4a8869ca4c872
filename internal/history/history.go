// Package history persists REPL input lines between sessions. The file
// holds a msgpack-encoded record; a missing file is an empty history.
package history

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// DefaultLimit is the number of entries kept when none is given.
const DefaultLimit = 500

// formatVersion is bumped when the record layout changes.
const formatVersion = 1

type record struct {
	Version int       `msgpack:"v"`
	Saved   time.Time `msgpack:"saved"`
	Entries []string  `msgpack:"entries"`
}

// History is an ordered list of input lines, oldest first, bounded by a
// limit. It is not safe for concurrent use.
type History struct {
	path    string
	limit   int
	entries []string
}

// DefaultPath returns the history file under the user cache directory, or
// "" when there is none.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "arithmos", "history.msgpack")
}

// Load reads the history at path. An empty path gives an in-memory
// history that Save ignores. limit <= 0 selects DefaultLimit.
func Load(path string, limit int) (*History, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	h := &History{path: path, limit: limit}
	if path == "" {
		return h, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return h, nil
	}
	if err != nil {
		return h, fmt.Errorf("history: %w", err)
	}
	var rec record
	if err := msgpack.NewDecoder(bytes.NewReader(data)).Decode(&rec); err != nil {
		return h, fmt.Errorf("history: %s: %w", path, err)
	}
	if rec.Version != formatVersion {
		return h, fmt.Errorf("history: %s: unsupported version %d", path, rec.Version)
	}
	h.entries = rec.Entries
	h.trim()
	return h, nil
}

// Add appends line unless it is empty or repeats the last entry.
func (h *History) Add(line string) {
	if line == "" || (len(h.entries) > 0 && h.entries[len(h.entries)-1] == line) {
		return
	}
	h.entries = append(h.entries, line)
	h.trim()
}

func (h *History) trim() {
	if extra := len(h.entries) - h.limit; extra > 0 {
		h.entries = append(h.entries[:0:0], h.entries[extra:]...)
	}
}

// Entries returns the lines, oldest first. The slice must not be
// modified.
func (h *History) Entries() []string { return h.entries }

func (h *History) Len() int { return len(h.entries) }

// At returns the entry i steps back from the newest, starting at 0.
func (h *History) At(back int) (string, bool) {
	i := len(h.entries) - 1 - back
	if back < 0 || i < 0 {
		return "", false
	}
	return h.entries[i], true
}

// Save writes the history atomically, creating the parent directory.
func (h *History) Save() error {
	if h.path == "" {
		return nil
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.Encode(record{Version: formatVersion, Saved: time.Now().UTC(), Entries: h.entries}); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	tmp := h.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if err := os.Rename(tmp, h.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("history: %w", err)
	}
	return nil
}
