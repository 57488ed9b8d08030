package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// FileStorage is a Storage backed by one file per key under a directory.
// It is the durable device-local analogue of browser localStorage for
// non-browser front ends (CLI, desktop shell).
//
// Write failures are logged and swallowed: the session keeps its in-memory
// state and simply loses durability, which matches the storage contract —
// persistence problems must never surface as errors to the UI.
type FileStorage struct {
	dir string
	log *slog.Logger
}

// NewFileStorage creates dir if needed and returns a FileStorage rooted there.
func NewFileStorage(dir string, log *slog.Logger) (*FileStorage, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store.NewFileStorage: %w", err)
	}
	return &FileStorage{dir: dir, log: log}, nil
}

// Get reads the value stored under key. A missing or unreadable file
// reports absence; the store layer resolves absence to a default.
func (f *FileStorage) Get(key string) (string, bool) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			f.log.Warn("storage read failed", "key", key, "error", err)
		}
		return "", false
	}
	return string(b), true
}

// Set writes value under key via a temp file and rename, so a crash
// mid-write leaves the previous value intact rather than a half-written one.
func (f *FileStorage) Set(key, value string) {
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		f.log.Warn("storage write failed", "key", key, "error", err)
		return
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		f.log.Warn("storage rename failed", "key", key, "error", err)
	}
}

func (f *FileStorage) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}
