// Package filestore is the built-in file-backed template store. Each render
// mode maps to one text file in a directory; backup and generated-output
// slots are sibling files. It also exposes a change watcher so hosts can drop
// cached renders the moment an administrator edits a template on disk.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-sermons/pkg/model"
)

const (
	templateExt = ".tmpl"
	backupExt   = ".tmpl.bak"
	outputExt   = ".html"
)

// Store reads and writes template texts under a single directory.
type Store struct {
	dir string
}

// New constructs a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("filestore: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store reads from.
func (s *Store) Dir() string {
	return s.dir
}

// LoadTemplate returns the stored template text for mode, or "" when the file
// does not exist.
func (s *Store) LoadTemplate(mode model.Mode) (string, error) {
	data, err := os.ReadFile(s.path(mode, templateExt))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("filestore: read template for mode %q: %w", mode, err)
	}
	return string(data), nil
}

// SaveTemplate stores text as the template for mode.
func (s *Store) SaveTemplate(mode model.Mode, text string) error {
	if err := os.WriteFile(s.path(mode, templateExt), []byte(text), 0o644); err != nil {
		return fmt.Errorf("filestore: write template for mode %q: %w", mode, err)
	}
	return nil
}

// SaveBackup writes a verbatim copy of text into the mode's backup slot.
func (s *Store) SaveBackup(mode model.Mode, text string) error {
	if err := os.WriteFile(s.path(mode, backupExt), []byte(text), 0o644); err != nil {
		return fmt.Errorf("filestore: write backup for mode %q: %w", mode, err)
	}
	return nil
}

// LoadBackup returns the backed-up template text for mode, or "" when no
// backup exists.
func (s *Store) LoadBackup(mode model.Mode) (string, error) {
	data, err := os.ReadFile(s.path(mode, backupExt))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("filestore: read backup for mode %q: %w", mode, err)
	}
	return string(data), nil
}

// DeleteGenerated removes the generated output artifact for mode. A missing
// artifact is a no-op.
func (s *Store) DeleteGenerated(mode model.Mode) error {
	err := os.Remove(s.path(mode, outputExt))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("filestore: delete generated output for mode %q: %w", mode, err)
	}
	return nil
}

func (s *Store) path(mode model.Mode, ext string) string {
	return filepath.Join(s.dir, string(mode)+ext)
}
