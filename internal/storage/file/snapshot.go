package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drakos74/free-coin-series/internal/storage"
)

// Snapshot stores the report text in a plain text file.
// The file is truncated and fully rewritten on every save.
type Snapshot struct {
	path string
}

// NewSnapshot creates a new file snapshot at the given path.
func NewSnapshot(path string) *Snapshot {
	if path == "" {
		path = storage.SnapshotFile
	}
	return &Snapshot{path: path}
}

// Path returns the file the snapshot writes to.
func (s *Snapshot) Path() string {
	return s.path
}

// Save overwrites the snapshot file with the given text.
func (s *Snapshot) Save(text string) error {

	// check if the parent dir exists
	dir := filepath.Dir(s.path)
	info, err := os.Stat(dir)
	if err != nil {
		err := os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return fmt.Errorf("could not make dir '%s': %s: %w", dir, err.Error(), storage.CouldNotSaveErr)
		}
	} else if !info.IsDir() {
		return fmt.Errorf("snapshot parent is not a dir '%s': %w", dir, storage.CouldNotSaveErr)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("could not create file '%s': %s: %w", s.path, err.Error(), storage.CouldNotSaveErr)
	}
	defer f.Close()

	if _, err = f.WriteString(text); err != nil {
		return fmt.Errorf("could not write snapshot '%s': %s: %w", s.path, err.Error(), storage.CouldNotSaveErr)
	}
	return nil
}

// Load reads back the last saved text.
func (s *Snapshot) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("could not read file '%s': %w", s.path, storage.NotFoundErr)
		}
		return "", fmt.Errorf("could not read file '%s': %w", s.path, err)
	}
	return string(data), nil
}
