package storage

import (
	"errors"
)

const (
	// SnapshotFile is the default location of the last rendered report.
	SnapshotFile = ".last_summary.log"
)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotSaveErr = errors.New("could not save")
)

// Snapshot keeps the most recently rendered report text.
// Every Save replaces the previous content.
type Snapshot interface {
	Save(text string) error
	Load() (string, error)
}
