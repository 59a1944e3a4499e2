package storage

import "fmt"

// VoidSnapshot is a noop snapshot
type VoidSnapshot struct {
}

// NewVoidSnapshot creates a new noop snapshot
func NewVoidSnapshot() *VoidSnapshot {
	return &VoidSnapshot{}
}

func (v VoidSnapshot) Save(text string) error {
	return nil
}

func (v VoidSnapshot) Load() (string, error) {
	return "", fmt.Errorf("void snapshot: %w", NotFoundErr)
}
