package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVoidSnapshot(t *testing.T) {
	v := NewVoidSnapshot()
	assert.NoError(t, v.Save("anything"))
	_, err := v.Load()
	assert.ErrorIs(t, err, NotFoundErr)
}
