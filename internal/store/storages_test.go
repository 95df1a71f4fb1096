package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/image-filter/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configStorage(dir string) config.Storage {
	return config.Storage{Files: config.Files{TempDir: dir}}
}

func TestNewStorages_InvalidDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	storages, err := NewStorages(configStorage(file))
	assert.Nil(t, storages)
	assert.ErrorIs(t, err, ErrCreatingStorageDir)
}
