package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_indexes.sql", "seed.sql", "001_schema.sql", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o600))
	}

	files, err := migrationFiles(dir)

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "001_schema.sql"),
		filepath.Join(dir, "002_indexes.sql"),
	}, files)
}

func TestMigrationFilesEmptyDir(t *testing.T) {
	_, err := migrationFiles(t.TempDir())
	assert.ErrorContains(t, err, "no migrations found")
}

func TestShippedMigrations(t *testing.T) {
	files, err := migrationFiles(filepath.Join("..", "..", "sql"))
	require.NoError(t, err)
	assert.Equal(t, "001_schema.sql", filepath.Base(files[0]))
}
