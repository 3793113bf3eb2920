package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepforce/internal/gen"
)

func TestRunWritesDefaultFilename(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, run("deepforce/sample", "Money", dir, gen.DefaultFilename))

	data, err := os.ReadFile(filepath.Join(dir, gen.DefaultFilename))
	require.NoError(t, err)
	assert.Contains(t, string(data), "func (v Money) ForceDeep() force.Done {")
}

func TestRunHonorsNameOverride(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, run("deepforce/sample", "Money,Line", dir, "forcing_methods.go"))

	data, err := os.ReadFile(filepath.Join(dir, "forcing_methods.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "func (v Line) ForceDeep() force.Done {")

	_, err = os.Stat(filepath.Join(dir, gen.DefaultFilename))
	assert.True(t, os.IsNotExist(err))
}

func TestRunUnknownType(t *testing.T) {
	err := run("deepforce/sample", "Nothing", t.TempDir(), gen.DefaultFilename)
	assert.Error(t, err)
}
