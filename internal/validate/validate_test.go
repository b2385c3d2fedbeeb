package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputDirectory(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, OutputDirectory(dir))
	assert.Error(t, OutputDirectory(filepath.Join(dir, "missing")))
}

func TestInputFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "scan.eml")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.NoError(t, InputFiles([]string{file}))
	assert.Error(t, InputFiles(nil))
	assert.Error(t, InputFiles([]string{file, dir}))
	assert.Error(t, InputFiles([]string{filepath.Join(dir, "missing.eml")}))
}

func TestSculptImage(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "sculpt.png")
	txt := filepath.Join(dir, "sculpt.txt")
	require.NoError(t, os.WriteFile(png, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o644))

	assert.NoError(t, SculptImage(png))
	assert.Error(t, SculptImage(txt))
	assert.Error(t, SculptImage(dir))
}
