package main

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintUsage(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	stdout := os.Stdout
	os.Stdout = w
	printUsage()
	os.Stdout = stdout
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	assert.Contains(t, string(out), " sculpt [-out DIR] [-prefix PREFIX] [-format scan|esri] FILE...")
	assert.Contains(t, string(out), " preview -in SCULPTMAP.png [-out DIR]")
	assert.Contains(t, string(out), "EXAMPLES:")
}
