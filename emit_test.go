package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageWriterCreatesDirectoryAndPage(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "man")
	var stdout bytes.Buffer
	w := &pageWriter{outDir: outDir, stdout: &stdout}

	require.NoError(t, w.write("src/a.rs", "alpha", "text\n"))
	require.NoError(t, w.write("src/a.rs", "beta", ""))

	data, err := os.ReadFile(filepath.Join(outDir, "alpha"))
	require.NoError(t, err)
	assert.Equal(t, "text\n", string(data))
	data, err = os.ReadFile(filepath.Join(outDir, "beta"))
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.Equal(t,
		"src/a.rs -> "+filepath.Join(outDir, "alpha")+"\n"+
			"src/a.rs -> "+filepath.Join(outDir, "beta")+"\n",
		stdout.String())
}

func TestPageWriterRefusesOverwrite(t *testing.T) {
	outDir := t.TempDir()
	target := filepath.Join(outDir, "dup")
	require.NoError(t, os.WriteFile(target, []byte("original"), 0o644))
	var stdout bytes.Buffer
	w := &pageWriter{outDir: outDir, stdout: &stdout}

	err := w.write("src/b.rs", "dup", "replacement\n")
	require.ErrorIs(t, err, ErrPageExists)
	assert.Contains(t, err.Error(), "src/b.rs")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestPageWriterOutputPathIsFile(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "man")
	require.NoError(t, os.WriteFile(outDir, []byte("not a dir"), 0o644))
	var stdout bytes.Buffer
	w := &pageWriter{outDir: outDir, stdout: &stdout}

	err := w.write("src/c.rs", "page", "x\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create man directory")
}
