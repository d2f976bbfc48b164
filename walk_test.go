package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func collect(t *testing.T, root string) ([]string, error) {
	t.Helper()
	w := &treeWalker{log: logr.Discard()}
	var paths []string
	err := w.walk(root, func(path string) error {
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	return paths, err
}

func TestWalkSkipsHiddenEntries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.txt"), "b")
	writeFile(t, filepath.Join(root, "a", "c.txt"), "c")
	writeFile(t, filepath.Join(root, ".hidden", "file.txt"), "hidden")
	writeFile(t, filepath.Join(root, "a", ".dotfile"), "hidden")

	paths, err := collect(t, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/c.txt", "b.txt"}, paths)
}

func TestWalkFollowsSymlinks(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "target")
	writeFile(t, filepath.Join(target, "page.txt"), "x")
	root := filepath.Join(base, "root")
	require.NoError(t, os.MkdirAll(root, 0o755))
	if err := os.Symlink(target, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(target, "page.txt"), filepath.Join(root, "file-link")))

	paths, err := collect(t, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"file-link", "linked/page.txt"}, paths)
}

func TestWalkDetectsSymlinkLoop(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "file.txt"), "x")
	if err := os.Symlink(root, filepath.Join(root, "sub", "loop")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	_, err := collect(t, root)
	require.ErrorIs(t, err, ErrSymlinkLoop)
}

func TestWalkBrokenSymlinkIsFatal(t *testing.T) {
	root := t.TempDir()
	if err := os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "dangling")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	_, err := collect(t, root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read entry")
}

func TestWalkSingleFileRoot(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "only.txt")
	writeFile(t, file, "x")
	w := &treeWalker{log: logr.Discard()}
	var got []string
	require.NoError(t, w.walk(file, func(path string) error {
		got = append(got, path)
		return nil
	}))
	assert.Equal(t, []string{file}, got)
}

func TestWalkMissingRoot(t *testing.T) {
	_, err := collect(t, filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
