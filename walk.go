package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
)

// ErrSymlinkLoop is returned when a followed link leads back into one of its
// own ancestor directories.
var ErrSymlinkLoop = errors.New("symlink loop")

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// treeWalker visits regular files below a root in lexical order, following
// symbolic links and pruning dot-prefixed entries.
type treeWalker struct {
	log logr.Logger
}

func (w *treeWalker) walk(root string, visit func(path string) error) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("failed to read entry: %w", err)
	}
	if !info.IsDir() {
		if info.Mode().IsRegular() {
			return visit(root)
		}
		return nil
	}
	return w.walkDir(root, []os.FileInfo{info}, visit)
}

func (w *treeWalker) walkDir(dir string, ancestors []os.FileInfo, visit func(path string) error) error {
	w.log.V(1).Info("scanning directory", "dir", dir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read entry %s: %w", dir, err)
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if isHidden(entry.Name()) {
			w.log.V(2).Info("skipping hidden entry", "path", path)
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to read entry %s: %w", path, err)
		}
		switch {
		case info.IsDir():
			for _, anc := range ancestors {
				if os.SameFile(anc, info) {
					return fmt.Errorf("%s: %w", path, ErrSymlinkLoop)
				}
			}
			if err := w.walkDir(path, append(ancestors, info), visit); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			if err := visit(path); err != nil {
				return err
			}
		}
	}
	return nil
}
