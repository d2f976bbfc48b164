package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var ErrPageExists = errors.New("man page already exists")

// pageWriter persists cleaned pages under a single output directory. Pages are
// created exclusively: an existing file is never overwritten.
type pageWriter struct {
	outDir string
	stdout io.Writer
}

func (w *pageWriter) write(source, name, content string) error {
	target := filepath.Join(w.outDir, name)
	fmt.Fprintf(w.stdout, "%s -> %s\n", source, target)
	if err := w.ensureDir(); err != nil {
		return fmt.Errorf("%s: failed to create man directory: %w", source, err)
	}
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s: %w: %s", source, ErrPageExists, target)
		}
		return fmt.Errorf("%s: failed to create man page: %w", source, err)
	}
	if _, err := io.WriteString(f, content); err != nil {
		f.Close()
		return fmt.Errorf("%s: failed to write man page: %w", source, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%s: failed to write man page: %w", source, err)
	}
	return nil
}

func (w *pageWriter) ensureDir() error {
	info, err := os.Stat(w.outDir)
	if err == nil && info.IsDir() {
		return nil
	}
	return os.MkdirAll(w.outDir, 0o755)
}
