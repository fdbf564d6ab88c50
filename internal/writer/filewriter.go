// Package writer exposes sinks for emitted record streams.
package writer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPerm is the mode of files written by FileWriter when Perm is zero.
const DefaultPerm fs.FileMode = 0o644

// Sink receives a complete output buffer.
type Sink interface {
	Commit(buf []byte) error
}

// FileWriter replaces the file at Path in one step. Readers see either the
// previous contents or the new ones, never a partial write.
type FileWriter struct {
	Path string
	Perm fs.FileMode // Default: DefaultPerm
}

// Commit writes buf next to Path, flushes it to disk and renames it over Path.
func (w *FileWriter) Commit(buf []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(w.Path), ".orgtrace-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if err := w.fill(tmp, buf); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), w.Path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("rename %s: %w", w.Path, err)
	}
	return nil
}

func (w *FileWriter) fill(f *os.File, buf []byte) error {
	perm := w.Perm
	if perm == 0 {
		perm = DefaultPerm
	}
	if err := f.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := f.Write(buf); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := syncData(f); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	return nil
}
