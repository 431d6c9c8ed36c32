// Package fsutil provides file helpers for report output.
package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is the default permission mode for newly created files.
const DefaultFileMode os.FileMode = 0644

// AtomicFile is a report file that only appears at its final path once it
// has been written completely.
//
// Writes go to a temp file in the same directory. Close syncs it, sets the
// mode and renames it over the target. Abort discards it and leaves any
// existing file untouched.
type AtomicFile struct {
	path string
	mode os.FileMode
	tmp  *os.File
	done bool
}

// CreateAtomic starts an atomic write to path. If mode is 0,
// DefaultFileMode is used.
func CreateAtomic(path string, mode os.FileMode) (*AtomicFile, error) {
	if mode == 0 {
		mode = DefaultFileMode
	}

	// Create temp file in same directory for atomic rename.
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	return &AtomicFile{path: path, mode: mode, tmp: tmp}, nil
}

// Name returns the final path of the file.
func (f *AtomicFile) Name() string {
	return f.path
}

// Write implements io.Writer.
func (f *AtomicFile) Write(p []byte) (int, error) {
	if f.done {
		return 0, os.ErrClosed
	}
	n, err := f.tmp.Write(p)
	if err != nil {
		return n, fmt.Errorf("write temp file: %w", err)
	}
	return n, nil
}

// Close publishes the file at its final path. On error the temp file is
// removed and the target is left as it was.
func (f *AtomicFile) Close() error {
	if f.done {
		return nil
	}
	f.done = true
	tmpPath := f.tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = f.tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	// Sync to ensure durability.
	if err := f.tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := f.tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Set mode before rename.
	if err := os.Chmod(tmpPath, f.mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	// Atomic rename.
	if err := os.Rename(tmpPath, f.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}

// Abort discards everything written so far.
func (f *AtomicFile) Abort() error {
	if f.done {
		return nil
	}
	f.done = true
	closeErr := f.tmp.Close()
	removeErr := os.Remove(f.tmp.Name())
	if err := errors.Join(closeErr, removeErr); err != nil {
		return fmt.Errorf("abort %s: %w", f.path, err)
	}
	return nil
}
