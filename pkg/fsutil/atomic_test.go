package fsutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/lintreport/pkg/fsutil"
)

func TestCreateAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes new file on close", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "report.txt")

		f, err := fsutil.CreateAtomic(path, 0)
		if err != nil {
			t.Fatalf("CreateAtomic() error = %v", err)
		}

		if _, err := f.Write([]byte("hello ")); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if _, err := f.Write([]byte("world")); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		// Not visible before Close.
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("target exists before Close: %v", err)
		}

		if err := f.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "hello world" {
			t.Errorf("content = %q, want %q", got, "hello world")
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != fsutil.DefaultFileMode {
			t.Errorf("mode = %v, want %v", info.Mode().Perm(), fsutil.DefaultFileMode)
		}
	})

	t.Run("abort keeps existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "report.txt")
		if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		f, err := fsutil.CreateAtomic(path, 0600)
		if err != nil {
			t.Fatalf("CreateAtomic() error = %v", err)
		}
		if _, err := f.Write([]byte("partial")); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if err := f.Abort(); err != nil {
			t.Fatalf("Abort() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "original" {
			t.Errorf("content = %q, want %q", got, "original")
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read dir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("temp file left behind: %d entries", len(entries))
		}
	})

	t.Run("write after close fails", func(t *testing.T) {
		t.Parallel()

		f, err := fsutil.CreateAtomic(filepath.Join(t.TempDir(), "r.txt"), 0)
		if err != nil {
			t.Fatalf("CreateAtomic() error = %v", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if _, err := f.Write([]byte("late")); !errors.Is(err, os.ErrClosed) {
			t.Errorf("Write() after Close error = %v, want os.ErrClosed", err)
		}
		if err := f.Close(); err != nil {
			t.Errorf("second Close() error = %v", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.CreateAtomic(filepath.Join(t.TempDir(), "nope", "r.txt"), 0)
		if err == nil {
			t.Fatal("expected error for missing directory")
		}
	})
}
