package reporter

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding"
)

// Options configures the shared reporter plumbing.
type Options struct {
	// Writer is the output sink. Nil means os.Stdout.
	Writer io.Writer

	// Encoding forces the output encoding when the sink does not declare
	// one. Nil lets the locale decide, falling back to UTF-8.
	Encoding encoding.Encoding

	// WorkingDir is the prefix stripped from absolute paths.
	// If empty, the process working directory is used.
	WorkingDir string

	// Logger receives lifecycle and deprecation records.
	// Nil means the package default logger.
	Logger *log.Logger
}

// DefaultOptions returns Options writing to standard output.
func DefaultOptions() Options {
	return Options{
		Writer: os.Stdout,
	}
}
