// Package config defines reporter configuration and its YAML form.
package config

import (
	"errors"
	"fmt"

	"github.com/yaklabco/lintreport/internal/logging"
)

// Output targets with special meaning. Any other value is a file path.
const (
	OutputStdout = "-"
	OutputStderr = "stderr"
)

// Config holds reporter settings owned by the surrounding linter.
type Config struct {
	// Output names the sink: "-" or empty for stdout, "stderr", or a file path.
	Output string `yaml:"output,omitempty"`

	// Encoding forces the output encoding (e.g. "utf-8", "iso-8859-1").
	// Empty means the sink or the locale decides.
	Encoding string `yaml:"encoding,omitempty"`

	// LogLevel sets the reporter logger level: debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`

	// WorkingDir overrides the prefix stripped from absolute paths.
	WorkingDir string `yaml:"working_dir,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Output:   OutputStdout,
		LogLevel: "info",
	}
}

// IsStdout reports whether the configured output is standard output.
func (c *Config) IsStdout() bool {
	return c.Output == "" || c.Output == OutputStdout
}

// Validate checks field values that can be verified without side effects.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("invalid log_level %q; valid levels: debug, info, warn, error", c.LogLevel)
	}
	return nil
}
