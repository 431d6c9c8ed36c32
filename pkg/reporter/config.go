package reporter

import (
	"fmt"
	"io"
	"os"

	"github.com/yaklabco/lintreport/internal/logging"
	"github.com/yaklabco/lintreport/pkg/config"
	"github.com/yaklabco/lintreport/pkg/fsutil"
)

// Sink finishes the output opened by OptionsFromConfig.
type Sink interface {
	io.Closer

	// Abort discards the output instead of publishing it. Callers use it
	// when reporting failed, for example when Base.Err is non-nil.
	Abort() error
}

// stdSink is returned for standard streams, which the reporter does not own.
type stdSink struct{}

func (stdSink) Close() error { return nil }
func (stdSink) Abort() error { return nil }

var _ Sink = (*fsutil.AtomicFile)(nil)

// OptionsFromConfig builds Options from cfg. Exactly one of the sink's
// Close or Abort must be called once reporting is finished. For file
// outputs Close publishes the report at cfg.Output and Abort leaves any
// existing file untouched.
func OptionsFromConfig(cfg *config.Config) (Options, Sink, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return Options{}, nil, fmt.Errorf("reporter config: %w", err)
	}

	enc, err := LookupEncoding(cfg.Encoding)
	if err != nil {
		return Options{}, nil, fmt.Errorf("reporter config: %w", err)
	}

	opts := Options{
		Encoding:   enc,
		WorkingDir: cfg.WorkingDir,
		Logger:     logging.New(cfg.LogLevel),
	}

	switch {
	case cfg.IsStdout():
		opts.Writer = os.Stdout
		return opts, stdSink{}, nil
	case cfg.Output == config.OutputStderr:
		opts.Writer = os.Stderr
		return opts, stdSink{}, nil
	}

	file, err := fsutil.CreateAtomic(cfg.Output, 0)
	if err != nil {
		return Options{}, nil, fmt.Errorf("open output %s: %w", cfg.Output, err)
	}
	opts.Writer = file
	opts.Logger.Debug("writing report to file", logging.FieldOutput, cfg.Output)

	return opts, file, nil
}
