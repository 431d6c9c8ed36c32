// Package reporter defines the contract between a linter and its output
// formats, plus the plumbing every format shares.
package reporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding"

	"github.com/yaklabco/lintreport/internal/logging"
	"github.com/yaklabco/lintreport/pkg/layout"
	"github.com/yaklabco/lintreport/pkg/message"
)

// Compile-time interface checks.
var (
	_ Reporter = (*Base)(nil)
	_ Reporter = (*CollectingReporter)(nil)
)

// Reporter receives diagnostics and lifecycle events from a linter and turns
// them into output.
//
// A Reporter is not safe for concurrent use.
type Reporter interface {
	// Name identifies the reporter in the registry.
	Name() string

	// Extension is the file extension of the reporter's output, if any.
	Extension() string

	// SetLinter records the linter driving this reporter.
	SetLinter(l Linter)

	// Linter returns the linter set with SetLinter, or nil.
	Linter() Linter

	// HandleMessage receives one diagnostic for the current module.
	HandleMessage(msg message.Message)

	// SetOutput replaces the output sink. Nil selects os.Stdout.
	SetOutput(w io.Writer)

	// Output returns the active output sink.
	Output() io.Writer

	// Writeln writes text and a newline to the output sink.
	Writeln(text string)

	// Encode converts text to the output encoding, replacing what the
	// encoding cannot represent.
	Encode(text string) []byte

	// DisplayReports renders a complete report tree.
	DisplayReports(root *layout.Node) error

	// DisplayResults renders a complete report tree.
	//
	// Deprecated: use DisplayReports. DisplayResults will be removed in v2.0.0.
	DisplayResults(root *layout.Node) error

	// DisplayMessages renders messages held back by batching reporters.
	DisplayMessages(root *layout.Node) error

	// OnSetCurrentModule is called when analysis moves to a new module.
	OnSetCurrentModule(module, filePath string)

	// OnClose is called when analysis finishes. previous may be nil.
	OnClose(stats, previous Stats)
}

// Renderer walks a report tree and writes it out. Concrete reporters
// implement it and hand themselves to NewBase.
type Renderer interface {
	Display(root *layout.Node) error
}

// Base implements Reporter except for rendering. Concrete reporters embed
// *Base, implement Renderer and pass themselves to NewBase.
type Base struct {
	linter   Linter
	renderer Renderer
	logger   *log.Logger

	out    io.Writer
	w      io.Writer // out, or a streaming encoder writing to out
	enc    encoding.Encoding
	forced encoding.Encoding // Options.Encoding, re-resolved on SetOutput
	err    error

	section         int
	pathStripPrefix string
}

// NewBase creates the shared reporter state. renderer may be nil, in which
// case DisplayReports returns ErrNotImplemented.
func NewBase(opts Options, renderer Renderer) *Base {
	base := &Base{
		renderer: renderer,
		logger:   opts.Logger,
		forced:   opts.Encoding,
	}
	if base.logger == nil {
		base.logger = logging.Default()
	}
	base.pathStripPrefix = stripPrefix(opts.WorkingDir, base.logger)
	base.SetOutput(opts.Writer)
	return base
}

// stripPrefix returns dir, or the working directory, with a trailing separator.
func stripPrefix(dir string, logger *log.Logger) string {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			logger.Debug("working directory unavailable, paths kept absolute", logging.FieldError, err)
			return ""
		}
		dir = wd
	}
	return strings.TrimSuffix(filepath.Clean(dir), string(os.PathSeparator)) + string(os.PathSeparator)
}

// Name returns the empty string; registered reporters override it.
func (b *Base) Name() string { return "" }

// Extension returns the empty string; file-producing reporters override it.
func (b *Base) Extension() string { return "" }

// SetLinter implements Reporter.
func (b *Base) SetLinter(l Linter) { b.linter = l }

// Linter implements Reporter.
func (b *Base) Linter() Linter { return b.linter }

// Logger returns the logger the reporter writes its records to.
func (b *Base) Logger() *log.Logger { return b.logger }

// HandleMessage ignores the message. Reporters that print or keep
// messages override it.
func (b *Base) HandleMessage(message.Message) {}

// SetOutput implements Reporter. The previous sink is dropped, not closed,
// and any write error recorded against it is cleared.
func (b *Base) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	b.out = w
	b.err = nil
	b.enc = resolveEncoding(w, b.forced)
	b.w = encodingWriter(w, b.enc)
}

// Output implements Reporter.
func (b *Base) Output() io.Writer { return b.out }

// Err returns the first error returned by the output sink since the last
// SetOutput. Writes after an error are skipped.
func (b *Base) Err() error { return b.err }

// Write writes text to the output sink without a line terminator.
func (b *Base) Write(text string) {
	b.write(text)
}

// Writeln implements Reporter. The line terminator is encoded together with
// the text. Characters the output encoding cannot represent are replaced,
// so the text itself never causes a failure.
func (b *Base) Writeln(text string) {
	b.write(text + "\n")
}

// write sends text through the sink's encoder, which lives as long as the
// sink so stream prefixes such as a UTF-16 BOM are written once.
func (b *Base) write(text string) {
	if b.err != nil {
		return
	}
	if _, err := io.WriteString(b.w, validUTF8(text)); err != nil {
		b.err = fmt.Errorf("write output: %w", err)
		b.logger.Debug("output write failed", logging.FieldError, err)
	}
}

// Section returns the number of the section being rendered.
func (b *Base) Section() int { return b.section }

// NextSection advances the section counter and returns the new value.
func (b *Base) NextSection() int {
	b.section++
	return b.section
}

// PathStripPrefix returns the prefix removed by RelPath, ending in a separator.
func (b *Base) PathStripPrefix() string { return b.pathStripPrefix }

// RelPath shortens path by the working directory prefix when it has one.
func (b *Base) RelPath(path string) string {
	if b.pathStripPrefix == "" {
		return path
	}
	return strings.TrimPrefix(path, b.pathStripPrefix)
}

// DisplayReports resets the section counter and renders root.
//
// When root carries a report id, the id is appended to the text at
// root.Children[0].Children[0], which is where layout.NewSection puts the
// title. Trees built another way must follow the same shape or
// ErrLayoutShape is returned.
func (b *Base) DisplayReports(root *layout.Node) error {
	b.section = 0
	if root != nil && root.ReportID != "" {
		title, ok := root.Child(0, 0)
		if !ok {
			return fmt.Errorf("%w: report %s", ErrLayoutShape, root.ReportID)
		}
		title.Data += " (" + root.ReportID + ")"
	}
	if b.renderer == nil {
		return ErrNotImplemented
	}
	return b.renderer.Display(root)
}

// DisplayResults renders root.
//
// Deprecated: use DisplayReports. DisplayResults will be removed in v2.0.0.
func (b *Base) DisplayResults(root *layout.Node) error {
	b.logger.Warn("DisplayResults is deprecated",
		logging.FieldReplacement, "DisplayReports",
		logging.FieldRemovedIn, "v2.0.0",
	)
	return b.DisplayReports(root)
}

// Display returns ErrNotImplemented. Concrete reporters provide their own.
func (b *Base) Display(*layout.Node) error {
	return ErrNotImplemented
}

// DisplayMessages does nothing. Reporters that batch messages override it
// to print what they collected.
func (b *Base) DisplayMessages(*layout.Node) error {
	return nil
}

// OnSetCurrentModule implements Reporter.
func (b *Base) OnSetCurrentModule(module, filePath string) {
	b.logger.Debug("module started",
		logging.FieldModule, module,
		logging.FieldPath, b.RelPath(filePath),
	)
}

// OnClose implements Reporter.
func (b *Base) OnClose(stats, previous Stats) {
	b.logger.Debug("analysis closed",
		logging.FieldStats, len(stats),
		logging.FieldPrevious, previous != nil,
	)
}
