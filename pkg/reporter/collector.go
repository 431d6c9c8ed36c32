package reporter

import (
	"github.com/yaklabco/lintreport/pkg/layout"
	"github.com/yaklabco/lintreport/pkg/message"
)

// CollectorName is the registry name of CollectingReporter.
const CollectorName = "collector"

//nolint:gochecknoinits // Built-in reporters register themselves.
func init() {
	Register(CollectorName, func(opts Options) Reporter {
		return NewCollectingReporter(opts)
	})
}

// CollectingReporter keeps every message it receives, in arrival order,
// for programmatic inspection. It never renders.
type CollectingReporter struct {
	*Base

	// Messages holds received messages, duplicates included.
	Messages []message.Message
}

// NewCollectingReporter creates an empty collecting reporter.
func NewCollectingReporter(opts Options) *CollectingReporter {
	return &CollectingReporter{Base: NewBase(opts, nil)}
}

// Name implements Reporter.
func (c *CollectingReporter) Name() string { return CollectorName }

// HandleMessage appends msg to Messages.
func (c *CollectingReporter) HandleMessage(msg message.Message) {
	c.Messages = append(c.Messages, msg)
}

// Display always returns ErrNotImplemented.
func (c *CollectingReporter) Display(*layout.Node) error {
	return ErrNotImplemented
}
