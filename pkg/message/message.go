// Package message defines the diagnostic record passed from the linter to
// reporters.
package message

import "fmt"

// Confidence qualifies how certain the checker was when emitting a message.
type Confidence string

// Confidence levels.
const (
	ConfidenceHigh      Confidence = "HIGH"
	ConfidenceInference Confidence = "INFERENCE"
	ConfidenceUndefined Confidence = "UNDEFINED"
)

// Message is one diagnostic finding. Reporters pass it through without
// interpreting its fields.
type Message struct {
	ID         string     `json:"message-id" yaml:"message-id"`
	Symbol     string     `json:"symbol" yaml:"symbol"`
	Text       string     `json:"message" yaml:"message"`
	Category   string     `json:"type" yaml:"type"`
	Confidence Confidence `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	AbsPath    string     `json:"-" yaml:"-"`
	Path       string     `json:"path" yaml:"path"`
	Module     string     `json:"module" yaml:"module"`
	Obj        string     `json:"obj" yaml:"obj"`
	Line       int        `json:"line" yaml:"line"`
	Column     int        `json:"column" yaml:"column"`
}

// String renders the message as path:line:column: ID (symbol) text.
func (m Message) String() string {
	return fmt.Sprintf("%s:%d:%d: %s (%s) %s", m.Path, m.Line, m.Column, m.ID, m.Symbol, m.Text)
}
