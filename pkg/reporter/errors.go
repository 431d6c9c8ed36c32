package reporter

import "errors"

// Sentinel errors returned by reporters. Test them with errors.Is.
var (
	// ErrNotImplemented is returned when a reporter has no renderer.
	ErrNotImplemented = errors.New("reporter: display not implemented")

	// ErrLayoutShape is returned when a report tree tagged with a report id
	// has no title text at its first child's first child.
	ErrLayoutShape = errors.New("reporter: report layout has no title text")

	// ErrUnknownEncoding is returned for output encoding names that cannot
	// be resolved.
	ErrUnknownEncoding = errors.New("reporter: unknown encoding")
)
