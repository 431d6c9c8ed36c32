package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Reporter fields.
	FieldReporter = "reporter"
	FieldModule   = "module"
	FieldReportID = "report_id"
	FieldEncoding = "encoding"
	FieldMessages = "messages"
	FieldStats    = "stats"
	FieldPrevious = "has_previous"

	// Deprecation fields.
	FieldReplacement = "replacement"
	FieldRemovedIn   = "removed_in"
)
