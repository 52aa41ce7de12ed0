package logger

// Shared log field name constants.
// Keeps field naming consistent across the project for log queries.
const (
	// FieldTraceID trace ID field
	FieldTraceID = "traceId"

	// FieldMethod HTTP method field
	FieldMethod = "method"

	// FieldPath request path field
	FieldPath = "path"

	// FieldDuration elapsed time field
	FieldDuration = "duration"

	// FieldError error message field
	FieldError = "error"

	// FieldNoteID note ID field
	FieldNoteID = "noteId"

	// FieldCount row count field
	FieldCount = "count"
)
