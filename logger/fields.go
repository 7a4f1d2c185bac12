package logger

// Standard field names for structured logging. Use these constants instead
// of raw strings so gateway traces stay greppable.
const (
	FieldTraceID = "trace_id"
	FieldCommand = "command"

	FieldRequest  = "request"
	FieldResponse = "response"

	FieldEngineVersion = "engine_version"
	FieldCompatWindow  = "compat_window"

	FieldError = "error"
)
