package core

// LogLevel represents logging severity levels
type LogLevel int

const (
	// LogLevelDebug for per-query and per-request detail
	LogLevelDebug LogLevel = iota
	// LogLevelInfo for normal operational events
	LogLevelInfo
	// LogLevelWarn for rejected requests and degraded behavior
	LogLevelWarn
	// LogLevelError for failures that surfaced to a caller
	LogLevelError
)

// Logger is the structured logging port the domain depends on
type Logger interface {
	// SetLevel sets the minimum log level to output
	SetLevel(level LogLevel)
	// GetLevel gets the current log level
	GetLevel() LogLevel
	// Debug logs debug messages
	Debug(message string, fields map[string]any)
	// Info logs informational messages
	Info(message string, fields map[string]any)
	// Warn logs warning messages
	Warn(message string, fields map[string]any)
	// Error logs errors messages
	Error(message string, fields map[string]any)
	// Flush ensures all buffered logs are written to their destination
	Flush() error
}
