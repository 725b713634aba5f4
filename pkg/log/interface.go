// Package log provides structured logging for discrim model operations.
//
// The package defines a minimal Logger interface with a zerolog-backed
// default implementation. The numerical core (stats, whiten) never logs;
// only the model layer reports fit and predict progress through this
// package. Standard attribute keys keep field names consistent across
// models so fitted runs can be filtered and compared in log output.
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.ModelNameKey, "LinearDiscriminant",
//	)
//	logger.Info("fit complete",
//	    log.OperationKey, "fit",
//	    log.SamplesKey, 150,
//	    log.FeaturesKey, 4,
//	    log.ClassesKey, 3,
//	)
package log

// Logger is a structured logging interface with key-value fields.
//
// Implementations must accept fields as alternating key-value pairs, with
// string keys. With returns a derived logger whose fields are attached to
// every subsequent message.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger
}

// Level is the minimum severity a logger emits.
type Level int

// Log levels in increasing severity.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)
