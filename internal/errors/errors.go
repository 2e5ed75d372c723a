package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/donghyun81/daily-glow-up-compass/internal/logger"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is
	ErrValidation = stderrors.New("validation failed")
	// ErrPersistence matches every *PersistenceError via errors.Is
	ErrPersistence = stderrors.New("persistence failed")
	// ErrQuotaExceeded is the cause of a PersistenceError when a write exceeds the store capacity
	ErrQuotaExceeded = stderrors.New("storage quota exceeded")
)

// ValidationError reports caller-supplied data the store refuses to write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewValidation builds a ValidationError with a formatted reason.
func NewValidation(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// PersistenceError reports a write or read the underlying store rejected.
// Callers decide whether to retry; nothing in the core retries.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q failed: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }

// NewPersistence wraps err as a PersistenceError; nil stays nil.
func NewPersistence(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Key: key, Err: err}
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
