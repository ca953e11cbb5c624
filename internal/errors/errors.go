// Package errors provides a lightweight structured error type (TagdocError)
// for category-based classification in the CLI.
//
// Only configuration loading, input decoding and output I/O return errors.
// Problems inside the documentation pipeline are warnings, never errors.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a tagdoc error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig ErrorCategory = "config"
	CategoryInput  ErrorCategory = "input"

	// Setup errors, such as a plugin set that fails to register
	CategoryRegistry ErrorCategory = "registry"

	// Output errors
	CategoryRender     ErrorCategory = "render"
	CategoryFileSystem ErrorCategory = "filesystem"

	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded output
)

// ContextFields carries structured context for TagdocError
type ContextFields map[string]any

// TagdocError is a structured error with category, severity and context
type TagdocError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// Error implements the error interface
func (e *TagdocError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap returns the wrapped cause
func (e *TagdocError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *TagdocError) WithContext(key string, value any) *TagdocError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new TagdocError
func New(category ErrorCategory, severity ErrorSeverity, message string) *TagdocError {
	return &TagdocError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new TagdocError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *TagdocError {
	return &TagdocError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As finds the first TagdocError in err's chain.
func As(err error) (*TagdocError, bool) {
	var te *TagdocError
	if stderrors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if te, ok := As(err); ok {
		return te.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a TagdocError
func GetCategory(err error) ErrorCategory {
	if te, ok := As(err); ok {
		return te.Category
	}
	return CategoryInternal
}
