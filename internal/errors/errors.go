// Package errors provides coded, actionable error messages for the
// frond CLI. Each error carries a short code, a category, and an
// optional hint shown to the user.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return errors.As(err, target) }

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// Category groups errors by origin.
type Category string

const (
	CategoryConfig Category = "config"
	CategoryBuild  Category = "build"
	CategoryDeploy Category = "deploy"
	CategoryCLI    Category = "cli"
)

// Error is a coded CLI error.
type Error struct {
	Code     string
	Category Category
	Message  string
	Hint     string

	// Cause is the wrapped underlying error, if any.
	Cause error
}

// New creates an error with the given code, category, and message.
func New(code string, category Category, format string, args ...any) *Error {
	return &Error{
		Code:     code,
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// WithHint attaches a suggestion shown below the message.
func (e *Error) WithHint(format string, args ...any) *Error {
	e.Hint = fmt.Sprintf(format, args...)
	return e
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Format renders the error for terminal output, including the hint.
func (e *Error) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ERROR %s (%s): %s\n", e.Code, e.Category, e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, "\n  %v\n", e.Cause)
	}
	if e.Hint != "" {
		fmt.Fprintf(&b, "\n  Hint: %s\n", e.Hint)
	}
	return b.String()
}
