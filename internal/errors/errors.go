// Package errors provides the structured error types used across the
// refrescante CLI.
//
// The dispatcher recognizes exactly two parse-time failure modes: an
// unrecognized command or flag token, and a missing required positional
// argument. Both are fatal to the invocation, are reported on stderr before
// any handler runs, and map to exit code 1. Additional kinds cover the I/O
// and configuration paths of the non-parsing surface (manifest loading,
// config validation).
package errors

import (
	"errors"
	"fmt"
)

// Kind categorizes a CLI error.
type Kind string

const (
	KindUnknownArgument Kind = "unknown-argument"
	KindMissingArgument Kind = "missing-argument"
	KindConfig          Kind = "config"
	KindIO              Kind = "io"
)

// Exit codes returned by the process.
const (
	ExitOK    = 0
	ExitError = 1
)

// CLIError is a structured error carrying the failure kind, the offending
// token (when one exists), and the message reported to the user.
type CLIError struct {
	Kind    Kind
	Token   string
	Message string
	Cause   error
}

// Error implements the error interface. The message is the exact text
// written to stderr, so it carries no decoration beyond the cause chain.
func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error.
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// Is matches errors by kind, so callers can test for a failure category
// without comparing message text.
func (e *CLIError) Is(target error) bool {
	var t *CLIError
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// NewUnknownArgument reports a token that matches no declared command or
// flag. The parser runs in strict mode, so any such token is fatal.
func NewUnknownArgument(token string) *CLIError {
	return &CLIError{
		Kind:    KindUnknownArgument,
		Token:   token,
		Message: fmt.Sprintf("Unknown argument: %s", token),
	}
}

// NewMissingArgument reports a required positional argument that was not
// supplied to the named command.
func NewMissingArgument(command, param string) *CLIError {
	return &CLIError{
		Kind:    KindMissingArgument,
		Token:   param,
		Message: fmt.Sprintf("not enough arguments: %q requires <%s>", command, param),
	}
}

// NewConfigError reports an invalid or unreadable configuration.
func NewConfigError(message string, cause error) *CLIError {
	return &CLIError{
		Kind:    KindConfig,
		Message: message,
		Cause:   cause,
	}
}

// NewIOError reports a filesystem failure, such as an unreadable manifest.
func NewIOError(message string, cause error) *CLIError {
	return &CLIError{
		Kind:    KindIO,
		Message: message,
		Cause:   cause,
	}
}

// ExitCode maps an error to the process exit code. A nil error is success;
// every reported failure exits 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return ExitError
}

// IsKind reports whether err is a CLIError of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *CLIError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
