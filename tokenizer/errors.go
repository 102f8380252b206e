package tokenizer

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the failure class reported by this package. The set is
// closed: every error crossing the package boundary carries exactly one kind.
type ErrorKind int

const (
	// ErrDictionaryLoad means the analyzer engine could not open, parse, or
	// map the system or user dictionary.
	ErrDictionaryLoad ErrorKind = iota + 1
	// ErrConfig means the settings file could not be read or parsed.
	ErrConfig
	// ErrTokenize means segmentation or result materialization failed.
	ErrTokenize
	// ErrInvalidArgument means a caller-supplied argument violated a
	// precondition before any I/O was attempted.
	ErrInvalidArgument
)

// Error is the error type returned across this package's boundary. The
// underlying diagnostic is preserved verbatim in Message and, where one
// exists, the original error remains reachable through Unwrap.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrDictionaryLoad:
		return "failed to load dictionary: " + e.Message
	case ErrConfig:
		return "failed to load config: " + e.Message
	case ErrTokenize:
		return "tokenization failed: " + e.Message
	default:
		return "invalid argument: " + e.Message
	}
}

func (e *Error) Unwrap() error { return e.cause }

// KindOf returns the ErrorKind carried by err, or zero when err did not
// originate in this package.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func wrapError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Message: err.Error(), cause: err}
}

func errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
