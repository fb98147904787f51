package core

import (
	"errors"
	"fmt"
	"os"
)

// General error codes
const (
	NOERROR   int = 0
	ELOAD     int = 121 // resource failed to load
	EPARSE    int = 122 // document could not be parsed
	ESCHEMA   int = 123 // document is well-formed but has an unexpected shape
	EINVALID  int = 124 // validation failed
	ETIMEOUT  int = 125 // operation exceeded its time budget
	ECOMPARE  int = 126 // image comparison failed
	EINTERNAL int = 127 // internal error
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case ELOAD:
		return "cannot load"
	case EPARSE:
		return "cannot parse"
	case ESCHEMA:
		return "unexpected shape"
	case EINVALID:
		return "invalid"
	case ETIMEOUT:
		return "timeout"
	case ECOMPARE:
		return "comparison failed"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.error)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// ErrorWithCode adds an error code to err's error chain.
// Unlike pkg/errors, ErrorWithCode will wrap nil error.
func ErrorWithCode(err error, code int) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return coreError{err, code, errorText(code)}
}

// WrapError wraps an error in a core error, featuring an error code and
// a user message.
// If err is nil, an error denoting NOERROR is returned.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{err, code, msg}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it checks StatusCode and returns that message.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

func UserError(err error) {
	if e, ok := err.(AppError); ok {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}

// --- Identification errors --------------------------------------------

// LoadError wraps err as a resource loading failure, naming the source
// (file path, URL or bucket key) which could not be loaded.
func LoadError(err error, source string) error {
	return WrapError(err, ELOAD, "cannot load %q", source)
}

// ParseError wraps err as a failure to parse a document fetched from source.
func ParseError(err error, source string) error {
	return WrapError(err, EPARSE, "cannot parse %q", source)
}

// SchemaError flags a well-formed document from source which does not have
// the expected structure.
func SchemaError(source, expected string) error {
	return Error(ESCHEMA, "%q is not a valid %s", source, expected)
}

// TimeoutError wraps err as an exceeded time budget for operation.
func TimeoutError(err error, operation string) error {
	return WrapError(err, ETIMEOUT, "%s exceeded its time budget", operation)
}

// ComparisonError wraps err as a failed comparison of the glyph images for
// a symbol.
func ComparisonError(err error, symbol string) error {
	return WrapError(err, ECOMPARE, "cannot compare images for symbol %q", symbol)
}
