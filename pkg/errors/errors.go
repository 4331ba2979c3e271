package errors

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Sentinel kinds. Every typed error below reports one of them through Is so
// callers can branch with errors.Is without knowing the concrete type.
var (
	ErrType       = errors.New("type error")
	ErrValue      = errors.New("value error")
	ErrRuntime    = errors.New("runtime error")
	ErrValidation = errors.New("validation error")
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TypeError reports a value of the wrong shape for a named parameter: a
// scalar of the wrong type, a tuple of the wrong arity or a non-callable
// where a callback was expected.
type TypeError struct {
	Param   string
	Message string
}

// NewTypeError constructs a TypeError for param.
func NewTypeError(param, format string, args ...any) error {
	return &TypeError{Param: param, Message: fmt.Sprintf(format, args...)}
}

func (e *TypeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Param != "" {
		return fmt.Sprintf("type error: %s: %s", e.Param, e.Message)
	}
	return fmt.Sprintf("type error: %s", e.Message)
}

// Is reports ErrType.
func (e *TypeError) Is(target error) bool {
	return target == ErrType
}

// ValueError reports a value outside the domain of a named parameter, such
// as a range whose minimum exceeds its maximum.
type ValueError struct {
	Param   string
	Message string
}

// NewValueError constructs a ValueError for param.
func NewValueError(param, format string, args ...any) error {
	return &ValueError{Param: param, Message: fmt.Sprintf(format, args...)}
}

func (e *ValueError) Error() string {
	if e == nil {
		return ""
	}
	if e.Param != "" {
		return fmt.Sprintf("value error: %s: %s", e.Param, e.Message)
	}
	return fmt.Sprintf("value error: %s", e.Message)
}

// Is reports ErrValue.
func (e *ValueError) Is(target error) bool {
	return target == ErrValue
}

// RuntimeError reports a missing runtime precondition, for example asking
// for the application context when no application is running.
type RuntimeError struct {
	Op      string
	Message string
}

// NewRuntimeError constructs a RuntimeError for op.
func NewRuntimeError(op, message string) error {
	return &RuntimeError{Op: op, Message: message}
}

func (e *RuntimeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("runtime error: %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("runtime error: %s", e.Message)
}

// Is reports ErrRuntime.
func (e *RuntimeError) Is(target error) bool {
	return target == ErrRuntime
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// YAMLLine extracts the line number from a yaml decoding error, or 0.
func YAMLLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}

	return line
}
