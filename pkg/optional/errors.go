package optional

import (
	"errors"
	"fmt"
)

var (
	// ErrNone is the cause carried by errors reporting a missing Some.
	ErrNone = errors.New("option is none")
	// ErrNotOk is the cause carried by errors reporting a missing Ok.
	ErrNotOk = errors.New("result is not ok")
	// ErrNotError is the cause carried by errors reporting a missing Error.
	ErrNotError = errors.New("result is not error")
)

const (
	invalidOptionMessage = "Can not operate on default value of option!"
	invalidResultMessage = "Can not operate on default value of result!"
)

// OptionError is raised by the unwrap family of Option operations when the
// option holds no value. The zero value is the parameterless form.
type OptionError struct {
	Message string
	Inner   error
}

func NewOptionError(message string) *OptionError {
	return &OptionError{Message: message}
}

func WrapOptionError(message string, inner error) *OptionError {
	return &OptionError{Message: message, Inner: inner}
}

func (e *OptionError) Error() string {
	return render("option error", e.Message, e.Inner)
}

func (e *OptionError) Unwrap() error {
	return e.Inner
}

// ResultError is raised by the unwrap family of Result operations when the
// active branch is not the requested one. The zero value is the
// parameterless form.
type ResultError struct {
	Message string
	Inner   error
}

func NewResultError(message string) *ResultError {
	return &ResultError{Message: message}
}

func WrapResultError(message string, inner error) *ResultError {
	return &ResultError{Message: message, Inner: inner}
}

func (e *ResultError) Error() string {
	return render("result error", e.Message, e.Inner)
}

func (e *ResultError) Unwrap() error {
	return e.Inner
}

func render(fallback, message string, inner error) string {
	if message == "" {
		message = fallback
	}
	if inner == nil {
		return message
	}
	return message + ": " + inner.Error()
}

// InvalidStateError is the panic value produced when a zero Option or Result
// is observed.
type InvalidStateError struct {
	Kind string
}

func (e *InvalidStateError) Error() string {
	if e.Kind == "result" {
		return invalidResultMessage
	}
	return invalidOptionMessage
}

// InvalidCastError is the panic value produced when a unit-erased container
// can not be specialized without inventing a payload.
type InvalidCastError struct {
	From string
	To   string
}

func (e *InvalidCastError) Error() string {
	return fmt.Sprintf("Can not convert '%s' to '%s'", e.From, e.To)
}

// ArgumentNilError is the panic value produced when a required callable is
// nil.
type ArgumentNilError struct {
	Param string
}

func (e *ArgumentNilError) Error() string {
	return fmt.Sprintf("argument '%s' must not be nil", e.Param)
}
