package model

import (
	"errors"
	"fmt"
)

// Kind classifies errors surfaced to the user.
type Kind int

// Error kinds.
const (
	KindOther Kind = iota
	KindValidation
	KindNotFound
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	case KindIO:
		return "io"
	default:
		return "error"
	}
}

// Error is a classified error. Err is optional.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validationf returns a ValidationError.
func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// NotFoundf returns a NotFoundError.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// IOError wraps a storage failure.
func IOError(msg string, err error) error {
	return &Error{Kind: KindIO, Msg: msg, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindOther
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// Exit codes.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitValidation = 2
	ExitNotFound   = 3
	ExitIO         = 4
)

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch KindOf(err) {
	case KindValidation:
		return ExitValidation
	case KindNotFound:
		return ExitNotFound
	case KindIO:
		return ExitIO
	default:
		return ExitFailure
	}
}
