package errs

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeNotFound   Code = "NOT_FOUND"
	CodeValidation Code = "VALIDATION_ERROR"
	CodeGit        Code = "GIT_ERROR"
	CodeInternal   Code = "INTERNAL_ERROR"
)

// Context keys used across the repo.
const (
	CtxPath = "path"
	CtxStep = "step"
	CtxRef  = "ref"
)

// Error carries a machine-readable code plus free-form context so callers
// can report which step of an operation failed.
type Error struct {
	Code    Code
	Message string
	Err     error
	Context map[string]any
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if len(e.Context) > 0 {
		msg += fmt.Sprintf(" %v", e.Context)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, Err: err}
}

func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
