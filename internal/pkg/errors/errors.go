package errors

import (
	stderrors "errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindArgument
	KindDateFormat
	KindEncodingIO
	KindConfig
)

const (
	ErrCodeInvalidArgument = "INVALID_ARGUMENT"
	ErrCodeInvalidDate     = "INVALID_DATE"
	ErrCodeEncodingIO      = "ENCODING_IO"
	ErrCodeInvalidConfig   = "INVALID_CONFIG"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

// Exit statuses. 2 matches the usage-error convention of most CLIs.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, code, message string, err error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Err: err}
}

func Argument(format string, args ...interface{}) *Error {
	return newError(KindArgument, ErrCodeInvalidArgument, fmt.Sprintf(format, args...), nil)
}

func DateFormat(message string, err error) *Error {
	return newError(KindDateFormat, ErrCodeInvalidDate, message, err)
}

func EncodingIO(message string, err error) *Error {
	return newError(KindEncodingIO, ErrCodeEncodingIO, message, err)
}

func Config(message string, err error) *Error {
	return newError(KindConfig, ErrCodeInvalidConfig, message, err)
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func CodeOf(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if KindOf(err) == KindArgument {
		return ExitUsage
	}
	return ExitFailure
}
