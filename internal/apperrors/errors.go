package apperrors

import (
	"errors"
	"fmt"
)

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidArgument indicates that an operation was called with arguments
// violating one of its preconditions. Every money operation reports its
// failures with this kind.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError carries the human-readable reason a money operation
// rejected its input. Error returns the reason verbatim so callers can surface it.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// Is reports ErrInvalidArgument and ErrValidation as matching kinds.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument || target == ErrValidation
}

// NewInvalidArgument returns an InvalidArgumentError with the given message.
func NewInvalidArgument(message string) error {
	return &InvalidArgumentError{Message: message}
}

// AppError is an infrastructure failure annotated with a status code.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
