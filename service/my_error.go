package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that record or row is absent in repository or storage.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that provided parameter does not match declared.
	ErrBadParameter = "bad_parameter"
	// ErrConnection means that no working ensemble session could be established, external or embedded.
	ErrConnection = "connection_error"
	// ErrEmbeddedLaunch means that the embedded ensemble configuration was rejected before launch.
	ErrEmbeddedLaunch = "embedded_launch_error"
	// ErrBinding means that a configured value could not be coerced to the attribute type.
	ErrBinding = "binding_error"
	// ErrRunLoop means that the embedded ensemble failed after it was dispatched.
	ErrRunLoop = "run_loop_error"
)

// MyError represents an error within the context of zonekeeper services.
type MyError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewMyError creates a new MyError.
func NewMyError(code string, message string, inner error) *MyError {
	return &MyError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

func NewInternalServerError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrBadParameter, message, inner)
}

// NewConnectionError wraps the last attempt error; inner may itself carry an embedded_launch_error.
func NewConnectionError(message string, inner error) *MyError {
	return NewMyError(ErrConnection, message, inner)
}

func NewEmbeddedLaunchError(message string, inner error) *MyError {
	return NewMyError(ErrEmbeddedLaunch, message, inner)
}

func NewBindingError(message string, inner error) *MyError {
	return NewMyError(ErrBinding, message, inner)
}

func NewRunLoopError(message string, inner error) *MyError {
	return NewMyError(ErrRunLoop, message, inner)
}

func (e MyError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e MyError) Unwrap() error {
	return e.Inner
}

// ToMyError returns a pointer to a zonekeeper error, or nil if it is not a zonekeeper error.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToMyErrorCode returns the code of the error, if available.
func ToMyErrorCode(err error) string {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code
	}
	return ""
}

func IsMyError(err error, code string) bool {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code == code
	}
	return false
}

func IsInternalServerError(err error) bool {
	return IsMyError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsMyError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsMyError(err, ErrBadParameter)
}

func IsConnectionError(err error) bool {
	return IsMyError(err, ErrConnection)
}

// IsEmbeddedLaunchError also matches a launch error wrapped inside a connection error.
func IsEmbeddedLaunchError(err error) bool {
	for err != nil {
		if IsMyError(err, ErrEmbeddedLaunch) {
			return true
		}
		myerror := ToMyError(err)
		if myerror == nil {
			return false
		}
		err = myerror.Inner
	}
	return false
}

func IsBindingError(err error) bool {
	return IsMyError(err, ErrBinding)
}

func IsRunLoopError(err error) bool {
	return IsMyError(err, ErrRunLoop)
}
