package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode is the stable machine-readable identifier clients switch on. Codes
// use the platform's translation key form so front ends can localise them.
type ErrorCode string

const (
	ErrValidation   ErrorCode = "[[error:invalid-data]]"
	ErrNotFound     ErrorCode = "[[error:not-found]]"
	ErrUnauthorized ErrorCode = "[[error:not-logged-in]]"
	ErrTooMany      ErrorCode = "[[error:too-many-requests]]"
	ErrInternal     ErrorCode = "[[error:internal-error]]"

	ErrGroupNameTooShort ErrorCode = "[[error:group-name-too-short]]"
	ErrGroupNameTooLong  ErrorCode = "[[error:group-name-too-long]]"
	ErrInvalidGroupName  ErrorCode = "[[error:invalid-group-name]]"
	ErrGroupExists       ErrorCode = "[[error:group-already-exists]]"
	ErrNoGroup           ErrorCode = "[[error:no-group]]"
	ErrInvalidUID        ErrorCode = "[[error:invalid-uid]]"
)

// AppError carries additional metadata beyond a regular error.
type AppError struct {
	err        error
	message    string
	code       ErrorCode
	httpStatus int
	fields     map[string]string
}

// New creates a new AppError with supplied details.
func New(message string, status int, code ErrorCode, err error) *AppError {
	return &AppError{
		err:        err,
		message:    message,
		httpStatus: status,
		code:       code,
	}
}

// BadRequest is shorthand for a 400 carrying code.
func BadRequest(message string, code ErrorCode, err error) *AppError {
	return New(message, http.StatusBadRequest, code, err)
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}
	return e.message
}

func (e *AppError) Unwrap() error {
	return e.err
}

// Message returns a safe error message for clients.
func (e *AppError) Message() string {
	return e.message
}

// StatusCode returns the HTTP status to use for this error.
func (e *AppError) StatusCode() int {
	return e.httpStatus
}

// Code returns the application level error code.
func (e *AppError) Code() ErrorCode {
	return e.code
}

// WithFields attaches field-level errors to the AppError.
func (e *AppError) WithFields(fields map[string]string) *AppError {
	copy := *e
	copy.fields = fields
	return &copy
}

// Fields returns any field-level errors recorded on the AppError.
func (e *AppError) Fields() map[string]string {
	return e.fields
}

// Is reports whether err is an AppError with the given code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.code == code
	}
	return false
}

// CodeOf returns the code of the first AppError in err's chain, or ErrInternal.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.code
	}
	return ErrInternal
}

// Wrap converts a standard error into an AppError if needed.
func Wrap(err error, message string, status int, code ErrorCode) *AppError {
	if err == nil {
		return nil
	}
	if appErr := new(AppError); errors.As(err, &appErr) {
		return appErr
	}
	return New(message, status, code, err)
}
