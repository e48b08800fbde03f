package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrAuthenticationFailed covers bad credentials and inactive accounts.
// The two cases are deliberately indistinguishable to callers.
var ErrAuthenticationFailed = errors.New("authentication failed")

// ErrForbidden indicates the authenticated caller lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrTokenInvalid indicates a token that is malformed, carries a bad
// signature, or is unknown to the server (refresh/reset lookups).
var ErrTokenInvalid = errors.New("invalid token")

// ErrTokenExpired indicates a token that parsed and matched but whose
// expiry is in the past.
var ErrTokenExpired = errors.New("token expired")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
// Used mainly by the storage layer for unexpected failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
