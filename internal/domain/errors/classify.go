package errors

import (
	"github.com/pkg/errors"
)

// AsAppError extracts the AppError carried by err, falling back to ErrUnexpected
// so every failure maps onto one taxonomy kind.
func AsAppError(err error) AppError {
	if err == nil {
		return nil
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return ErrUnexpected
}

// IsKind reports whether err carries an AppError with the given business code.
func IsKind(err error, code string) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.ErrorCode() == code
}
