package errors

import "addressconv/internal/errors"

// Classify returns the AppError found in err's chain, or ErrInternalError when
// err carries none.
func Classify(err error) AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr
	}

	return ErrInternalError
}
