package content

import "github.com/pkg/errors"

// ErrNoContent is returned when the remote service has no record of the
// requested entity.
var ErrNoContent = errors.New("no content")

type ValidationError struct {
	error
}

func NewValidationError(err error) ValidationError {
	return ValidationError{errors.WithStack(err)}
}

// IsNoContent returns true if the cause of the error is ErrNoContent.
func IsNoContent(err error) bool {
	return errors.Cause(err) == ErrNoContent
}

// IsValidation returns true if a ValidationError is in the error chain.
func IsValidation(err error) bool {
	for err != nil {
		if _, ok := err.(ValidationError); ok {
			return true
		}

		cause, ok := err.(interface{ Cause() error })
		if !ok {
			break
		}
		err = cause.Cause()
	}

	return false
}
