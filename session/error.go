package session

import "github.com/akhbar-news/akhbar/api"

// AuthError is returned by Login and Register. Message is suitable for
// displaying to the user: the server's detail field when it provided one,
// a generic localized message otherwise.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

// Cause returns the underlying error.
func (e *AuthError) Cause() error {
	return e.Err
}

// IsAuthError returns true if the error is an *AuthError.
func IsAuthError(err error) bool {
	_, ok := err.(*AuthError)
	return ok
}

func newAuthError(err error, fallback string) *AuthError {
	message := api.DetailOf(err)
	if message == "" {
		message = fallback
	}

	return &AuthError{Message: message, Err: err}
}
