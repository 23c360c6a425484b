package content

import (
	"net/mail"

	"github.com/pkg/errors"
)

// User represents a registered user of the service, as returned by the auth
// endpoints. CreatedAt is passed through as the server formats it.
type User struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Favorites []ArticleID `json:"favorites"`
	CreatedAt string      `json:"created_at"`
}

// Validate checks whether all required fields have been provided.
func (u User) Validate() error {
	if u.ID == "" {
		return NewValidationError(errors.New("missing user id"))
	}

	if u.Email == "" {
		return NewValidationError(errors.New("missing user email"))
	}

	if _, err := mail.ParseAddress(u.Email); err != nil {
		return NewValidationError(err)
	}

	return nil
}

// HasFavorite returns true if the given article id is in the user's
// favorites.
func (u User) HasFavorite(id ArticleID) bool {
	for _, f := range u.Favorites {
		if f == id {
			return true
		}
	}

	return false
}
