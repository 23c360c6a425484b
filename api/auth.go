package api

import (
	"context"

	"github.com/pkg/errors"

	"github.com/akhbar-news/akhbar/content"
)

// Login exchanges the user's credentials for a bearer token and the user
// record.
func (c *Client) Login(ctx context.Context, email, password string) (string, content.User, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var data authPayload
	if err := c.post(ctx, "/api/auth/login", "", body, &data); err != nil {
		return "", content.User{}, errors.WithMessage(err, "logging in")
	}

	if err := data.validate(); err != nil {
		return "", content.User{}, err
	}

	return data.AccessToken, data.User, nil
}

// Register creates a new account and logs it in, with the same result shape
// as Login.
func (c *Client) Register(ctx context.Context, email, password, name string) (string, content.User, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}{email, password, name}

	var data authPayload
	if err := c.post(ctx, "/api/auth/register", "", body, &data); err != nil {
		return "", content.User{}, errors.WithMessage(err, "registering")
	}

	if err := data.validate(); err != nil {
		return "", content.User{}, err
	}

	return data.AccessToken, data.User, nil
}

// Me returns the user record belonging to the token.
func (c *Client) Me(ctx context.Context, token string) (content.User, error) {
	var user content.User
	if err := c.get(ctx, "/api/auth/me", token, &user); err != nil {
		return content.User{}, errors.WithMessage(err, "getting current user")
	}

	if err := user.Validate(); err != nil {
		return content.User{}, errors.WithMessage(err, "validating current user")
	}

	return user, nil
}

func (p authPayload) validate() error {
	if p.AccessToken == "" {
		return errors.WithStack(content.NewValidationError(errors.New("missing access token")))
	}

	return errors.WithMessage(p.User.Validate(), "validating user")
}
