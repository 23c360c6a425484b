package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Error is returned for any response outside the 2xx range. Detail carries
// the server's error message when one was provided; it is in Arabic and can
// be shown to the user directly.
type Error struct {
	Status int
	Detail string
}

func (e Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Detail)
	}

	return fmt.Sprintf("api: status %d", e.Status)
}

func errorFromResponse(resp *http.Response) error {
	apiErr := Error{Status: resp.StatusCode}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Detail = body.Detail
	}

	return errors.WithStack(apiErr)
}

// StatusOf returns the http status carried by the error, or 0 if the error
// did not originate from a response.
func StatusOf(err error) int {
	if apiErr, ok := errors.Cause(err).(Error); ok {
		return apiErr.Status
	}

	return 0
}

// DetailOf returns the server-provided error message, if any.
func DetailOf(err error) string {
	if apiErr, ok := errors.Cause(err).(Error); ok {
		return apiErr.Detail
	}

	return ""
}

// IsBadAuth returns true if the server rejected the request's credentials.
func IsBadAuth(err error) bool {
	status := StatusOf(err)
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}
