// Package api implements a typed client for the remote news service. All
// request and response bodies are JSON. Responses are decoded into concrete
// payload types and validated before they are handed to callers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/akhbar-news/akhbar/config"
	"github.com/akhbar-news/akhbar/content"
	"github.com/akhbar-news/akhbar/log"
)

// Client talks to the remote service. It is safe for concurrent use.
type Client struct {
	url    string
	client *http.Client
	log    log.Log
}

// New creates a client for the service at cfg.URL, using the connect and
// read-write timeouts from the timeout configuration.
func New(cfg config.API, timeout config.Timeout, log log.Log) *Client {
	connect := timeout.Converted.Connect
	if connect == 0 {
		connect = time.Second
	}

	readWrite := timeout.Converted.ReadWrite
	if readWrite == 0 {
		readWrite = 5 * time.Second
	}

	return &Client{
		url:    strings.TrimSuffix(cfg.URL, "/"),
		client: NewTimeoutClient(connect, readWrite),
		log:    log,
	}
}

func (c *Client) get(ctx context.Context, path, token string, data interface{}) error {
	req, err := http.NewRequest("GET", c.url+path, nil)
	if err != nil {
		return errors.Wrapf(err, "creating request for %s", path)
	}

	return c.do(req.WithContext(ctx), token, data)
}

func (c *Client) post(ctx context.Context, path, token string, body, data interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return errors.Wrapf(err, "marshaling request body for %s", path)
	}

	req, err := http.NewRequest("POST", c.url+path, bytes.NewReader(b))
	if err != nil {
		return errors.Wrapf(err, "creating request for %s", path)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.do(req.WithContext(ctx), token, data)
}

func (c *Client) do(req *http.Request, token string, data interface{}) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "requesting %s", req.URL.Path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}

	if data == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(data); err != nil {
		return errors.Wrapf(err, "decoding response from %s", req.URL.Path)
	}

	return nil
}

// validArticles drops articles that fail boundary validation, so that a
// single malformed item doesn't take a whole list down with it.
func (c *Client) validArticles(articles []content.Article) []content.Article {
	valid := articles[:0]
	for _, a := range articles {
		if err := a.Validate(); err != nil {
			c.log.Debugf("dropping invalid article from response: %v", err)
			continue
		}

		valid = append(valid, a)
	}

	return valid
}

type articlesPayload struct {
	Articles []content.Article `json:"articles"`
	Total    int               `json:"total"`
}

type authPayload struct {
	AccessToken string       `json:"access_token"`
	User        content.User `json:"user"`
}
