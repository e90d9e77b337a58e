// Package remote talks to the account and score service over HTTP.
package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"strings"
	"time"
)

const DefaultTimeout = 4 * time.Second

var (
	ErrUserNotFound = errors.New("remote: user not found or password is incorrect")
	ErrUserExists   = errors.New("remote: username already exists")
)

// StatusError is returned for responses the caller has no specific meaning for
type StatusError int

func (s StatusError) Error() string {
	return "unexpected status: " + http.StatusText(int(s))
}

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Send posts a message to its endpoint and returns the response status
func (c *Client) Send(ctx context.Context, m MessageInterface) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+m.Type().Path(), bytes.NewReader(m.Encode()))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("remote: %s: %w", m.Type(), err)
	}
	defer resp.Body.Close()
	// Read to EOF so the connection goes back to the pool
	io.Copy(ioutil.Discard, resp.Body)
	log.Printf("Sent %s: %d", m.Type(), resp.StatusCode)
	return resp.StatusCode, nil
}

func ok(code int) bool {
	return code >= 200 && code <= 299
}

// Login checks the credentials against the service
func (c *Client) Login(ctx context.Context, creds Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}
	code, err := c.Send(ctx, MessageLogin{creds})
	switch {
	case err != nil:
		return err
	case ok(code):
		return nil
	case code == http.StatusNotFound:
		return ErrUserNotFound
	default:
		return StatusError(code)
	}
}

// Register creates an account. Any non-success answer means the name is taken.
func (c *Client) Register(ctx context.Context, creds Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}
	code, err := c.Send(ctx, MessageRegister{creds})
	switch {
	case err != nil:
		return err
	case ok(code):
		return nil
	default:
		return ErrUserExists
	}
}

func (c *Client) SubmitScore(ctx context.Context, score MessageScore) error {
	code, err := c.Send(ctx, score)
	if err != nil {
		return err
	}
	if !ok(code) {
		return StatusError(code)
	}
	return nil
}
