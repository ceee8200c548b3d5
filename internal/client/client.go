// Package client implements the HTTP client used by the authctl tool to talk
// to the authkeeper server.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SessionCookieName matches the cookie the server sets on login.
const SessionCookieName = "session_id"

var (
	ErrAlreadyRegistered  = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoActiveSession    = errors.New("no active session")
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
			// logout replies with a redirect; the caller only needs the status
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.http.Do(req)
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, email, password string) error {
	resp, err := c.postForm(ctx, "/users", url.Values{"email": {email}, "password": {password}})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest:
		return ErrAlreadyRegistered
	default:
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
}

// Login verifies credentials and returns the session token from the
// session_id cookie.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := c.postForm(ctx, "/sessions", url.Values{"email": {email}, "password": {password}})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return "", ErrInvalidCredentials
	default:
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == SessionCookieName {
			return cookie.Value, nil
		}
	}
	return "", errors.New("no session cookie in response")
}

// Profile returns the email of the user owning the session token.
func (c *Client) Profile(ctx context.Context, sessionID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/profile", nil)
	if err != nil {
		return "", err
	}
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID})

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden:
		return "", ErrNoActiveSession
	default:
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("error decoding response: %w", err)
	}
	return body.Email, nil
}

// Logout invalidates the session token.
func (c *Client) Logout(ctx context.Context, sessionID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/sessions", nil)
	if err != nil {
		return err
	}
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID})

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusFound, http.StatusOK:
		return nil
	case http.StatusForbidden:
		return ErrNoActiveSession
	default:
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
}
