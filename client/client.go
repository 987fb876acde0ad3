// Package client is the admin dashboard's programmatic interface to the
// tourism backend: a typed resource client plus the generic list/detail/delete
// controllers every entity-management screen is built from.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Token   string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

type errorDetails struct {
	Details string `json:"details"`
}

type envelope struct {
	Status  Status          `json:"status"`
	Payload json.RawMessage `json:"payload"`
	Errors  *errorDetails   `json:"errors"`
}

// do performs one request and decodes the response envelope. Expected failure
// categories arrive as envelope statuses, not as errors; the error return is
// transport-level only. Each call is fired exactly once, no retries.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return envelope{Status: StatusException}, err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return envelope{Status: StatusException}, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return envelope{Status: StatusException}, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return envelope{Status: StatusException}, err
	}
	if env.Status == "" {
		env.Status = StatusException
	}
	return env, nil
}

// Session is the read-only identity created at login and torn down at logout.
// No other part of the SDK mutates it.
type Session struct {
	UserID int64
	Email  string
	Role   Role
	Token  string
}

type sessionUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type loginPayload struct {
	Token string      `json:"token"`
	User  sessionUser `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (Session, Status, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil || env.Status != StatusOK {
		return Session{}, env.Status, err
	}

	var payload loginPayload
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		return Session{}, StatusException, err
	}

	c.Token = payload.Token
	return Session{
		UserID: payload.User.ID,
		Email:  payload.User.Email,
		Role:   payload.User.Role,
		Token:  payload.Token,
	}, StatusOK, nil
}

func (c *Client) Logout() {
	c.Token = ""
}
