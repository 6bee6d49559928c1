// ABOUTME: HTTP client for a GoTrue-style auth API (password grant, signup, logout).
// ABOUTME: Emits session-change events on a channel consumed by the reconciler.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

const defaultTimeout = 12 * time.Second

// Client talks to the hosted auth service and implements Provider.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client

	mu      sync.Mutex
	session *Session
	events  chan Event
	closed  bool
}

// NewClient creates an auth client for the given server.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		events:     make(chan Event, 16),
	}
}

// Events returns the session-change channel. Events are emitted in
// order; the channel is buffered so short bursts never block callers.
func (c *Client) Events() <-chan Event {
	return c.events
}

// Session returns the current session, or nil when signed out.
func (c *Client) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

// Resume adopts a previously saved session (from disk) and emits a
// TOKEN_REFRESHED event so the reconciler runs a load pass for it.
func (c *Client) Resume(sess *Session) {
	if sess == nil || sess.UserID == "" {
		return
	}
	c.mu.Lock()
	s := *sess
	c.session = &s
	c.mu.Unlock()
	c.emit(Event{Kind: EventTokenRefreshed, Session: &s})
}

// SignInWithPassword authenticates with the password grant.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	body := map[string]string{"email": email, "password": password}
	var resp tokenResponse
	if err := c.post(ctx, "/auth/v1/token?grant_type=password", body, &resp); err != nil {
		return nil, err
	}

	sess := resp.session()
	c.adopt(sess)
	c.emit(Event{Kind: EventSignedIn, Session: sess})
	return sess, nil
}

// SignUp registers a new account carrying the display name as auth
// metadata. The name is captured exactly once here - the profile
// document's name-repair rule depends on it.
func (c *Client) SignUp(ctx context.Context, email, password, displayName string) (*Session, error) {
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"full_name": displayName},
	}
	var resp tokenResponse
	if err := c.post(ctx, "/auth/v1/signup", body, &resp); err != nil {
		return nil, err
	}

	sess := resp.session()
	if sess.DisplayNameHint == "" {
		sess.DisplayNameHint = displayName
	}
	c.adopt(sess)
	c.emit(Event{Kind: EventSignedIn, Session: sess})
	return sess, nil
}

// SignOut always succeeds locally and emits SIGNED_OUT; the server-side
// token revocation is best effort.
func (c *Client) SignOut(ctx context.Context) error {
	c.mu.Lock()
	sess := c.session
	c.session = nil
	c.mu.Unlock()

	if sess != nil && sess.AccessToken != "" {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/auth/v1/logout", nil)
		if err == nil {
			req.Header.Set("apikey", c.APIKey)
			req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
			if resp, err := c.HTTPClient.Do(req); err == nil {
				_ = resp.Body.Close()
			}
		}
	}

	c.emit(Event{Kind: EventSignedOut})
	return nil
}

// Close shuts the event channel. No events may be emitted afterwards.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.events)
	}
}

func (c *Client) adopt(sess *Session) {
	c.mu.Lock()
	s := *sess
	c.session = &s
	c.mu.Unlock()
}

func (c *Client) emit(evt Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.events <- evt
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal auth request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute auth request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read auth response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return mapAuthError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode auth response: %w", err)
	}
	return nil
}

// mapAuthError translates HTTP failures into the auth error taxonomy.
func mapAuthError(status int, body []byte) error {
	var parsed struct {
		Error       string `json:"error"`
		Description string `json:"error_description"`
		Msg         string `json:"msg"`
	}
	_ = json.Unmarshal(body, &parsed)

	message := parsed.Description
	if message == "" {
		message = parsed.Msg
	}
	lower := strings.ToLower(message)

	switch {
	case status == http.StatusTooManyRequests || strings.Contains(lower, "security purposes"):
		return ErrRateLimited
	case strings.Contains(lower, "already registered"):
		return ErrAlreadyRegistered
	case strings.Contains(lower, "invalid login credentials") || status == http.StatusBadRequest && parsed.Error == "invalid_grant":
		return ErrInvalidCredentials
	case strings.Contains(lower, "password"):
		return ErrWeakPassword
	}

	if message == "" {
		message = fmt.Sprintf("auth request failed with status %d", status)
	}
	return fmt.Errorf("auth: %s", message)
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		UserMetadata struct {
			FullName string `json:"full_name"`
		} `json:"user_metadata"`
	} `json:"user"`
}

func (r tokenResponse) session() *Session {
	sess := &Session{
		UserID:          r.User.ID,
		Email:           r.User.Email,
		DisplayNameHint: r.User.UserMetadata.FullName,
		AccessToken:     r.AccessToken,
		RefreshToken:    r.RefreshToken,
	}
	if r.ExpiresIn > 0 {
		sess.ExpiresAt = time.Now().Add(time.Duration(r.ExpiresIn) * time.Second)
	}
	return sess
}
