package gotrue

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds every call to the identity backend.
const DefaultTimeout = 10 * time.Second

// Client talks to a GoTrue-compatible identity service (the auth API exposed
// by Supabase, among others). It is safe for concurrent use and holds no
// per-request state.
type Client struct {
	http *resty.Client
}

// Option configures a Client.
type Option func(*options)

type options struct {
	timeout time.Duration
}

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// New returns a Client for the identity service rooted at baseURL.
// apiKey is the service's public API key, sent with every request.
func New(baseURL, apiKey string, opts ...Option) *Client {
	o := &options{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(o)
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/") + "/auth/v1")
	client.SetHeader("apikey", apiKey)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetTimeout(o.timeout)

	return &Client{http: client}
}

// SignUp registers a new account. Depending on backend settings the account
// may require email confirmation before it can sign in.
func (c *Client) SignUp(ctx context.Context, email, password string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetError(&apiError{}).
		Post("/signup")
	if err != nil {
		return &BackendError{Detail: err.Error()}
	}
	if resp.IsError() {
		return newBackendError(resp)
	}
	return nil
}

// SignInWithPassword exchanges credentials for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (Session, error) {
	var session Session
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&session).
		SetError(&apiError{}).
		Post("/token")
	if err != nil {
		return Session{}, &BackendError{Detail: err.Error()}
	}
	if resp.IsError() {
		return Session{}, newBackendError(resp)
	}
	if session.AccessToken == "" {
		// Success status without a token is authentication failure, never a
		// partially populated session.
		return Session{}, ErrNoSession
	}
	return session, nil
}

// SignInWithIDToken exchanges a third-party ID token (e.g. a Google ID token)
// for a session.
func (c *Client) SignInWithIDToken(ctx context.Context, provider, idToken string) (Session, error) {
	var session Session
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("grant_type", "id_token").
		SetBody(map[string]string{"provider": provider, "id_token": idToken}).
		SetResult(&session).
		SetError(&apiError{}).
		Post("/token")
	if err != nil {
		return Session{}, &BackendError{Detail: err.Error()}
	}
	if resp.IsError() {
		return Session{}, newBackendError(resp)
	}
	if session.AccessToken == "" {
		return Session{}, ErrNoSession
	}
	return session, nil
}

// RequestPasswordReset asks the backend to send a password recovery email.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email}).
		SetError(&apiError{}).
		Post("/recover")
	if err != nil {
		return &BackendError{Detail: err.Error()}
	}
	if resp.IsError() {
		return newBackendError(resp)
	}
	return nil
}

// User resolves an access token to the identity it belongs to. Used for
// per-request bearer token verification; results are never cached so a
// revoked token is rejected on the very next call.
func (c *Client) User(ctx context.Context, accessToken string) (User, error) {
	var user User
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+accessToken).
		SetResult(&user).
		SetError(&apiError{}).
		Get("/user")
	if err != nil {
		return User{}, &BackendError{Detail: err.Error()}
	}
	if resp.IsError() {
		return User{}, newBackendError(resp)
	}
	if user.ID == "" {
		return User{}, &BackendError{Status: resp.StatusCode(), Detail: "no user associated with token"}
	}
	return user, nil
}
