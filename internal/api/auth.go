// ABOUTME: Authentication and session operations for the back-office client
// ABOUTME: Login, registration, logout, current-user caching and role checks

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stlauto/backoffice-cli/internal/session"
)

// TokenResponse is the backend's answer to a successful login.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Login authenticates with phone and password and stores the returned
// access token in the session. A 422 response is logged with the
// attempted payload before the error is returned; login failures are
// never swallowed or retried.
func (c *Client) Login(ctx context.Context, phone, password string) (*TokenResponse, error) {
	raw, err := c.post(ctx, "/auth/login", loginRequest{Phone: phone, Password: password})
	if err != nil {
		if IsStatus(err, http.StatusUnprocessableEntity) {
			c.log.Warn().
				Str("phone", phone).
				Str("password", password).
				Msg("login payload rejected with 422")
		}
		return nil, err
	}

	var tok TokenResponse
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("invalid response from backend: %w", err)
	}
	if tok.AccessToken != "" {
		if err := c.session.SetToken(tok.AccessToken); err != nil {
			c.log.Warn().Err(err).Msg("could not persist session token")
		}
	}
	return &tok, nil
}

// Register submits a registration payload. No session side effect.
func (c *Client) Register(ctx context.Context, data any) (json.RawMessage, error) {
	return c.post(ctx, "/auth/register", data)
}

// Logout clears the token and cached user. No network call is made;
// the bearer token simply stops being presented.
func (c *Client) Logout() {
	c.session.Clear()
}

// CurrentUser returns the authenticated user. Without a token it
// returns nil immediately. A cached user is served without a refetch.
// Any fetch failure, a 401 included, clears the whole session and
// returns nil: the client cannot tell an expired token from an
// unreachable backend and treats both as "session invalid". The
// underlying cause is logged for observability.
func (c *Client) CurrentUser(ctx context.Context) (*session.User, error) {
	if c.session.Token() == "" {
		return nil, nil
	}
	if u := c.session.User(); u != nil {
		return u, nil
	}

	raw, err := c.get(ctx, "/users/me", nil)
	if err != nil {
		c.log.Debug().Err(err).Msg("current user fetch failed, clearing session")
		c.session.Clear()
		return nil, nil
	}

	var u session.User
	if err := json.Unmarshal(raw, &u); err != nil {
		c.log.Debug().Err(err).Msg("current user response unreadable, clearing session")
		c.session.Clear()
		return nil, nil
	}
	u.Raw = raw
	c.session.SetUser(&u)
	return &u, nil
}

// HasRole reports whether the cached user is at least as privileged as
// the least-privileged acceptable role. False when no user is cached.
func (c *Client) HasRole(roles ...Role) bool {
	u := c.session.User()
	if u == nil {
		return false
	}
	return Role(u.Role).Level() >= requiredLevel(roles)
}
