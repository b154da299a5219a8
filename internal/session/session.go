// ABOUTME: Session state for the STL Auto back office client
// ABOUTME: Persists the bearer token in the XDG config directory, caches the user in memory

package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// tokenKey is the fixed key the bearer token is stored under.
const tokenKey = "auth_token"

// User is the authenticated user record returned by /users/me.
// Only the fields the client itself inspects are typed; everything
// else stays in Raw.
type User struct {
	ID       string          `json:"id"`
	Phone    string          `json:"phone"`
	FullName string          `json:"full_name"`
	Role     string          `json:"role"`
	IsActive bool            `json:"is_active"`
	Raw      json.RawMessage `json:"-"`
}

// Store holds the two pieces of session state: the bearer token
// (persisted across runs) and the cached current user (memory only).
// The user cache is never valid without a token.
type Store struct {
	configDir string
	token     string
	loaded    bool
	user      *User
}

type sessionData struct {
	AuthToken string `json:"auth_token"`
}

// New creates a session store backed by the given config directory.
func New(configDir string) *Store {
	return &Store{configDir: configDir}
}

// DefaultConfigDir returns the config directory following the XDG spec.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stl-admin")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "stl-admin")
}

// sessionFile returns the path to the persisted session JSON.
func (s *Store) sessionFile() string {
	return filepath.Join(s.configDir, "session.json")
}

// Token returns the bearer token, loading it from disk on first use.
// Returns "" when no session is held.
func (s *Store) Token() string {
	if s.loaded {
		return s.token
	}
	s.loaded = true

	data, err := os.ReadFile(s.sessionFile())
	if err != nil {
		return ""
	}
	var sd sessionData
	if err := json.Unmarshal(data, &sd); err != nil {
		// Invalid JSON, treat as signed out
		return ""
	}
	s.token = sd.AuthToken
	return s.token
}

// SetToken stores a new bearer token and invalidates the cached user.
// The token is written to disk so the session survives restarts; a
// write failure leaves the in-memory session usable for this run.
func (s *Store) SetToken(token string) error {
	s.token = token
	s.loaded = true
	s.user = nil

	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(sessionData{AuthToken: token}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.sessionFile(), data, 0600)
}

// Clear wipes the token and cached user, in memory and on disk.
func (s *Store) Clear() {
	s.token = ""
	s.loaded = true
	s.user = nil
	os.Remove(s.sessionFile())
}

// User returns the cached user, or nil when none is cached.
func (s *Store) User() *User {
	if s.Token() == "" {
		return nil
	}
	return s.user
}

// SetUser caches the current user for the lifetime of the process.
func (s *Store) SetUser(u *User) {
	s.user = u
}
