// ABOUTME: Tests for login, logout, current-user caching and role checks
// ABOUTME: Verifies session side effects and the bearer header end to end

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/stlauto/backoffice-cli/internal/session"
)

func TestLogin_StoresTokenAndSendsBearer(t *testing.T) {
	var carPath, carAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["phone"] != "+998901234567" || body["password"] != "secret" {
				t.Errorf("unexpected login body: %v", body)
			}
			json.NewEncoder(w).Encode(map[string]string{"access_token": "abc123", "token_type": "bearer"})
		case "/cars/42":
			carPath = r.URL.Path
			carAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{"id":"42"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	tok, err := c.Login(context.Background(), "+998901234567", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.AccessToken != "abc123" {
		t.Errorf("expected token abc123, got %q", tok.AccessToken)
	}

	if _, err := c.Car(context.Background(), "42"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if carPath != "/cars/42" {
		t.Errorf("expected /cars/42, got %s", carPath)
	}
	if carAuth != "Bearer abc123" {
		t.Errorf("expected Bearer abc123, got %q", carAuth)
	}
}

func TestLogin_FailurePropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid phone or password"})
	}))
	defer server.Close()

	sess := session.New(t.TempDir())
	c := New(server.URL, sess, zerolog.Nop())
	_, err := c.Login(context.Background(), "+998901234567", "wrong")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if sess.Token() != "" {
		t.Error("expected no token stored on failed login")
	}
}

func TestLogin_ValidationFailureStillPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{"detail": []map[string]string{{"msg": "invalid phone"}}})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.Login(context.Background(), "not-a-phone", "secret")
	if err == nil {
		t.Fatal("expected 422 to propagate, got nil")
	}
	if !IsStatus(err, http.StatusUnprocessableEntity) {
		t.Errorf("expected a 422 backend error, got %v", err)
	}
}

func TestCurrentUser_NilWithoutToken(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	u, err := c.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u != nil {
		t.Error("expected nil user without a token")
	}
	if calls != 0 {
		t.Errorf("expected no network calls, got %d", calls)
	}
}

func TestCurrentUser_CachesAcrossCalls(t *testing.T) {
	fetches := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/me" {
			t.Errorf("expected /users/me, got %s", r.URL.Path)
		}
		fetches++
		json.NewEncoder(w).Encode(map[string]any{"id": "u1", "phone": "+998901234567", "role": "manager"})
	}))
	defer server.Close()

	sess := session.New(t.TempDir())
	sess.SetToken("abc123")
	c := New(server.URL, sess, zerolog.Nop())

	u1, err := c.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u1 == nil || u1.Role != "manager" {
		t.Fatalf("expected manager user, got %+v", u1)
	}

	u2, err := c.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u2 != u1 {
		t.Error("expected the cached user on the second call")
	}
	if fetches != 1 {
		t.Errorf("expected exactly one fetch, got %d", fetches)
	}
}

func TestCurrentUser_FailureClearsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Token expired"})
	}))
	defer server.Close()

	sess := session.New(t.TempDir())
	sess.SetToken("expired")
	c := New(server.URL, sess, zerolog.Nop())

	u, err := c.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("expected failure to be recovered, got error: %v", err)
	}
	if u != nil {
		t.Error("expected nil user on fetch failure")
	}
	if sess.Token() != "" {
		t.Error("expected token cleared on fetch failure")
	}
	if sess.User() != nil {
		t.Error("expected cached user cleared on fetch failure")
	}
}

func TestLogout_ThenCurrentUserIsNilWithoutNetworkCall(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]any{"id": "u1", "role": "admin"})
	}))
	defer server.Close()

	sess := session.New(t.TempDir())
	sess.SetToken("abc123")
	c := New(server.URL, sess, zerolog.Nop())

	if _, err := c.CurrentUser(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	calls = 0

	c.Logout()

	u, err := c.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u != nil {
		t.Error("expected nil user after logout")
	}
	if calls != 0 {
		t.Errorf("expected no network calls after logout, got %d", calls)
	}
}

func TestHasRole(t *testing.T) {
	sess := session.New(t.TempDir())
	sess.SetToken("abc123")
	c := New("http://unused", sess, zerolog.Nop())

	if c.HasRole(RoleClient) {
		t.Error("expected false with no cached user")
	}

	sess.SetUser(&session.User{ID: "u1", Role: "operator"})

	tests := []struct {
		name  string
		roles []Role
		want  bool
	}{
		{"meets own level", []Role{RoleOperator}, true},
		{"meets lower level", []Role{RoleClient}, true},
		{"below manager", []Role{RoleManager}, false},
		{"threshold is the minimum of the set", []Role{RoleManager, RoleClient}, true},
		{"unknown required role never satisfied", []Role{"superuser"}, false},
		{"unknown alongside admin still unsatisfied", []Role{"superuser", RoleAdmin}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.HasRole(tt.roles...); got != tt.want {
				t.Errorf("HasRole(%v) = %v, want %v", tt.roles, got, tt.want)
			}
		})
	}
}

func TestHasRole_UnknownUserRole(t *testing.T) {
	sess := session.New(t.TempDir())
	sess.SetToken("abc123")
	sess.SetUser(&session.User{ID: "u1", Role: "bot"})
	c := New("http://unused", sess, zerolog.Nop())

	if c.HasRole(RoleClient) {
		t.Error("expected unknown user role (level 0) to fail every check")
	}
}
