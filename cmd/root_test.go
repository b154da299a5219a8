// ABOUTME: Tests for the auth command run functions
// ABOUTME: Uses httptest backends and in-memory writers, no cobra execution

package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/stlauto/backoffice-cli/internal/api"
	"github.com/stlauto/backoffice-cli/internal/session"
)

func newTestAPI(t *testing.T, handler http.Handler) (*api.Client, *session.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	sess := session.New(t.TempDir())
	return api.New(server.URL, sess, zerolog.Nop()), sess
}

func TestRunWhoamiNotLoggedIn(t *testing.T) {
	c, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	}))

	var out bytes.Buffer
	code := runWhoami(context.Background(), c, &out)

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "Not logged in.") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestRunWhoamiShowsUser(t *testing.T) {
	c, sess := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/me" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"id": 5, "phone": "+998901234567", "full_name": "Admin One", "role": "admin", "is_active": true}`))
	}))
	if err := sess.SetToken("tok"); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	code := runWhoami(context.Background(), c, &out)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	for _, want := range []string{"+998901234567", "Admin One", "admin"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q: %q", want, out.String())
		}
	}
}

func TestRunLoginSuccess(t *testing.T) {
	c, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Write([]byte(`{"access_token": "tok-1", "token_type": "bearer"}`))
		case "/users/me":
			w.Write([]byte(`{"id": 5, "phone": "+998901234567", "role": "operator", "is_active": true}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	var out bytes.Buffer
	code := runLogin(context.Background(), c, &out, "+998901234567", "secret")

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(out.String(), "Logged in as +998901234567 (operator)") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestRunLoginFailure(t *testing.T) {
	c, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "invalid credentials"}`))
	}))

	var out bytes.Buffer
	code := runLogin(context.Background(), c, &out, "+998901234567", "wrong")

	if code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
}

func TestReadPayloadInline(t *testing.T) {
	payload, err := readPayload(`{"brand": "Chevrolet"}`)
	if err != nil {
		t.Fatal(err)
	}
	if string(payload) != `{"brand": "Chevrolet"}` {
		t.Errorf("unexpected payload %s", payload)
	}
}

func TestReadPayloadRejectsInvalidJSON(t *testing.T) {
	if _, err := readPayload(`{brand}`); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
