// ABOUTME: Tests for blacklist endpoints
// ABOUTME: Covers percent-encoding of phone numbers in the delete path

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRemoveFromBlacklistByPhone_EncodesPhone(t *testing.T) {
	var gotURI, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.RequestURI
		gotMethod = r.Method
		w.Write([]byte(`{"status":"removed"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	if _, err := c.RemoveFromBlacklistByPhone(context.Background(), "+998 90 123-45-67"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("expected DELETE, got %s", gotMethod)
	}
	if gotURI != "/blacklist/by-phone/%2B998%2090%20123-45-67" {
		t.Errorf("unexpected request URI: %s", gotURI)
	}
}

func TestRemoveFromBlacklist_ByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/blacklist/b-17" {
			t.Errorf("expected /blacklist/b-17, got %s", r.URL.Path)
		}
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	if _, err := c.RemoveFromBlacklist(context.Background(), "b-17"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
