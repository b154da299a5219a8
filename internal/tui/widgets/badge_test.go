// ABOUTME: Tests for status badge rendering
// ABOUTME: Checks text content and status level mapping

package widgets

import (
	"strings"
	"testing"
)

func TestBadgeContainsText(t *testing.T) {
	out := Badge("PENDING", StatusWarning)
	if !strings.Contains(out, "PENDING") {
		t.Errorf("expected badge text, got %q", out)
	}
}

func TestLevelForApplicationStatus(t *testing.T) {
	tests := []struct {
		status string
		want   StatusLevel
	}{
		{"approved", StatusOK},
		{"Active", StatusOK},
		{"pending", StatusWarning},
		{"in_review", StatusWarning},
		{"rejected", StatusCritical},
		{"blacklisted", StatusCritical},
		{"new", StatusInfo},
		{"something_else", StatusNeutral},
	}
	for _, tt := range tests {
		if got := levelForApplicationStatus(tt.status); got != tt.want {
			t.Errorf("levelForApplicationStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestRoleBadgeUppercases(t *testing.T) {
	out := RoleBadge("operator")
	if !strings.Contains(out, "OPERATOR") {
		t.Errorf("expected uppercased role, got %q", out)
	}
}
