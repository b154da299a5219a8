// ABOUTME: Tests for the root dashboard model
// ABOUTME: Drives Update with messages directly and asserts on state and views

package tui

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/stlauto/backoffice-cli/internal/api"
	"github.com/stlauto/backoffice-cli/internal/session"
	"github.com/stlauto/backoffice-cli/internal/toast"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	client := api.New("http://localhost:1", session.New(t.TempDir()), zerolog.Nop())
	return NewApp(client, toast.New(), zerolog.Nop())
}

func TestAppStartsOnLoginScreen(t *testing.T) {
	app := newTestApp(t)

	if app.screen != ScreenLogin {
		t.Errorf("expected login screen, got %v", app.screen)
	}
	if !strings.Contains(app.View(), "Sign in") {
		t.Error("expected login view to show the sign-in panel")
	}
}

func TestLoginSuccessMovesToOverview(t *testing.T) {
	app := newTestApp(t)

	model, cmd := app.Update(loginDoneMsg{user: &session.User{Phone: "+998901234567", Role: "admin"}})
	app = model.(*App)

	if app.screen != ScreenOverview {
		t.Errorf("expected overview screen, got %v", app.screen)
	}
	if cmd == nil {
		t.Error("expected a command to load the overview")
	}
	state := app.toasts.State()
	if !state.Visible || state.Severity != toast.SeveritySuccess {
		t.Errorf("expected visible success toast, got %+v", state)
	}
}

func TestLoginFailureStaysOnLoginWithErrorToast(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(loginDoneMsg{err: errors.New("backend error (422): invalid credentials")})
	app = model.(*App)

	if app.screen != ScreenLogin {
		t.Errorf("expected login screen after failure, got %v", app.screen)
	}
	state := app.toasts.State()
	if !state.Visible || state.Severity != toast.SeverityError {
		t.Errorf("expected visible error toast, got %+v", state)
	}
	if state.Title != "Login failed" {
		t.Errorf("unexpected toast title %q", state.Title)
	}
}

func TestEmptySessionStaysOnLogin(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(loginDoneMsg{})
	app = model.(*App)

	if app.screen != ScreenLogin {
		t.Errorf("expected login screen without a stored session, got %v", app.screen)
	}
	if app.toasts.State().Visible {
		t.Error("expected no toast for a silent session probe")
	}
}

func TestSectionLoadedBuildsTable(t *testing.T) {
	app := newTestApp(t)
	app.screen = ScreenOverview
	app.user = &session.User{Phone: "+998901234567", Role: "admin"}

	raw := json.RawMessage(`[
		{"id": 1, "brand": "Chevrolet", "model": "Cobalt", "year": 2023, "price": "150000000", "status": "available"},
		{"id": 2, "brand": "Kia", "model": "K5", "year": 2024, "price": "380000000"}
	]`)
	model, _ := app.Update(sectionLoadedMsg{section: SectionCars, raw: raw})
	app = model.(*App)

	if app.screen != ScreenSection {
		t.Errorf("expected section screen, got %v", app.screen)
	}
	rows := app.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "Chevrolet" {
		t.Errorf("expected brand in row, got %q", rows[0][1])
	}
	if rows[1][5] != "-" {
		t.Errorf("expected placeholder for missing status, got %q", rows[1][5])
	}
}

func TestSectionLoadedUnwrapsItemsEnvelope(t *testing.T) {
	app := newTestApp(t)

	raw := json.RawMessage(`{"items": [{"id": 7, "phone": "+998901112233", "reason": "fraud"}], "total": 1}`)
	model, _ := app.Update(sectionLoadedMsg{section: SectionBlacklist, raw: raw})
	app = model.(*App)

	rows := app.table.Rows()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row from items envelope, got %d", len(rows))
	}
	if rows[0][2] != "fraud" {
		t.Errorf("expected reason column, got %q", rows[0][2])
	}
}

func TestSectionLoadErrorShowsToast(t *testing.T) {
	app := newTestApp(t)
	app.screen = ScreenOverview

	model, _ := app.Update(sectionLoadedMsg{section: SectionCars, err: errors.New("request timed out")})
	app = model.(*App)

	if app.screen != ScreenOverview {
		t.Error("expected to stay on overview when the section load fails")
	}
	state := app.toasts.State()
	if !state.Visible || state.Severity != toast.SeverityError {
		t.Errorf("expected visible error toast, got %+v", state)
	}
}

func TestStaleToastTimerDoesNotHideNewerToast(t *testing.T) {
	app := newTestApp(t)

	app.showToast(toast.SeverityInfo, "first", "")
	staleStamp := app.toastShownAt

	time.Sleep(time.Millisecond)
	app.showToast(toast.SeveritySuccess, "second", "")

	model, _ := app.Update(toastTimeoutMsg{shownAt: staleStamp})
	app = model.(*App)

	state := app.toasts.State()
	if !state.Visible || state.Title != "second" {
		t.Errorf("stale timer hid the replacement toast: %+v", state)
	}

	model, _ = app.Update(toastTimeoutMsg{shownAt: app.toastShownAt})
	app = model.(*App)
	if app.toasts.State().Visible {
		t.Error("matching timer should hide the toast")
	}
}

func TestQuitKey(t *testing.T) {
	app := newTestApp(t)
	app.screen = ScreenOverview

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("expected tea.Quit, got %T", msg)
	}
}

func TestSectionKeySwitchesSection(t *testing.T) {
	app := newTestApp(t)
	app.screen = ScreenOverview

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	app = model.(*App)

	if !app.loading {
		t.Error("expected loading state after pressing a section key")
	}
	if cmd == nil {
		t.Error("expected a load command for the section")
	}
}

func TestOverviewViewRendersStats(t *testing.T) {
	app := newTestApp(t)
	app.screen = ScreenOverview
	app.user = &session.User{Phone: "+998901234567", Role: "manager"}
	app.stats = json.RawMessage(`{"total_applications": 42, "total_cars": 17, "total_clients": 90}`)
	app.payStats = json.RawMessage(`{"total_confirmed": "1200000", "pending_count": 3}`)

	view := app.View()
	if !strings.Contains(view, "42") {
		t.Error("expected application count in overview")
	}
	if !strings.Contains(view, "1200000") {
		t.Error("expected confirmed payment total in overview")
	}
}
