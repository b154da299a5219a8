// ABOUTME: Root bubbletea model for the interactive back-office dashboard
// ABOUTME: Owns the login form, overview screen, section tables and the toast slot

package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/stlauto/backoffice-cli/internal/api"
	"github.com/stlauto/backoffice-cli/internal/session"
	"github.com/stlauto/backoffice-cli/internal/toast"
	"github.com/stlauto/backoffice-cli/internal/tui/icons"
	"github.com/stlauto/backoffice-cli/internal/tui/styles"
	"github.com/stlauto/backoffice-cli/internal/tui/widgets"
)

// Screen identifies the active view
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenOverview
	ScreenSection
)

// Section identifies a resource listing
type Section int

const (
	SectionApplications Section = iota
	SectionCars
	SectionPayments
	SectionUsers
	SectionBlacklist
	SectionStories
)

// sectionSpec describes how a section loads and renders
type sectionSpec struct {
	title   string
	icon    icons.Icon
	columns []sectionColumn
	load    func(ctx context.Context, c *api.Client) (json.RawMessage, error)
}

type sectionColumn struct {
	header string
	path   string
	width  int
}

var sections = map[Section]sectionSpec{
	SectionApplications: {
		title: "Applications",
		icon:  icons.Application,
		columns: []sectionColumn{
			{"ID", "id", 8},
			{"CLIENT", "client_name", 22},
			{"CAR", "car_id", 8},
			{"STATUS", "status", 16},
			{"OPERATOR", "operator_id", 10},
			{"CREATED", "created_at", 20},
		},
		load: func(ctx context.Context, c *api.Client) (json.RawMessage, error) {
			return c.Applications(ctx, nil)
		},
	},
	SectionCars: {
		title: "Cars",
		icon:  icons.Car,
		columns: []sectionColumn{
			{"ID", "id", 8},
			{"BRAND", "brand", 14},
			{"MODEL", "model", 16},
			{"YEAR", "year", 6},
			{"PRICE", "price", 14},
			{"STATUS", "status", 12},
		},
		load: func(ctx context.Context, c *api.Client) (json.RawMessage, error) {
			return c.Cars(ctx, nil)
		},
	},
	SectionPayments: {
		title: "Payments",
		icon:  icons.Payment,
		columns: []sectionColumn{
			{"ID", "id", 8},
			{"APPLICATION", "application_id", 12},
			{"AMOUNT", "amount", 14},
			{"METHOD", "method", 10},
			{"STATUS", "status", 12},
			{"INVOICE", "invoice_number", 16},
		},
		load: func(ctx context.Context, c *api.Client) (json.RawMessage, error) {
			return c.Payments(ctx, nil)
		},
	},
	SectionUsers: {
		title: "Users",
		icon:  icons.User,
		columns: []sectionColumn{
			{"ID", "id", 8},
			{"PHONE", "phone", 18},
			{"NAME", "full_name", 22},
			{"ROLE", "role", 10},
			{"ACTIVE", "is_active", 8},
		},
		load: func(ctx context.Context, c *api.Client) (json.RawMessage, error) {
			return c.Users(ctx, nil)
		},
	},
	SectionBlacklist: {
		title: "Blacklist",
		icon:  icons.Blacklist,
		columns: []sectionColumn{
			{"ID", "id", 8},
			{"PHONE", "phone", 18},
			{"REASON", "reason", 32},
			{"ADDED", "created_at", 20},
		},
		load: func(ctx context.Context, c *api.Client) (json.RawMessage, error) {
			return c.Blacklist(ctx, nil)
		},
	},
	SectionStories: {
		title: "Stories",
		icon:  icons.Story,
		columns: []sectionColumn{
			{"ID", "id", 8},
			{"TITLE", "title", 28},
			{"ACTIVE", "is_active", 8},
			{"SLIDES", "slides.#", 8},
		},
		load: func(ctx context.Context, c *api.Client) (json.RawMessage, error) {
			return c.Stories(ctx)
		},
	},
}

// Messages
type loginDoneMsg struct {
	user *session.User
	err  error
}

type overviewLoadedMsg struct {
	stats    json.RawMessage
	payments json.RawMessage
	err      error
}

type sectionLoadedMsg struct {
	section Section
	raw     json.RawMessage
	err     error
}

type toastTimeoutMsg struct {
	shownAt time.Time
}

// App is the root TUI model
type App struct {
	client  *api.Client
	toasts  *toast.Notifier
	log     zerolog.Logger
	screen  Screen
	section Section

	width  int
	height int

	spinner spinner.Model
	loading bool

	form     *huh.Form
	phone    string
	password string

	user     *session.User
	stats    json.RawMessage
	payStats json.RawMessage
	table    table.Model

	// shownAt stamps the visible toast so stale hide timers are ignored
	toastShownAt time.Time
}

// NewApp creates the root model. When the session already holds a user
// the login screen is skipped.
func NewApp(client *api.Client, notifier *toast.Notifier, log zerolog.Logger) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	app := &App{
		client:  client,
		toasts:  notifier,
		log:     log,
		screen:  ScreenLogin,
		spinner: s,
	}
	app.form = app.newLoginForm()
	return app
}

func (a *App) newLoginForm() *huh.Form {
	a.phone = ""
	a.password = ""
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Phone").Placeholder("+998901234567").Value(&a.phone),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&a.password),
		),
	).WithTheme(huh.ThemeBase())
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.form.Init(), a.checkSession())
}

// checkSession probes the stored token; a valid one skips the login form.
func (a *App) checkSession() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		user, err := a.client.CurrentUser(ctx)
		if err != nil || user == nil {
			return loginDoneMsg{}
		}
		return loginDoneMsg{user: user}
	}
}

func (a *App) doLogin(phone, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := a.client.Login(ctx, phone, password); err != nil {
			return loginDoneMsg{err: err}
		}
		user, err := a.client.CurrentUser(ctx)
		if err != nil {
			return loginDoneMsg{err: err}
		}
		return loginDoneMsg{user: user}
	}
}

// loadOverview fetches back-office and payment stats concurrently.
func (a *App) loadOverview() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var stats, payments json.RawMessage
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			stats, err = a.client.Stats(gctx, url.Values{})
			return err
		})
		g.Go(func() error {
			var err error
			payments, err = a.client.PaymentStats(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return overviewLoadedMsg{err: err}
		}
		return overviewLoadedMsg{stats: stats, payments: payments}
	}
}

func (a *App) loadSection(section Section) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		raw, err := sections[section].load(ctx, a.client)
		return sectionLoadedMsg{section: section, raw: raw, err: err}
	}
}

// showToast writes the slot and schedules the auto-hide tick.
func (a *App) showToast(severity toast.Severity, title string, message string) tea.Cmd {
	a.toasts.Show(toast.Options{Title: title, Message: message, Severity: severity})
	a.toastShownAt = time.Now()
	shownAt := a.toastShownAt
	return tea.Tick(a.toasts.State().Duration, func(time.Time) tea.Msg {
		return toastTimeoutMsg{shownAt: shownAt}
	})
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.screen != ScreenLogin {
			if cmd, handled := a.handleKey(msg); handled {
				return a, cmd
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case loginDoneMsg:
		return a.handleLoginDone(msg)

	case overviewLoadedMsg:
		a.loading = false
		if msg.err != nil {
			a.log.Error().Err(msg.err).Msg("overview load failed")
			return a, a.showToast(toast.SeverityError, "Failed to load stats", msg.err.Error())
		}
		a.stats = msg.stats
		a.payStats = msg.payments
		return a, nil

	case sectionLoadedMsg:
		a.loading = false
		if msg.err != nil {
			a.log.Error().Err(msg.err).Msg("section load failed")
			return a, a.showToast(toast.SeverityError, "Failed to load "+sections[msg.section].title, msg.err.Error())
		}
		a.section = msg.section
		a.screen = ScreenSection
		a.table = a.buildTable(msg.section, msg.raw)
		return a, nil

	case toastTimeoutMsg:
		// A newer toast restarts the clock; only the matching timer hides it
		if msg.shownAt.Equal(a.toastShownAt) {
			a.toasts.Hide()
		}
		return a, nil
	}

	if a.screen == ScreenLogin {
		return a.updateLogin(msg)
	}
	if a.screen == ScreenSection {
		var cmd tea.Cmd
		a.table, cmd = a.table.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit, true
	case "o", "esc":
		a.screen = ScreenOverview
		a.loading = true
		return tea.Batch(a.spinner.Tick, a.loadOverview()), true
	case "r":
		a.loading = true
		if a.screen == ScreenSection {
			return tea.Batch(a.spinner.Tick, a.loadSection(a.section)), true
		}
		return tea.Batch(a.spinner.Tick, a.loadOverview()), true
	case "1", "2", "3", "4", "5", "6":
		section := Section(int(msg.String()[0] - '1'))
		a.loading = true
		return tea.Batch(a.spinner.Tick, a.loadSection(section)), true
	}
	return nil, false
}

func (a *App) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	a.loading = false
	if msg.err != nil {
		a.form = a.newLoginForm()
		a.screen = ScreenLogin
		return a, tea.Batch(
			a.form.Init(),
			a.showToast(toast.SeverityError, "Login failed", msg.err.Error()),
		)
	}
	if msg.user == nil {
		// No stored session; stay on the login form
		a.screen = ScreenLogin
		return a, nil
	}
	a.user = msg.user
	a.screen = ScreenOverview
	a.loading = true
	return a, tea.Batch(
		a.spinner.Tick,
		a.loadOverview(),
		a.showToast(toast.SeveritySuccess, "Logged in", fmt.Sprintf("%s (%s)", msg.user.Phone, msg.user.Role)),
	)
}

func (a *App) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return a, tea.Quit
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}
	if a.form.State == huh.StateCompleted && !a.loading {
		a.loading = true
		return a, tea.Batch(cmd, a.spinner.Tick, a.doLogin(a.phone, a.password))
	}
	return a, cmd
}

// buildTable converts a raw listing into a bubbles table.
func (a *App) buildTable(section Section, raw json.RawMessage) table.Model {
	spec := sections[section]

	cols := make([]table.Column, len(spec.columns))
	for i, c := range spec.columns {
		cols[i] = table.Column{Title: c.header, Width: c.width}
	}

	parsed := gjson.ParseBytes(raw)
	if parsed.IsObject() {
		if items := parsed.Get("items"); items.IsArray() {
			parsed = items
		}
	}

	var rows []table.Row
	parsed.ForEach(func(_, item gjson.Result) bool {
		row := make(table.Row, len(spec.columns))
		for i, c := range spec.columns {
			v := item.Get(c.path)
			if !v.Exists() {
				row[i] = "-"
			} else {
				row[i] = v.String()
			}
		}
		rows = append(rows, row)
		return true
	})

	height := a.height - 10
	if height < 5 {
		height = 5
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(styles.Text).
		Background(styles.Primary).
		Bold(false)
	t.SetStyles(ts)
	return t
}

// View implements tea.Model
func (a *App) View() string {
	var content string
	switch a.screen {
	case ScreenLogin:
		content = a.viewLogin()
	case ScreenOverview:
		content = a.viewOverview()
	case ScreenSection:
		content = a.viewSection()
	}

	parts := []string{a.viewHeader(), content, a.viewFooter()}
	if overlay := widgets.Toast(a.toasts.State()); overlay != "" {
		parts = append(parts, overlay)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) viewHeader() string {
	title := styles.Title.Render("STL Auto Back Office")
	who := ""
	if a.user != nil {
		who = fmt.Sprintf("  %s %s %s", icons.User.String(), a.user.Phone, widgets.RoleBadge(a.user.Role))
	}
	base := styles.Subtitle.Render(a.client.BaseURL())
	return styles.HeaderStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, title, who, "  ", base))
}

func (a *App) viewFooter() string {
	var help string
	switch a.screen {
	case ScreenLogin:
		help = fmt.Sprintf("%s quit", styles.KeyStyle.Render("ctrl+c"))
	default:
		help = fmt.Sprintf("%s apps  %s cars  %s payments  %s users  %s blacklist  %s stories  %s overview  %s refresh  %s quit",
			styles.KeyStyle.Render("1"),
			styles.KeyStyle.Render("2"),
			styles.KeyStyle.Render("3"),
			styles.KeyStyle.Render("4"),
			styles.KeyStyle.Render("5"),
			styles.KeyStyle.Render("6"),
			styles.KeyStyle.Render("o"),
			styles.KeyStyle.Render("r"),
			styles.KeyStyle.Render("q"))
	}
	return styles.FooterStyle.Render(styles.Help.Render(help))
}

func (a *App) viewLogin() string {
	form := a.form.View()
	if a.loading {
		form = lipgloss.JoinVertical(lipgloss.Left, form,
			fmt.Sprintf("%s Signing in...", a.spinner.View()))
	}
	return styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(icons.Lock.String()+" Sign in"), form))
}

func (a *App) viewOverview() string {
	if a.loading {
		return styles.Panel.Render(fmt.Sprintf("%s Loading stats...", a.spinner.View()))
	}
	if a.stats == nil && a.payStats == nil {
		return styles.Panel.Render(styles.Subtitle.Render("No stats loaded. Press r to refresh."))
	}

	cfg := widgets.DefaultMetricBlockConfig()
	stats := gjson.ParseBytes(a.stats)
	pay := gjson.ParseBytes(a.payStats)

	blocks := []string{
		widgets.CountBlock(icons.Application, "Applications", stats.Get("total_applications").Int(), statSubtitle(stats, "new_applications", "new"), cfg),
		widgets.CountBlock(icons.Car, "Cars", stats.Get("total_cars").Int(), statSubtitle(stats, "available_cars", "available"), cfg),
		widgets.CountBlock(icons.User, "Clients", stats.Get("total_clients").Int(), statSubtitle(stats, "active_clients", "active"), cfg),
		widgets.MetricBlock(icons.Payment, "Collected", pay.Get("total_confirmed").String(), statSubtitle(pay, "pending_count", "pending"), cfg),
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("Overview"), row)
}

func statSubtitle(doc gjson.Result, path, label string) string {
	v := doc.Get(path)
	if !v.Exists() {
		return ""
	}
	return fmt.Sprintf("%s %s", v.String(), label)
}

func (a *App) viewSection() string {
	spec := sections[a.section]
	title := styles.Title.Render(fmt.Sprintf("%s %s", spec.icon.String(), spec.title))
	if a.loading {
		return lipgloss.JoinVertical(lipgloss.Left, title,
			fmt.Sprintf("%s Loading...", a.spinner.View()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, a.table.View())
}

// Run starts the TUI event loop.
func Run(client *api.Client, notifier *toast.Notifier, log zerolog.Logger) error {
	p := tea.NewProgram(NewApp(client, notifier, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
