// ABOUTME: Status badge widgets for quick visual status indication
// ABOUTME: Provides colored inline badges for application and payment statuses

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stlauto/backoffice-cli/internal/tui/icons"
)

// StatusLevel represents the severity of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusInfo
	StatusNeutral
)

// Badge colors
var (
	BadgeOKBg      = lipgloss.Color("#10B981")
	BadgeOKFg      = lipgloss.Color("#FFFFFF")
	BadgeWarnBg    = lipgloss.Color("#F59E0B")
	BadgeWarnFg    = lipgloss.Color("#000000")
	BadgeCritBg    = lipgloss.Color("#EF4444")
	BadgeCritFg    = lipgloss.Color("#FFFFFF")
	BadgeInfoBg    = lipgloss.Color("#3B82F6")
	BadgeInfoFg    = lipgloss.Color("#FFFFFF")
	BadgeNeutralBg = lipgloss.Color("#6B7280")
	BadgeNeutralFg = lipgloss.Color("#FFFFFF")
)

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	var bg, fg lipgloss.Color

	switch level {
	case StatusOK:
		bg, fg = BadgeOKBg, BadgeOKFg
	case StatusWarning:
		bg, fg = BadgeWarnBg, BadgeWarnFg
	case StatusCritical:
		bg, fg = BadgeCritBg, BadgeCritFg
	case StatusInfo:
		bg, fg = BadgeInfoBg, BadgeInfoFg
	default:
		bg, fg = BadgeNeutralBg, BadgeNeutralFg
	}

	style := lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Bold(true)

	return style.Render(text)
}

// StatusIcon returns the appropriate icon for a status level
func StatusIcon(level StatusLevel) string {
	switch level {
	case StatusOK:
		return lipgloss.NewStyle().Foreground(BadgeOKBg).Render(icons.CheckOK.String())
	case StatusWarning:
		return lipgloss.NewStyle().Foreground(BadgeWarnBg).Render(icons.Warning.String())
	case StatusCritical:
		return lipgloss.NewStyle().Foreground(BadgeCritBg).Render(icons.Critical.String())
	case StatusInfo:
		return lipgloss.NewStyle().Foreground(BadgeInfoBg).Render(icons.Info.String())
	default:
		return lipgloss.NewStyle().Foreground(BadgeNeutralBg).Render("•")
	}
}

// StatusText returns styled status text with icon
func StatusText(text string, level StatusLevel) string {
	icon := StatusIcon(level)

	var color lipgloss.Color
	switch level {
	case StatusOK:
		color = BadgeOKBg
	case StatusWarning:
		color = BadgeWarnBg
	case StatusCritical:
		color = BadgeCritBg
	case StatusInfo:
		color = BadgeInfoBg
	default:
		color = BadgeNeutralBg
	}

	textStyle := lipgloss.NewStyle().Foreground(color)
	return fmt.Sprintf("%s %s", icon, textStyle.Render(text))
}

// ApplicationStatusBadge renders a badge colored by application status.
func ApplicationStatusBadge(status string) string {
	return Badge(strings.ToUpper(status), levelForApplicationStatus(status))
}

func levelForApplicationStatus(status string) StatusLevel {
	switch strings.ToLower(status) {
	case "approved", "completed", "active":
		return StatusOK
	case "pending", "in_review", "contract_pending":
		return StatusWarning
	case "rejected", "cancelled", "blacklisted":
		return StatusCritical
	case "new":
		return StatusInfo
	default:
		return StatusNeutral
	}
}

// PaymentStatusBadge renders a badge colored by payment status.
func PaymentStatusBadge(status string) string {
	switch strings.ToLower(status) {
	case "confirmed", "paid":
		return Badge(strings.ToUpper(status), StatusOK)
	case "pending":
		return Badge("PENDING", StatusWarning)
	case "rejected", "overdue":
		return Badge(strings.ToUpper(status), StatusCritical)
	default:
		return Badge(strings.ToUpper(status), StatusNeutral)
	}
}

// RoleBadge renders a badge for a staff role.
func RoleBadge(role string) string {
	switch strings.ToLower(role) {
	case "admin":
		return Badge("ADMIN", StatusCritical)
	case "manager":
		return Badge("MANAGER", StatusWarning)
	case "operator":
		return Badge("OPERATOR", StatusInfo)
	default:
		return Badge(strings.ToUpper(role), StatusNeutral)
	}
}
