// ABOUTME: Toast overlay widget rendering the single notification slot
// ABOUTME: Maps toast severity to accent color and icon

package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/stlauto/backoffice-cli/internal/toast"
	"github.com/stlauto/backoffice-cli/internal/tui/icons"
	"github.com/stlauto/backoffice-cli/internal/tui/styles"
)

// Toast renders the toast state as a bordered one- or two-line overlay.
// Returns an empty string when the toast is hidden.
func Toast(state toast.State) string {
	if !state.Visible {
		return ""
	}

	accent, icon := toastAccent(state.Severity)
	title := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(
		fmt.Sprintf("%s %s", icon, state.Title))

	body := title
	if state.Message != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, title, state.Message)
	}
	return styles.ToastStyle(accent).Render(body)
}

func toastAccent(severity toast.Severity) (lipgloss.Color, string) {
	switch severity {
	case toast.SeveritySuccess:
		return styles.Success, icons.CheckOK.String()
	case toast.SeverityError:
		return styles.Danger, icons.Critical.String()
	case toast.SeverityWarning:
		return styles.Warning, icons.Warning.String()
	default:
		return styles.Info, icons.Info.String()
	}
}
