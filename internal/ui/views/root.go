package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/techcorp/hrmate/internal/ui/models"
	"github.com/techcorp/hrmate/internal/ui/services"
)

// chatPaneRatio is the share of the terminal width given to the chat
// pane; the dashboard takes the rest.
const chatPaneRatio = 0.45

// RenderRoot renders the complete split chat/dashboard layout.
func RenderRoot(s models.State, renderer services.MarkdownRenderer) string {
	chatWidth := int(float64(s.Width) * chatPaneRatio)
	if chatWidth < 40 {
		chatWidth = 40
	}
	dashWidth := s.Width - chatWidth
	if dashWidth < 20 {
		dashWidth = 20
	}

	chatPane := lipgloss.JoinVertical(
		lipgloss.Left,
		RenderChat(s, renderer),
		RenderInput(s),
		RenderStatus(s),
	)

	dashboard := RenderDashboard(s, dashWidth, renderer)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(chatWidth).Render(chatPane),
		dashboard,
	)
}
