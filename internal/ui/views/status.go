package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/techcorp/hrmate/internal/ui/models"
)

// RenderStatus renders the status bar.
func RenderStatus(s models.State) string {
	var left string
	switch s.StatusPhase {
	case "thinking":
		left = StatusThinkingStyle.Render(fmt.Sprintf("%s %s", s.Spinner.View(), s.StatusMessage))
	case "error":
		left = StatusErrorStyle.Render(s.StatusMessage)
	default:
		left = StatusDefaultStyle.Render("Ready")
	}

	right := ""
	if s.CurrentModel != "" {
		right = StatusDefaultStyle.Foreground(lipgloss.Color("241")).Render(s.CurrentModel)
	}

	if right != "" {
		return fmt.Sprintf("%s  %s", left, right)
	}
	return left
}
