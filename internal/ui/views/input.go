package views

import (
	"github.com/techcorp/hrmate/internal/ui/models"
)

// RenderInput renders the input bar.
func RenderInput(s models.State) string {
	return InputStyle.Render(s.Input.View())
}
