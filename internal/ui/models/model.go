// Package models holds the UI state shared between the Bubble Tea update
// loop and the view functions.
package models

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	assistant "github.com/techcorp/hrmate/internal/assistant/models"
	"github.com/techcorp/hrmate/internal/assistant/toolset"
	"github.com/techcorp/hrmate/internal/store"
)

// Message is one rendered entry in the chat pane.
type Message struct {
	Role    string // "user", "model", "system"
	Content string

	// Answer is set on model messages carrying a structured answer.
	Answer *assistant.StructuredAnswer

	// Draft is set on system messages rendering a draft-request card.
	Draft *toolset.DraftLeave
}

// State is the complete UI state.
type State struct {
	Input    textinput.Model
	Viewport viewport.Model
	Spinner  spinner.Model

	Messages []Message

	Width  int
	Height int

	// Busy disables submission while an answer is outstanding.
	Busy bool

	StatusPhase   string
	StatusMessage string
	CurrentModel  string

	// Dashboard pane
	SelectedPolicy *store.Policy
	Notices        []store.Notice
	Analytics      []store.AnalyticsEntry
}
