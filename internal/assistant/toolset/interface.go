package toolset

import (
	"context"

	provider "github.com/techcorp/hrmate/internal/provider/models"
)

// Tool represents a capability the model can invoke.
// Each tool must be stateless and safe for concurrent use.
type Tool interface {
	// Name returns the unique identifier for this tool
	Name() string

	// Description returns a human-readable description
	Description() string

	// Definition returns the structured tool definition for the provider
	Definition() provider.ToolDefinition

	// Execute runs the tool with the given arguments.
	// Args is a map of argument names to values, as provided by the model.
	// The result is a JSON-encoded payload.
	Execute(ctx context.Context, args map[string]any) (string, error)
}

// DraftLeave carries the fields of a drafted leave request.
type DraftLeave struct {
	Date string
	Type string
}

// Notifier receives UI side effects triggered by tool execution.
// Notifications are fire-and-forget: tools wait for them to return but
// never fail because of them.
type Notifier interface {
	// PolicyOpened is fired when getPolicy resolves a known policy.
	PolicyOpened(policyID string)

	// DraftReady is fired when draftLeaveRequest has assembled a draft
	// for the user to confirm.
	DraftReady(draft DraftLeave)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) PolicyOpened(string)   {}
func (NopNotifier) DraftReady(DraftLeave) {}
