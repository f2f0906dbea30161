// Package models defines the conversation data model shared by the
// session, gateway, and tool executor.
package models

// Turn roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
	RoleTool  = "tool"
)

// Turn is one entry in the append-only conversation history. A turn
// carries free text, tool invocations requested by the model, or the
// results of executing them.
type Turn struct {
	ID   string
	Role string

	// Content holds free text for user/model turns.
	Content string

	// ToolCalls is set on model turns that request tool execution.
	ToolCalls []ToolCall

	// ToolResults is set on tool turns.
	ToolResults []ToolResult
}

// ToolCall is a structured tool invocation requested by the model.
type ToolCall struct {
	Name string
	Args map[string]any
}

// ToolResult is the outcome of executing a single tool call.
type ToolResult struct {
	Name    string // tool name, matches the requesting ToolCall
	Content string // JSON-encoded result payload
	Error   string // error message if the tool failed
}

// StructuredAnswer is the canonical, UI-facing shape of every
// conversational reply. Summary is always non-empty; everything else is
// optional.
type StructuredAnswer struct {
	Summary           string   `json:"summary"`
	Detail            string   `json:"detail,omitempty"`
	RelatedPolicyID   string   `json:"relatedPolicyId,omitempty"`
	RelatedPolicyName string   `json:"relatedPolicyName,omitempty"`
	Suggestions       []string `json:"suggestions,omitempty"`
}
