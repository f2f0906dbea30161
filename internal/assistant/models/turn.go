package models

import "github.com/google/uuid"

// NewUserTurn creates a user turn holding free text.
func NewUserTurn(text string) Turn {
	return Turn{ID: uuid.NewString(), Role: RoleUser, Content: text}
}

// NewModelTurn creates a model turn holding free text.
func NewModelTurn(text string) Turn {
	return Turn{ID: uuid.NewString(), Role: RoleModel, Content: text}
}

// NewToolCallTurn creates a model turn requesting tool execution.
func NewToolCallTurn(calls []ToolCall) Turn {
	return Turn{ID: uuid.NewString(), Role: RoleModel, ToolCalls: calls}
}

// NewToolResultTurn creates a tool turn carrying execution results.
func NewToolResultTurn(results []ToolResult) Turn {
	return Turn{ID: uuid.NewString(), Role: RoleTool, ToolResults: results}
}
