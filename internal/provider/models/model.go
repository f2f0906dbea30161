package models

import (
	"github.com/techcorp/hrmate/internal/assistant/models"
)

// GenerateRequest encapsulates all parameters for a generation request.
type GenerateRequest struct {
	// History contains the full conversation so far, oldest first.
	History []models.Turn

	// SystemInstruction is static text prepended out-of-band (persona,
	// user identity, policy digest, tool directives).
	SystemInstruction string

	// ResponseSchema constrains the shape of text replies. When set the
	// provider requests JSON output matching the schema.
	ResponseSchema *ParameterSchema

	// Config contains optional generation parameters.
	Config *GenerateConfig
}

// GenerateConfig contains optional generation parameters.
// All fields are pointers to distinguish between "not set" and "zero value".
type GenerateConfig struct {
	Temperature *float32
	TopP        *float32
}

// GenerateResponse contains the model's reply.
type GenerateResponse struct {
	Content ResponseContent
}

// ResponseContent is a union type representing different reply types.
type ResponseContent struct {
	// Type indicates what the model produced.
	Type ResponseType

	// For Type = ResponseTypeText
	Text string

	// For Type = ResponseTypeToolCall
	ToolCalls []models.ToolCall

	// For Type = ResponseTypeRefusal (safety block)
	RefusalReason string
}

// ResponseType indicates the type of reply from the model.
type ResponseType string

const (
	ResponseTypeText     ResponseType = "text"
	ResponseTypeToolCall ResponseType = "tool_call"
	ResponseTypeRefusal  ResponseType = "refusal"
)

// ToolDefinition defines a tool that the model can invoke.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  *ParameterSchema // nil means no parameters
}

// ParameterSchema maps directly to standard JSON Schema.
type ParameterSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]PropertySchema `json:"properties"`
	Required   []string                  `json:"required,omitempty"`
}

// PropertySchema defines a single parameter property.
type PropertySchema struct {
	Type        string          `json:"type"`
	Description string          `json:"description,omitempty"`
	Enum        []string        `json:"enum,omitempty"`
	Items       *PropertySchema `json:"items,omitempty"`
}
