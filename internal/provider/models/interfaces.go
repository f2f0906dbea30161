package models

import (
	"context"
)

// Provider defines the interface for LLM backends.
type Provider interface {
	// Generate sends a request to the model and returns the reply, which
	// is either text content or one-or-more tool invocations.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// DefineTools registers tool definitions with the provider for native
	// tool calling. Call before Generate when tools should be available.
	DefineTools(ctx context.Context, tools []ToolDefinition) error

	// GetModel returns the currently active model name.
	GetModel() string
}
