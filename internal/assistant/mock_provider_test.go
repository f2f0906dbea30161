package assistant

import (
	"context"
	"errors"

	provider "github.com/techcorp/hrmate/internal/provider/models"
)

// mockProvider is a function-field mock of provider.Provider.
type mockProvider struct {
	GenerateFunc    func(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error)
	DefineToolsFunc func(ctx context.Context, tools []provider.ToolDefinition) error
}

func (m *mockProvider) Generate(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return nil, errors.New("GenerateFunc not set")
}

func (m *mockProvider) DefineTools(ctx context.Context, tools []provider.ToolDefinition) error {
	if m.DefineToolsFunc != nil {
		return m.DefineToolsFunc(ctx, tools)
	}
	return nil
}

func (m *mockProvider) GetModel() string {
	return "mock-model"
}

// textResponse builds a plain content reply.
func textResponse(text string) *provider.GenerateResponse {
	return &provider.GenerateResponse{
		Content: provider.ResponseContent{
			Type: provider.ResponseTypeText,
			Text: text,
		},
	}
}
