package assistant

import (
	"context"
	"fmt"

	"github.com/techcorp/hrmate/internal/assistant/models"
	"github.com/techcorp/hrmate/internal/assistant/toolset"
	provider "github.com/techcorp/hrmate/internal/provider/models"
	"github.com/techcorp/hrmate/internal/store"
	logx "github.com/techcorp/hrmate/pkg/logger"
)

// Gateway wraps the language-model call: it builds each request with the
// static system instruction, the declared tool set, and the structured
// output constraint, and drives the two-phase tool round trip.
type Gateway struct {
	provider          provider.Provider
	tools             map[string]toolset.Tool
	systemInstruction string
	responseSchema    *provider.ParameterSchema
}

// NewGateway creates a gateway over the given provider and declares the
// tool set with it.
func NewGateway(ctx context.Context, p provider.Provider, s *store.Store, tools []toolset.Tool) (*Gateway, error) {
	toolMap := make(map[string]toolset.Tool)
	definitions := make([]provider.ToolDefinition, 0, len(tools))
	for _, t := range tools {
		toolMap[t.Name()] = t
		definitions = append(definitions, t.Definition())
	}

	if err := p.DefineTools(ctx, definitions); err != nil {
		return nil, fmt.Errorf("failed to define tools: %w", err)
	}

	return &Gateway{
		provider:          p,
		tools:             toolMap,
		systemInstruction: SystemInstruction(s),
		responseSchema:    ResponseSchema(s),
	}, nil
}

// Exchange sends the history to the model and returns the final content
// reply. When phase 1 yields tool calls, the calls are executed, and the
// resulting model/tool turns are returned alongside the phase-2 reply so
// the caller can fold them into history. Only a content reply ever comes
// back as raw text; anything else is an error for the caller to convert.
func (g *Gateway) Exchange(ctx context.Context, history []models.Turn) ([]models.Turn, string, error) {
	response, err := g.generate(ctx, history)
	if err != nil {
		return nil, "", err
	}

	switch response.Content.Type {
	case provider.ResponseTypeText:
		return nil, response.Content.Text, nil

	case provider.ResponseTypeRefusal:
		return nil, "", fmt.Errorf("model refused: %s", response.Content.RefusalReason)

	case provider.ResponseTypeToolCall:
		calls := response.Content.ToolCalls
		if len(calls) == 0 {
			return nil, "", fmt.Errorf("empty tool call list")
		}

		// Resolve every call in the order received so the conversation
		// log stays reproducible.
		results := make([]models.ToolResult, 0, len(calls))
		for _, call := range calls {
			results = append(results, g.executeToolCall(ctx, call))
		}

		extra := []models.Turn{
			models.NewToolCallTurn(calls),
			models.NewToolResultTurn(results),
		}

		// Phase 2: feed the tool results back for the actual answer.
		followUp, err := g.generate(ctx, append(append([]models.Turn{}, history...), extra...))
		if err != nil {
			return extra, "", err
		}
		if followUp.Content.Type != provider.ResponseTypeText {
			return extra, "", fmt.Errorf("expected content reply after tool results, got %s", followUp.Content.Type)
		}
		return extra, followUp.Content.Text, nil

	default:
		return nil, "", fmt.Errorf("unknown response type %q", response.Content.Type)
	}
}

func (g *Gateway) generate(ctx context.Context, history []models.Turn) (*provider.GenerateResponse, error) {
	return g.provider.Generate(ctx, &provider.GenerateRequest{
		History:           history,
		SystemInstruction: g.systemInstruction,
		ResponseSchema:    g.responseSchema,
	})
}

// executeToolCall executes a single tool call and returns the result.
// Unknown tool names contribute an explicit error result instead of being
// dropped, so the phase-2 context stays complete.
func (g *Gateway) executeToolCall(ctx context.Context, call models.ToolCall) models.ToolResult {
	tool, exists := g.tools[call.Name]
	if !exists {
		logx.Warn().Str("tool", call.Name).Msg("model requested unknown tool")
		return models.ToolResult{
			Name:  call.Name,
			Error: fmt.Sprintf("unknown tool '%s'", call.Name),
		}
	}

	logx.Debug().Str("tool", call.Name).Interface("args", call.Args).Msg("executing tool call")

	result, err := tool.Execute(ctx, call.Args)
	if err != nil {
		return models.ToolResult{
			Name:  call.Name,
			Error: err.Error(),
		}
	}

	return models.ToolResult{
		Name:    call.Name,
		Content: result,
	}
}

// FailureAnswer converts a gateway failure into the structured answer the
// UI shows in place of an unhandled fault.
func FailureAnswer(err error) models.StructuredAnswer {
	return models.StructuredAnswer{
		Summary:     fmt.Sprintf("오류 발생: %v", err),
		Suggestions: []string{"다시 시도", "새로고침"},
	}
}
