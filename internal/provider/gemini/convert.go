package gemini

import (
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/techcorp/hrmate/internal/assistant/models"
	provider "github.com/techcorp/hrmate/internal/provider/models"
)

// toGeminiContents converts the conversation history to Gemini Content format.
func toGeminiContents(history []models.Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))

	for _, turn := range history {
		content := turnToGeminiContent(turn)
		if content != nil {
			contents = append(contents, content)
		}
	}

	return contents
}

// turnToGeminiContent converts a single turn to Gemini Content format.
// Tool turns are sent with the "user" role carrying FunctionResponse
// parts, which is how the API expects tool results to come back.
func turnToGeminiContent(turn models.Turn) *genai.Content {
	role := "user"
	if turn.Role == models.RoleModel {
		role = "model"
	}

	parts := make([]*genai.Part, 0)

	if turn.Content != "" {
		parts = append(parts, genai.NewPartFromText(turn.Content))
	}

	for _, call := range turn.ToolCalls {
		parts = append(parts, &genai.Part{
			FunctionCall: &genai.FunctionCall{
				Name: call.Name,
				Args: call.Args,
			},
		})
	}

	for _, result := range turn.ToolResults {
		parts = append(parts, &genai.Part{
			FunctionResponse: &genai.FunctionResponse{
				Name:     result.Name,
				Response: toolResultPayload(result),
			},
		})
	}

	// Skip empty turns
	if len(parts) == 0 {
		return nil
	}

	return &genai.Content{
		Role:  role,
		Parts: parts,
	}
}

// toolResultPayload decodes a tool result back into the structured map the
// FunctionResponse part expects. Results that are not JSON objects are
// wrapped under a "content" key.
func toolResultPayload(result models.ToolResult) map[string]any {
	if result.Error != "" {
		return map[string]any{"error": result.Error}
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(result.Content), &payload); err == nil {
		return payload
	}
	return map[string]any{"content": result.Content}
}

// toGeminiConfig builds the generation config: system instruction, JSON
// output constraint, declared tools, and optional sampling parameters.
func toGeminiConfig(req *provider.GenerateRequest, tools []provider.ToolDefinition) *genai.GenerateContentConfig {
	geminiConfig := &genai.GenerateContentConfig{}

	if req.SystemInstruction != "" {
		geminiConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(req.SystemInstruction)},
		}
	}

	if req.ResponseSchema != nil {
		geminiConfig.ResponseMIMEType = "application/json"
		geminiConfig.ResponseSchema = toGeminiSchema(req.ResponseSchema)
	}

	if len(tools) > 0 {
		geminiConfig.Tools = toGeminiTools(tools)
	}

	if req.Config != nil {
		if req.Config.Temperature != nil {
			geminiConfig.Temperature = req.Config.Temperature
		}
		if req.Config.TopP != nil {
			geminiConfig.TopP = req.Config.TopP
		}
	}

	return geminiConfig
}

// toGeminiTools converts internal ToolDefinition to Gemini tools.
func toGeminiTools(tools []provider.ToolDefinition) []*genai.Tool {
	functionDeclarations := make([]*genai.FunctionDeclaration, 0, len(tools))

	for _, tool := range tools {
		fd := &genai.FunctionDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
		}

		if tool.Parameters != nil {
			fd.Parameters = toGeminiSchema(tool.Parameters)
		}

		functionDeclarations = append(functionDeclarations, fd)
	}

	return []*genai.Tool{
		{FunctionDeclarations: functionDeclarations},
	}
}

// toGeminiSchema converts ParameterSchema to Gemini Schema.
func toGeminiSchema(params *provider.ParameterSchema) *genai.Schema {
	schema := &genai.Schema{
		Type: genai.TypeObject,
	}

	if params.Properties != nil {
		schema.Properties = make(map[string]*genai.Schema)
		for name, prop := range params.Properties {
			schema.Properties[name] = &genai.Schema{
				Type:        toGeminiType(prop.Type),
				Description: prop.Description,
			}

			if len(prop.Enum) > 0 {
				schema.Properties[name].Enum = prop.Enum
			}

			if prop.Items != nil {
				schema.Properties[name].Items = &genai.Schema{
					Type:        toGeminiType(prop.Items.Type),
					Description: prop.Items.Description,
				}
			}
		}
	}

	if len(params.Required) > 0 {
		schema.Required = params.Required
	}

	return schema
}

// toGeminiType converts string type to Gemini Type.
func toGeminiType(typeStr string) genai.Type {
	switch typeStr {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

// fromGeminiResponse converts a Gemini response to internal format.
func fromGeminiResponse(resp *genai.GenerateContentResponse) (*provider.GenerateResponse, error) {
	if len(resp.Candidates) == 0 {
		return nil, &provider.ProviderError{
			Code:    provider.ErrorCodeInvalidRequest,
			Message: "no candidates in response",
		}
	}

	candidate := resp.Candidates[0]

	if candidate.FinishReason == genai.FinishReasonSafety {
		return &provider.GenerateResponse{
			Content: provider.ResponseContent{
				Type:          provider.ResponseTypeRefusal,
				RefusalReason: "content blocked by safety filters",
			},
		}, nil
	}

	if candidate.Content == nil {
		return nil, &provider.ProviderError{
			Code:    provider.ErrorCodeInvalidRequest,
			Message: "empty candidate content",
		}
	}

	// Tool calls take precedence over any accompanying text.
	toolCalls := make([]models.ToolCall, 0)
	for _, part := range candidate.Content.Parts {
		if part.FunctionCall != nil {
			toolCalls = append(toolCalls, models.ToolCall{
				Name: part.FunctionCall.Name,
				Args: part.FunctionCall.Args,
			})
		}
	}
	if len(toolCalls) > 0 {
		return &provider.GenerateResponse{
			Content: provider.ResponseContent{
				Type:      provider.ResponseTypeToolCall,
				ToolCalls: toolCalls,
			},
		}, nil
	}

	var text string
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	return &provider.GenerateResponse{
		Content: provider.ResponseContent{
			Type: provider.ResponseTypeText,
			Text: text,
		},
	}, nil
}

// mapGeminiError maps Gemini API errors to provider errors.
func mapGeminiError(err error) error {
	if err == nil {
		return nil
	}

	if apiErr, ok := err.(*genai.APIError); ok {
		switch apiErr.Code {
		case 401, 403:
			return &provider.ProviderError{
				Code:       provider.ErrorCodeAuth,
				Message:    "authentication failed",
				Underlying: err,
				Retryable:  false,
			}
		case 429:
			return &provider.ProviderError{
				Code:       provider.ErrorCodeRateLimit,
				Message:    "rate limit exceeded",
				Underlying: err,
				Retryable:  true,
				RetryAfter: parseRetryAfter(apiErr),
			}
		case 400:
			return &provider.ProviderError{
				Code:       provider.ErrorCodeInvalidRequest,
				Message:    fmt.Sprintf("invalid request: %s", apiErr.Message),
				Underlying: err,
				Retryable:  false,
			}
		case 500, 502, 503, 504:
			return &provider.ProviderError{
				Code:       provider.ErrorCodeUnavailable,
				Message:    "service unavailable",
				Underlying: err,
				Retryable:  true,
			}
		default:
			return &provider.ProviderError{
				Code:       provider.ErrorCodeNetwork,
				Message:    fmt.Sprintf("API error: %s", apiErr.Message),
				Underlying: err,
				Retryable:  true,
			}
		}
	}

	return &provider.ProviderError{
		Code:       provider.ErrorCodeNetwork,
		Message:    "network error",
		Underlying: err,
		Retryable:  true,
	}
}

// parseRetryAfter attempts to parse Retry-After from error details.
func parseRetryAfter(apiErr *genai.APIError) *time.Duration {
	// TODO: Parse Retry-After header if available in error details
	// For now, return nil
	return nil
}
