package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techcorp/hrmate/internal/assistant/models"
	"github.com/techcorp/hrmate/internal/assistant/toolset"
	provider "github.com/techcorp/hrmate/internal/provider/models"
	"github.com/techcorp/hrmate/internal/store"
)

func newTestSession(t *testing.T, p provider.Provider) *Session {
	t.Helper()
	s := store.New()
	gateway, err := NewGateway(context.Background(), p, s, toolset.All(s, toolset.NopNotifier{}))
	require.NoError(t, err)
	return NewSession(gateway, NewFastPath(s), NewNormalizer(s))
}

func TestSubmit_TextReply(t *testing.T) {
	t.Parallel()

	mock := &mockProvider{
		GenerateFunc: func(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
			return textResponse(`{"summary":"경조사비는 총무팀에 신청하세요."}`), nil
		},
	}
	session := newTestSession(t, mock)

	answer := session.Submit(context.Background(), "경조사비 어떻게 신청해?")

	assert.Equal(t, "경조사비는 총무팀에 신청하세요.", answer.Summary)

	history := session.History()
	require.Len(t, history, 2)
	assert.Equal(t, models.RoleUser, history[0].Role)
	assert.Equal(t, "경조사비 어떻게 신청해?", history[0].Content)
	assert.Equal(t, models.RoleModel, history[1].Role)
}

// Balance questions are answered without any model call, but the exchange
// still lands in the history so follow-ups keep their context.
func TestSubmit_FastPathSkipsModel(t *testing.T) {
	t.Parallel()

	generateCalls := 0
	mock := &mockProvider{
		GenerateFunc: func(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
			generateCalls++
			return textResponse(`{"summary":"호출되면 안 됨"}`), nil
		},
	}
	session := newTestSession(t, mock)

	answer := session.Submit(context.Background(), "연차 며칠 남았어?")

	assert.Equal(t, 0, generateCalls)
	assert.Contains(t, answer.Summary, "12.5일")
	assert.Len(t, session.History(), 2)
}

func TestSubmit_ToolRoundTripHistory(t *testing.T) {
	t.Parallel()

	callCount := 0
	mock := &mockProvider{
		GenerateFunc: func(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
			callCount++
			if callCount == 1 {
				return &provider.GenerateResponse{
					Content: provider.ResponseContent{
						Type: provider.ResponseTypeToolCall,
						ToolCalls: []models.ToolCall{
							{Name: toolset.NameGetPolicy, Args: map[string]any{"policyId": "benefit-01"}},
						},
					},
				}, nil
			}
			return textResponse(`{"summary":"복리후생 규정 요약","relatedPolicyId":"benefit-01"}`), nil
		},
	}
	session := newTestSession(t, mock)

	answer := session.Submit(context.Background(), "복리후생 규정 알려줘")

	assert.Equal(t, "복리후생 규정 요약", answer.Summary)
	assert.Equal(t, "benefit-01", answer.RelatedPolicyID)

	// user, tool-call, tool-result, model
	history := session.History()
	require.Len(t, history, 4)
	assert.Equal(t, models.RoleUser, history[0].Role)
	assert.Equal(t, models.RoleModel, history[1].Role)
	assert.Len(t, history[1].ToolCalls, 1)
	assert.Equal(t, models.RoleTool, history[2].Role)
	assert.Len(t, history[2].ToolResults, 1)
	assert.Equal(t, models.RoleModel, history[3].Role)
}

// Submit never fails: provider errors degrade to a structured failure
// answer.
func TestSubmit_ProviderFailure(t *testing.T) {
	t.Parallel()

	mock := &mockProvider{
		GenerateFunc: func(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
			return nil, errors.New("service unavailable")
		},
	}
	session := newTestSession(t, mock)

	answer := session.Submit(context.Background(), "질문")

	assert.Contains(t, answer.Summary, "오류 발생")
	assert.Equal(t, []string{"다시 시도", "새로고침"}, answer.Suggestions)

	// The failed exchange still leaves user + model turns behind.
	assert.Len(t, session.History(), 2)
}

func TestSubmit_MultiTurnHistoryGrows(t *testing.T) {
	t.Parallel()

	mock := &mockProvider{
		GenerateFunc: func(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
			return textResponse(`{"summary":"답변"}`), nil
		},
	}
	session := newTestSession(t, mock)

	session.Submit(context.Background(), "첫 번째 질문")
	session.Submit(context.Background(), "두 번째 질문")

	history := session.History()
	require.Len(t, history, 4)
	assert.Equal(t, "첫 번째 질문", history[0].Content)
	assert.Equal(t, "두 번째 질문", history[2].Content)
}

func TestHistory_ReturnsCopy(t *testing.T) {
	t.Parallel()

	mock := &mockProvider{
		GenerateFunc: func(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
			return textResponse(`{"summary":"답변"}`), nil
		},
	}
	session := newTestSession(t, mock)
	session.Submit(context.Background(), "질문")

	history := session.History()
	history[0].Content = "변조된 내용"

	assert.Equal(t, "질문", session.History()[0].Content)
}
