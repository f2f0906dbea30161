package toolset

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techcorp/hrmate/internal/store"
)

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	openedPolicies []string
	drafts         []DraftLeave
}

func (n *recordingNotifier) PolicyOpened(policyID string) {
	n.openedPolicies = append(n.openedPolicies, policyID)
}

func (n *recordingNotifier) DraftReady(draft DraftLeave) {
	n.drafts = append(n.drafts, draft)
}

func TestGetLeaveBalance(t *testing.T) {
	t.Parallel()
	tool := NewGetLeaveBalance(store.New())

	result, err := tool.Execute(context.Background(), map[string]any{})
	require.NoError(t, err)

	var resp GetLeaveBalanceResponse
	require.NoError(t, json.Unmarshal([]byte(result), &resp))
	assert.Equal(t, 12.5, resp.Balance)
	assert.Equal(t, "days", resp.Unit)
}

func TestGetPolicy_Found(t *testing.T) {
	t.Parallel()
	notifier := &recordingNotifier{}
	tool := NewGetPolicy(store.New(), notifier)

	result, err := tool.Execute(context.Background(), map[string]any{"policyId": "leave-01"})
	require.NoError(t, err)

	var resp GetPolicyResponse
	require.NoError(t, json.Unmarshal([]byte(result), &resp))
	assert.True(t, resp.Found)
	assert.Contains(t, resp.Content, "연차")
	assert.Equal(t, []string{"leave-01"}, notifier.openedPolicies)
}

func TestGetPolicy_NotFound(t *testing.T) {
	t.Parallel()
	notifier := &recordingNotifier{}
	tool := NewGetPolicy(store.New(), notifier)

	result, err := tool.Execute(context.Background(), map[string]any{"policyId": "no-such-policy"})
	require.NoError(t, err)

	var resp GetPolicyResponse
	require.NoError(t, json.Unmarshal([]byte(result), &resp))
	assert.False(t, resp.Found)
	assert.Empty(t, resp.Content)

	// No notification without a resolved policy.
	assert.Empty(t, notifier.openedPolicies)
}

func TestGetPolicy_MissingArg(t *testing.T) {
	t.Parallel()
	tool := NewGetPolicy(store.New(), NopNotifier{})

	_, err := tool.Execute(context.Background(), map[string]any{})

	assert.ErrorContains(t, err, "policyId is required")
}

func TestSearchEmployee(t *testing.T) {
	t.Parallel()
	tool := NewSearchEmployee(store.New())

	result, err := tool.Execute(context.Background(), map[string]any{"query": "이영희"})
	require.NoError(t, err)

	var resp SearchEmployeeResponse
	require.NoError(t, json.Unmarshal([]byte(result), &resp))
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "인사팀장", resp.Matches[0].Role)
}

func TestSearchEmployee_NoMatchIsEmptyList(t *testing.T) {
	t.Parallel()
	tool := NewSearchEmployee(store.New())

	result, err := tool.Execute(context.Background(), map[string]any{"query": "아무개"})
	require.NoError(t, err)

	// Empty list, not null: the model reads this payload back.
	assert.Contains(t, result, `"matches":[]`)
}

func TestDraftLeaveRequest(t *testing.T) {
	t.Parallel()
	notifier := &recordingNotifier{}
	tool := NewDraftLeaveRequest(notifier)

	result, err := tool.Execute(context.Background(), map[string]any{
		"date": "2024-01-15",
		"type": "Half-day AM",
	})
	require.NoError(t, err)

	var resp DraftLeaveRequestResponse
	require.NoError(t, json.Unmarshal([]byte(result), &resp))
	assert.Equal(t, DraftStatusCreated, resp.Status)

	require.Len(t, notifier.drafts, 1)
	assert.Equal(t, DraftLeave{Date: "2024-01-15", Type: "Half-day AM"}, notifier.drafts[0])
}

func TestDraftLeaveRequest_MissingFields(t *testing.T) {
	t.Parallel()
	notifier := &recordingNotifier{}
	tool := NewDraftLeaveRequest(notifier)

	tests := []struct {
		name    string
		args    map[string]any
		wantErr string
	}{
		{"missing date", map[string]any{"type": "Full Day"}, "date is required"},
		{"missing type", map[string]any{"date": "2024-01-15"}, "type is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tool.Execute(context.Background(), tt.args)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	assert.Empty(t, notifier.drafts)
}

func TestAll_StableOrder(t *testing.T) {
	t.Parallel()
	tools := All(store.New(), NopNotifier{})

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name())
	}

	assert.Equal(t, []string{
		NameGetLeaveBalance,
		NameGetPolicy,
		NameSearchEmployee,
		NameDraftLeaveRequest,
	}, names)
}
