// Package toolset declares and executes the four capabilities the model
// can invoke: leave balance lookup, policy retrieval, employee search,
// and leave request drafting. Every tool reads the mock store; getPolicy
// and draftLeaveRequest additionally notify the UI.
package toolset

import (
	"context"
	"fmt"

	provider "github.com/techcorp/hrmate/internal/provider/models"
	"github.com/techcorp/hrmate/internal/store"
)

// Declared tool names.
const (
	NameGetLeaveBalance   = "getLeaveBalance"
	NameGetPolicy         = "getPolicy"
	NameSearchEmployee    = "searchEmployee"
	NameDraftLeaveRequest = "draftLeaveRequest"
)

// DraftStatusCreated is returned by draftLeaveRequest. The draft lives
// only in the UI; nothing is committed or transmitted.
const DraftStatusCreated = "draft_created"

// GetLeaveBalanceRequest has no parameters.
type GetLeaveBalanceRequest struct{}

// GetLeaveBalanceResponse carries the current user's remaining leave.
type GetLeaveBalanceResponse struct {
	Balance float64 `json:"balance"`
	Unit    string  `json:"unit"`
}

// GetPolicyRequest identifies the policy document to retrieve.
type GetPolicyRequest struct {
	PolicyID string `mapstructure:"policyId"`
}

// Validate implements Validator.
func (r GetPolicyRequest) Validate() error {
	if r.PolicyID == "" {
		return fmt.Errorf("policyId is required")
	}
	return nil
}

// GetPolicyResponse carries the policy content when found.
type GetPolicyResponse struct {
	Found   bool   `json:"found"`
	Content string `json:"content,omitempty"`
}

// SearchEmployeeRequest carries the directory search query.
type SearchEmployeeRequest struct {
	Query string `mapstructure:"query"`
}

// Validate implements Validator.
func (r SearchEmployeeRequest) Validate() error {
	if r.Query == "" {
		return fmt.Errorf("query is required")
	}
	return nil
}

// SearchEmployeeResponse lists matching directory entries, possibly none.
type SearchEmployeeResponse struct {
	Matches []store.Employee `json:"matches"`
}

// DraftLeaveRequestRequest carries the fields of the leave request to draft.
type DraftLeaveRequestRequest struct {
	Date string `mapstructure:"date"`
	Type string `mapstructure:"type"`
}

// Validate implements Validator.
func (r DraftLeaveRequestRequest) Validate() error {
	if r.Date == "" {
		return fmt.Errorf("date is required")
	}
	if r.Type == "" {
		return fmt.Errorf("type is required")
	}
	return nil
}

// DraftLeaveRequestResponse acknowledges the drafted request.
type DraftLeaveRequestResponse struct {
	Status string `json:"status"`
}

// NewGetLeaveBalance creates the getLeaveBalance adapter.
func NewGetLeaveBalance(s *store.Store) Tool {
	return NewBaseAdapter(
		NameGetLeaveBalance,
		"Get the current remaining leave balance for the user.",
		nil,
		func(ctx context.Context, req GetLeaveBalanceRequest) (GetLeaveBalanceResponse, error) {
			return GetLeaveBalanceResponse{
				Balance: s.CurrentUser().LeaveBalance,
				Unit:    "days",
			}, nil
		},
	)
}

// NewGetPolicy creates the getPolicy adapter. A resolved policy fires the
// PolicyOpened notification before the result is returned.
func NewGetPolicy(s *store.Store, notifier Notifier) Tool {
	return NewBaseAdapter(
		NameGetPolicy,
		"Retrieve the full text of a specific company policy document.",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"policyId": {
					Type:        "string",
					Description: "The ID of the policy to retrieve (e.g., 'leave-01', 'expense-01').",
				},
			},
			Required: []string{"policyId"},
		},
		func(ctx context.Context, req GetPolicyRequest) (GetPolicyResponse, error) {
			policy, found := s.FindPolicy(req.PolicyID)
			if !found {
				return GetPolicyResponse{Found: false}, nil
			}
			notifier.PolicyOpened(policy.ID)
			return GetPolicyResponse{Found: true, Content: policy.Content}, nil
		},
	)
}

// NewSearchEmployee creates the searchEmployee adapter.
func NewSearchEmployee(s *store.Store) Tool {
	return NewBaseAdapter(
		NameSearchEmployee,
		"Find contact information and location of an employee.",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"query": {
					Type:        "string",
					Description: "Name or role of the employee to search for.",
				},
			},
			Required: []string{"query"},
		},
		func(ctx context.Context, req SearchEmployeeRequest) (SearchEmployeeResponse, error) {
			return SearchEmployeeResponse{Matches: s.SearchEmployees(req.Query)}, nil
		},
	)
}

// NewDraftLeaveRequest creates the draftLeaveRequest adapter. The draft
// is handed to the UI for confirmation; this tool never submits anything.
func NewDraftLeaveRequest(notifier Notifier) Tool {
	return NewBaseAdapter(
		NameDraftLeaveRequest,
		"Draft a leave request form for the user to confirm.",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"date": {
					Type:        "string",
					Description: "Date of the leave (YYYY-MM-DD).",
				},
				"type": {
					Type:        "string",
					Description: "Type of leave (Half-day AM, Half-day PM, Full Day).",
				},
			},
			Required: []string{"date", "type"},
		},
		func(ctx context.Context, req DraftLeaveRequestRequest) (DraftLeaveRequestResponse, error) {
			notifier.DraftReady(DraftLeave{Date: req.Date, Type: req.Type})
			return DraftLeaveRequestResponse{Status: DraftStatusCreated}, nil
		},
	)
}

// All returns the full declared tool set in a stable order.
func All(s *store.Store, notifier Notifier) []Tool {
	return []Tool{
		NewGetLeaveBalance(s),
		NewGetPolicy(s, notifier),
		NewSearchEmployee(s),
		NewDraftLeaveRequest(notifier),
	}
}
