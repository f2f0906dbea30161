package assistant

import (
	"fmt"
	"strings"

	provider "github.com/techcorp/hrmate/internal/provider/models"
	"github.com/techcorp/hrmate/internal/store"
)

// SystemInstruction builds the static instruction text: the assistant
// persona, the current user's identity, a one-line digest of every
// available policy, and directives for when to call tools versus answer
// directly.
func SystemInstruction(s *store.Store) string {
	user := s.CurrentUser()

	var digest strings.Builder
	for _, p := range s.ListPolicySummaries() {
		fmt.Fprintf(&digest, "- %s (ID: %s): %s\n", p.Title, p.ID, p.Summary)
	}

	return fmt.Sprintf(`You are 'HR Mate', a helpful and professional AI HR Assistant for TechCorp.
Current User: %s (Role: %s, Dept: %s).

Your goal is to assist employees with internal regulations, benefits, and administrative tasks.

AVAILABLE POLICIES (Use 'getPolicy' tool to read full details if needed):
%s
GUIDELINES:
1. **Personalization**: Always address the user politely.
2. **Accuracy**: Base your answers strictly on the policy context.
3. **Format**: You MUST return a JSON object with a 'summary', a consolidated 'detail', 'relatedPolicyId' (if any), 'relatedPolicyName', and 'suggestions'. Keep 'summary' short and put the long-form answer into 'detail'.
4. **Actionable**: If a user wants to apply for leave, use 'draftLeaveRequest'.
5. **JSON Only**: Do not wrap response in markdown blocks. Just return the raw JSON string.

When the user asks for "details" or specific clauses, CALL the 'getPolicy' tool first.`,
		user.Name, user.Role, user.Department, digest.String())
}

// ResponseSchema constrains every text reply to the structured answer
// shape. Of the two shapes this assistant shipped with historically, the
// stricter one is used: both summary and detail are declared required,
// which keeps the normalizer's fallback path rare.
func ResponseSchema(s *store.Store) *provider.ParameterSchema {
	ids := make([]string, 0)
	for _, p := range s.ListPolicySummaries() {
		ids = append(ids, p.ID)
	}

	return &provider.ParameterSchema{
		Type: "object",
		Properties: map[string]provider.PropertySchema{
			"summary": {
				Type:        "string",
				Description: "A 3-line summary of the answer.",
			},
			"detail": {
				Type:        "string",
				Description: "The consolidated long-form answer, if the topic needs one.",
			},
			"relatedPolicyId": {
				Type:        "string",
				Description: "The ID of the policy related to this answer (MUST match exactly one of: " + strings.Join(ids, ", ") + "), if applicable.",
			},
			"relatedPolicyName": {
				Type:        "string",
				Description: "The display name of the policy (e.g. '취업규칙 제15조').",
			},
			"suggestions": {
				Type:        "array",
				Items:       &provider.PropertySchema{Type: "string"},
				Description: "3 short follow-up questions the user might ask next.",
			},
		},
		Required: []string{"summary", "detail"},
	}
}
