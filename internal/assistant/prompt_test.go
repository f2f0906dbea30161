package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techcorp/hrmate/internal/store"
)

func TestSystemInstruction(t *testing.T) {
	t.Parallel()
	instruction := SystemInstruction(store.New())

	assert.Contains(t, instruction, "HR Mate")
	assert.Contains(t, instruction, "TechCorp")
	assert.Contains(t, instruction, "함보라")

	// Every policy appears in the digest with its ID.
	for _, summary := range store.New().ListPolicySummaries() {
		assert.Contains(t, instruction, summary.ID)
		assert.Contains(t, instruction, summary.Title)
	}
}

func TestResponseSchema(t *testing.T) {
	t.Parallel()
	schema := ResponseSchema(store.New())

	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"summary", "detail"}, schema.Required)

	for _, key := range []string{"summary", "detail", "relatedPolicyId", "relatedPolicyName", "suggestions"} {
		assert.Contains(t, schema.Properties, key)
	}

	// Valid policy IDs are enumerated for the model.
	assert.Contains(t, schema.Properties["relatedPolicyId"].Description, "leave-01")

	suggestions := schema.Properties["suggestions"]
	assert.Equal(t, "array", suggestions.Type)
	require.NotNil(t, suggestions.Items)
	assert.Equal(t, "string", suggestions.Items.Type)
}
