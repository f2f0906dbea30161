package assistant

import (
	"encoding/json"
	"strings"

	"github.com/techcorp/hrmate/internal/assistant/models"
	"github.com/techcorp/hrmate/internal/store"
	logx "github.com/techcorp/hrmate/pkg/logger"
)

// Length thresholds for the plain-text fallback. Both count runes, not
// bytes, since most replies are hangul.
const (
	verbatimLimit    = 200
	truncatedSummary = 100
)

var fallbackSuggestions = []string{"관련 규정 더보기", "다른 질문 하기"}

// Normalizer turns whatever the gateway returned into a canonical
// StructuredAnswer. It never fails: replies that cannot be decoded
// degrade to a length-based plain-text answer.
type Normalizer struct {
	store *store.Store
}

// NewNormalizer creates a normalizer backed by the given policy store.
func NewNormalizer(s *store.Store) *Normalizer {
	return &Normalizer{store: s}
}

// decodedAnswer mirrors StructuredAnswer but tolerates the legacy
// "details" key some replies carry instead of "detail".
type decodedAnswer struct {
	Summary           string   `json:"summary"`
	Detail            string   `json:"detail"`
	Details           string   `json:"details"`
	RelatedPolicyID   string   `json:"relatedPolicyId"`
	RelatedPolicyName string   `json:"relatedPolicyName"`
	Suggestions       []string `json:"suggestions"`
}

// Normalize parses a raw model reply into a StructuredAnswer.
func (n *Normalizer) Normalize(raw string) models.StructuredAnswer {
	candidate := extractJSON(raw)

	var decoded decodedAnswer
	if err := json.Unmarshal([]byte(candidate), &decoded); err != nil || decoded.Summary == "" {
		logx.Debug().Int("len", len(raw)).Msg("reply not decodable as structured answer, using fallback")
		return fallbackAnswer(strings.TrimSpace(raw))
	}

	answer := models.StructuredAnswer{
		Summary:           decoded.Summary,
		Detail:            decoded.Detail,
		RelatedPolicyID:   decoded.RelatedPolicyID,
		RelatedPolicyName: decoded.RelatedPolicyName,
		Suggestions:       decoded.Suggestions,
	}
	if answer.Detail == "" {
		answer.Detail = decoded.Details
	}
	if len(answer.Suggestions) > 3 {
		answer.Suggestions = answer.Suggestions[:3]
	}

	// A policy reference the store does not know is no link at all.
	if answer.RelatedPolicyID != "" {
		policy, found := n.store.FindPolicy(answer.RelatedPolicyID)
		if !found {
			logx.Debug().Str("policyId", answer.RelatedPolicyID).Msg("dropping unknown policy reference")
			answer.RelatedPolicyID = ""
			answer.RelatedPolicyName = ""
		} else if answer.RelatedPolicyName == "" {
			answer.RelatedPolicyName = policy.Title
		}
	}

	return answer
}

// extractJSON strips markdown code fences and cuts the substring between
// the first '{' and the last '}'. The model is told to emit raw JSON but
// is not trusted to comply.
func extractJSON(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		return cleaned[start : end+1]
	}
	return cleaned
}

// fallbackAnswer applies the length heuristic: short replies become the
// summary verbatim; long ones are truncated with the full text kept as
// detail.
func fallbackAnswer(raw string) models.StructuredAnswer {
	if raw == "" {
		return models.StructuredAnswer{
			Summary:     "죄송합니다. 답변을 생성하지 못했습니다.",
			Suggestions: []string{"다시 시도"},
		}
	}

	runes := []rune(raw)
	if len(runes) <= verbatimLimit {
		return models.StructuredAnswer{
			Summary:     raw,
			Suggestions: []string{},
		}
	}

	return models.StructuredAnswer{
		Summary:     string(runes[:truncatedSummary]) + "...",
		Detail:      raw,
		Suggestions: fallbackSuggestions,
	}
}
