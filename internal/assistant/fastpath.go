package assistant

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/techcorp/hrmate/internal/assistant/models"
	"github.com/techcorp/hrmate/internal/store"
	logx "github.com/techcorp/hrmate/pkg/logger"
)

// The leave policy every balance answer links to.
const leavePolicyID = "leave-01"

// balanceKeywords cover the hangul and English phrasings of a leave
// balance question. Matching is case-insensitive.
var balanceKeywords = []string{"연차", "잔여", "남았", "며칠", "balance", "leave", "days left", "휴가"}

// questionSignals are the cues that the text is actually asking, not just
// mentioning leave: a question mark in either width, or one of the two
// trailing verb fragments ("tell me" / "are left").
var questionSignals = []string{"?", "？", "알려", "남았"}

var balanceSuggestions = []string{"연차 규정 더보기", "연차 신청하기"}

// FastPath recognizes leave-balance questions from raw text and answers
// them straight from the store, skipping the model entirely. The single
// most common query stays deterministic, instant, and correct regardless
// of model reliability.
type FastPath struct {
	store *store.Store
}

// NewFastPath creates a matcher over the given store.
func NewFastPath(s *store.Store) *FastPath {
	return &FastPath{store: s}
}

// Match reports whether the text is a leave-balance question and, if so,
// returns the composed answer. Both a balance keyword and a question
// signal are required; the keyword alone must not intercept unrelated
// statements.
func (f *FastPath) Match(text string) (models.StructuredAnswer, bool) {
	lowered := strings.ToLower(text)

	keyword := false
	for _, k := range balanceKeywords {
		if strings.Contains(lowered, strings.ToLower(k)) {
			keyword = true
			break
		}
	}
	if !keyword {
		return models.StructuredAnswer{}, false
	}

	question := false
	for _, sig := range questionSignals {
		if strings.Contains(text, sig) {
			question = true
			break
		}
	}
	if !question {
		return models.StructuredAnswer{}, false
	}

	user := f.store.CurrentUser()
	balance := strconv.FormatFloat(user.LeaveBalance, 'f', -1, 64)

	answer := models.StructuredAnswer{
		Summary:         fmt.Sprintf("%s님의 현재 잔여 연차는 **%s일**입니다. 😊", user.Name, balance),
		RelatedPolicyID: leavePolicyID,
		Suggestions:     balanceSuggestions,
	}
	if policy, found := f.store.FindPolicy(leavePolicyID); found {
		answer.RelatedPolicyName = policy.Title
	}

	logx.Debug().Msg("balance question detected, bypassing model")
	return answer, true
}
