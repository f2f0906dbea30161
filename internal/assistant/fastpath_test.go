package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/techcorp/hrmate/internal/store"
)

func TestFastPath_Match(t *testing.T) {
	t.Parallel()
	fastPath := NewFastPath(store.New())

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"hangul balance question", "연차 며칠 남았어?", true},
		{"hangul tell-me phrasing", "내 연차 잔여일 알려줘", true},
		{"english balance question", "How many leave days left?", true},
		{"fullwidth question mark", "휴가 며칠 남았지？", true},
		{"keyword without question signal", "연차 신청하고 싶어", false},
		{"question without balance keyword", "법인카드 심야 사용 가능해?", false},
		{"unrelated statement", "오늘 점심 뭐 먹지", false},
		{"empty text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, matched := fastPath.Match(tt.text)
			assert.Equal(t, tt.want, matched)
		})
	}
}

func TestFastPath_AnswerShape(t *testing.T) {
	t.Parallel()
	s := store.New()
	fastPath := NewFastPath(s)

	answer, matched := fastPath.Match("연차 며칠 남았어?")

	assert.True(t, matched)
	assert.Contains(t, answer.Summary, "함보라")
	assert.Contains(t, answer.Summary, "12.5일")
	assert.Equal(t, "leave-01", answer.RelatedPolicyID)

	policy, _ := s.FindPolicy("leave-01")
	assert.Equal(t, policy.Title, answer.RelatedPolicyName)

	assert.Equal(t, []string{"연차 규정 더보기", "연차 신청하기"}, answer.Suggestions)
}

// English keyword matching is case-insensitive even though the employee
// search is not.
func TestFastPath_EnglishCaseInsensitive(t *testing.T) {
	t.Parallel()
	fastPath := NewFastPath(store.New())

	_, matched := fastPath.Match("What is my LEAVE Balance?")

	assert.True(t, matched)
}
