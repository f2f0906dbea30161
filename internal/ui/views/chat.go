package views

import (
	"fmt"
	"strings"

	assistant "github.com/techcorp/hrmate/internal/assistant/models"
	"github.com/techcorp/hrmate/internal/assistant/toolset"
	"github.com/techcorp/hrmate/internal/ui/models"
	"github.com/techcorp/hrmate/internal/ui/services"
)

// RenderChat renders the message history pane.
func RenderChat(s models.State, renderer services.MarkdownRenderer) string {
	if len(s.Messages) == 0 {
		return "대화를 시작하려면 메시지를 입력하세요."
	}
	return s.Viewport.View()
}

// FormatChatContent formats the messages for the viewport.
func FormatChatContent(messages []models.Message, width int, renderer services.MarkdownRenderer) string {
	var lines []string
	for _, msg := range messages {
		switch {
		case msg.Role == "user":
			lines = append(lines, UserMessageStyle.Render("나: "+msg.Content))

		case msg.Draft != nil:
			lines = append(lines, FormatDraftCard(*msg.Draft))

		case msg.Answer != nil:
			lines = append(lines, FormatAnswer(*msg.Answer, width, renderer))

		default:
			lines = append(lines, AssistantLabelStyle.Render("HR Mate: ")+msg.Content)
		}
		lines = append(lines, "") // spacing
	}
	return strings.Join(lines, "\n")
}

// FormatAnswer renders a structured answer: the summary card, an optional
// policy link, and the follow-up suggestions.
func FormatAnswer(answer assistant.StructuredAnswer, width int, renderer services.MarkdownRenderer) string {
	var parts []string

	summary := services.RenderMarkdown(answer.Summary, width-4, renderer)
	card := AssistantLabelStyle.Render("🤖 요약 답변") + "\n" + strings.TrimRight(summary, "\n")
	parts = append(parts, SummaryCardStyle.Width(width).Render(card))

	if answer.RelatedPolicyID != "" {
		label := answer.RelatedPolicyName
		if label == "" {
			label = answer.RelatedPolicyID
		}
		parts = append(parts, PolicyLinkStyle.Render(fmt.Sprintf("📄 자세히 보기: %s", label)))
	} else if answer.Detail != "" {
		parts = append(parts, PolicyLinkStyle.Render("📄 자세히 보기 (상세 답변)"))
	}

	for _, suggestion := range answer.Suggestions {
		parts = append(parts, SuggestionStyle.Render("· "+suggestion))
	}

	return strings.Join(parts, "\n")
}

// FormatDraftCard renders the leave-request draft confirmation card. The
// draft only previews the request; nothing is submitted from here.
func FormatDraftCard(draft toolset.DraftLeave) string {
	var sb strings.Builder
	sb.WriteString("📝 휴가 신청서 (초안)\n")
	sb.WriteString(fmt.Sprintf("신청일      %s\n", draft.Date))
	sb.WriteString(fmt.Sprintf("휴가 종류   %s\n", draft.Type))
	sb.WriteString("예상 차감   -0.5일")
	return DraftCardStyle.Render(sb.String())
}
