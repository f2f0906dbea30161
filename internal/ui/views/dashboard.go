package views

import (
	"fmt"
	"strings"

	"github.com/techcorp/hrmate/internal/ui/models"
	"github.com/techcorp/hrmate/internal/ui/services"
)

// RenderDashboard renders the right-hand pane: the selected policy
// document when one is open, otherwise the notices and inquiry analytics
// overview.
func RenderDashboard(s models.State, width int, renderer services.MarkdownRenderer) string {
	if s.SelectedPolicy != nil {
		return DashboardPaneStyle.Render(renderPolicy(s, width, renderer))
	}
	return DashboardPaneStyle.Render(renderOverview(s, width))
}

func renderPolicy(s models.State, width int, renderer services.MarkdownRenderer) string {
	policy := s.SelectedPolicy

	header := DashboardTitleStyle.Render(policy.Title) + "\n" +
		NoticeDateStyle.Render(fmt.Sprintf("%s · 최종 수정 %s", policy.Category, policy.LastUpdated))

	body := services.RenderMarkdown(policy.Content, width-4, renderer)
	footer := NoticeDateStyle.Render("esc: 목록으로 돌아가기")

	return header + "\n" + body + "\n" + footer
}

func renderOverview(s models.State, width int) string {
	var sb strings.Builder

	sb.WriteString(DashboardTitleStyle.Render("사내 공지"))
	sb.WriteString("\n\n")
	for _, notice := range s.Notices {
		title := notice.Title
		if notice.Important {
			title = NoticeImportantStyle.Render(title)
		}
		sb.WriteString(fmt.Sprintf("%s  %s\n", NoticeDateStyle.Render(notice.Date), title))
	}

	sb.WriteString("\n")
	sb.WriteString(DashboardTitleStyle.Render("문의 유형 통계"))
	sb.WriteString("\n\n")
	sb.WriteString(renderAnalytics(s, width))

	return sb.String()
}

// renderAnalytics draws a simple horizontal bar chart of inquiry counts.
func renderAnalytics(s models.State, width int) string {
	maxCount := 0
	for _, entry := range s.Analytics {
		if entry.Count > maxCount {
			maxCount = entry.Count
		}
	}
	if maxCount == 0 {
		return NoticeDateStyle.Render("데이터 없음")
	}

	barWidth := width - 24
	if barWidth < 10 {
		barWidth = 10
	}

	var sb strings.Builder
	for _, entry := range s.Analytics {
		bar := strings.Repeat("█", entry.Count*barWidth/maxCount)
		sb.WriteString(fmt.Sprintf("%-8s %s %d\n", entry.Category, AnalyticsBarStyle.Render(bar), entry.Count))
	}
	return sb.String()
}
