package views

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("39")  // blue
	ColorAccent  = lipgloss.Color("135") // purple
	ColorMuted   = lipgloss.Color("241") // dim gray
	ColorWarn    = lipgloss.Color("203") // red

	UserMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Bold(true)

	AssistantLabelStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	SummaryCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	DraftCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)

	SuggestionStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	PolicyLinkStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(ColorMuted)

	StatusDefaultStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	StatusThinkingStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	StatusErrorStyle    = lipgloss.NewStyle().Foreground(ColorWarn)

	DashboardTitleStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Underline(true)

	NoticeImportantStyle = lipgloss.NewStyle().Foreground(ColorWarn).Bold(true)
	NoticeDateStyle      = lipgloss.NewStyle().Foreground(ColorMuted)

	AnalyticsBarStyle = lipgloss.NewStyle().Foreground(ColorPrimary)

	DashboardPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(ColorMuted).
				Padding(0, 1)
)
