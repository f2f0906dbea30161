// Package ui implements the terminal front end: a chat pane driven by the
// assistant session on the left and the notices/policy dashboard on the
// right.
package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	assistant "github.com/techcorp/hrmate/internal/assistant/models"
	"github.com/techcorp/hrmate/internal/assistant/toolset"
	"github.com/techcorp/hrmate/internal/store"
	"github.com/techcorp/hrmate/internal/ui/models"
	"github.com/techcorp/hrmate/internal/ui/services"
	"github.com/techcorp/hrmate/internal/ui/views"
)

// Submitter produces a structured answer for a user message. It is the
// only seam between the UI and the assistant session.
type Submitter interface {
	Submit(ctx context.Context, userText string) assistant.StructuredAnswer
}

type answerMsg struct {
	answer assistant.StructuredAnswer
}

type policyOpenedMsg struct {
	policyID string
}

type draftReadyMsg struct {
	draft toolset.DraftLeave
}

// Model is the root Bubble Tea model.
type Model struct {
	state    models.State
	session  Submitter
	store    *store.Store
	notifier *ChannelNotifier
	renderer services.MarkdownRenderer
}

func NewModel(session Submitter, s *store.Store, notifier *ChannelNotifier, modelName string) Model {
	input := textinput.New()
	input.Placeholder = "궁금한 내용을 입력하세요..."
	input.Focus()
	input.CharLimit = 500

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	state := models.State{
		Input:        input,
		Viewport:     viewport.New(0, 0),
		Spinner:      spin,
		CurrentModel: modelName,
		Notices:      s.Notices(),
		Analytics:    s.Analytics(),
		Messages: []models.Message{
			{
				Role: "model",
				Answer: &assistant.StructuredAnswer{
					Summary: "안녕하세요! TechCorp HR Mate입니다. 연차, 규정, 복지 등 무엇이든 물어보세요. 😊",
					Suggestions: []string{
						"내 연차 잔여일 알려줘",
						"경조사비 지원 규정",
						"법인카드 식대 한도",
					},
				},
			},
		},
	}

	return Model{
		state:    state,
		session:  session,
		store:    s,
		notifier: notifier,
		renderer: services.NewGlamourRenderer(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.state.Spinner.Tick,
		m.listenPolicyOpened(),
		m.listenDraftReady(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.state.SelectedPolicy != nil {
				m.state.SelectedPolicy = nil
				return m, nil
			}
		case "enter":
			if m.state.Busy {
				return m, nil
			}
			text := strings.TrimSpace(m.state.Input.Value())
			if text == "" {
				return m, nil
			}
			m.state.Input.Reset()
			m.state.Messages = append(m.state.Messages, models.Message{Role: "user", Content: text})
			m.state.Busy = true
			m.state.StatusPhase = "thinking"
			m.state.StatusMessage = "답변 생성 중..."
			m.refreshViewport()
			return m, tea.Batch(m.submit(text), m.state.Spinner.Tick)
		}

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		chatWidth := int(float64(msg.Width) * 0.45)
		if chatWidth < 40 {
			chatWidth = 40
		}
		m.state.Viewport.Width = chatWidth
		m.state.Viewport.Height = msg.Height - 5
		m.refreshViewport()

	case spinner.TickMsg:
		if m.state.Busy {
			var cmd tea.Cmd
			m.state.Spinner, cmd = m.state.Spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case answerMsg:
		m.state.Busy = false
		m.state.StatusPhase = ""
		m.state.StatusMessage = ""
		answer := msg.answer
		m.state.Messages = append(m.state.Messages, models.Message{Role: "model", Answer: &answer})
		m.refreshViewport()

	case policyOpenedMsg:
		if policy, ok := m.store.FindPolicy(msg.policyID); ok {
			m.state.SelectedPolicy = &policy
		}
		cmds = append(cmds, m.listenPolicyOpened())

	case draftReadyMsg:
		draft := msg.draft
		m.state.Messages = append(m.state.Messages, models.Message{Role: "system", Draft: &draft})
		m.refreshViewport()
		cmds = append(cmds, m.listenDraftReady())
	}

	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	cmds = append(cmds, cmd)

	m.state.Viewport, cmd = m.state.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.state.Width == 0 {
		return "로딩 중..."
	}
	return views.RenderRoot(m.state, m.renderer)
}

// submit runs the session off the update loop and reports back.
func (m Model) submit(text string) tea.Cmd {
	return func() tea.Msg {
		answer := m.session.Submit(context.Background(), text)
		return answerMsg{answer: answer}
	}
}

func (m Model) listenPolicyOpened() tea.Cmd {
	return func() tea.Msg {
		return policyOpenedMsg{policyID: <-m.notifier.policyOpened}
	}
}

func (m Model) listenDraftReady() tea.Cmd {
	return func() tea.Msg {
		return draftReadyMsg{draft: <-m.notifier.draftReady}
	}
}

func (m *Model) refreshViewport() {
	m.state.Viewport.SetContent(views.FormatChatContent(m.state.Messages, m.state.Viewport.Width, m.renderer))
	m.state.Viewport.GotoBottom()
}
