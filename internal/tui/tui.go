// Package tui is the terminal chat interface in front of one agent.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"chat/internal/agent"
	"chat/internal/config"
)

type (
	messageType int
	message     struct {
		mType   messageType
		content string
		isError bool
	}
)

const (
	userMessage messageType = iota
	assistantMessage
	noticeMessage
)

// chatResponseMsg carries the agent's reply back into the update loop.
type chatResponseMsg struct {
	content string
	isError bool
}

type model struct {
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	agent agent.Agent
	cfg   *config.Config

	renderer *glamour.TermRenderer

	messages      []message
	showSpinner   bool
	width, height int

	selector *modelSelector

	err error
}

// InitialModel builds the TUI model for the given config and agent.
func InitialModel(cfg *config.Config, ag agent.Agent) *model {
	ta := textarea.New()
	ta.Placeholder = "What would you like to know?"
	ta.Focus()
	ta.SetWidth(80)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	vp := viewport.New(80, 20)

	m := &model{
		textarea: ta,
		viewport: vp,
		spinner:  s,
		agent:    ag,
		cfg:      cfg,
		renderer: newMarkdownRenderer(80),
	}
	m.viewport.SetContent(m.renderConversation())
	return m
}

// newMarkdownRenderer creates a glamour renderer wrapped at width. A nil
// renderer is fine; markdown then falls through unrendered.
func newMarkdownRenderer(width int) *glamour.TermRenderer {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return renderer
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The model selector is modal: while open it sees all input.
	if m.selector != nil {
		return m.updateSelector(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		sCmd  tea.Cmd
	)

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	m.spinner, sCmd = m.spinner.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.width
		m.viewport.Height = m.height - m.textarea.Height() - lipgloss.Height(m.statusBarView())
		m.textarea.SetWidth(m.width)
		m.renderer = newMarkdownRenderer(max(20, m.width-8))
		m.viewport.SetContent(m.renderConversation())
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyCtrlR:
			m.agent.ClearHistory()
			m.messages = nil
			m.addNotice("Chat history cleared.")
			m.viewport.SetContent(m.renderConversation())
			return m, nil

		case tea.KeyCtrlS:
			m.selector = newModelSelector(m.agent.Model(), m.width, m.height)
			return m, nil

		case tea.KeyEnter:
			return m.sendMessage(sCmd)
		}

	case chatResponseMsg:
		m.handleChatResponse(msg)
		return m, nil

	case error:
		m.err = msg
		return m, nil
	}

	return m, tea.Batch(tiCmd, vpCmd, sCmd)
}

// sendMessage forwards the textarea content to the agent as one turn.
func (m *model) sendMessage(sCmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.showSpinner {
		// One in-flight request at a time.
		return m, nil
	}

	userInput := strings.TrimSpace(m.textarea.Value())
	if userInput == "" {
		return m, nil
	}

	m.messages = append(m.messages, message{mType: userMessage, content: userInput})
	m.viewport.SetContent(m.renderConversation())
	m.viewport.GotoBottom()
	m.textarea.Reset()
	m.textarea.Blur()
	m.showSpinner = true

	ag := m.agent
	return m, tea.Batch(sCmd, func() tea.Msg {
		response, err := ag.Chat(context.Background(), userInput)
		if err != nil {
			return chatResponseMsg{content: response, isError: true}
		}
		return chatResponseMsg{content: response}
	})
}

// handleChatResponse folds the agent's reply into the transcript.
func (m *model) handleChatResponse(msg chatResponseMsg) {
	m.showSpinner = false
	m.textarea.Focus()

	mType := assistantMessage
	if msg.isError {
		mType = noticeMessage
	}
	m.messages = append(m.messages, message{mType: mType, content: msg.content, isError: msg.isError})
	m.viewport.SetContent(m.renderConversation())
	m.viewport.GotoBottom()
}

// addNotice appends a system notice to the transcript.
func (m *model) addNotice(text string) {
	m.messages = append(m.messages, message{mType: noticeMessage, content: text})
}

func (m *model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.selector != nil {
		return m.selector.view()
	}

	var taView string
	if m.showSpinner {
		thinking := m.spinner.View() + " Thinking..."
		taView = lipgloss.NewStyle().
			Width(m.width).
			Height(m.textarea.Height()).
			Align(lipgloss.Center, lipgloss.Center).
			Render(thinking)
	} else {
		taView = m.textarea.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewport.View(),
		taView,
		m.statusBarView(),
	)
}

// Start runs the chat program until the user quits.
func Start(cfg *config.Config, ag agent.Agent) error {
	p := tea.NewProgram(InitialModel(cfg, ag), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run chat UI: %w", err)
	}
	return nil
}
