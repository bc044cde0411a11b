package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chat/internal/models"
)

// renderConversation renders all messages in the transcript.
func (m *model) renderConversation() string {
	var blocks []string

	if len(m.messages) == 0 {
		blocks = append(blocks, m.renderWelcomeHeader(), "")
	}

	for _, msg := range m.messages {
		switch msg.mType {
		case userMessage:
			blocks = append(blocks, m.renderUserMessage(msg))
		case assistantMessage:
			blocks = append(blocks, m.renderAssistantMessage(msg))
		case noticeMessage:
			blocks = append(blocks, m.renderNotice(msg))
		}
	}

	return strings.Join(blocks, "\n")
}

// renderUserMessage renders a user turn.
func (m *model) renderUserMessage(msg message) string {
	header := labelStyle.
		Foreground(primaryColor).
		Render(userIcon + " You")

	return cardStyle.
		BorderForeground(primaryColor).
		Width(m.cardWidth()).
		Render(header + "\n" + msg.content)
}

// renderAssistantMessage renders an assistant turn as markdown.
func (m *model) renderAssistantMessage(msg message) string {
	header := labelStyle.
		Foreground(secondaryColor).
		Render(assistantIcon + " Assistant")

	return cardStyle.
		BorderForeground(secondaryColor).
		Width(m.cardWidth()).
		Render(header + "\n" + m.renderMarkdown(msg.content))
}

// renderNotice renders system notices and failure replies.
func (m *model) renderNotice(msg message) string {
	style := noticeStyle
	if msg.isError {
		style = errorStyle
	}
	return style.Width(m.cardWidth()).Render(msg.content)
}

// renderMarkdown renders markdown content, falling back to the raw text
// when no renderer is available.
func (m *model) renderMarkdown(content string) string {
	if m.renderer == nil {
		return content
	}

	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// renderWelcomeHeader renders the empty-transcript greeting.
func (m *model) renderWelcomeHeader() string {
	title := m.cfg.App.Title
	if m.cfg.App.Icon != "" {
		title = m.cfg.App.Icon + " " + title
	}

	header := welcomeStyle.Render(title)
	hint := noticeStyle.Render("Type a message and press Enter. Ctrl+R clears the chat, Ctrl+S changes the model.")
	return lipgloss.JoinVertical(lipgloss.Left, header, hint)
}

// statusBarView renders the bottom status bar.
func (m *model) statusBarView() string {
	modelInfo := fmt.Sprintf("Model: %s", models.DisplayName(m.agent.Model()))
	turnInfo := fmt.Sprintf("Turns: %d", len(m.agent.History()))
	keyInfo := "Enter send | Ctrl+R clear | Ctrl+S model | Esc quit"

	status := lipgloss.JoinHorizontal(
		lipgloss.Top,
		statusItemStyle.Render(modelInfo),
		statusItemStyle.Render(turnInfo),
		statusItemStyle.Render(keyInfo),
	)

	return statusBarStyle.Width(m.width).Render(status)
}

// cardWidth is the usable width for message cards.
func (m *model) cardWidth() int {
	if m.viewport.Width <= 4 {
		return 76
	}
	return m.viewport.Width - 4
}
