package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"chat/internal/models"
)

// modelItem adapts a catalog entry to the bubbles list.
type modelItem struct {
	model models.Model
}

func (i modelItem) Title() string       { return i.model.Name }
func (i modelItem) Description() string { return i.model.Description }
func (i modelItem) FilterValue() string { return i.model.Name }

// modelSelector is the modal list shown on Ctrl+S.
type modelSelector struct {
	list list.Model
}

func newModelSelector(currentModel string, width, height int) *modelSelector {
	items := make([]list.Item, len(models.AvailableModels))
	selected := 0
	for i, m := range models.AvailableModels {
		items[i] = modelItem{model: m}
		if m.ID == currentModel {
			selected = i
		}
	}

	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	l := list.New(items, list.NewDefaultDelegate(), width-8, height-6)
	l.Title = "Select a model"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Select(selected)

	return &modelSelector{list: l}
}

// updateSelector routes input to the modal selector until it closes.
func (m *model) updateSelector(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatResponseMsg:
		// An in-flight reply landing while the selector is open must
		// still reach the transcript.
		m.handleChatResponse(msg)
		return m, nil

	case spinner.TickMsg:
		// Keep the tick chain alive so the thinking indicator still
		// animates after the selector closes.
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.selector.list.SetSize(msg.Width-8, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			m.selector = nil
			return m, nil

		case tea.KeyEnter:
			if item, ok := m.selector.list.SelectedItem().(modelItem); ok {
				m.agent.SetModel(item.model.ID)
				m.addNotice(fmt.Sprintf("Switched to model: %s", item.model.Name))
				m.viewport.SetContent(m.renderConversation())
				m.viewport.GotoBottom()
			}
			m.selector = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.selector.list, cmd = m.selector.list.Update(msg)
	return m, cmd
}

func (s *modelSelector) view() string {
	return selectorStyle.Render(s.list.View())
}
