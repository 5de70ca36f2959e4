package main

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scriptsmith/scriptsync/internal/sync"
)

var (
	selTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	selCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	selCheckStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	selReasonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// selectModel is a checkbox list over the eligible scripts. Everything
// starts selected; the common case is confirming the whole batch.
type selectModel struct {
	action  string
	items   []sync.Item
	checked []bool
	cursor  int
	aborted bool
}

func newSelectModel(action string, items []sync.Item) selectModel {
	checked := make([]bool, len(items))
	for i := range checked {
		checked[i] = true
	}
	return selectModel{action: action, items: items, checked: checked}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.aborted = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case " ":
			m.checked[m.cursor] = !m.checked[m.cursor]
		case "a":
			all := true
			for _, c := range m.checked {
				if !c {
					all = false
					break
				}
			}
			for i := range m.checked {
				m.checked[i] = !all
			}
		case "enter":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder
	b.WriteString(selTitleStyle.Render(fmt.Sprintf("select scripts to %s", m.action)))
	b.WriteString("\n\n")

	for i, it := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = selCursorStyle.Render("> ")
		}
		box := "[ ]"
		if m.checked[i] {
			box = selCheckStyle.Render("[x]")
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, box, it.Name, selReasonStyle.Render(it.Reason)))
	}

	b.WriteString(selHelpStyle.Render("\nspace toggle · a all · enter confirm · q cancel"))
	b.WriteString("\n")
	return b.String()
}

func runSelectTUI(action string, items []sync.Item) ([]sync.Item, error) {
	model, err := tea.NewProgram(newSelectModel(action, items)).Run()
	if err != nil {
		return nil, fmt.Errorf("selection ui: %w", err)
	}

	m := model.(selectModel)
	if m.aborted {
		return nil, errors.New("selection cancelled")
	}

	var selected []sync.Item
	for i, it := range m.items {
		if m.checked[i] {
			selected = append(selected, it)
		}
	}
	return selected, nil
}
