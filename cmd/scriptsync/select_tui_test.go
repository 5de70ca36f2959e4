package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptsmith/scriptsync/internal/sync"
)

func testItems() []sync.Item {
	return []sync.Item{
		{Name: "Weather", Class: sync.ClassNew, Reason: "not present locally"},
		{Name: "Backup", Class: sync.ClassUpdate, Reason: "remote newer version"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelectModel_EverythingPreselected(t *testing.T) {
	m := newSelectModel("pull", testItems())
	assert.Equal(t, []bool{true, true}, m.checked)
}

func TestSelectModel_ToggleAndNavigate(t *testing.T) {
	m := newSelectModel("pull", testItems())

	next, _ := m.Update(keyMsg(" "))
	m = next.(selectModel)
	assert.Equal(t, []bool{false, true}, m.checked)

	next, _ = m.Update(keyMsg("j"))
	m = next.(selectModel)
	assert.Equal(t, 1, m.cursor)

	// cursor clamps at the end
	next, _ = m.Update(keyMsg("j"))
	m = next.(selectModel)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(keyMsg(" "))
	m = next.(selectModel)
	assert.Equal(t, []bool{false, false}, m.checked)

	// a re-selects everything once nothing is checked
	next, _ = m.Update(keyMsg("a"))
	m = next.(selectModel)
	assert.Equal(t, []bool{true, true}, m.checked)
}

func TestSelectModel_Abort(t *testing.T) {
	m := newSelectModel("push", testItems())

	next, cmd := m.Update(keyMsg("q"))
	m = next.(selectModel)
	assert.True(t, m.aborted)
	require.NotNil(t, cmd)
}

func TestSelectModel_ViewListsItems(t *testing.T) {
	m := newSelectModel("pull", testItems())
	view := m.View()

	assert.Contains(t, view, "Weather")
	assert.Contains(t, view, "Backup")
	assert.Contains(t, view, "select scripts to pull")
}
