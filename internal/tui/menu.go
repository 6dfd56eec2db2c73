package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const menuExit = "exit"

// MenuEntry opens a screen from the main menu.
type MenuEntry struct {
	Option
	Open func() Screen
}

// MenuScreen is the first screen: a list of management screens.
type MenuScreen struct {
	entries map[string]MenuEntry
	list    optionList
}

func NewMenuScreen(entries ...MenuEntry) *MenuScreen {
	m := &MenuScreen{entries: make(map[string]MenuEntry, len(entries))}
	for _, e := range entries {
		m.entries[e.ID] = e
		m.list.options = append(m.list.options, e.Option)
	}
	m.list.options = append(m.list.options, Option{ID: menuExit, Label: "Exit"})
	return m
}

func (m *MenuScreen) Init() tea.Cmd      { return nil }
func (m *MenuScreen) Title() string      { return "Main Menu" }
func (m *MenuScreen) ActiveModal() Modal { return nil }

func (m *MenuScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	if key.Matches(km, keyQuit) {
		return m, nil, true
	}
	opt, chosen := m.list.handle(km)
	if !chosen {
		return m, nil, false
	}
	if opt.ID == menuExit {
		// popping the last screen ends the program
		return m, nil, true
	}
	entry, ok := m.entries[opt.ID]
	if !ok || entry.Open == nil {
		return m, nil, false
	}
	screen := entry.Open()
	return m, func() tea.Msg { return PushScreenMsg{Screen: screen} }, false
}

func (m *MenuScreen) View(width, height int) string {
	card := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("R-Type Admin Panel"),
		"",
		m.list.view(),
	)
	return lipgloss.Place(max(1, width), max(1, height), lipgloss.Center, lipgloss.Center, card)
}

func (m *MenuScreen) Help() []key.Binding {
	return []key.Binding{keyUp, keyDown, keySelect, keyQuit}
}
