package tui

import "github.com/charmbracelet/bubbles/key"

var (
	keyForceQuit = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	keyBack      = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "back"))
	keyQuit      = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	keyRefresh   = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh"))
	keyActivate  = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "actions"))
	keySelect    = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select"))
	keyAddBan    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add ban"))
	keyDelete    = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))

	keyUp      = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	keyDown    = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	keyConfirm = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm"))
	keyCancel  = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	keyNext    = key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field"))
	keyPrev    = key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field"))
)
