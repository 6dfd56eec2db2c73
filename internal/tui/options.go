package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Option is one entry of a vertical choice list.
type Option struct {
	ID    string
	Label string
}

// optionList is the cursor-over-options state shared by the menu and the
// action modal.
type optionList struct {
	options []Option
	cursor  int
}

// handle moves the cursor or reports the chosen option on enter.
func (l *optionList) handle(msg tea.KeyMsg) (Option, bool) {
	switch {
	case key.Matches(msg, keyUp):
		if l.cursor > 0 {
			l.cursor--
		}
	case key.Matches(msg, keyDown):
		if l.cursor < len(l.options)-1 {
			l.cursor++
		}
	case key.Matches(msg, keyConfirm):
		if len(l.options) > 0 {
			return l.options[l.cursor], true
		}
	}
	return Option{}, false
}

func (l optionList) view() string {
	lines := make([]string, 0, len(l.options))
	for i, opt := range l.options {
		if i == l.cursor {
			lines = append(lines, cursorStyle.Render("▶ "+opt.Label))
			continue
		}
		lines = append(lines, "  "+opt.Label)
	}
	return strings.Join(lines, "\n")
}
