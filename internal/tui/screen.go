package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is a full-terminal view on the navigation stack. Update returns
// pop=true when the screen wants to be removed.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (next Screen, cmd tea.Cmd, pop bool)
	View(width, height int) string
	Title() string
	// ActiveModal is drawn over the screen when non-nil.
	ActiveModal() Modal
	Help() []key.Binding
}

type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

// Replace swaps the top screen, used when Update hands back a new value.
func (s *ScreenStack) Replace(screen Screen) {
	if len(s.items) == 0 || screen == nil {
		return
	}
	s.items[len(s.items)-1] = screen
}

func (s ScreenStack) Len() int {
	return len(s.items)
}
