package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ActionModal offers a fixed list of actions for one record.
type ActionModal struct {
	title string
	list  optionList
}

func NewActionModal(title string, options ...Option) *ActionModal {
	return &ActionModal{title: title, list: optionList{options: options}}
}

func (m *ActionModal) Init() tea.Cmd { return nil }

func (m *ActionModal) Update(msg tea.Msg) (tea.Cmd, ModalResult, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, ModalResult{}, false
	}
	if key.Matches(km, keyCancel) {
		return nil, Cancelled(), true
	}
	if opt, chosen := m.list.handle(km); chosen {
		return nil, Chose(opt.ID), true
	}
	return nil, ModalResult{}, false
}

func (m *ActionModal) View() string {
	return titleStyle.Render(m.title) + "\n\n" + m.list.view()
}

func (m *ActionModal) Help() []key.Binding {
	return []key.Binding{keyUp, keyDown, keyConfirm, keyCancel}
}
