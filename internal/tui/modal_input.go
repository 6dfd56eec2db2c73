package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rtype/rtypeadmin/internal/database/repository"
)

const (
	FieldIP     = "ip"
	FieldReason = "reason"
)

const (
	focusIP = iota
	focusReason
	focusSubmit
	focusCancel
	focusCount
)

// BanInputModal collects the address and reason for a new ban.
type BanInputModal struct {
	ip      textinput.Model
	reason  textinput.Model
	focus   int
	problem string
}

func NewBanInputModal() *BanInputModal {
	ip := textinput.New()
	ip.Placeholder = "IP Address (e.g., 192.168.0.1)"
	ip.Prompt = "IP     > "
	ip.CharLimit = 45
	reason := textinput.New()
	reason.Placeholder = "Reason (optional)"
	reason.Prompt = "Reason > "
	reason.CharLimit = 200
	return &BanInputModal{ip: ip, reason: reason}
}

func (m *BanInputModal) Init() tea.Cmd {
	return tea.Batch(m.ip.Focus(), textinput.Blink)
}

func (m *BanInputModal) Update(msg tea.Msg) (tea.Cmd, ModalResult, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg), ModalResult{}, false
	}
	switch {
	case key.Matches(km, keyCancel):
		return nil, Cancelled(), true
	case key.Matches(km, keyConfirm):
		if m.focus == focusCancel {
			return nil, Cancelled(), true
		}
		return m.submit()
	case key.Matches(km, keyNext):
		return m.setFocus((m.focus + 1) % focusCount), ModalResult{}, false
	case key.Matches(km, keyPrev):
		return m.setFocus((m.focus + focusCount - 1) % focusCount), ModalResult{}, false
	}
	return m.updateInputs(msg), ModalResult{}, false
}

// submit validates the form. A blank address keeps the modal open.
func (m *BanInputModal) submit() (tea.Cmd, ModalResult, bool) {
	ip := strings.TrimSpace(m.ip.Value())
	if ip == "" {
		m.problem = "IP address is required"
		return m.setFocus(focusIP), ModalResult{}, false
	}
	reason := strings.TrimSpace(m.reason.Value())
	if reason == "" {
		reason = repository.DefaultBanReason
	}
	return nil, Submitted(Fields{FieldIP: ip, FieldReason: reason}), true
}

func (m *BanInputModal) setFocus(f int) tea.Cmd {
	m.focus = f
	m.ip.Blur()
	m.reason.Blur()
	switch f {
	case focusIP:
		return m.ip.Focus()
	case focusReason:
		return m.reason.Focus()
	}
	return nil
}

func (m *BanInputModal) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusIP:
		m.ip, cmd = m.ip.Update(msg)
	case focusReason:
		m.reason, cmd = m.reason.Update(msg)
	}
	return cmd
}

func (m *BanInputModal) View() string {
	submit, cancel := buttonStyle, buttonStyle
	switch m.focus {
	case focusSubmit:
		submit = buttonFocusStyle
	case focusCancel:
		cancel = buttonFocusStyle
	}
	lines := []string{
		titleStyle.Render("Add New Ban"),
		"",
		m.ip.View(),
		m.reason.View(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, submit.Render("Add Ban"), "  ", cancel.Render("Cancel")),
	}
	if m.problem != "" {
		lines = append(lines, "", errorStyle.Render(m.problem))
	}
	return strings.Join(lines, "\n")
}

func (m *BanInputModal) Help() []key.Binding {
	return []key.Binding{keyNext, keyPrev, keyConfirm, keyCancel}
}
