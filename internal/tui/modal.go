package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Modal is a transient overlay that owns input until it is dismissed.
// Update reports done once the operator has answered; result is only
// meaningful when done is true.
type Modal interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (cmd tea.Cmd, result ModalResult, done bool)
	View() string
	Help() []key.Binding
}

type ResultKind int

const (
	ResultCancelled ResultKind = iota
	ResultAction
	ResultFields
)

// Fields is the value bundle produced by an input modal.
type Fields map[string]string

// ModalResult is what a modal hands back to the screen that opened it.
type ModalResult struct {
	Kind   ResultKind
	Action string
	Fields Fields
}

// Cancelled is the sentinel for "operator aborted, take no action".
func Cancelled() ModalResult { return ModalResult{Kind: ResultCancelled} }

func Chose(action string) ModalResult { return ModalResult{Kind: ResultAction, Action: action} }

func Submitted(f Fields) ModalResult { return ModalResult{Kind: ResultFields, Fields: f} }

func (r ModalResult) IsCancelled() bool { return r.Kind == ResultCancelled }
