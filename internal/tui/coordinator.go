package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// modalDismissedMsg carries a modal's answer back through the event loop to
// the screen that opened it.
type modalDismissedMsg struct {
	owner  string
	token  string
	result ModalResult
}

// Coordinator gives a screen at most one modal at a time. Open registers a
// continuation; the continuation runs when the dismissal message comes back
// round the event loop, so nothing blocks while the operator thinks.
//
// The pending token is held from Open until Resume, which also covers the
// gap between dismissal and delivery of the result.
type Coordinator struct {
	owner string
	log   *slog.Logger
	modal Modal
	token string
	then  func(ModalResult) tea.Cmd
}

func NewCoordinator(owner string, log *slog.Logger) *Coordinator {
	if log == nil {
		log = slog.Default()
	}
	return &Coordinator{owner: owner, log: log}
}

// Open shows m and arranges for then to receive its result. Opening a second
// modal before the first resolves is a programming error.
func (c *Coordinator) Open(m Modal, then func(ModalResult) tea.Cmd) tea.Cmd {
	if c.token != "" {
		panic(fmt.Sprintf("tui: screen %q opened a modal while another is pending", c.owner))
	}
	c.modal = m
	c.then = then
	c.token = uuid.NewString()
	c.log.Debug("modal opened", slog.String("screen", c.owner), slog.String("token", c.token))
	return m.Init()
}

// Active returns the modal currently on screen, or nil.
func (c *Coordinator) Active() Modal { return c.modal }

// Pending reports whether a modal is open or its result is still in flight.
func (c *Coordinator) Pending() bool { return c.token != "" }

// Update feeds msg to the active modal. When the modal is dismissed it is
// taken off screen and a command delivering its result is returned.
func (c *Coordinator) Update(msg tea.Msg) tea.Cmd {
	if c.modal == nil {
		return nil
	}
	cmd, result, done := c.modal.Update(msg)
	if !done {
		return cmd
	}
	c.modal = nil
	dismissed := modalDismissedMsg{owner: c.owner, token: c.token, result: result}
	return tea.Batch(cmd, func() tea.Msg { return dismissed })
}

// Resume consumes a dismissal addressed to this coordinator and runs the
// continuation. It reports false for messages that belong elsewhere or were
// already consumed.
func (c *Coordinator) Resume(msg modalDismissedMsg) (tea.Cmd, bool) {
	if c.token == "" || msg.owner != c.owner || msg.token != c.token {
		return nil, false
	}
	then := c.then
	c.token, c.then = "", nil
	c.log.Debug("modal resolved",
		slog.String("screen", c.owner),
		slog.String("token", msg.token),
		slog.Bool("cancelled", msg.result.IsCancelled()),
		slog.String("action", msg.result.Action))
	if then == nil {
		return nil, true
	}
	return then(msg.result), true
}
