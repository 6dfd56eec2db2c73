package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Kind describes one record type for a TableScreen. Activate and Commands
// are optional.
type Kind[R any] struct {
	ID      string
	Title   string
	Noun    string
	Hint    string
	Columns []table.Column
	Row     func(R) table.Row
	Key     func(R) int64
	List    func(ctx context.Context) ([]R, error)
	// Sort orders a freshly listed snapshot in place.
	Sort func([]R)
	// Activate runs after a row has been selected with enter.
	Activate func(s *TableScreen[R], rec R) tea.Cmd
	// ActivateHelp describes enter in the footer.
	ActivateHelp key.Binding
	Commands     []Command[R]
}

// Command is an extra key bound on one kind of screen.
type Command[R any] struct {
	Binding key.Binding
	Run     func(s *TableScreen[R]) tea.Cmd
}

// Mutation is a store write issued by a screen. At most one runs per screen.
// Success and Failure are called after Run returns.
type Mutation struct {
	Name    string
	Run     func(ctx context.Context) error
	Success func() Notice
	Failure func(err error) Notice
	// Reload re-lists the table after a successful run.
	Reload bool
}

// selection is a row handle. It is only valid for the load generation it
// was taken in.
type selection struct {
	index      int
	id         int64
	generation int
}

type recordsLoadedMsg[R any] struct {
	owner    string
	seq      int
	records  []R
	err      error
	announce string
}

type mutationDoneMsg struct {
	owner  string
	name   string
	notice Notice
	reload bool
}

// TableScreen is a screen bound to one record kind: a table, a summary line
// and a coordinator for its modals.
type TableScreen[R any] struct {
	kind   Kind[R]
	ctx    context.Context
	log    *slog.Logger
	modals *Coordinator
	table  table.Model

	records    []R
	summary    string
	generation int
	selected   *selection
	loadSeq    int
	busy       string
	width      int
	height     int
}

func NewTableScreen[R any](ctx context.Context, kind Kind[R], log *slog.Logger) *TableScreen[R] {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("screen", kind.ID))
	keys := table.DefaultKeyMap()
	// d is a command key on some screens
	keys.HalfPageDown = key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "½ page down"))
	t := table.New(
		table.WithColumns(kind.Columns),
		table.WithFocused(true),
		table.WithKeyMap(keys),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(colorAccent).BorderForeground(colorMuted).BorderBottom(true)
	styles.Selected = styles.Selected.Bold(true).Foreground(colorBase).Background(colorFocus)
	t.SetStyles(styles)
	s := &TableScreen[R]{
		kind:   kind,
		ctx:    ctx,
		log:    log,
		modals: NewCoordinator(kind.ID, log),
		table:  t,
	}
	s.summary = s.summaryLine()
	return s
}

func (s *TableScreen[R]) Init() tea.Cmd { return s.Load("") }

func (s *TableScreen[R]) Title() string { return s.kind.Title }

func (s *TableScreen[R]) ActiveModal() Modal { return s.modals.Active() }

// Summary is the line shown under the table.
func (s *TableScreen[R]) Summary() string { return s.summary }

// Records is the snapshot currently displayed, in display order.
func (s *TableScreen[R]) Records() []R { return s.records }

// Rows is the table contents as rendered.
func (s *TableScreen[R]) Rows() []table.Row { return s.table.Rows() }

// Modals exposes the coordinator so kinds can open modals.
func (s *TableScreen[R]) Modals() *Coordinator { return s.modals }

// Busy reports whether a mutation is in flight.
func (s *TableScreen[R]) Busy() bool { return s.busy != "" }

// Load lists the kind from the store. announce, when set, is shown as a
// notice once the new snapshot is in place.
func (s *TableScreen[R]) Load(announce string) tea.Cmd {
	s.loadSeq++
	seq, owner, ctx, list := s.loadSeq, s.kind.ID, s.ctx, s.kind.List
	return func() tea.Msg {
		records, err := list(ctx)
		return recordsLoadedMsg[R]{owner: owner, seq: seq, records: records, err: err, announce: announce}
	}
}

// Selected returns the current selection if it is still valid.
func (s *TableScreen[R]) Selected() (R, bool) {
	var zero R
	if s.selected == nil || s.selected.generation != s.generation {
		return zero, false
	}
	if s.selected.index < 0 || s.selected.index >= len(s.records) {
		return zero, false
	}
	return s.records[s.selected.index], true
}

// SelectRow records row idx as the selection and runs the kind's
// activation, if any.
func (s *TableScreen[R]) SelectRow(idx int) tea.Cmd {
	if idx < 0 || idx >= len(s.records) {
		return nil
	}
	rec := s.records[idx]
	s.selected = &selection{index: idx, id: s.kind.Key(rec), generation: s.generation}
	if s.kind.Activate == nil {
		return nil
	}
	return s.kind.Activate(s, rec)
}

// Mutate runs m unless another mutation is still in flight.
func (s *TableScreen[R]) Mutate(m Mutation) tea.Cmd {
	if s.busy != "" {
		return s.waitNotice()
	}
	s.busy = m.Name
	owner, ctx := s.kind.ID, s.ctx
	return func() tea.Msg {
		done := mutationDoneMsg{owner: owner, name: m.Name}
		if err := m.Run(ctx); err != nil {
			done.notice = m.Failure(err)
			return done
		}
		done.notice = m.Success()
		done.reload = m.Reload
		return done
	}
}

func (s *TableScreen[R]) waitNotice() tea.Cmd {
	return Notify(LevelWarning, "Please wait, %s is still running", s.busy)
}

func (s *TableScreen[R]) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.resize(msg.Width, msg.Height)
		return s, nil, false
	case recordsLoadedMsg[R]:
		if msg.owner != s.kind.ID {
			return s, nil, false
		}
		return s, s.applyLoad(msg), false
	case mutationDoneMsg:
		if msg.owner != s.kind.ID {
			return s, nil, false
		}
		s.busy = ""
		if msg.reload {
			return s, tea.Batch(noticeCmd(msg.notice), s.Load("")), false
		}
		return s, noticeCmd(msg.notice), false
	case modalDismissedMsg:
		cmd, _ := s.modals.Resume(msg)
		return s, cmd, false
	case autoRefreshMsg:
		if s.modals.Pending() || s.busy != "" {
			return s, nil, false
		}
		return s, s.Load(""), false
	case tea.KeyMsg:
		if s.modals.Pending() {
			// keys between dismissal and resume are dropped
			return s, s.modals.Update(msg), false
		}
		return s.handleKey(msg)
	}
	if s.modals.Active() != nil {
		return s, s.modals.Update(msg), false
	}
	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd, false
}

func (s *TableScreen[R]) handleKey(msg tea.KeyMsg) (Screen, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keyBack):
		return s, nil, true
	case key.Matches(msg, keyRefresh):
		if s.busy != "" {
			return s, s.waitNotice(), false
		}
		return s, s.Load(fmt.Sprintf("%s list refreshed!", capitalize(s.kind.Noun))), false
	case key.Matches(msg, keyActivate):
		return s, s.SelectRow(s.table.Cursor()), false
	}
	for _, c := range s.kind.Commands {
		if key.Matches(msg, c.Binding) {
			return s, c.Run(s), false
		}
	}
	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd, false
}

// applyLoad replaces the snapshot wholesale. A failed or superseded load
// leaves the previous snapshot on screen.
func (s *TableScreen[R]) applyLoad(msg recordsLoadedMsg[R]) tea.Cmd {
	if msg.seq != s.loadSeq {
		return nil
	}
	if msg.err != nil {
		return Notify(LevelError, "Failed to load %s: %v", s.kind.Noun, msg.err)
	}
	records := msg.records
	if s.kind.Sort != nil {
		s.kind.Sort(records)
	}
	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, s.kind.Row(r))
	}
	s.table.SetRows(nil)
	s.table.SetRows(rows)
	switch c := s.table.Cursor(); {
	case c < 0:
		s.table.SetCursor(0)
	case c >= len(rows):
		s.table.SetCursor(len(rows) - 1)
	}
	s.records = records
	s.generation++
	s.selected = nil
	s.summary = s.summaryLine()
	if msg.announce == "" {
		return nil
	}
	return Notify(LevelSuccess, "%s", msg.announce)
}

func (s *TableScreen[R]) summaryLine() string {
	return fmt.Sprintf("Total %s: %d | %s", s.kind.Noun, len(s.records), s.kind.Hint)
}

func (s *TableScreen[R]) resize(width, height int) {
	s.width, s.height = width, height
	s.table.SetWidth(max(20, width-2))
	s.table.SetHeight(max(3, height-4))
}

func (s *TableScreen[R]) View(width, height int) string {
	title := titleStyle.Render(s.kind.Title)
	summary := summaryStyle.Width(max(1, width)).Render(s.summary)
	body := lipgloss.JoinVertical(lipgloss.Left, title, "", s.table.View())
	body = fitHeight(body, max(1, height-lipgloss.Height(summary)))
	return body + "\n" + summary
}

func (s *TableScreen[R]) Help() []key.Binding {
	if m := s.modals.Active(); m != nil {
		return m.Help()
	}
	enter := keySelect
	if s.kind.ActivateHelp.Enabled() && s.kind.ActivateHelp.Help().Key != "" {
		enter = s.kind.ActivateHelp
	}
	out := []key.Binding{keyUp, keyDown, enter}
	for _, c := range s.kind.Commands {
		out = append(out, c.Binding)
	}
	return append(out, keyRefresh, keyBack)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
