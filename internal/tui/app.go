package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Options tunes the shell.
type Options struct {
	NoticeTTL   time.Duration
	AutoRefresh time.Duration
	Logger      *slog.Logger
}

type activeNotice struct {
	id string
	Notice
}

// App is the root model: a stack of screens, the transient notice and the
// chrome around them.
type App struct {
	ctx      context.Context
	store    Store
	opts     Options
	log      *slog.Logger
	screens  ScreenStack
	notice   *activeNotice
	help     help.Model
	width    int
	height   int
	quitting bool
}

func New(ctx context.Context, store Store, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.NoticeTTL <= 0 {
		opts.NoticeTTL = 3 * time.Second
	}
	a := &App{
		ctx:    ctx,
		store:  store,
		opts:   opts,
		log:    opts.Logger,
		help:   help.New(),
		width:  100,
		height: 30,
	}
	a.screens.Push(NewMenuScreen(
		MenuEntry{Option: Option{ID: "players", Label: "Manage Players"}, Open: func() Screen {
			return NewPlayersScreen(a.ctx, a.store, a.log)
		}},
		MenuEntry{Option: Option{ID: "bans", Label: "Manage Bans"}, Open: func() Screen {
			return NewBansScreen(a.ctx, a.store, a.log)
		}},
		MenuEntry{Option: Option{ID: "scores", Label: "Manage Scores"}, Open: func() Screen {
			return NewScoresScreen(a.ctx, a.store, a.log)
		}},
	))
	return a
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{Notify(LevelInfo, "Connected to database!")}
	if top := a.screens.Top(); top != nil {
		cmds = append(cmds, top.Init())
	}
	if a.opts.AutoRefresh > 0 {
		cmds = append(cmds, a.refreshTick())
	}
	return tea.Batch(cmds...)
}

// Top returns the screen currently receiving input.
func (a *App) Top() Screen { return a.screens.Top() }

// Notice returns the notice on display, if any.
func (a *App) Notice() (Notice, bool) {
	if a.notice == nil {
		return Notice{}, false
	}
	return a.notice.Notice, true
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		return a, a.forward(a.bodySize())
	case tea.KeyMsg:
		if key.Matches(msg, keyForceQuit) {
			a.quitting = true
			return a, tea.Quit
		}
	case PushScreenMsg:
		if msg.Screen == nil {
			return a, nil
		}
		a.screens.Push(msg.Screen)
		a.log.Debug("screen pushed", slog.String("title", msg.Screen.Title()))
		return a, tea.Batch(a.forward(a.bodySize()), msg.Screen.Init())
	case PopScreenMsg:
		return a, a.pop()
	case NoticeMsg:
		id := uuid.NewString()
		a.notice = &activeNotice{id: id, Notice: Notice(msg)}
		return a, tea.Tick(a.opts.NoticeTTL, func(time.Time) tea.Msg { return noticeExpiredMsg{id: id} })
	case noticeExpiredMsg:
		if a.notice != nil && a.notice.id == msg.id {
			a.notice = nil
		}
		return a, nil
	case autoRefreshMsg:
		return a, tea.Batch(a.forward(msg), a.refreshTick())
	}
	return a, a.forward(msg)
}

func (a *App) forward(msg tea.Msg) tea.Cmd {
	top := a.screens.Top()
	if top == nil {
		return nil
	}
	next, cmd, pop := top.Update(msg)
	if pop {
		return tea.Batch(cmd, a.pop())
	}
	a.screens.Replace(next)
	return cmd
}

func (a *App) pop() tea.Cmd {
	if popped := a.screens.Pop(); popped != nil {
		a.log.Debug("screen popped", slog.String("title", popped.Title()))
	}
	if a.screens.Len() == 0 {
		a.quitting = true
		return tea.Quit
	}
	return a.forward(a.bodySize())
}

// bodySize is the area left to the top screen once the chrome is drawn.
func (a *App) bodySize() tea.WindowSizeMsg {
	width := max(1, a.width)
	top := a.screens.Top()
	if top == nil {
		return tea.WindowSizeMsg{Width: width, Height: max(1, a.height)}
	}
	chrome := lipgloss.Height(a.renderHeader(top)) + lipgloss.Height(a.renderNotice()) + lipgloss.Height(a.renderFooter(top))
	return tea.WindowSizeMsg{Width: width, Height: max(1, a.height-chrome)}
}

func (a *App) refreshTick() tea.Cmd {
	return tea.Tick(a.opts.AutoRefresh, func(time.Time) tea.Msg { return autoRefreshMsg{} })
}

func (a *App) View() string {
	if a.quitting {
		return "Goodbye\n"
	}
	top := a.screens.Top()
	if top == nil {
		return ""
	}
	size := a.bodySize()
	body := top.View(size.Width, size.Height)
	if m := top.ActiveModal(); m != nil {
		body = renderPopup(body, m.View(), size.Width, size.Height)
	}
	body = fitHeight(body, size.Height)
	return strings.Join([]string{a.renderHeader(top), body, a.renderNotice(), a.renderFooter(top)}, "\n")
}

func (a *App) renderHeader(top Screen) string {
	return headerStyle.Width(max(1, a.width)).Render("R-Type Admin · " + top.Title())
}

func (a *App) renderFooter(top Screen) string {
	return footerStyle.Width(max(1, a.width)).Render(a.help.ShortHelpView(top.Help()))
}

func (a *App) renderNotice() string {
	if a.notice == nil {
		return mutedStyle.Render(" ")
	}
	style, ok := noticeStyles[a.notice.Level]
	if !ok {
		style = noticeStyles[LevelInfo]
	}
	return style.Render(" " + a.notice.Text)
}
