package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

// NoticeLevel is the severity of a transient notification.
type NoticeLevel int

const (
	LevelInfo NoticeLevel = iota
	LevelSuccess
	LevelWarning
	LevelError
)

func (l NoticeLevel) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a transient, non-blocking message for the operator.
type Notice struct {
	Level NoticeLevel
	Text  string
}

type NoticeMsg Notice

type noticeExpiredMsg struct {
	id string
}

type autoRefreshMsg struct{}

// Notify returns a command that shows a notice in the status bar.
func Notify(level NoticeLevel, format string, args ...any) tea.Cmd {
	n := Notice{Level: level, Text: fmt.Sprintf(format, args...)}
	return func() tea.Msg { return NoticeMsg(n) }
}

func noticeCmd(n Notice) tea.Cmd {
	if n.Text == "" {
		return nil
	}
	return func() tea.Msg { return NoticeMsg(n) }
}
