package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rtype/rtypeadmin/internal/database/repository"
)

func NewBansScreen(ctx context.Context, store Store, log *slog.Logger) *TableScreen[repository.Ban] {
	kind := Kind[repository.Ban]{
		ID:    "bans",
		Title: "Bans Management",
		Noun:  "bans",
		Hint:  "Press enter on a row for actions | Press 'a' to add ban",
		Columns: []table.Column{
			{Title: "ID", Width: 6},
			{Title: "IP Address", Width: 18},
			{Title: "Banned At", Width: 20},
			{Title: "Reason", Width: 36},
		},
		Row: func(b repository.Ban) table.Row {
			return table.Row{strconv.FormatInt(b.ID, 10), b.IPAddress, b.BannedAt, b.Reason}
		},
		Key:          func(b repository.Ban) int64 { return b.ID },
		List:         store.ListBans,
		ActivateHelp: keyActivate,
	}
	kind.Activate = func(s *TableScreen[repository.Ban], b repository.Ban) tea.Cmd {
		modal := NewActionModal("Actions for IP: "+b.IPAddress,
			Option{ID: actionUnban, Label: "Unban IP"},
			Option{ID: actionCancel, Label: "Cancel"},
		)
		return s.Modals().Open(modal, func(res ModalResult) tea.Cmd {
			if res.IsCancelled() || res.Action != actionUnban {
				return nil
			}
			return s.Mutate(unban(store, b))
		})
	}
	kind.Commands = []Command[repository.Ban]{{
		Binding: keyAddBan,
		Run: func(s *TableScreen[repository.Ban]) tea.Cmd {
			return s.Modals().Open(NewBanInputModal(), func(res ModalResult) tea.Cmd {
				if res.IsCancelled() {
					return nil
				}
				return s.Mutate(addBan(store, res.Fields[FieldIP], res.Fields[FieldReason]))
			})
		},
	}}
	return NewTableScreen(ctx, kind, log)
}

func unban(store Store, b repository.Ban) Mutation {
	return Mutation{
		Name:    "unban",
		Run:     func(ctx context.Context) error { return store.DeleteBan(ctx, b.ID) },
		Success: func() Notice { return Notice{Level: LevelInfo, Text: fmt.Sprintf("IP %s has been unbanned!", b.IPAddress)} },
		Failure: func(error) Notice { return Notice{Level: LevelError, Text: "Failed to unban IP!"} },
		Reload:  true,
	}
}

// addBan is not retried on failure; the operator can press a again.
func addBan(store Store, ip, reason string) Mutation {
	return Mutation{
		Name:    "add ban",
		Run:     func(ctx context.Context) error { return store.InsertBan(ctx, ip, reason) },
		Success: func() Notice { return Notice{Level: LevelWarning, Text: fmt.Sprintf("IP %s has been banned!", ip)} },
		Failure: func(error) Notice {
			return Notice{Level: LevelError, Text: fmt.Sprintf("IP %s is already banned or invalid!", ip)}
		},
		Reload: true,
	}
}
