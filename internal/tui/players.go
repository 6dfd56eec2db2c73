package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rtype/rtypeadmin/internal/database/repository"
)

const (
	actionBan    = "ban"
	actionDelete = "delete"
	actionUnban  = "unban"
	actionCancel = "cancel"
)

// PanelBanReason is recorded for bans issued from the players screen.
const PanelBanReason = "Banned via admin panel"

func NewPlayersScreen(ctx context.Context, store Store, log *slog.Logger) *TableScreen[repository.Player] {
	kind := Kind[repository.Player]{
		ID:    "players",
		Title: "Players Management",
		Noun:  "players",
		Hint:  "Press enter on a row to open actions menu",
		Columns: []table.Column{
			{Title: "ID", Width: 6},
			{Title: "Username", Width: 20},
			{Title: "IP Address", Width: 18},
			{Title: "Created At", Width: 20},
			{Title: "Status", Width: 8},
		},
		Row: func(p repository.Player) table.Row {
			return table.Row{strconv.FormatInt(p.ID, 10), p.Username, p.IPAddress, p.CreatedAt, p.Status()}
		},
		Key:          func(p repository.Player) int64 { return p.ID },
		List:         store.ListPlayers,
		ActivateHelp: keyActivate,
	}
	kind.Activate = func(s *TableScreen[repository.Player], p repository.Player) tea.Cmd {
		modal := NewActionModal("Actions for: "+p.Username,
			Option{ID: actionBan, Label: "Ban IP"},
			Option{ID: actionDelete, Label: "Delete player"},
			Option{ID: actionCancel, Label: "Cancel"},
		)
		return s.Modals().Open(modal, func(res ModalResult) tea.Cmd {
			if res.IsCancelled() {
				return nil
			}
			switch res.Action {
			case actionDelete:
				return s.Mutate(deletePlayer(store, p))
			case actionBan:
				return s.Mutate(banPlayer(store, p))
			}
			return nil
		})
	}
	return NewTableScreen(ctx, kind, log)
}

func deletePlayer(store Store, p repository.Player) Mutation {
	return Mutation{
		Name:    "delete player",
		Run:     func(ctx context.Context) error { return store.DeletePlayer(ctx, p.ID) },
		Success: func() Notice { return Notice{Level: LevelInfo, Text: fmt.Sprintf("Player %s deleted!", p.Username)} },
		Failure: func(error) Notice { return Notice{Level: LevelError, Text: "Failed to delete player!"} },
		Reload:  true,
	}
}

// banPlayer bans the address currently stored for p, which may differ from
// the one on screen. The players table is unaffected, so there is no reload.
func banPlayer(store Store, p repository.Player) Mutation {
	ip := p.IPAddress
	return Mutation{
		Name: "ban player",
		Run: func(ctx context.Context) error {
			current, err := store.PlayerByID(ctx, p.ID)
			if err != nil {
				return err
			}
			if current == nil {
				return fmt.Errorf("player %d: %w", p.ID, repository.ErrNotFound)
			}
			ip = current.IPAddress
			return store.InsertBan(ctx, ip, PanelBanReason)
		},
		Success: func() Notice {
			return Notice{Level: LevelWarning, Text: fmt.Sprintf("IP %s has been banned!", ip)}
		},
		Failure: func(err error) Notice {
			switch {
			case errors.Is(err, repository.ErrAlreadyBanned):
				return Notice{Level: LevelWarning, Text: fmt.Sprintf("IP %s is already banned!", ip)}
			case errors.Is(err, repository.ErrNotFound):
				return Notice{Level: LevelError, Text: fmt.Sprintf("Player %s no longer exists!", p.Username)}
			}
			return Notice{Level: LevelError, Text: fmt.Sprintf("Failed to ban IP %s!", ip)}
		},
	}
}
