package tui

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rtype/rtypeadmin/internal/database/repository"
)

func NewScoresScreen(ctx context.Context, store Store, log *slog.Logger) *TableScreen[repository.Score] {
	kind := Kind[repository.Score]{
		ID:    "scores",
		Title: "Scores Management",
		Noun:  "scores",
		Hint:  "Select a row and press 'd' to delete | Highest score at top",
		Columns: []table.Column{
			{Title: "ID", Width: 6},
			{Title: "Player", Width: 24},
			{Title: "Score", Width: 10},
		},
		Row: func(s repository.Score) table.Row {
			return table.Row{strconv.FormatInt(s.ID, 10), s.PlayerName, strconv.FormatInt(s.Score, 10)}
		},
		Key:  func(s repository.Score) int64 { return s.ID },
		List: store.ListScores,
		Sort: func(scores []repository.Score) {
			slices.SortStableFunc(scores, func(a, b repository.Score) int { return cmp.Compare(b.Score, a.Score) })
		},
	}
	kind.Commands = []Command[repository.Score]{{
		Binding: keyDelete,
		Run: func(s *TableScreen[repository.Score]) tea.Cmd {
			sc, ok := s.Selected()
			if !ok {
				return Notify(LevelWarning, "Please select a score to delete!")
			}
			return s.Mutate(deleteScore(store, sc))
		},
	}}
	return NewTableScreen(ctx, kind, log)
}

func deleteScore(store Store, sc repository.Score) Mutation {
	return Mutation{
		Name:    "delete score",
		Run:     func(ctx context.Context) error { return store.DeleteScore(ctx, sc.ID) },
		Success: func() Notice { return Notice{Level: LevelInfo, Text: fmt.Sprintf("Score deleted for %s!", sc.PlayerName)} },
		Failure: func(error) Notice { return Notice{Level: LevelError, Text: "Failed to delete score!"} },
		Reload:  true,
	}
}
