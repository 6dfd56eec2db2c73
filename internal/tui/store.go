package tui

import (
	"context"

	"github.com/rtype/rtypeadmin/internal/database/repository"
)

// Store is the record store the screens read and write. A nil error is the
// success signal; failures are expected to be logged by the implementation.
type Store interface {
	ListPlayers(ctx context.Context) ([]repository.Player, error)
	PlayerByID(ctx context.Context, id int64) (*repository.Player, error)
	DeletePlayer(ctx context.Context, id int64) error
	ListBans(ctx context.Context) ([]repository.Ban, error)
	InsertBan(ctx context.Context, ip, reason string) error
	DeleteBan(ctx context.Context, id int64) error
	ListScores(ctx context.Context) ([]repository.Score, error)
	DeleteScore(ctx context.Context, id int64) error
}
