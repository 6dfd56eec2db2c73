package repository

import (
	"context"
	"database/sql"
	"log/slog"
)

// Store groups the three repos behind the operations the console needs.
// Failures are logged here so callers only have to surface them.
type Store struct {
	Players *PlayerRepo
	Bans    *BanRepo
	Scores  *ScoreRepo
	log     *slog.Logger
}

func NewStore(db *sql.DB, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		Players: NewPlayerRepo(db),
		Bans:    NewBanRepo(db),
		Scores:  NewScoreRepo(db),
		log:     log.With(slog.String("component", "store")),
	}
}

func (s *Store) ListPlayers(ctx context.Context) ([]Player, error) {
	out, err := s.Players.List(ctx)
	return out, s.logErr("list players", err)
}

func (s *Store) PlayerByID(ctx context.Context, id int64) (*Player, error) {
	p, err := s.Players.Get(ctx, id)
	return p, s.logErr("get player", err, slog.Int64("id", id))
}

func (s *Store) DeletePlayer(ctx context.Context, id int64) error {
	return s.logErr("delete player", s.Players.Delete(ctx, id), slog.Int64("id", id))
}

func (s *Store) ListBans(ctx context.Context) ([]Ban, error) {
	out, err := s.Bans.List(ctx)
	return out, s.logErr("list bans", err)
}

func (s *Store) BanByID(ctx context.Context, id int64) (*Ban, error) {
	b, err := s.Bans.Get(ctx, id)
	return b, s.logErr("get ban", err, slog.Int64("id", id))
}

func (s *Store) InsertBan(ctx context.Context, ip, reason string) error {
	_, err := s.Bans.Insert(ctx, ip, reason)
	return s.logErr("insert ban", err, slog.String("ip", ip))
}

func (s *Store) DeleteBan(ctx context.Context, id int64) error {
	return s.logErr("delete ban", s.Bans.Delete(ctx, id), slog.Int64("id", id))
}

func (s *Store) ListScores(ctx context.Context) ([]Score, error) {
	out, err := s.Scores.List(ctx)
	return out, s.logErr("list scores", err)
}

func (s *Store) ScoreByID(ctx context.Context, id int64) (*Score, error) {
	sc, err := s.Scores.Get(ctx, id)
	return sc, s.logErr("get score", err, slog.Int64("id", id))
}

func (s *Store) DeleteScore(ctx context.Context, id int64) error {
	return s.logErr("delete score", s.Scores.Delete(ctx, id), slog.Int64("id", id))
}

func (s *Store) logErr(op string, err error, attrs ...any) error {
	if err != nil {
		s.log.Warn(op+" failed", append(attrs, slog.String("error", err.Error()))...)
	}
	return err
}
