package repository

import (
	"context"
	"database/sql"
)

// ScoreRepo handles scores.
type ScoreRepo struct {
	db Querier
}

func NewScoreRepo(db Querier) *ScoreRepo {
	return &ScoreRepo{db: db}
}

// List returns scores joined with the owning player's username, in id order.
func (r *ScoreRepo) List(ctx context.Context) ([]Score, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT scores.id, scores.player_id, players.username, scores.score
	FROM scores
	JOIN players ON scores.player_id = players.id
	ORDER BY scores.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Score
	for rows.Next() {
		var s Score
		if err := rows.Scan(&s.ID, &s.PlayerID, &s.PlayerName, &s.Score); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ScoreRepo) Get(ctx context.Context, id int64) (*Score, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT scores.id, scores.player_id, players.username, scores.score
	FROM scores
	JOIN players ON scores.player_id = players.id
	WHERE scores.id = ?`, id)
	var s Score
	if err := row.Scan(&s.ID, &s.PlayerID, &s.PlayerName, &s.Score); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *ScoreRepo) Insert(ctx context.Context, playerID, score int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO scores(player_id, score) VALUES (?, ?)`, playerID, score)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *ScoreRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM scores WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return affectedOne(res)
}
