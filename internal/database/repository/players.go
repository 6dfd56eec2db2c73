package repository

import (
	"context"
	"database/sql"
)

// PlayerRepo handles players.
type PlayerRepo struct {
	db Querier
}

func NewPlayerRepo(db Querier) *PlayerRepo {
	return &PlayerRepo{db: db}
}

func (r *PlayerRepo) List(ctx context.Context) ([]Player, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, username, ip_address, created_at, is_online FROM players ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Username, &p.IPAddress, &p.CreatedAt, &p.Online); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Get returns nil, nil when no player has the id.
func (r *PlayerRepo) Get(ctx context.Context, id int64) (*Player, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, username, ip_address, created_at, is_online FROM players WHERE id = ?`, id)
	var p Player
	if err := row.Scan(&p.ID, &p.Username, &p.IPAddress, &p.CreatedAt, &p.Online); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PlayerRepo) Insert(ctx context.Context, username, ip string, online bool) (int64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO players(username, ip_address, is_online) VALUES (?, ?, ?)`, username, ip, online)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Delete removes the player; its scores go with it through the foreign key.
func (r *PlayerRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return affectedOne(res)
}
