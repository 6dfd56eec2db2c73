package repository

import (
	"context"
	"database/sql"
	"fmt"
	"net/netip"
	"strings"
)

// BanRepo handles banned addresses.
type BanRepo struct {
	db Querier
}

func NewBanRepo(db Querier) *BanRepo {
	return &BanRepo{db: db}
}

func (r *BanRepo) List(ctx context.Context) ([]Ban, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, ip_address, banned_at, reason FROM bans ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Ban
	for rows.Next() {
		var b Ban
		if err := rows.Scan(&b.ID, &b.IPAddress, &b.BannedAt, &b.Reason); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BanRepo) Get(ctx context.Context, id int64) (*Ban, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, ip_address, banned_at, reason FROM bans WHERE id = ?`, id)
	var b Ban
	if err := row.Scan(&b.ID, &b.IPAddress, &b.BannedAt, &b.Reason); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// IsBanned reports whether ip has a ban row.
func (r *BanRepo) IsBanned(ctx context.Context, ip string) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bans WHERE ip_address = ?`, strings.TrimSpace(ip)).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Insert bans ip. A blank reason is stored as DefaultBanReason.
func (r *BanRepo) Insert(ctx context.Context, ip, reason string) (int64, error) {
	ip = strings.TrimSpace(ip)
	if ip == "" {
		return 0, ErrEmptyIP
	}
	if _, err := netip.ParseAddr(ip); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIP, ip)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultBanReason
	}
	res, err := r.db.ExecContext(ctx, `INSERT INTO bans(ip_address, reason) VALUES (?, ?)`, ip, reason)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %s", ErrAlreadyBanned, ip)
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r *BanRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bans WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return affectedOne(res)
}
