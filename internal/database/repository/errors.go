package repository

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a delete matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyBanned is returned when the address already has a ban.
	ErrAlreadyBanned = errors.New("ip address already banned")
	// ErrInvalidIP is returned for addresses that do not parse.
	ErrInvalidIP = errors.New("invalid ip address")
	// ErrEmptyIP is returned when no address was given.
	ErrEmptyIP = errors.New("ip address is required")
)

func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

func affectedOne(res interface{ RowsAffected() (int64, error) }) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
