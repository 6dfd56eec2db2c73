package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/rtype/rtypeadmin/internal/database/repository"
)

// SeedOptions controls how much demo data Seed writes.
type SeedOptions struct {
	Players         int
	ScoresPerPlayer int
	Bans            int
	Seed            uint64
}

// SeedResult counts the rows Seed created.
type SeedResult struct {
	Players int
	Scores  int
	Bans    int
}

var seedReasons = []string{
	"Cheating",
	"Spamming the lobby",
	"Abusive chat",
	"Exploiting a server bug",
	"",
}

// Seed fills db with generated players, scores and bans in one transaction;
// on error nothing is written. The same Seed value always produces the same
// data set.
func Seed(ctx context.Context, db *sql.DB, opts SeedOptions) (SeedResult, error) {
	var res SeedResult
	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		var err error
		res, err = seed(ctx, tx, opts)
		return err
	})
	if err != nil {
		return SeedResult{}, err
	}
	return res, nil
}

func seed(ctx context.Context, q repository.Querier, opts SeedOptions) (SeedResult, error) {
	faker := gofakeit.New(opts.Seed)
	players := repository.NewPlayerRepo(q)
	scores := repository.NewScoreRepo(q)
	bans := repository.NewBanRepo(q)

	var res SeedResult
	for i := 0; i < opts.Players; i++ {
		name := fmt.Sprintf("%s%d", faker.Username(), i)
		id, err := players.Insert(ctx, name, faker.IPv4Address(), faker.Bool())
		if err != nil {
			return res, fmt.Errorf("seed player %s: %w", name, err)
		}
		res.Players++
		for j := 0; j < opts.ScoresPerPlayer; j++ {
			if _, err := scores.Insert(ctx, id, int64(faker.Number(0, 50000))); err != nil {
				return res, fmt.Errorf("seed score for %s: %w", name, err)
			}
			res.Scores++
		}
	}
	for i := 0; i < opts.Bans; i++ {
		ip, reason := faker.IPv4Address(), faker.RandomString(seedReasons)
		banned, err := bans.IsBanned(ctx, ip)
		if err != nil {
			return res, fmt.Errorf("seed ban %s: %w", ip, err)
		}
		if banned {
			continue
		}
		if _, err := bans.Insert(ctx, ip, reason); err != nil {
			return res, fmt.Errorf("seed ban %s: %w", ip, err)
		}
		res.Bans++
	}
	return res, nil
}
