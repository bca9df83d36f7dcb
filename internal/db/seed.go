package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// the categories the public search form offers out of the box
var defaultCategories = []string{
	"Fun Run",
	"Gala Dinner",
	"Silent Auction",
	"Concert",
	"Workshop",
	"Community Fair",
}

// EnsureCategories inserts the default category rows if they are missing.
// Safe to run on every startup; existing rows are left untouched.
func EnsureCategories(ctx context.Context, pool *pgxpool.Pool) error {
	for _, name := range defaultCategories {
		_, err := pool.Exec(ctx,
			`INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			name,
		)

		if err != nil {
			return err
		}
	}

	return nil
}
