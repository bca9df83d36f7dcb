package postgres

import (
	"context"

	"github.com/givehub/eventsapi/internal/domain/category"
	"github.com/givehub/eventsapi/internal/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoriesRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewCategoriesRepo(pool *pgxpool.Pool, prom *observability.Prom) *CategoriesRepo {
	return &CategoriesRepo{
		pool: pool,
		prom: prom,
	}
}

func (repo *CategoriesRepo) observe(op string, fn func() error) error {
	if repo.prom != nil {
		return repo.prom.ObserveDB(op, fn)
	}
	return fn()
}

// List returns all categories alphabetically, for search and form dropdowns.
func (repo *CategoriesRepo) List(ctx context.Context) ([]category.Category, error) {
	var rows pgx.Rows

	err := repo.observe("categories.list", func() error {
		var qerr error
		rows, qerr = repo.pool.Query(ctx, `SELECT id, name FROM categories ORDER BY name`)
		return qerr
	})

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	output := make([]category.Category, 0)

	for rows.Next() {
		var c category.Category

		err = rows.Scan(&c.ID, &c.Name)

		if err != nil {
			return nil, err
		}

		output = append(output, c)
	}

	err = rows.Err()

	if err != nil {
		return nil, err
	}

	return output, nil
}
