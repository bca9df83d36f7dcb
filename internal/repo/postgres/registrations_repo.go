package postgres

import (
	"context"

	"github.com/givehub/eventsapi/internal/domain/registration"
	"github.com/givehub/eventsapi/internal/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RegistrationsRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewRegistrationsRepo(pool *pgxpool.Pool, prom *observability.Prom) *RegistrationsRepo {
	return &RegistrationsRepo{
		pool: pool,
		prom: prom,
	}
}

func (repo *RegistrationsRepo) observe(op string, fn func() error) error {
	if repo.prom != nil {
		return repo.prom.ObserveDB(op, fn)
	}
	return fn()
}

// Create inserts a registration and returns its store-assigned id. The
// registration timestamp is assigned by the store as well. The event_id
// is taken as-is: no existence or active check happens here, a dangling
// reference surfaces as a foreign key violation from the store.
func (repo *RegistrationsRepo) Create(ctx context.Context, req registration.CreateRegistrationRequest) (int64, error) {
	var id int64

	err := repo.observe("registrations.create", func() error {
		return repo.pool.QueryRow(ctx,
			`INSERT INTO registrations (event_id, full_name, email, phone, ticket_count)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			req.EventID, req.FullName, req.Email, req.Phone, req.TicketCount,
		).Scan(&id)
	})

	if err != nil {
		return 0, err
	}

	return id, nil
}

// ListByEvent returns the registrations for an event, most recent first.
func (repo *RegistrationsRepo) ListByEvent(ctx context.Context, eventID int64) (regs []registration.Registration, err error) {
	var rows pgx.Rows

	err = repo.observe("registrations.list_by_event", func() error {
		var qerr error
		rows, qerr = repo.pool.Query(ctx,
			`SELECT id, full_name, email, phone, ticket_count, registration_date
			FROM registrations
			WHERE event_id = $1
			ORDER BY registration_date DESC, id DESC`,
			eventID,
		)
		return qerr
	})

	if err != nil {
		return
	}

	defer rows.Close()

	regs = make([]registration.Registration, 0)

	for rows.Next() {
		var r registration.Registration

		e := rows.Scan(&r.ID, &r.FullName, &r.Email, &r.Phone, &r.TicketCount, &r.RegistrationDate)

		if e != nil {
			err = e
			return
		}
		regs = append(regs, r)
	}

	err = rows.Err()

	return
}
