package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/hydra-paging/internal/model"
	"github.com/maxviazov/hydra-paging/internal/repository"
)

type eventRepository struct{ pool *pgxpool.Pool }

func NewEventRepository(pool *pgxpool.Pool) repository.EventRepository {
	return &eventRepository{pool: pool}
}

func (r *eventRepository) Create(ctx context.Context, e model.Event) (model.Event, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Event{}, err
	}
	row := r.pool.QueryRow(ctx,
		`INSERT INTO events (name, location, starts_at) VALUES ($1, $2, $3)
		 RETURNING id, name, location, starts_at, created_at, updated_at`,
		e.Name, e.Location, e.StartsAt,
	)
	var out model.Event
	if err := scanEvent(row, &out); err != nil {
		return model.Event{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (model.Event, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Event{}, err
	}
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, location, starts_at, created_at, updated_at FROM events WHERE id = $1`, id,
	)
	var out model.Event
	if err := scanEvent(row, &out); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Event{}, repository.ErrNotFound
		}
		return model.Event{}, repository.MapPgError(err)
	}
	return out, nil
}

// List reads one window ordered by id. COUNT(*) OVER() yields nothing once the
// offset runs past the last row, so an empty window falls back to a plain count.
func (r *eventRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Event], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Event]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, location, starts_at, created_at, updated_at, COUNT(*) OVER() AS total
		 FROM events
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Event]{}, repository.MapPgError(err)
	}
	defer rows.Close()

	res := repository.PageResult[model.Event]{Items: make([]model.Event, 0, limit)}
	for rows.Next() {
		var e model.Event
		var total int
		if err := rows.Scan(&e.ID, &e.Name, &e.Location, &e.StartsAt, &e.CreatedAt, &e.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Event]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, e)
		res.Total = total
	}
	if err := rows.Err(); err != nil {
		return repository.PageResult[model.Event]{}, repository.MapPgError(err)
	}

	if len(res.Items) == 0 {
		if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&res.Total); err != nil {
			return repository.PageResult[model.Event]{}, repository.MapPgError(err)
		}
	}
	return res, nil
}

func scanEvent(row pgx.Row, e *model.Event) error {
	return row.Scan(&e.ID, &e.Name, &e.Location, &e.StartsAt, &e.CreatedAt, &e.UpdatedAt)
}

var _ repository.EventRepository = (*eventRepository)(nil)
