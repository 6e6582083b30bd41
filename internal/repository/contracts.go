package repository

import (
	"context"

	"github.com/maxviazov/hydra-paging/internal/model"
)

// Pinger is a readiness probe capability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// EventRepository declares persistence operations for the events catalogue.
// List orders by id so that page boundaries are stable between requests.
type EventRepository interface {
	Create(ctx context.Context, e model.Event) (model.Event, error)
	GetByID(ctx context.Context, id int64) (model.Event, error)
	List(ctx context.Context, p Page) (PageResult[model.Event], error)
}
