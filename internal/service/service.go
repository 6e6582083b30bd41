// Package service holds use-case orchestration between handlers and repositories.
// Kept lean: validation, domain error shaping and building Hydra pages.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/maxviazov/hydra-paging/internal/hydra"
	"github.com/maxviazov/hydra-paging/internal/model"
	"github.com/maxviazov/hydra-paging/internal/paging"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error; nil when fe is empty.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// EventService defines the events catalogue use cases.
type EventService interface {
	CreateEvent(ctx context.Context, name, location string, startsAt time.Time) (model.Event, error)
	GetEvent(ctx context.Context, id int64) (model.Event, error)
	// ListEvents returns one page; links are rendered through gen, nil leaves them out.
	ListEvents(ctx context.Context, req paging.Request, gen hydra.PageURLGenerator) (*hydra.PagedCollection[model.Event], error)
}
