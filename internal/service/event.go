package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/hydra-paging/internal/hydra"
	"github.com/maxviazov/hydra-paging/internal/model"
	"github.com/maxviazov/hydra-paging/internal/paging"
	"github.com/maxviazov/hydra-paging/internal/repository"
)

type eventService struct {
	repo     repository.EventRepository
	settings paging.Settings
	log      zerolog.Logger
}

// NewEventService fails when the paging settings are unusable, so a zero page
// size can never reach the last-page arithmetic.
func NewEventService(repo repository.EventRepository, settings paging.Settings, logger zerolog.Logger) (EventService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	l := logger.With().Str("module", "service").Str("component", "event").Logger()
	return &eventService{repo: repo, settings: settings, log: l}, nil
}

func (s *eventService) CreateEvent(ctx context.Context, name, location string, startsAt time.Time) (model.Event, error) {
	start := time.Now()
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)

	var ferrs []FieldError
	if fe := validateName(name); fe != nil {
		ferrs = append(ferrs, *fe)
	}
	if startsAt.IsZero() {
		ferrs = append(ferrs, FieldError{Field: "starts_at", Message: "must be set"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("event validation failed")
		return model.Event{}, err
	}

	out, err := s.repo.Create(ctx, model.Event{Name: name, Location: location, StartsAt: startsAt.UTC()})
	if err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("create event failed")
		return model.Event{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("event_id", out.ID).Msg("event created")
	return out, nil
}

func (s *eventService) GetEvent(ctx context.Context, id int64) (model.Event, error) {
	if id <= 0 {
		return model.Event{}, NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.repo.GetByID(ctx, id)
}

func (s *eventService) ListEvents(ctx context.Context, req paging.Request, gen hydra.PageURLGenerator) (*hydra.PagedCollection[model.Event], error) {
	w, err := paging.Normalize(req, s.settings)
	if err != nil {
		return nil, NewInvalidInputError(pageFieldError(err))
	}

	p := w.Range()
	res, err := s.repo.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list events failed")
		return nil, err
	}

	s.log.Debug().
		Int("page", w.Page).
		Int("items_per_page", w.ItemsPerPage).
		Int("returned", len(res.Items)).
		Int("total", res.Total).
		Msg("events page built")
	return hydra.New(w.Page, w.ItemsPerPage, res.Items, res.Total,
		hydra.WithGenerator(gen),
		hydra.ZeroBased(s.settings.ZeroBased),
	), nil
}
