// Package contract holds storage-agnostic test suites every repository implementation must pass.
package contract

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/hydra-paging/internal/model"
	"github.com/maxviazov/hydra-paging/internal/repository"
)

type EventFactory func(t *testing.T) (repository.EventRepository, func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

func RunEventRepositoryContract(t *testing.T, makeRepo EventFactory) {
	t.Helper()
	start := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, model.Event{Name: "Jazz night", Location: "Ghent", StartsAt: start})
		require.NoError(t, err)
		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Jazz night", got.Name)
		assert.Equal(t, "Ghent", got.Location)
		assert.True(t, start.Equal(got.StartsAt))
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), 999999)
		assert.True(t, errors.Is(err, repository.ErrNotFound), "got %v", err)
	})

	t.Run("duplicate_conflicts", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		_, err := repo.Create(ctx, model.Event{Name: "Dup", StartsAt: start})
		require.NoError(t, err)
		_, err = repo.Create(ctx, model.Event{Name: "Dup", StartsAt: start})
		assert.True(t, errors.Is(err, repository.ErrAlreadyExists), "got %v", err)
	})

	t.Run("list_pagination_total", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for i := 0; i < 7; i++ {
			_, err := repo.Create(ctx, model.Event{Name: fmt.Sprintf("E-%d", i), StartsAt: start.Add(time.Duration(i) * time.Hour)})
			require.NoError(t, err)
		}

		res, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 0})
		require.NoError(t, err)
		assert.Len(t, res.Items, 3)
		assert.Equal(t, 7, res.Total)

		res, err = repo.List(ctx, repository.Page{Limit: 3, Offset: 6})
		require.NoError(t, err)
		assert.Len(t, res.Items, 1)
		assert.Equal(t, 7, res.Total)
		assert.Equal(t, "E-6", res.Items[0].Name)
	})

	t.Run("list_past_the_end_keeps_total", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for i := 0; i < 2; i++ {
			_, err := repo.Create(ctx, model.Event{Name: fmt.Sprintf("E-%d", i), StartsAt: start})
			require.NoError(t, err)
		}
		res, err := repo.List(ctx, repository.Page{Limit: 5, Offset: 10})
		require.NoError(t, err)
		assert.Empty(t, res.Items)
		assert.Equal(t, 2, res.Total)
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		assert.NoError(t, p.Ping(ctx))
	})
}
