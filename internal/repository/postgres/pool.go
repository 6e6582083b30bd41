package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultPageLimit = 30

func sanitizeLimitOffset(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ensurePool guards against repositories wired before the pool exists.
func ensurePool(pool *pgxpool.Pool) error {
	if pool == nil {
		return errors.New("pgx pool is nil")
	}
	return nil
}
