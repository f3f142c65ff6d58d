// Package store is the Postgres persistence layer. Every method is a single
// query or a small fixed sequence; transactional grouping is left to callers
// that need it.
package store

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
