// Package postgres implements the store interfaces on top of a pgx connection
// pool. Multi-row writes (exam authoring, answer submission) run inside a
// single transaction so readers never observe a partial exam or submission.
package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/madrasaty/exam-backend/internal/store"
)

// Store is the PostgreSQL-backed implementation of the store interfaces.
type Store struct {
	pool *pgxpool.Pool
}

var (
	_ store.IdentityStore   = (*Store)(nil)
	_ store.ExamStore       = (*Store)(nil)
	_ store.SubmissionStore = (*Store)(nil)
)

// NewStore creates a new Store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
