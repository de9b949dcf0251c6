// Package categories serves the static category list. Categories are
// read-only from the API's perspective: the store seeds the default set at
// startup and the endpoint falls back to that same set whenever the backing
// table is empty or unreachable.
package categories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/collabogames/collabo-go/apperror"
)

// defaultCategories is the fixed fallback set. Order matters: the fallback
// response returns these exactly as listed.
var defaultCategories = []string{
	"システム部",
	"経理部",
	"事業企画部",
	"デザイン部",
	"営業部",
	"アート",
	"音楽",
	"法務部",
	"知財部",
	"情セキ部",
}

// DefaultCategories returns a copy of the default category names.
func DefaultCategories() []string {
	out := make([]string, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}

// Pool is the subset of pgxpool.Pool the store uses.
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Store reads and seeds the categories table.
type Store struct {
	pool Pool
}

// NewStore creates a new category Store backed by the given pool.
func NewStore(pool Pool) *Store {
	return &Store{pool: pool}
}

// List returns all category names ordered by name.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT name FROM categories ORDER BY name`)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list categories", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan category row", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to iterate categories", err)
	}

	return names, nil
}

// Ensure seeds the default categories, skipping any that already exist.
// It runs once at startup; a failure is reported but not fatal, since List
// falls back to the default set anyway.
func (s *Store) Ensure(ctx context.Context) error {
	for _, name := range defaultCategories {
		query := `INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`
		if _, err := s.pool.Exec(ctx, query, name); err != nil {
			return apperror.NewDatabaseError(fmt.Sprintf("failed to seed category %q", name), err)
		}
	}
	return nil
}
