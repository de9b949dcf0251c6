package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/collabogames/collabo-go/apperror"
)

// Pool is the subset of pgxpool.Pool the store uses. A *pgxpool.Pool
// satisfies it in production; pgxmock satisfies it in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserStore persists and retrieves user records.
// Lookups report absence as (nil, nil), never as an error; only actual
// storage failures produce errors. Mutations are single best-effort
// statements with no retry logic.
type UserStore struct {
	pool Pool
}

// NewUserStore creates a new UserStore backed by the given pool.
func NewUserStore(pool Pool) *UserStore {
	return &UserStore{pool: pool}
}

const userColumns = `user_id, name, password, categories, num_answer, point_total, last_login_at`

func (s *UserStore) scanUser(row pgx.Row) (*User, error) {
	var user User
	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.Password,
		&user.Categories,
		&user.AnswerCount,
		&user.PointTotal,
		&user.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewDatabaseError("failed to load user", err)
	}
	return &user, nil
}

// FindByName retrieves a user by name. Returns (nil, nil) when no such user exists.
func (s *UserStore) FindByName(ctx context.Context, name string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE name = $1`, userColumns)
	return s.scanUser(s.pool.QueryRow(ctx, query, name))
}

// FindByID retrieves a user by ID. Returns (nil, nil) when no such user exists.
func (s *UserStore) FindByID(ctx context.Context, userID int64) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE user_id = $1`, userColumns)
	return s.scanUser(s.pool.QueryRow(ctx, query, userID))
}

// Create inserts a new user with the prepared credential and optional
// comma-joined categories, and returns the assigned user ID. The name column
// carries a unique constraint, so a duplicate insert fails here; callers
// pre-check with FindByName to produce a clean "already registered" signal
// instead of surfacing the constraint violation.
func (s *UserStore) Create(ctx context.Context, name, credential string, categories *string) (int64, error) {
	query := `INSERT INTO users (name, password, categories, last_login_at)
	          VALUES ($1, $2, $3, now())
	          RETURNING user_id`
	var userID int64
	if err := s.pool.QueryRow(ctx, query, name, credential, categories).Scan(&userID); err != nil {
		return 0, apperror.NewDatabaseError("failed to create user", err)
	}
	return userID, nil
}

// UpdateLastLogin stamps the user's last_login_at with the current time.
func (s *UserStore) UpdateLastLogin(ctx context.Context, userID int64) error {
	query := `UPDATE users SET last_login_at = now() WHERE user_id = $1`
	if _, err := s.pool.Exec(ctx, query, userID); err != nil {
		return apperror.NewDatabaseError("failed to update last login", err)
	}
	return nil
}

// AddPoints adjusts the user's point total by delta, which may be negative.
// The increment happens in a single UPDATE so concurrent calls serialize at
// the storage layer and no update is lost.
func (s *UserStore) AddPoints(ctx context.Context, userID int64, delta int) error {
	query := `UPDATE users SET point_total = point_total + $1 WHERE user_id = $2`
	if _, err := s.pool.Exec(ctx, query, delta, userID); err != nil {
		return apperror.NewDatabaseError("failed to update points", err)
	}
	return nil
}

// IncrementAnswers increments the user's answer count by one, atomically for
// the same reason as AddPoints.
func (s *UserStore) IncrementAnswers(ctx context.Context, userID int64) error {
	query := `UPDATE users SET num_answer = num_answer + 1 WHERE user_id = $1`
	if _, err := s.pool.Exec(ctx, query, userID); err != nil {
		return apperror.NewDatabaseError("failed to update answer count", err)
	}
	return nil
}
