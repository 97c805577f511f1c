// Package repository provides persistence implementations for user storage
// using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/kamilprz/activitylog/internal/models"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint breach.
const uniqueViolation = "23505"

// PostgresUserRepository implements user storage against a PostgreSQL database.
// The day log is stored as a single JSONB document per user, so a user row is
// read and written whole.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository with the given
// database connection. db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// FindAll returns every user, ordered by username.
func (s *PostgresUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, username, password_hash, days FROM users ORDER BY username
	`)
	if err != nil {
		return nil, fmt.Errorf("FindAll: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var (
			u    models.User
			days []byte
		)
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &days); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		if err := json.Unmarshal(days, &u.Days); err != nil {
			return nil, fmt.Errorf("decode days: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("FindAll rows: %w", err)
	}
	return users, nil
}

// FindByUsername fetches a user by username. Returns models.ErrNotFound when
// no such user exists.
func (s *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT id, username, password_hash, days FROM users WHERE username = $1
	`, username)
	return scanUser(row)
}

// FindByID fetches a user by id. Returns models.ErrNotFound when no such
// user exists.
func (s *PostgresUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT id, username, password_hash, days FROM users WHERE id = $1
	`, id)
	return scanUser(row)
}

// Create inserts a new user row. A username collision surfaces as
// models.ErrUsernameTaken; the UNIQUE constraint closes the
// check-then-insert race at the storage layer.
func (s *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	days, err := json.Marshal(daysOrEmpty(user.Days))
	if err != nil {
		return fmt.Errorf("encode days: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, days) VALUES ($1, $2, $3, $4)
	`, user.ID, user.Username, user.PasswordHash, days)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return models.ErrUsernameTaken
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// Save rewrites the user's day log. Last save wins; there is no version check.
func (s *PostgresUserRepository) Save(ctx context.Context, user *models.User) error {
	days, err := json.Marshal(daysOrEmpty(user.Days))
	if err != nil {
		return fmt.Errorf("encode days: %w", err)
	}

	res, err := s.DB.ExecContext(ctx, `
		UPDATE users SET days = $2 WHERE id = $1
	`, user.ID, days)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Save rows affected: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// DeleteByID removes the user row. Deleting an absent user is not an error.
func (s *PostgresUserRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("DeleteByID: %w", err)
	}
	return nil
}

// scanUser decodes one user row including its JSONB day log.
func scanUser(row *sql.Row) (*models.User, error) {
	var (
		u    models.User
		days []byte
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &days); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("scan: %w", err)
	}
	if err := json.Unmarshal(days, &u.Days); err != nil {
		return nil, fmt.Errorf("decode days: %w", err)
	}
	return &u, nil
}

// daysOrEmpty keeps a nil day list stored as [] rather than null.
func daysOrEmpty(days []models.Day) []models.Day {
	if days == nil {
		return []models.Day{}
	}
	return days
}
