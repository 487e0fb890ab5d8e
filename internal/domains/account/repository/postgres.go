package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshelf-backend/internal/domains/account"
)

// postgresRepository là concrete implementation của account.Repository
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository tạo repository instance
// Return interface thay vì concrete type - code phụ thuộc abstraction
func NewPostgresRepository(pool *pgxpool.Pool) account.Repository {
	return &postgresRepository{pool: pool}
}

const userColumns = `id, username, password_hash, first_name, last_name, email, created_at, updated_at`

// Create insert user mới
// Unique index trên username là nơi enforce uniqueness - SQLSTATE 23505
// được map thành domain error, không có check-then-insert race
func (r *postgresRepository) Create(ctx context.Context, u *account.User) error {
	query := `
		INSERT INTO users (
			id, username, password_hash, first_name, last_name, email,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		u.ID,
		u.Username,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.Email,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// 23505 = unique_violation
			if pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "username") {
				return account.ErrUsernameAlreadyExists
			}
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*account.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := r.scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*account.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	u, err := r.scanUser(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *account.User) error {
	query := `
		UPDATE users
		SET username = $2, first_name = $3, last_name = $4, email = $5,
		    updated_at = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		u.ID,
		u.Username,
		u.FirstName,
		u.LastName,
		u.Email,
		u.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "username") {
				return account.ErrUsernameAlreadyExists
			}
		}
		return fmt.Errorf("update user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return account.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) scanUser(row pgx.Row) (*account.User, error) {
	var u account.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
