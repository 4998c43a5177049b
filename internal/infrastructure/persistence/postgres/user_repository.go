package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Chetan-Warad-CSYE6225/webapp/internal/application/ports"
	"github.com/Chetan-Warad-CSYE6225/webapp/internal/domain"
	domerrors "github.com/Chetan-Warad-CSYE6225/webapp/internal/domain/errors"
)

const (
	createUserSQL = `INSERT INTO users (id, email, password_hash, first_name, last_name, account_created, account_updated, is_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	getUserByEmailSQL = `SELECT id, email, password_hash, first_name, last_name, account_created, account_updated, is_verified
		FROM users WHERE email = $1`
	getUserByIDSQL = `SELECT id, email, password_hash, first_name, last_name, account_created, account_updated, is_verified
		FROM users WHERE id = $1`
	saveUserSQL = `UPDATE users SET first_name = $1, last_name = $2, password_hash = $3, account_updated = $4, is_verified = $5
		WHERE id = $6`
)

const uniqueViolation = "23505"

// UserRepository implements ports.UserRepository on a pgx pool.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.pool.Exec(ctx, createUserSQL,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.AccountCreated, user.AccountUpdated, user.IsVerified)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domerrors.ErrEmailExists
	}
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, getUserByEmailSQL, email)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, getUserByIDSQL, id)
}

func (r *UserRepository) getOne(ctx context.Context, sql string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, sql, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.AccountCreated, &u.AccountUpdated, &u.IsVerified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Save persists mutations of an existing record, refreshing account_updated.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	user.AccountUpdated = time.Now().UTC()
	tag, err := r.pool.Exec(ctx, saveUserSQL,
		user.FirstName, user.LastName, user.PasswordHash, user.AccountUpdated, user.IsVerified, user.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrUserNotFound
	}
	return nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
