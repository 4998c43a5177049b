package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Chetan-Warad-CSYE6225/webapp/internal/application/ports"
	"github.com/Chetan-Warad-CSYE6225/webapp/internal/domain"
)

const createVerificationTokenSQL = `INSERT INTO email_verifications (id, email, token, expires_at, created_at)
	VALUES ($1, $2, $3, $4, $5)`

// VerificationTokenRepository implements ports.VerificationTokenStore.
// Tokens are write-only here; the consuming endpoint lives elsewhere.
type VerificationTokenRepository struct {
	pool *pgxpool.Pool
}

func NewVerificationTokenRepository(pool *pgxpool.Pool) *VerificationTokenRepository {
	return &VerificationTokenRepository{pool: pool}
}

func (r *VerificationTokenRepository) Create(ctx context.Context, token *domain.VerificationToken) error {
	_, err := r.pool.Exec(ctx, createVerificationTokenSQL,
		token.ID, token.Email, token.Token, token.ExpiresAt, token.CreatedAt)
	return err
}

var _ ports.VerificationTokenStore = (*VerificationTokenRepository)(nil)
