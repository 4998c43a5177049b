package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/Chetan-Warad-CSYE6225/webapp/internal/domain"
)

// UserRepository defines persistence for users.
//
// Create returns domain/errors.ErrEmailExists when the storage-layer
// uniqueness constraint fires; that constraint is the authoritative guard
// against concurrent creates with the same email.
// Reads return (nil, nil) when no row matches.
// Save refreshes account_updated as a side effect of any successful save.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
}

// VerificationTokenStore defines storage for email verification tokens.
type VerificationTokenStore interface {
	Create(ctx context.Context, token *domain.VerificationToken) error
}
