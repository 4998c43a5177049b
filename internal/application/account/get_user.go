package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/Chetan-Warad-CSYE6225/webapp/internal/application/ports"
	"github.com/Chetan-Warad-CSYE6225/webapp/internal/domain"
	domerrors "github.com/Chetan-Warad-CSYE6225/webapp/internal/domain/errors"
)

type GetUser struct {
	users ports.UserRepository
}

func NewGetUser(users ports.UserRepository) *GetUser {
	return &GetUser{users: users}
}

// Execute re-reads the resolved identity. Absence after authentication
// should not occur, but surfaces as ErrUserNotFound when it does.
func (uc *GetUser) Execute(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrUserNotFound
	}
	return user, nil
}
