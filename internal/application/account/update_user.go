package account

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Chetan-Warad-CSYE6225/webapp/internal/application/ports"
	"github.com/Chetan-Warad-CSYE6225/webapp/internal/domain"
	domerrors "github.com/Chetan-Warad-CSYE6225/webapp/internal/domain/errors"
)

// UpdateUserInput is the whitelist-filtered partial update. Nil fields keep
// their stored values; an explicit empty string is rejected.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Password  *string
}

type UpdateUser struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewUpdateUser(users ports.UserRepository, hasher ports.PasswordHasher) *UpdateUser {
	return &UpdateUser{users: users, hasher: hasher}
}

// Execute applies the patch over the stored record and saves it. The record
// is re-read by id so account_updated always derives from stored state.
func (uc *UpdateUser) Execute(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrUserNotFound
	}
	if input.FirstName != nil {
		if strings.TrimSpace(*input.FirstName) == "" {
			return nil, domerrors.ErrValidation
		}
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		if strings.TrimSpace(*input.LastName) == "" {
			return nil, domerrors.ErrValidation
		}
		user.LastName = *input.LastName
	}
	if input.Password != nil {
		// An empty password is never accepted; omitting the field
		// entirely leaves the stored hash unchanged.
		if *input.Password == "" {
			return nil, domerrors.ErrValidation
		}
		hash, err := uc.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if err := uc.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
