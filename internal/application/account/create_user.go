package account

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Chetan-Warad-CSYE6225/webapp/internal/application/ports"
	"github.com/Chetan-Warad-CSYE6225/webapp/internal/domain"
	domerrors "github.com/Chetan-Warad-CSYE6225/webapp/internal/domain/errors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// CreateUser persists a new account. With forceVerified set (test-mode
// override) accounts are created already verified.
type CreateUser struct {
	users         ports.UserRepository
	hasher        ports.PasswordHasher
	forceVerified bool
}

func NewCreateUser(users ports.UserRepository, hasher ports.PasswordHasher, forceVerified bool) *CreateUser {
	return &CreateUser{users: users, hasher: hasher, forceVerified: forceVerified}
}

func (uc *CreateUser) Execute(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if strings.TrimSpace(input.FirstName) == "" ||
		strings.TrimSpace(input.LastName) == "" ||
		input.Email == "" ||
		input.Password == "" {
		return nil, domerrors.ErrValidation
	}
	if !emailRegex.MatchString(input.Email) {
		return nil, domerrors.ErrValidation
	}
	// Pre-check for a friendlier error; the unique index remains the
	// authoritative guard against a concurrent create racing past this.
	existing, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domerrors.ErrEmailExists
	}
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &domain.User{
		ID:             uuid.New(),
		Email:          input.Email,
		PasswordHash:   hash,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		AccountCreated: now,
		AccountUpdated: now,
		IsVerified:     uc.forceVerified,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
