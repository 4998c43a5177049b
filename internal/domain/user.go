package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the sole persisted entity. The password hash never leaves the
// service; outward representations are built in the handlers package.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	AccountCreated time.Time `json:"account_created"`
	AccountUpdated time.Time `json:"account_updated"`
	IsVerified     bool      `json:"is_verified"`
}

// VerificationToken links an email to a single-use token with an expiry.
// Created alongside user creation; consumed by an external collaborator.
type VerificationToken struct {
	ID        uuid.UUID
	Email     string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
