package account

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Chetan-Warad-CSYE6225/webapp/internal/application/ports"
	"github.com/Chetan-Warad-CSYE6225/webapp/internal/domain"
	domerrors "github.com/Chetan-Warad-CSYE6225/webapp/internal/domain/errors"
)

const defaultTokenTTL = 2 * time.Minute

// IssueVerification generates a verification token after a user has been
// created, persists it keyed by email, and publishes {email, token} to the
// notification channel. The user row is already committed when this runs;
// a publish failure is a documented partial-failure state, reported as
// ErrNotificationFailed without rolling anything back.
type IssueVerification struct {
	tokens    ports.VerificationTokenStore
	publisher ports.VerificationPublisher
	ttl       time.Duration
}

func NewIssueVerification(tokens ports.VerificationTokenStore, publisher ports.VerificationPublisher, ttl time.Duration) *IssueVerification {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &IssueVerification{tokens: tokens, publisher: publisher, ttl: ttl}
}

func (uc *IssueVerification) Execute(ctx context.Context, email string) error {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	token := hex.EncodeToString(buf)
	now := time.Now().UTC()
	vt := &domain.VerificationToken{
		ID:        uuid.New(),
		Email:     email,
		Token:     token,
		ExpiresAt: now.Add(uc.ttl),
		CreatedAt: now,
	}
	if err := uc.tokens.Create(ctx, vt); err != nil {
		return err
	}
	if err := uc.publisher.Publish(ctx, email, token); err != nil {
		return fmt.Errorf("%w: %v", domerrors.ErrNotificationFailed, err)
	}
	return nil
}
