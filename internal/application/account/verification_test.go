package account_test

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Chetan-Warad-CSYE6225/webapp/internal/application/account"
	"github.com/Chetan-Warad-CSYE6225/webapp/internal/domain"
	domerrors "github.com/Chetan-Warad-CSYE6225/webapp/internal/domain/errors"
)

func TestIssueVerification_TokenShape(t *testing.T) {
	store := new(MockTokenStore)
	pub := new(MockPublisher)
	var stored *domain.VerificationToken
	store.On("Create", mock.Anything, mock.AnythingOfType("*domain.VerificationToken")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.VerificationToken) }).
		Return(nil).Once()
	pub.On("Publish", mock.Anything, "a@x.com", mock.AnythingOfType("string")).Return(nil).Once()

	uc := account.NewIssueVerification(store, pub, 2*time.Minute)
	require.NoError(t, uc.Execute(context.Background(), "a@x.com"))

	require.Equal(t, "a@x.com", stored.Email)
	// 32 random bytes, hex encoded: 256 bits of entropy.
	raw, err := hex.DecodeString(stored.Token)
	require.NoError(t, err)
	require.Len(t, raw, 32)
	ttl := stored.ExpiresAt.Sub(stored.CreatedAt)
	require.Equal(t, 2*time.Minute, ttl)

	pub.AssertCalled(t, "Publish", mock.Anything, "a@x.com", stored.Token)
}

func TestIssueVerification_PublishFailureIsDistinct(t *testing.T) {
	store := new(MockTokenStore)
	pub := new(MockPublisher)
	store.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("topic unreachable")).Once()

	uc := account.NewIssueVerification(store, pub, time.Minute)
	err := uc.Execute(context.Background(), "a@x.com")

	require.ErrorIs(t, err, domerrors.ErrNotificationFailed)
}

func TestIssueVerification_StoreFailureIsNotNotification(t *testing.T) {
	store := new(MockTokenStore)
	pub := new(MockPublisher)
	store.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed")).Once()

	uc := account.NewIssueVerification(store, pub, time.Minute)
	err := uc.Execute(context.Background(), "a@x.com")

	require.Error(t, err)
	require.NotErrorIs(t, err, domerrors.ErrNotificationFailed)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}
