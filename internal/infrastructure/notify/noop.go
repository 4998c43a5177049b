package notify

import (
	"context"

	"github.com/Chetan-Warad-CSYE6225/webapp/internal/application/ports"
)

// NoopPublisher is used when no topic is configured (local development).
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) Publish(ctx context.Context, email, token string) error {
	return nil
}

var _ ports.VerificationPublisher = (*NoopPublisher)(nil)
