package ports

import "context"

// VerificationPublisher publishes a freshly issued verification token to the
// external notification channel.
type VerificationPublisher interface {
	Publish(ctx context.Context, email, token string) error
}

// Pinger reports reachability of a backing dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}
