package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/Chetan-Warad-CSYE6225/webapp/internal/application/ports"
)

// LivenessChecker opens a fresh connection on every probe instead of going
// through the pool, so the probe exercises connect and authenticate rather
// than reusing an idle connection. The connection is closed on all paths.
type LivenessChecker struct {
	dsn string
}

func NewLivenessChecker(dsn string) *LivenessChecker {
	return &LivenessChecker{dsn: dsn}
}

func (c *LivenessChecker) Ping(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, c.dsn)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)
	return conn.Ping(ctx)
}

var _ ports.Pinger = (*LivenessChecker)(nil)
