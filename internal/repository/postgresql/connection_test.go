package postgresql_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/kurochkinivan/port_assigner/internal/config"
	"github.com/kurochkinivan/port_assigner/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnreachable = errors.New("connection refused")

func TestRetry(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	t.Run("succeeds after failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		ping := func(context.Context) error {
			calls++
			if calls < 3 {
				return errUnreachable
			}
			return nil
		}

		err := postgresql.Retry(log, ping, 5, time.Millisecond)(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up", func(t *testing.T) {
		t.Parallel()

		calls := 0
		ping := func(context.Context) error {
			calls++
			return errUnreachable
		}

		err := postgresql.Retry(log, ping, 2, time.Millisecond)(t.Context())
		require.ErrorIs(t, err, errUnreachable)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		ping := func(context.Context) error { return errUnreachable }

		err := postgresql.Retry(log, ping, 5, time.Hour)(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestConnectionURL(t *testing.T) {
	t.Parallel()

	got := postgresql.ConnectionURL(config.PostgreSQL{
		Host:     "db",
		Port:     "5432",
		Username: "ports",
		Password: "p@ss",
		DBName:   "port_assigner",
		SSLMode:  "disable",
	})

	assert.Equal(t, "postgres://ports:p%40ss@db:5432/port_assigner?sslmode=disable", got)
}
