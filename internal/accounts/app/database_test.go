package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenStore(t *testing.T) {
	t.Run("sqlite file is created and migrated", func(t *testing.T) {
		cfg := testConfig(t)

		db, err := OpenStore(cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })

		require.NoError(t, db.Ping(context.Background()))
		admins, err := db.Users().CountAdmins(context.Background())
		require.NoError(t, err)
		require.Zero(t, admins)
	})

	t.Run("postgres needs a dsn", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.DatabaseDriver = "postgres"

		_, err := OpenStore(cfg)
		require.ErrorContains(t, err, "ACCOUNTS_DATABASE_DSN")
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.DatabaseDriver = "mysql"

		_, err := OpenStore(cfg)
		require.ErrorContains(t, err, "unknown database driver")
	})
}
