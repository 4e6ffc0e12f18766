package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHousekeepingPurgesExpiredResetTokens(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ledger := env.store.UsedResetTokens()

	require.NoError(t, ledger.MarkUsed(ctx, "old", time.Now().Add(-time.Minute)))
	require.NoError(t, ledger.MarkUsed(ctx, "fresh", time.Now().Add(time.Hour)))

	hk := NewHousekeepingService(ledger, slog.New(slog.NewTextHandler(io.Discard, nil)), time.Hour)
	hk.Start()
	hk.Stop()

	used, err := ledger.IsUsed(ctx, "old")
	require.NoError(t, err)
	require.False(t, used)

	used, err = ledger.IsUsed(ctx, "fresh")
	require.NoError(t, err)
	require.True(t, used)
}

func TestNewHousekeepingServiceDefaultsInterval(t *testing.T) {
	hk := NewHousekeepingService(nil, slog.Default(), 0)
	require.Equal(t, time.Hour, hk.Interval)
}
