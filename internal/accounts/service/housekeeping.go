package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/store"
)

// HousekeepingService periodically purges consumed reset token IDs whose
// tokens have expired, so the used-token table stays bounded.
type HousekeepingService struct {
	Ledger   store.UsedResetTokens
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping worker. A non-positive
// interval defaults to one hour.
func NewHousekeepingService(ledger store.UsedResetTokens, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}

	return &HousekeepingService{
		Ledger:   ledger,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the worker in the background until Stop is called.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", slog.Duration("interval", s.Interval))
}

// Stop shuts the worker down and waits for an in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) cleanup() {
	ctx := context.Background()

	n, err := s.Ledger.DeleteExpired(ctx, time.Now())
	if err != nil {
		s.Logger.Error("failed to delete expired reset tokens", slog.Any("error", err))
		return
	}
	s.Logger.Info("housekeeping cleanup completed", slog.Int64("expired_reset_tokens", n))
}
