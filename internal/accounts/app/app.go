package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/freelancehub/internal/accounts/http"
	"github.com/aussiebroadwan/freelancehub/internal/accounts/notify"
	"github.com/aussiebroadwan/freelancehub/internal/accounts/service"
	"github.com/aussiebroadwan/freelancehub/internal/accounts/store"
	redisstore "github.com/aussiebroadwan/freelancehub/internal/accounts/store/drivers/redis"
	"github.com/aussiebroadwan/freelancehub/pkg/accountsdk"
	"github.com/aussiebroadwan/freelancehub/pkg/cryptox"
	"github.com/aussiebroadwan/freelancehub/pkg/httpx"
	"github.com/aussiebroadwan/freelancehub/pkg/slogx"
	"github.com/redis/go-redis/v9"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the accounts service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db    store.Store
	keys  *TokenKeys
	redis *redis.Client // nil unless reset tokens are single-use in Redis

	// Services
	accountService      *service.AccountService
	sessions            *service.Sessions
	housekeepingService *service.HousekeepingService // nil unless used tokens live in the database

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "accounts-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	mode, err := service.ParseSingleUse(cfg.ResetSingleUse)
	if err != nil {
		return nil, err
	}

	if err := httpx.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keys, err := InitTokenKeys(app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.keys = keys

	if mode == service.SingleUseRedis {
		if err := app.initRedis(); err != nil {
			_ = app.db.Close()
			return nil, err
		}
	}

	notifier, err := app.initNotifier()
	if err != nil {
		app.closeStores()
		return nil, err
	}

	app.initServices(mode, notifier)
	app.initHTTP()

	return app, nil
}

// Handler returns the HTTP handler with all routes and middleware applied.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	if app.housekeepingService != nil {
		app.housekeepingService.Start()
	}

	app.logger.Info("accounts service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down accounts service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.housekeepingService != nil {
		app.housekeepingService.Stop()
	}

	if err := app.closeStores(); err != nil {
		return err
	}

	app.logger.Info("accounts service stopped")
	return nil
}

func (app *Application) closeStores() error {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis", "error", err)
		}
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}
	return nil
}

// initDatabase opens the configured driver and applies migrations
func (app *Application) initDatabase() error {
	db, err := OpenStore(app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initRedis connects the used reset token ledger
func (app *Application) initRedis() error {
	if app.cfg.RedisAddr == "" {
		return errors.New("REDIS_ADDR is required when ACCOUNTS_RESET_SINGLE_USE=redis")
	}

	app.redis = redis.NewClient(&redis.Options{
		Addr:     app.cfg.RedisAddr,
		Password: app.cfg.RedisPassword,
		DB:       app.cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.redis.Ping(ctx).Err(); err != nil {
		_ = app.redis.Close()
		app.redis = nil
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	app.logger.Info("redis reset token ledger connected", "addr", app.cfg.RedisAddr)
	return nil
}

// initNotifier picks SMTP when a relay is configured and logging otherwise
func (app *Application) initNotifier() (service.Notifier, error) {
	if app.cfg.SMTPHost == "" {
		app.logger.Warn("SMTP_HOST not set; emails will be logged, not sent")
		return &notify.Log{Logger: app.logger}, nil
	}

	smtp, err := notify.NewSMTP(notify.SMTPConfig{
		Host:     app.cfg.SMTPHost,
		Port:     app.cfg.SMTPPort,
		Username: app.cfg.SMTPUsername,
		Password: app.cfg.SMTPPassword,
		Sender:   app.cfg.MailSender,
		ResetTTL: app.cfg.ResetTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure smtp: %w", err)
	}

	app.logger.Info("smtp notifier configured", "host", app.cfg.SMTPHost, "port", app.cfg.SMTPPort)
	return smtp, nil
}

// initServices initializes all business logic services
func (app *Application) initServices(mode service.SingleUse, notifier service.Notifier) {
	resets := &service.ResetTokens{
		Signer:   app.keys.Signer,
		Verifier: app.keys.ResetVerifier,
		Store:    app.db,
		Issuer:   app.cfg.Issuer,
		TTL:      app.cfg.ResetTTL,
		Mode:     mode,
	}
	if app.redis != nil {
		resets.External = redisstore.NewUsedResetTokens(app.redis, "")
	}

	app.accountService = &service.AccountService{
		Store:            app.db,
		Resets:           resets,
		Notifier:         notifier,
		Validator:        service.NewValidator(),
		PublicURL:        app.cfg.PublicURL,
		HideUnknownEmail: app.cfg.HideUnknownEmail,
		NotifyTimeout:    app.cfg.NotifyTimeout,
	}

	app.sessions = &service.Sessions{
		Signer:      app.keys.Signer,
		Issuer:      app.cfg.Issuer,
		TTL:         app.cfg.SessionTTL,
		RememberTTL: app.cfg.RememberTTL,
	}

	// Redis expires used tokens on its own
	if mode == service.SingleUseStore {
		app.housekeepingService = service.NewHousekeepingService(
			app.db.UsedResetTokens(),
			app.logger,
			app.cfg.HousekeepingInterval,
		)
	}

	app.logger.Info("account services initialized",
		"reset_single_use", string(mode),
		"hide_unknown_email", app.cfg.HideUnknownEmail,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys.SessionVerifier,
		httpapi.SessionCookie{Name: accountsdk.SessionCookieName, Secure: app.cfg.CookieSecure},
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.AccountService = app.accountService
	router.Sessions = app.sessions
	if app.redis != nil {
		router.ResetLedger = redisstore.NewUsedResetTokens(app.redis, "")
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
