package app

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/store"
	"github.com/aussiebroadwan/freelancehub/internal/accounts/store/drivers/postgres"
	"github.com/aussiebroadwan/freelancehub/internal/accounts/store/drivers/sqlite"
)

// OpenStore opens the database selected by cfg and brings its schema up to
// date. The caller owns the returned store and must Close it.
func OpenStore(cfg Config) (store.Store, error) {
	var (
		db  store.Store
		err error
	)

	switch cfg.DatabaseDriver {
	case "postgres":
		if cfg.DatabaseDSN == "" {
			return nil, errors.New("ACCOUNTS_DATABASE_DSN is required for the postgres driver")
		}
		db, err = postgres.NewStore(cfg.DatabaseDSN)
	case "sqlite", "":
		db, err = sqlite.NewStore(sqliteDSN(cfg.DatabaseFile))
	default:
		return nil, fmt.Errorf("unknown database driver %q (want sqlite or postgres)", cfg.DatabaseDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}

	return db, nil
}

func sqliteDSN(file string) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", file)
}
