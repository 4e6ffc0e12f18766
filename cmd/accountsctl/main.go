// Command accountsctl performs operator tasks against the accounts database:
// creating administrators and seeding portfolio data.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/app"
	"github.com/aussiebroadwan/freelancehub/internal/accounts/store"
	"github.com/aussiebroadwan/freelancehub/pkg/cryptox"
	"github.com/aussiebroadwan/freelancehub/pkg/slogx"
)

var errUsage = errors.New("usage")

func usage(w io.Writer) {
	fmt.Fprint(w, `usage: accountsctl <command> [flags]

commands:
  create-admin     create an administrator (password read from the terminal)
  seed-portfolio   attach a portfolio and its projects to an existing user

The database, pepper and log settings come from the same environment
variables as the accounts service.
`)
}

func main() {
	if len(os.Args) < 2 || os.Args[1] == "help" || os.Args[1] == "-h" {
		usage(os.Stderr)
		os.Exit(2)
	}

	cfg := app.LoadConfig()
	logger := slogx.New(slogx.Config{
		Service: "accountsctl",
		Version: app.BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  os.Stderr,
	})

	cryptox.SetPepperPath(cfg.PepperFile)

	db, err := app.OpenStore(cfg)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	ctx := slogx.WithContext(context.Background(), logger)
	err = run(ctx, db, os.Args[1], os.Args[2:], newPasswordReader(os.Stdin, os.Stderr), os.Stdout)
	_ = db.Close()

	switch {
	case errors.Is(err, errUsage):
		usage(os.Stderr)
		os.Exit(2)
	case err != nil:
		logger.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, db store.Store, cmd string, args []string, pw *passwordReader, out io.Writer) error {
	switch cmd {
	case "create-admin":
		return createAdmin(ctx, db, args, pw, out)
	case "seed-portfolio":
		return seedPortfolio(ctx, db, args, out)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}
