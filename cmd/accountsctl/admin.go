package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/service"
	"github.com/aussiebroadwan/freelancehub/internal/accounts/store"
)

func createAdmin(ctx context.Context, db store.Store, args []string, pw *passwordReader, out io.Writer) error {
	fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	fs.SetOutput(out)

	var f service.RegisterForm
	fs.StringVar(&f.Username, "username", "", "admin username")
	fs.StringVar(&f.Email, "email", "", "admin email address")
	fs.StringVar(&f.FirstName, "first-name", "", "first name")
	fs.StringVar(&f.LastName, "last-name", "", "last name")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	var err error
	if f.Password, err = pw.read("Password: "); err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	if f.ConfirmPassword, err = pw.read("Confirm password: "); err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	svc := &service.AccountService{
		Store:     db,
		Validator: service.NewValidator(),
	}

	u, err := svc.CreateAdmin(ctx, f)
	var fe service.FieldErrors
	if errors.As(err, &fe) {
		printFieldErrors(out, fe)
		return errors.New("admin not created")
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "created admin %s (%s)\n", u.Username, u.ID)

	admins, err := db.Users().CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	fmt.Fprintf(out, "admins: %d\n", admins)
	return nil
}

func printFieldErrors(out io.Writer, fe service.FieldErrors) {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	for _, field := range fields {
		fmt.Fprintf(out, "  %s: %s\n", field, strings.Join(fe[field], "; "))
	}
}
