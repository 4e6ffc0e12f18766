package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/domain"
	"github.com/aussiebroadwan/freelancehub/internal/accounts/store"
	"github.com/aussiebroadwan/freelancehub/pkg/cryptox"
	"github.com/aussiebroadwan/freelancehub/pkg/idx"
	"github.com/aussiebroadwan/freelancehub/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidResetToken  = errors.New("invalid_reset_token")
	ErrAdminForbidden     = errors.New("admin_forbidden")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// DefaultNotifyTimeout bounds each outgoing notification.
const DefaultNotifyTimeout = 10 * time.Second

// ResetPath is the public path prefix of password reset links.
const ResetPath = "/v1/password/reset/"

// Notifier delivers account emails. Failures never fail the calling flow.
type Notifier interface {
	SendWelcome(ctx context.Context, u domain.User) error
	SendPasswordReset(ctx context.Context, u domain.User, link string) error
	SendAccountDeletion(ctx context.Context, email, name string) error
}

// ProfileView is what the profile page shows.
type ProfileView struct {
	User           domain.User
	PortfolioCount int64
}

type AccountService struct {
	Store     store.Store
	Resets    *ResetTokens
	Notifier  Notifier
	Validator *Validator

	// PublicURL is prefixed to reset links, e.g. "https://freelancehub.com".
	PublicURL string

	// HideUnknownEmail answers reset requests for unknown addresses exactly
	// like known ones.
	HideUnknownEmail bool

	NotifyTimeout time.Duration
}

// Login authenticates by username or email. Unknown users, wrong passwords
// and inactive accounts all fail with ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, f LoginForm) (domain.User, error) {
	l := slogx.FromContext(ctx)

	// 1. Field checks
	if err := s.Validator.ValidateLogin(f).Err(); err != nil {
		return domain.User{}, err
	}

	// 2. Resolve the login identifier, email first
	u, err := s.Store.Users().GetUserByUsernameOrEmail(ctx, f.Login)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("login for unknown user")
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	// 3. Verify password
	if err := cryptox.VerifyPassword(f.Password, u.PasswordHash); err != nil {
		l.Info("login password mismatch", slog.String("user_id", u.ID))
		return domain.User{}, ErrInvalidCredentials
	}
	if !u.IsActive {
		l.Info("login for inactive user", slog.String("user_id", u.ID))
		return domain.User{}, ErrInvalidCredentials
	}

	l.Info("user logged in", slog.String("user_id", u.ID), slog.Bool("admin", u.IsAdmin))
	return u, nil
}

// Register creates a new user. Duplicate usernames or emails, whether caught
// by the pre-check or by the unique constraint at insert, are reported as
// the same field error.
func (s *AccountService) Register(ctx context.Context, f RegisterForm) (domain.User, error) {
	u, err := s.createUser(ctx, f, false)
	if err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered", slog.String("user_id", u.ID))

	// Best-effort welcome mail
	s.notify(ctx, "welcome", func(ctx context.Context) error {
		return s.Notifier.SendWelcome(ctx, u)
	})

	return u, nil
}

// CreateAdmin inserts an administrator under the registration rules. No mail
// is sent; operators create these from the command line.
func (s *AccountService) CreateAdmin(ctx context.Context, f RegisterForm) (domain.User, error) {
	u, err := s.createUser(ctx, f, true)
	if err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("admin created", slog.String("user_id", u.ID))
	return u, nil
}

func (s *AccountService) createUser(ctx context.Context, f RegisterForm, admin bool) (domain.User, error) {
	// 1. Field rules
	errs := s.Validator.ValidateRegister(f)

	// 2. Hash outside the transaction; argon2 is deliberately slow
	var hash string
	if len(errs) == 0 {
		var err error
		if hash, err = cryptox.HashPassword(f.Password); err != nil {
			return domain.User{}, fmt.Errorf("hash password: %w", err)
		}
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Username:     f.Username,
		Email:        f.Email,
		FirstName:    f.FirstName,
		LastName:     f.LastName,
		PasswordHash: hash,
		IsAdmin:      admin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 3. Uniqueness and insert in one transaction
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := checkUnique(ctx, tx.Users(), errs, f.Username, f.Email, domain.User{}); err != nil {
			return err
		}
		if err := errs.Err(); err != nil {
			return err
		}
		return conflictToFieldErrors(tx.Users().CreateUser(ctx, u))
	})
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// Logout has no server-side state to clear; it only records the event.
func (s *AccountService) Logout(ctx context.Context, id Identity) error {
	if id.UserID == "" {
		return ErrUnauthenticated
	}
	slogx.FromContext(ctx).Info("user logged out", slog.String("user_id", id.UserID))
	return nil
}

// Profile returns the caller and the number of portfolios they own.
func (s *AccountService) Profile(ctx context.Context, id Identity) (ProfileView, error) {
	u, err := s.member(ctx, s.Store, id)
	if err != nil {
		return ProfileView{}, err
	}

	count, err := s.Store.Portfolios().CountByUser(ctx, u.ID)
	if err != nil {
		return ProfileView{}, err
	}
	return ProfileView{User: u, PortfolioCount: count}, nil
}

// UpdateProfile rewrites the editable profile fields. Submitting one's own
// unchanged username or email never reports a conflict.
func (s *AccountService) UpdateProfile(ctx context.Context, id Identity, f ProfileForm) (domain.User, error) {
	l := slogx.FromContext(ctx)

	var updated domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Load the caller; admins are excluded
		current, err := s.member(ctx, tx, id)
		if err != nil {
			return err
		}

		// 2. Field rules, then uniqueness excluding the caller's own values
		errs := s.Validator.ValidateProfile(f)
		if err := checkUnique(ctx, tx.Users(), errs, f.Username, f.Email, current); err != nil {
			return err
		}
		if err := errs.Err(); err != nil {
			return err
		}

		// 3. Single atomic update
		p := domain.ProfileUpdate{
			Username:  f.Username,
			Email:     f.Email,
			FirstName: f.FirstName,
			LastName:  f.LastName,
		}
		if err := conflictToFieldErrors(tx.Users().UpdateProfile(ctx, current.ID, p)); err != nil {
			return err
		}

		updated = current
		updated.Username = p.Username
		updated.Email = p.Email
		updated.FirstName = p.FirstName
		updated.LastName = p.LastName
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	l.Info("profile updated", slog.String("user_id", updated.ID))
	return updated, nil
}

// ChangePassword replaces the caller's password after verifying the current
// one. Other sessions of the user stay valid.
func (s *AccountService) ChangePassword(ctx context.Context, id Identity, f ChangePasswordForm) error {
	l := slogx.FromContext(ctx)

	// 1. Load the caller; admins are excluded
	u, err := s.member(ctx, s.Store, id)
	if err != nil {
		return err
	}

	// 2. Field rules and current password
	errs := s.Validator.ValidateChangePassword(f)
	if !errs.Has(FieldCurrentPassword) && cryptox.VerifyPassword(f.CurrentPassword, u.PasswordHash) != nil {
		errs.Add(FieldCurrentPassword, MsgCurrentPasswordWrong)
	}
	if err := errs.Err(); err != nil {
		return err
	}

	// 3. Store the new hash
	hash, err := cryptox.HashPassword(f.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().UpdatePasswordHash(ctx, u.ID, hash)
	}); err != nil {
		return mapMissingUser(err)
	}

	l.Info("password changed", slog.String("user_id", u.ID))
	return nil
}

// DeleteAccount removes the caller and everything they own, then sends a
// best-effort confirmation. It returns the deleted user.
func (s *AccountService) DeleteAccount(ctx context.Context, id Identity, f DeleteAccountForm) (domain.User, error) {
	l := slogx.FromContext(ctx)

	// 1. Load the caller; admins are excluded
	u, err := s.member(ctx, s.Store, id)
	if err != nil {
		return domain.User{}, err
	}

	// 2. Password and confirmation checkbox
	errs := s.Validator.ValidateDeleteAccount(f)
	if !errs.Has(FieldPassword) && cryptox.VerifyPassword(f.Password, u.PasswordHash) != nil {
		errs.Add(FieldPassword, MsgDeletePasswordWrong)
	}
	if err := errs.Err(); err != nil {
		return domain.User{}, err
	}

	// 3. Delete; portfolios and projects cascade
	if err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().DeleteUser(ctx, u.ID)
	}); err != nil {
		return domain.User{}, mapMissingUser(err)
	}

	l.Info("account deleted", slog.String("user_id", u.ID))

	// 4. Best-effort confirmation
	s.notify(ctx, "account_deletion", func(ctx context.Context) error {
		return s.Notifier.SendAccountDeletion(ctx, u.Email, u.FullName())
	})

	return u, nil
}

// RequestPasswordReset mails a reset link to the owner of the address.
func (s *AccountService) RequestPasswordReset(ctx context.Context, f ResetRequestForm) error {
	l := slogx.FromContext(ctx)

	// 1. Field rules
	errs := s.Validator.ValidateResetRequest(f)
	if err := errs.Err(); err != nil {
		return err
	}

	// 2. Look up the account
	u, err := s.Store.Users().GetUserByEmail(ctx, f.Email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if s.HideUnknownEmail {
			l.Info("password reset requested for unknown email")
			return nil
		}
		errs.Add(FieldEmail, MsgEmailUnknown)
		return errs
	}

	// 3. Issue and send
	token, err := s.Resets.Issue(u)
	if err != nil {
		return fmt.Errorf("issue reset token: %w", err)
	}
	link := s.ResetLink(token)

	s.notify(ctx, "password_reset", func(ctx context.Context) error {
		return s.Notifier.SendPasswordReset(ctx, u, link)
	})

	l.Info("password reset requested", slog.String("user_id", u.ID))
	return nil
}

// ResetLink is the absolute URL of the reset page for token.
func (s *AccountService) ResetLink(token string) string {
	return strings.TrimRight(s.PublicURL, "/") + ResetPath + token
}

// CheckResetToken verifies a token without using it.
func (s *AccountService) CheckResetToken(ctx context.Context, token string) (domain.User, error) {
	u, _, err := s.Resets.Verify(ctx, token)
	return u, err
}

// CompletePasswordReset sets a new password for the token's user. The token
// is verified before the form is looked at.
func (s *AccountService) CompletePasswordReset(ctx context.Context, token string, f ResetPasswordForm) error {
	l := slogx.FromContext(ctx)

	// 1. Token first
	u, claims, err := s.Resets.Verify(ctx, token)
	if err != nil {
		return err
	}

	// 2. Field rules
	if err := s.Validator.ValidateResetPassword(f).Err(); err != nil {
		return err
	}

	// 3. Consume (when enabled) and overwrite the hash together
	hash, err := cryptox.HashPassword(f.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := s.Resets.Consume(ctx, tx, claims); err != nil {
			return err
		}
		return tx.Users().UpdatePasswordHash(ctx, u.ID, hash)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	l.Info("password reset completed", slog.String("user_id", u.ID))
	return nil
}

// member loads the caller and rejects admins.
func (s *AccountService) member(ctx context.Context, st store.Store, id Identity) (domain.User, error) {
	if id.UserID == "" {
		return domain.User{}, ErrUnauthenticated
	}
	u, err := st.Users().GetUserByID(ctx, id.UserID)
	if err != nil {
		return domain.User{}, mapMissingUser(err)
	}
	if u.IsAdmin {
		return domain.User{}, ErrAdminForbidden
	}
	return u, nil
}

// notify runs send under its own deadline and only logs failures.
func (s *AccountService) notify(ctx context.Context, kind string, send func(context.Context) error) {
	if s.Notifier == nil {
		return
	}

	timeout := s.NotifyTimeout
	if timeout <= 0 {
		timeout = DefaultNotifyTimeout
	}
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := send(nctx); err != nil {
		slogx.FromContext(ctx).Warn("notification failed",
			slog.String("kind", kind),
			slog.Any("error", err),
		)
	}
}

// checkUnique adds "already exists" errors for username and email. Values
// equal to current's are the caller's own and are skipped, as are blank ones.
func checkUnique(ctx context.Context, users store.Users, errs FieldErrors, username, email string, current domain.User) error {
	if strings.TrimSpace(username) != "" && username != current.Username {
		taken, err := exists(users.GetUserByUsername(ctx, username))
		if err != nil {
			return err
		}
		if taken {
			errs.Add(FieldUsername, MsgUsernameTaken)
		}
	}

	if strings.TrimSpace(email) != "" && email != current.Email {
		taken, err := exists(users.GetUserByEmail(ctx, email))
		if err != nil {
			return err
		}
		if taken {
			errs.Add(FieldEmail, MsgEmailTaken)
		}
	}
	return nil
}

func exists(_ domain.User, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// conflictToFieldErrors turns a store unique violation into the same field
// error the pre-check would have produced.
func conflictToFieldErrors(err error) error {
	var conflict *store.ConflictError
	if !errors.As(err, &conflict) {
		return err
	}
	switch conflict.Field {
	case store.FieldUsername:
		return FieldErrors{FieldUsername: {MsgUsernameTaken}}
	case store.FieldEmail:
		return FieldErrors{FieldEmail: {MsgEmailTaken}}
	default:
		return err
	}
}

// mapMissingUser treats a vanished session user as unauthenticated.
func mapMissingUser(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrUnauthenticated
	}
	return err
}
