package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/domain"
	"github.com/aussiebroadwan/freelancehub/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/freelancehub/pkg/cryptox"
	"github.com/aussiebroadwan/freelancehub/pkg/idx"
	"github.com/aussiebroadwan/freelancehub/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "freelancehub-test"
	testPassword = "Secret1!"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "accounts-service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type sentMail struct {
	kind  string
	email string
	name  string
	link  string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (n *fakeNotifier) record(m sentMail) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, m)
	return n.err
}

func (n *fakeNotifier) SendWelcome(ctx context.Context, u domain.User) error {
	return n.record(sentMail{kind: "welcome", email: u.Email, name: u.FullName()})
}

func (n *fakeNotifier) SendPasswordReset(ctx context.Context, u domain.User, link string) error {
	return n.record(sentMail{kind: "reset", email: u.Email, name: u.FullName(), link: link})
}

func (n *fakeNotifier) SendAccountDeletion(ctx context.Context, email, name string) error {
	return n.record(sentMail{kind: "deletion", email: email, name: name})
}

func (n *fakeNotifier) last(t *testing.T) sentMail {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	require.NotEmpty(t, n.sent)
	return n.sent[len(n.sent)-1]
}

type testEnv struct {
	svc      *AccountService
	store    *sqlite.Store
	notifier *fakeNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret, testIssuer, jwtx.TypePasswordReset)
	require.NoError(t, err)

	notifier := &fakeNotifier{}
	svc := &AccountService{
		Store: st,
		Resets: &ResetTokens{
			Signer:   signer,
			Verifier: verifier,
			Store:    st,
			Issuer:   testIssuer,
			Mode:     SingleUseOff,
		},
		Notifier:  notifier,
		Validator: NewValidator(),
		PublicURL: "https://freelancehub.test",
	}
	return &testEnv{svc: svc, store: st, notifier: notifier}
}

// seedUser inserts a user with testPassword directly through the store.
func (e *testEnv) seedUser(t *testing.T, username, email string, admin bool) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword(testPassword)
	require.NoError(t, err)

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		FirstName:    "Jane",
		LastName:     "Doe",
		PasswordHash: hash,
		IsAdmin:      admin,
		IsActive:     true,
	}
	require.NoError(t, e.store.Users().CreateUser(context.Background(), u))
	return u
}

func requireFieldErrors(t *testing.T, err error) FieldErrors {
	t.Helper()
	var fe FieldErrors
	require.True(t, errors.As(err, &fe), "expected FieldErrors, got %v", err)
	return fe
}
