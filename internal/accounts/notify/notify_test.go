package notify

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/domain"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

type fakeSender struct {
	msgs []*mail.Msg
	err  error
}

func (f *fakeSender) DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error {
	f.msgs = append(f.msgs, messages...)
	return f.err
}

var jane = domain.User{
	ID:        "u-1",
	Username:  "jane",
	Email:     "jane@example.com",
	FirstName: "Jane",
	LastName:  "Doe",
}

func TestHumanDuration(t *testing.T) {
	require.Equal(t, "30 minutes", humanDuration(30*time.Minute))
	require.Equal(t, "1 minute", humanDuration(time.Minute))
	require.Equal(t, "1 hour", humanDuration(time.Hour))
	require.Equal(t, "90 minutes", humanDuration(90*time.Minute))
	require.Equal(t, "45 seconds", humanDuration(45*time.Second))
}

func TestRenderPasswordReset(t *testing.T) {
	tmpl, err := loadTemplates()
	require.NoError(t, err)

	link := "https://freelancehub.com/v1/password/reset/abc?x=1&y=2"
	text, html, err := tmpl.render(tmplPasswordReset, resetData{FirstName: "Jane", Link: link, ExpiresIn: "30 minutes"})
	require.NoError(t, err)

	require.Contains(t, text, "Hi Jane,")
	require.Contains(t, text, link)
	require.Contains(t, text, "This link will expire in 30 minutes")
	require.Contains(t, html, `href="https://freelancehub.com/v1/password/reset/abc?x=1&amp;y=2"`)
}

func TestRenderAccountDeletionEscapesName(t *testing.T) {
	tmpl, err := loadTemplates()
	require.NoError(t, err)

	text, html, err := tmpl.render(tmplAccountDeletion, deletionData{Name: "Jane <Doe>"})
	require.NoError(t, err)
	require.Contains(t, text, "Hi Jane <Doe>,")
	require.Contains(t, html, "Hi Jane &lt;Doe&gt;,")
	require.Contains(t, html, "Your portfolio and all projects")
}

func TestSMTPSendsMessages(t *testing.T) {
	ctx := context.Background()
	fs := &fakeSender{}
	n, err := newSMTP(fs, SMTPConfig{})
	require.NoError(t, err)

	require.NoError(t, n.SendWelcome(ctx, jane))
	require.NoError(t, n.SendPasswordReset(ctx, jane, "https://freelancehub.com/v1/password/reset/abc"))
	require.NoError(t, n.SendAccountDeletion(ctx, jane.Email, jane.FullName()))
	require.Len(t, fs.msgs, 3)

	subjects := []string{SubjectWelcome, SubjectPasswordReset, SubjectAccountDeletion}
	for i, msg := range fs.msgs {
		require.Equal(t, []string{subjects[i]}, msg.GetGenHeader(mail.HeaderSubject))

		to, err := msg.GetRecipients()
		require.NoError(t, err)
		require.Equal(t, []string{"jane@example.com"}, to)

		from, err := msg.GetSender(false)
		require.NoError(t, err)
		require.Equal(t, DefaultSender, from)
	}
}

func TestSMTPSendError(t *testing.T) {
	fs := &fakeSender{err: errors.New("connection refused")}
	n, err := newSMTP(fs, SMTPConfig{Sender: "accounts@freelancehub.test"})
	require.NoError(t, err)

	err = n.SendWelcome(context.Background(), jane)
	require.ErrorContains(t, err, "connection refused")
}

func TestSMTPRejectsInvalidRecipient(t *testing.T) {
	fs := &fakeSender{}
	n, err := newSMTP(fs, SMTPConfig{})
	require.NoError(t, err)

	err = n.SendAccountDeletion(context.Background(), "not an address", "Jane Doe")
	require.Error(t, err)
	require.Empty(t, fs.msgs)
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := &Log{Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))}
	ctx := context.Background()

	require.NoError(t, n.SendWelcome(ctx, jane))
	require.NoError(t, n.SendPasswordReset(ctx, jane, "https://freelancehub.com/v1/password/reset/secret-token"))
	require.NoError(t, n.SendAccountDeletion(ctx, jane.Email, jane.FullName()))

	out := buf.String()
	require.Contains(t, out, SubjectPasswordReset)
	require.NotContains(t, out, "secret-token")
}
