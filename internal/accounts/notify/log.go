package notify

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/domain"
)

// Log records notifications instead of sending them. It is used when no
// SMTP relay is configured.
type Log struct {
	Logger *slog.Logger
}

func (n *Log) SendWelcome(ctx context.Context, u domain.User) error {
	n.Logger.InfoContext(ctx, "mail not sent (no smtp)",
		slog.String("subject", SubjectWelcome),
		slog.String("user_id", u.ID),
	)
	return nil
}

// SendPasswordReset only logs the link at debug level; it grants access.
func (n *Log) SendPasswordReset(ctx context.Context, u domain.User, link string) error {
	n.Logger.InfoContext(ctx, "mail not sent (no smtp)",
		slog.String("subject", SubjectPasswordReset),
		slog.String("user_id", u.ID),
	)
	n.Logger.DebugContext(ctx, "password reset link", slog.String("user_id", u.ID), slog.String("link", link))
	return nil
}

func (n *Log) SendAccountDeletion(ctx context.Context, email, name string) error {
	n.Logger.InfoContext(ctx, "mail not sent (no smtp)",
		slog.String("subject", SubjectAccountDeletion),
	)
	return nil
}
