package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/domain"
	"github.com/aussiebroadwan/freelancehub/pkg/jwtx"
	"github.com/wneessen/go-mail"
)

// sender is the part of *mail.Client the notifier needs.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPConfig configures outgoing mail. Username empty disables SMTP AUTH.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string

	// ResetTTL is quoted in the reset mail.
	ResetTTL time.Duration
}

// SMTP sends account emails through an SMTP relay.
type SMTP struct {
	client   sender
	from     string
	resetTTL time.Duration
	tmpl     *templates
}

func NewSMTP(cfg SMTPConfig) (*SMTP, error) {
	opts := []mail.Option{
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Port > 0 {
		opts = append(opts, mail.WithPort(cfg.Port))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return newSMTP(client, cfg)
}

func newSMTP(client sender, cfg SMTPConfig) (*SMTP, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	from := cfg.Sender
	if from == "" {
		from = DefaultSender
	}
	ttl := cfg.ResetTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultResetTTL
	}
	return &SMTP{client: client, from: from, resetTTL: ttl, tmpl: tmpl}, nil
}

func (s *SMTP) SendWelcome(ctx context.Context, u domain.User) error {
	data := welcomeData{FirstName: u.FirstName, Username: u.Username}
	return s.send(ctx, u.Email, SubjectWelcome, tmplWelcome, data)
}

func (s *SMTP) SendPasswordReset(ctx context.Context, u domain.User, link string) error {
	data := resetData{FirstName: u.FirstName, Link: link, ExpiresIn: humanDuration(s.resetTTL)}
	return s.send(ctx, u.Email, SubjectPasswordReset, tmplPasswordReset, data)
}

func (s *SMTP) SendAccountDeletion(ctx context.Context, email, name string) error {
	return s.send(ctx, email, SubjectAccountDeletion, tmplAccountDeletion, deletionData{Name: name})
}

func (s *SMTP) send(ctx context.Context, to, subject, tmplName string, data any) error {
	msg, err := s.message(to, subject, tmplName, data)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send %s mail: %w", tmplName, err)
	}
	return nil
}

func (s *SMTP) message(to, subject, tmplName string, data any) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject(subject)

	text, html, err := s.tmpl.render(tmplName, data)
	if err != nil {
		return nil, err
	}
	msg.SetBodyString(mail.TypeTextPlain, text)
	msg.AddAlternativeString(mail.TypeTextHTML, html)
	return msg, nil
}
