// Package notify delivers account emails. SMTP sends rendered text and HTML
// bodies; Log only records what would have been sent.
package notify

import (
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// DefaultSender is the From address used when none is configured.
const DefaultSender = "noreply@freelancehub.com"

const (
	SubjectWelcome         = "Welcome to FreelanceHub"
	SubjectPasswordReset   = "Password Reset Request - FreelanceHub"
	SubjectAccountDeletion = "Account Deletion Confirmation - FreelanceHub"
)

const (
	tmplWelcome         = "welcome"
	tmplPasswordReset   = "password_reset"
	tmplAccountDeletion = "account_deletion"
)

type welcomeData struct {
	FirstName string
	Username  string
}

type resetData struct {
	FirstName string
	Link      string
	ExpiresIn string
}

type deletionData struct {
	Name string
}

// templates holds the parsed text and HTML variant of every message.
type templates struct {
	text map[string]*texttemplate.Template
	html map[string]*htmltemplate.Template
}

func loadTemplates() (*templates, error) {
	t := &templates{
		text: make(map[string]*texttemplate.Template),
		html: make(map[string]*htmltemplate.Template),
	}
	for _, name := range []string{tmplWelcome, tmplPasswordReset, tmplAccountDeletion} {
		txt, err := texttemplate.ParseFS(templateFS, "templates/"+name+".txt.tmpl")
		if err != nil {
			return nil, fmt.Errorf("parse %s text template: %w", name, err)
		}
		html, err := htmltemplate.ParseFS(templateFS, "templates/"+name+".html.tmpl")
		if err != nil {
			return nil, fmt.Errorf("parse %s html template: %w", name, err)
		}
		t.text[name] = txt
		t.html[name] = html
	}
	return t, nil
}

// humanDuration renders d the way the reset mail states the link lifetime,
// e.g. "30 minutes" or "1 hour".
func humanDuration(d time.Duration) string {
	plural := func(n int64, unit string) string {
		if n == 1 {
			return "1 " + unit
		}
		return fmt.Sprintf("%d %ss", n, unit)
	}

	switch {
	case d >= time.Hour && d%time.Hour == 0:
		return plural(int64(d/time.Hour), "hour")
	case d >= time.Minute:
		return plural(int64(d/time.Minute), "minute")
	default:
		return plural(int64(d/time.Second), "second")
	}
}

// render executes both variants of a message.
func (t *templates) render(name string, data any) (text, html string, err error) {
	var tb, hb strings.Builder
	if err := t.text[name].Execute(&tb, data); err != nil {
		return "", "", fmt.Errorf("render %s text: %w", name, err)
	}
	if err := t.html[name].Execute(&hb, data); err != nil {
		return "", "", fmt.Errorf("render %s html: %w", name, err)
	}
	return tb.String(), hb.String(), nil
}
