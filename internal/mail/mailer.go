// Package mail delivers outbound transactional email. Callers depend on the
// Mailer interface only; delivery internals stay behind it.
package mail

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	gomail "github.com/wneessen/go-mail"
)

// Mailer dispatches account-related email.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, resetLink string) error
}

const resetSubject = "Jessbook - Reset your password"

func resetBody(resetLink string) string {
	return fmt.Sprintf(`<div style="padding: 10px">
  <p>Click the link below to reset your password:</p>
  <a href="%s" target="_blank" style="font-weight: bold; color: #008080">Change my password</a>
  <p style="margin-top: 10px; font-weight: bold">This link will expire in 1 hour.</p>
</div>`, resetLink)
}

// SMTPMailer sends mail through an authenticated SMTP relay.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, resetLink string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set mail sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set mail recipient: %w", err)
	}
	msg.Subject(resetSubject)
	msg.SetBodyString(gomail.TypeTextHTML, resetBody(resetLink))

	client, err := gomail.NewClient(m.host,
		gomail.WithPort(m.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.username),
		gomail.WithPassword(m.password),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}

// LogMailer writes the reset link to the log instead of sending it. Used when
// no SMTP relay is configured, so the recovery flow stays usable in development.
type LogMailer struct {
	logger *logrus.Logger
}

func NewLogMailer(logger *logrus.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, to, resetLink string) error {
	m.logger.WithFields(logrus.Fields{"to": to, "link": resetLink}).
		Info("password reset mail (smtp not configured)")
	return nil
}
