// Package mail delivers transactional mail over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"quill/config"
	"quill/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpMailer implements service.Mailer over plain SMTP with AUTH.
type smtpMailer struct {
	addr   string
	from   string
	auth   smtp.Auth
	logger *slog.Logger
}

// noopMailer logs the mail instead of sending it. Used in development when
// SMTP is not configured, so OTP codes show up in the server log.
type noopMailer struct {
	logger *slog.Logger
}

// NewMailer creates a Mailer based on configuration. Without SMTP settings it
// falls back to the logging no-op implementation.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	smtpCfg := cfg.SMTP
	if smtpCfg == nil || smtpCfg.Host == "" {
		logger.Info("SMTP not configured, using no-op mailer")

		return &noopMailer{logger: logger}
	}

	var auth smtp.Auth
	if smtpCfg.Username != "" {
		auth = smtp.PlainAuth("", smtpCfg.Username, smtpCfg.Password, smtpCfg.Host)
	}

	return &smtpMailer{
		addr:   fmt.Sprintf("%s:%d", smtpCfg.Host, smtpCfg.Port),
		from:   smtpCfg.From,
		auth:   auth,
		logger: logger,
	}
}

// Send delivers a single plain-text message.
func (m *smtpMailer) Send(ctx context.Context, to string, subject string, body string) error {
	// net/smtp has no context support; honor cancellation before dialing.
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	m.logger.Info("Mail sent",
		slog.String("to", to),
		slog.String("subject", subject),
	)

	return nil
}

// Send logs the message instead of delivering it.
func (m *noopMailer) Send(_ context.Context, to string, subject string, body string) error {
	m.logger.Info("[NoopMailer] Mail suppressed",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("body", body),
	)

	return nil
}
