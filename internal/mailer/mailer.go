// Package mailer abstracts outgoing transactional mail. Delivery transport is
// intentionally pluggable; the shipped implementation writes to the log so
// development and test environments need no SMTP credentials.
package mailer

import (
	"context"

	"github.com/rs/zerolog"
)

// Mailer sends the transactional mails the platform produces.
type Mailer interface {
	SendEmailConfirmation(ctx context.Context, email, confirmURL string) error
	SendPasswordReset(ctx context.Context, email, resetURL string) error
	SendNewIPNotice(ctx context.Context, email, username, oldIP, newIP string) error
}

type logMailer struct {
	log zerolog.Logger
}

// NewLogMailer returns a Mailer that records mails instead of delivering them.
func NewLogMailer(log zerolog.Logger) Mailer {
	return &logMailer{log: log}
}

func (m *logMailer) SendEmailConfirmation(ctx context.Context, email, confirmURL string) error {
	m.log.Info().
		Str("to", email).
		Str("confirm_url", confirmURL).
		Msg("email confirmation mail")
	return nil
}

func (m *logMailer) SendPasswordReset(ctx context.Context, email, resetURL string) error {
	m.log.Info().
		Str("to", email).
		Str("reset_url", resetURL).
		Msg("password reset mail")
	return nil
}

func (m *logMailer) SendNewIPNotice(ctx context.Context, email, username, oldIP, newIP string) error {
	m.log.Info().
		Str("to", email).
		Str("username", username).
		Str("old_ip", oldIP).
		Str("new_ip", newIP).
		Msg("new IP address mail")
	return nil
}
