package mail

import (
	"context"
	"fmt"

	portssvc "github.com/gamescorehq/gamescore_app/internal/core/ports/services"
	"gopkg.in/gomail.v2"
)

// SMTPSender delivers mail through a plain SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// Ensure SMTPSender implements portssvc.MailSender
var _ portssvc.MailSender = (*SMTPSender)(nil)

// NewSMTPSender creates an SMTP-backed mail sender.
func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers a plain-text message to a single recipient. The context is
// accepted for interface symmetry; gomail does not support cancellation
// mid-dial, so it is checked once up front.
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
