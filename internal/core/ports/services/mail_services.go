package services

import "context"

// MailSender is the outbound-email capability the core invokes but does not
// implement. Any error propagates as failure of the enclosing operation.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
