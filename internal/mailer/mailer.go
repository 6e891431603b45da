// Package mailer provides the outbound mail transport. Match notifications
// are best-effort: callers log delivery failures and move on.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPSender sends plain-text mail through an SMTP relay.
type SMTPSender struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPSender creates a sender for the relay at host:port.
// Auth is skipped when username is empty (local relays).
func NewSMTPSender(host string, port int, from, username, password string) *SMTPSender {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%d", host, port),
		from: from,
		auth: auth,
	}
}

// Send delivers one plain-text message to a single recipient.
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		s.from, to, subject, body,
	))
	return smtp.SendMail(s.addr, s.auth, s.from, []string{to}, msg)
}
