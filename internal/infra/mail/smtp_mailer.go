// Package mail implements the Mailer boundary over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpMailer sends mail through a plain-auth SMTP relay.
type smtpMailer struct {
	addr     string
	auth     smtp.Auth
	from     string
	sendMail func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// NewMailer is the constructor for smtpMailer.
func NewMailer(cfg *config.Config) service.Mailer {
	mailer := &smtpMailer{sendMail: smtp.SendMail}
	if cfg.Mail != nil {
		mailer.addr = fmt.Sprintf("%s:%d", cfg.Mail.Host, cfg.Mail.Port)
		mailer.from = cfg.Mail.From
		if cfg.Mail.Username != "" {
			mailer.auth = smtp.PlainAuth("", cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.Host)
		}
	}

	return mailer
}

// Send delivers a single message. The context is checked before the
// dial since net/smtp itself is not context-aware.
func (m *smtpMailer) Send(ctx context.Context, msg service.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "mail send cancelled")
	}

	payload := buildMessage(m.from, msg)
	if err := m.sendMail(m.addr, m.auth, m.from, []string{msg.To}, payload); err != nil {
		return errors.Wrapf(err, "send mail to %s", msg.To)
	}

	return nil
}

const altBoundary = "storefront-alt"

// buildMessage assembles an RFC 5322 message. When both bodies are set
// it emits a multipart/alternative payload with the HTML part last so
// capable clients prefer it.
func buildMessage(from string, msg service.MailMessage) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")

	switch {
	case msg.HTML != "" && msg.Text != "":
		fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", altBoundary)
		fmt.Fprintf(&b, "--%s\r\n", altBoundary)
		b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		b.WriteString(msg.Text)
		fmt.Fprintf(&b, "\r\n--%s\r\n", altBoundary)
		b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
		b.WriteString(msg.HTML)
		fmt.Fprintf(&b, "\r\n--%s--\r\n", altBoundary)
	case msg.HTML != "":
		b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
		b.WriteString(msg.HTML)
		b.WriteString("\r\n")
	default:
		b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		b.WriteString(msg.Text)
		b.WriteString("\r\n")
	}

	return []byte(b.String())
}
