package service

import (
	"context"
	"strings"
)

// MailMessage is a rendered outbound email.
type MailMessage struct {
	To      string // Recipient address.
	Subject string // Subject line.
	HTML    string // HTML body.
	Text    string // Plain-text alternative body.
}

// Mailer defines the boundary to the external mail provider.
type Mailer interface {
	// Send delivers a single message. The pipeline does not retry;
	// retry policy belongs to the provider's own client.
	Send(ctx context.Context, msg MailMessage) error
}

// RenderTemplate substitutes {{KEY}}-style placeholders in a template
// with the supplied values. Unknown placeholders are left untouched.
func RenderTemplate(template string, values map[string]string) string {
	if len(values) == 0 {
		return template
	}

	pairs := make([]string, 0, len(values)*2)
	for key, value := range values {
		pairs = append(pairs, "{{"+key+"}}", value)
	}

	return strings.NewReplacer(pairs...).Replace(template)
}
