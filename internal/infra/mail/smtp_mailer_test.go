package mail

import (
	"net/smtp"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Mail = &config.MailConfig{
		Host: "smtp.example.com",
		Port: 587,
		From: "noreply@example.com",
	}

	mailer, ok := NewMailer(cfg).(*smtpMailer)
	require.True(t, ok)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	mailer.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg

		return nil
	}

	err := mailer.Send(t.Context(), service.MailMessage{
		To:      "customer@example.com",
		Subject: "Order confirmed",
		HTML:    "<p>Thanks for your order.</p>",
		Text:    "Thanks for your order.",
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "noreply@example.com", gotFrom)
	assert.Equal(t, []string{"customer@example.com"}, gotTo)

	body := string(gotMsg)
	assert.Contains(t, body, "Subject: Order confirmed")
	assert.Contains(t, body, "multipart/alternative")
	assert.Contains(t, body, "text/plain")
	assert.Contains(t, body, "text/html")
	assert.Contains(t, body, "<p>Thanks for your order.</p>")
}

func TestBuildMessageSingleBody(t *testing.T) {
	t.Parallel()

	msg := buildMessage("noreply@example.com", service.MailMessage{
		To:      "a@example.com",
		Subject: "Hello",
		Text:    "plain only",
	})

	body := string(msg)
	assert.Contains(t, body, "Content-Type: text/plain")
	assert.NotContains(t, body, "multipart")
}

func TestRenderTemplate(t *testing.T) {
	t.Parallel()

	rendered := service.RenderTemplate(
		"Hi {{NAME}}, your order {{ORDER}} has shipped. {{UNKNOWN}} stays.",
		map[string]string{"NAME": "Asha", "ORDER": "ord_42"},
	)

	assert.Equal(t, "Hi Asha, your order ord_42 has shipped. {{UNKNOWN}} stays.", rendered)
}
