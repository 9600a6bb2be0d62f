package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PaymentSettings is the singleton payment gateway configuration.
// There is at most one row; updates overwrite it in place rather than
// inserting a sibling.
type PaymentSettings struct {
	ID        uuid.UUID // The unique identifier for the row.
	KeyID     string    // Gateway API key id.
	KeySecret string    // Gateway API key secret, used for HMAC signature verification.
	Currency  string    // ISO 4217 currency code, e.g., "INR".
	IsActive  bool      // Whether checkout may create gateway orders.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// SMSSettings is the singleton SMS provider configuration.
type SMSSettings struct {
	ID          uuid.UUID // The unique identifier for the row.
	ProviderURL string    // Base URL of the SMS provider API.
	APIKey      string    // Provider API key.
	SenderID    string    // Registered sender id for outbound messages.
	IsActive    bool      // Whether OTP sending is enabled.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// MaskSecret hides all but the last four characters of a secret for
// display in admin read responses. Short secrets are fully masked.
func MaskSecret(secret string) string {
	const visible = 4
	if secret == "" {
		return ""
	}
	if len(secret) <= visible {
		return strings.Repeat("*", len(secret))
	}

	return strings.Repeat("*", len(secret)-visible) + secret[len(secret)-visible:]
}
