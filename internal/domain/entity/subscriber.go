package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscriber is a newsletter recipient. Unsubscribing soft-deactivates
// the record instead of deleting it, so re-subscription reuses the row.
type Subscriber struct {
	ID             uuid.UUID  // The unique identifier for the subscriber.
	Email          string     // The subscriber's email, unique across the system.
	IsActive       bool       // False once unsubscribed; campaigns only target active rows.
	SubscribedAt   time.Time  // Timestamp of the (latest) subscription.
	UnsubscribedAt *time.Time // Timestamp of unsubscription, nil while active.
}
