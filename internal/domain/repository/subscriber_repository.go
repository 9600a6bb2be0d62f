package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Domain-specific errors for subscriber persistence.
var (
	// ErrSubscriberNotFound is returned when no subscriber matches the email.
	ErrSubscriberNotFound = errors.New("subscriber not found")
	// ErrDuplicateSubscriber is returned when the email unique constraint
	// is violated.
	ErrDuplicateSubscriber = errors.New("subscriber already exists")
)

// SubscriberRepository defines the interface for newsletter subscriber
// database operations.
type SubscriberRepository interface {
	// Create persists a new subscriber.
	Create(ctx context.Context, subscriber *entity.Subscriber) error

	// FindByEmail retrieves a subscriber by email, active or not.
	FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error)

	// Update persists changes to an existing subscriber. Unsubscription
	// is a soft-deactivation through this method, never a delete.
	Update(ctx context.Context, subscriber *entity.Subscriber) error

	// List retrieves subscribers matching the list parameters, newest
	// first, along with the total match count.
	List(ctx context.Context, params ListParams) ([]*entity.Subscriber, int64, error)

	// FindActive retrieves all active subscribers for a campaign send.
	FindActive(ctx context.Context) ([]*entity.Subscriber, error)
}
