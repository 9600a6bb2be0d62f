package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SubscribeInput carries the email joining the newsletter.
type SubscribeInput struct {
	Email string
}

// SendCampaignInput carries a campaign to deliver to every active
// subscriber. Subject and bodies may contain {{KEY}} placeholders
// resolved from Values plus the per-recipient {{EMAIL}}.
type SendCampaignInput struct {
	Subject string
	HTML    string
	Text    string
	Values  map[string]string
}

// SendCampaignOutput reports the delivery tally of a campaign.
type SendCampaignOutput struct {
	Sent   int
	Failed int
}

// ListSubscribersOutput returns a page of subscribers.
type ListSubscribersOutput struct {
	Subscribers []*entity.Subscriber
	Pagination  Pagination
}

// NewsletterUsecase defines the interface for newsletter operations.
// Unsubscribing soft-deactivates; re-subscribing reactivates the row.
type NewsletterUsecase interface {
	Subscribe(ctx context.Context, input *SubscribeInput) (*entity.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error

	// Admin operations.
	ListSubscribers(ctx context.Context, query ListQuery) (*ListSubscribersOutput, error)
	SendCampaign(ctx context.Context, input *SendCampaignInput) (*SendCampaignOutput, error)
}
