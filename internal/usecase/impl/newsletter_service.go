package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// newsletterService implements the NewsletterUsecase interface.
type newsletterService struct {
	subscriberRepo repository.SubscriberRepository
	mailer         service.Mailer
	logger         *slog.Logger
	now            func() time.Time
}

// NewsletterServiceParams holds dependencies for newsletterService, injected by Fx.
type NewsletterServiceParams struct {
	fx.In

	SubscriberRepo repository.SubscriberRepository
	Mailer         service.Mailer
	Logger         *slog.Logger
}

// NewNewsletterService is the constructor for newsletterService.
func NewNewsletterService(params NewsletterServiceParams) usecase.NewsletterUsecase {
	return &newsletterService{
		subscriberRepo: params.SubscriberRepo,
		mailer:         params.Mailer,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// Subscribe joins the newsletter. An email that unsubscribed earlier is
// reactivated on its existing row; an already active one is returned
// unchanged.
func (srv *newsletterService) Subscribe(ctx context.Context, input *usecase.SubscribeInput) (*entity.Subscriber, error) {
	existing, err := srv.subscriberRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrSubscriberNotFound) {
		return nil, errors.Wrap(err, "failed to look up subscriber")
	}

	if existing != nil {
		if existing.IsActive {
			return existing, nil
		}

		existing.IsActive = true
		existing.SubscribedAt = srv.now()
		existing.UnsubscribedAt = nil
		if err := srv.subscriberRepo.Update(ctx, existing); err != nil {
			return nil, errors.Wrap(err, "failed to reactivate subscriber")
		}

		return existing, nil
	}

	subscriber := &entity.Subscriber{
		Email:        input.Email,
		IsActive:     true,
		SubscribedAt: srv.now(),
	}
	if err := srv.subscriberRepo.Create(ctx, subscriber); err != nil {
		return nil, errors.Wrap(err, "failed to create subscriber")
	}

	return subscriber, nil
}

// Unsubscribe soft-deactivates the subscription; the row is kept so a
// later re-subscription reuses it.
func (srv *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	subscriber, err := srv.subscriberRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriberNotFound) {
			return domainerrors.ErrNotFound.WithMessage("Email is not subscribed")
		}

		return errors.Wrap(err, "failed to look up subscriber")
	}

	if !subscriber.IsActive {
		return nil
	}

	now := srv.now()
	subscriber.IsActive = false
	subscriber.UnsubscribedAt = &now
	if err := srv.subscriberRepo.Update(ctx, subscriber); err != nil {
		return errors.Wrap(err, "failed to deactivate subscriber")
	}

	return nil
}

// ListSubscribers returns a page of subscribers for the back office.
func (srv *newsletterService) ListSubscribers(ctx context.Context, query usecase.ListQuery) (*usecase.ListSubscribersOutput, error) {
	params := query.ToParams()

	subscribers, total, err := srv.subscriberRepo.List(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	return &usecase.ListSubscribersOutput{
		Subscribers: subscribers,
		Pagination:  usecase.Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	}, nil
}

// SendCampaign renders and delivers the campaign to every active
// subscriber. Individual delivery failures are tallied, not fatal.
func (srv *newsletterService) SendCampaign(ctx context.Context, input *usecase.SendCampaignInput) (*usecase.SendCampaignOutput, error) {
	if input.Subject == "" || (input.HTML == "" && input.Text == "") {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Campaign needs a subject and a body")
	}

	subscribers, err := srv.subscriberRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load active subscribers")
	}

	output := &usecase.SendCampaignOutput{}
	for _, subscriber := range subscribers {
		values := make(map[string]string, len(input.Values)+1)
		for key, value := range input.Values {
			values[key] = value
		}
		values["EMAIL"] = subscriber.Email

		msg := service.MailMessage{
			To:      subscriber.Email,
			Subject: service.RenderTemplate(input.Subject, values),
			HTML:    service.RenderTemplate(input.HTML, values),
			Text:    service.RenderTemplate(input.Text, values),
		}
		if err := srv.mailer.Send(ctx, msg); err != nil {
			srv.logger.Warn("Campaign delivery failed",
				slog.String("email", subscriber.Email),
				slog.Any("error", err))
			output.Failed++

			continue
		}
		output.Sent++
	}

	srv.logger.Info("Campaign sent",
		slog.Int("sent", output.Sent),
		slog.Int("failed", output.Failed))

	return output, nil
}
