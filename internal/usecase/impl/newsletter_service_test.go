package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newsletterServiceFixtures holds all test dependencies for newsletter service tests.
type newsletterServiceFixtures struct {
	service        usecase.NewsletterUsecase
	subscriberRepo *mockRepo.MockSubscriberRepository
	mailer         *mockService.MockMailer
}

func createTestNewsletterService(t *testing.T) newsletterServiceFixtures {
	subscriberRepo := mockRepo.NewMockSubscriberRepository(t)
	mailer := mockService.NewMockMailer(t)
	service := NewNewsletterService(NewsletterServiceParams{
		SubscriberRepo: subscriberRepo,
		Mailer:         mailer,
		Logger:         newDiscardLogger(),
	})

	return newsletterServiceFixtures{
		service:        service,
		subscriberRepo: subscriberRepo,
		mailer:         mailer,
	}
}

func TestNewsletterService_Subscribe_New(t *testing.T) {
	fx := createTestNewsletterService(t)

	ctx := context.Background()

	fx.subscriberRepo.EXPECT().FindByEmail(ctx, "asha@example.com").Return(nil, repository.ErrSubscriberNotFound)
	fx.subscriberRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Subscriber")).
		Return(nil)

	subscriber, err := fx.service.Subscribe(ctx, &usecase.SubscribeInput{Email: "asha@example.com"})

	require.NoError(t, err)
	assert.True(t, subscriber.IsActive)
	assert.Equal(t, "asha@example.com", subscriber.Email)
}

func TestNewsletterService_Subscribe_AlreadyActive_Idempotent(t *testing.T) {
	fx := createTestNewsletterService(t)

	ctx := context.Background()
	existing := &entity.Subscriber{
		ID:           uuid.New(),
		Email:        "asha@example.com",
		IsActive:     true,
		SubscribedAt: time.Now().Add(-48 * time.Hour),
	}

	// No Create or Update expectation: the row is returned unchanged.
	fx.subscriberRepo.EXPECT().FindByEmail(ctx, "asha@example.com").Return(existing, nil)

	subscriber, err := fx.service.Subscribe(ctx, &usecase.SubscribeInput{Email: "asha@example.com"})

	require.NoError(t, err)
	assert.Equal(t, existing, subscriber)
}

func TestNewsletterService_Subscribe_Reactivates(t *testing.T) {
	fx := createTestNewsletterService(t)

	ctx := context.Background()
	unsubscribedAt := time.Now().Add(-24 * time.Hour)
	existing := &entity.Subscriber{
		ID:             uuid.New(),
		Email:          "asha@example.com",
		IsActive:       false,
		SubscribedAt:   time.Now().Add(-96 * time.Hour),
		UnsubscribedAt: &unsubscribedAt,
	}

	fx.subscriberRepo.EXPECT().FindByEmail(ctx, "asha@example.com").Return(existing, nil)
	fx.subscriberRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Subscriber")).
		Run(func(ctx context.Context, subscriber *entity.Subscriber) {
			assert.True(t, subscriber.IsActive)
			assert.Nil(t, subscriber.UnsubscribedAt)
		}).
		Return(nil)

	subscriber, err := fx.service.Subscribe(ctx, &usecase.SubscribeInput{Email: "asha@example.com"})

	require.NoError(t, err)
	assert.True(t, subscriber.IsActive)
}

func TestNewsletterService_Unsubscribe_Unknown(t *testing.T) {
	fx := createTestNewsletterService(t)

	ctx := context.Background()

	fx.subscriberRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrSubscriberNotFound)

	err := fx.service.Unsubscribe(ctx, "ghost@example.com")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestNewsletterService_Unsubscribe_AlreadyInactive(t *testing.T) {
	fx := createTestNewsletterService(t)

	ctx := context.Background()
	unsubscribedAt := time.Now().Add(-time.Hour)
	existing := &entity.Subscriber{
		ID:             uuid.New(),
		Email:          "asha@example.com",
		IsActive:       false,
		UnsubscribedAt: &unsubscribedAt,
	}

	// No Update expectation: repeating the unsubscribe is a no-op.
	fx.subscriberRepo.EXPECT().FindByEmail(ctx, "asha@example.com").Return(existing, nil)

	err := fx.service.Unsubscribe(ctx, "asha@example.com")

	assert.NoError(t, err)
}

func TestNewsletterService_Unsubscribe_Deactivates(t *testing.T) {
	fx := createTestNewsletterService(t)

	ctx := context.Background()
	existing := &entity.Subscriber{
		ID:       uuid.New(),
		Email:    "asha@example.com",
		IsActive: true,
	}

	fx.subscriberRepo.EXPECT().FindByEmail(ctx, "asha@example.com").Return(existing, nil)
	fx.subscriberRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Subscriber")).
		Run(func(ctx context.Context, subscriber *entity.Subscriber) {
			assert.False(t, subscriber.IsActive)
			assert.NotNil(t, subscriber.UnsubscribedAt)
		}).
		Return(nil)

	err := fx.service.Unsubscribe(ctx, "asha@example.com")

	assert.NoError(t, err)
}

func TestNewsletterService_SendCampaign_TalliesFailures(t *testing.T) {
	fx := createTestNewsletterService(t)

	ctx := context.Background()
	subscribers := []*entity.Subscriber{
		{Email: "one@example.com", IsActive: true},
		{Email: "two@example.com", IsActive: true},
		{Email: "three@example.com", IsActive: true},
	}

	fx.subscriberRepo.EXPECT().FindActive(ctx).Return(subscribers, nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg service.MailMessage) bool {
			return msg.To == "two@example.com"
		})).
		Return(errors.New("mailbox full"))
	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg service.MailMessage) bool {
			return msg.To != "two@example.com"
		})).
		Return(nil)

	output, err := fx.service.SendCampaign(ctx, &usecase.SendCampaignInput{
		Subject: "June sale",
		Text:    "Hello {{EMAIL}}, everything is 10% off this week.",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, output.Sent)
	assert.Equal(t, 1, output.Failed)
}

func TestNewsletterService_SendCampaign_PersonalizesRecipient(t *testing.T) {
	fx := createTestNewsletterService(t)

	ctx := context.Background()

	fx.subscriberRepo.EXPECT().FindActive(ctx).Return([]*entity.Subscriber{
		{Email: "asha@example.com", IsActive: true},
	}, nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg service.MailMessage) bool {
			return msg.Text == "Hello asha@example.com, welcome."
		})).
		Return(nil)

	output, err := fx.service.SendCampaign(ctx, &usecase.SendCampaignInput{
		Subject: "Welcome",
		Text:    "Hello {{EMAIL}}, welcome.",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Sent)
}

func TestNewsletterService_SendCampaign_MissingBody(t *testing.T) {
	fx := createTestNewsletterService(t)

	_, err := fx.service.SendCampaign(context.Background(), &usecase.SendCampaignInput{
		Subject: "Empty",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}
