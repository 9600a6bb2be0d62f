package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriberRepository implements the repository.SubscriberRepository interface.
type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository is the constructor for subscriberRepository.
func NewSubscriberRepository(db *gorm.DB) repository.SubscriberRepository {
	return &subscriberRepository{db: db}
}

// Create persists a new subscriber.
func (repo *subscriberRepository) Create(ctx context.Context, subscriber *entity.Subscriber) error {
	subscriberM := fromSubscriberDomain(subscriber)

	if err := repo.db.WithContext(ctx).Create(subscriberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubscriber
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscriber")
	}

	subscriber.ID = subscriberM.ID

	return nil
}

// FindByEmail retrieves a subscriber by email, active or not.
func (repo *subscriberRepository) FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	var subscriberM model.SubscriberModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&subscriberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriberNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscriber by email")
	}

	return toSubscriberDomain(&subscriberM), nil
}

// Update persists changes to an existing subscriber.
func (repo *subscriberRepository) Update(ctx context.Context, subscriber *entity.Subscriber) error {
	subscriberM := fromSubscriberDomain(subscriber)

	if err := repo.db.WithContext(ctx).Save(subscriberM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update subscriber")
	}

	return nil
}

// List retrieves subscribers matching the list parameters, newest first.
func (repo *subscriberRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Subscriber, int64, error) {
	params = params.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.SubscriberModel{})
	if params.Search != "" {
		query = query.Where("email ILIKE ?", "%"+params.Search+"%")
	}
	switch params.Status {
	case "active":
		query = query.Where("is_active")
	case "inactive":
		query = query.Where("NOT is_active")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count subscribers")
	}

	var subscriberModels []*model.SubscriberModel
	if err := query.
		Order("subscribed_at DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&subscriberModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list subscribers")
	}

	subscribers := make([]*entity.Subscriber, 0, len(subscriberModels))
	for _, subscriberM := range subscriberModels {
		subscribers = append(subscribers, toSubscriberDomain(subscriberM))
	}

	return subscribers, total, nil
}

// FindActive retrieves all active subscribers for a campaign send.
func (repo *subscriberRepository) FindActive(ctx context.Context) ([]*entity.Subscriber, error) {
	var subscriberModels []*model.SubscriberModel

	if err := repo.db.WithContext(ctx).
		Where("is_active").
		Order("subscribed_at ASC").
		Find(&subscriberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active subscribers")
	}

	subscribers := make([]*entity.Subscriber, 0, len(subscriberModels))
	for _, subscriberM := range subscriberModels {
		subscribers = append(subscribers, toSubscriberDomain(subscriberM))
	}

	return subscribers, nil
}

// --- Mapper Functions ---

// toSubscriberDomain converts a GORM SubscriberModel to a domain entity.
func toSubscriberDomain(data *model.SubscriberModel) *entity.Subscriber {
	if data == nil {
		return nil
	}

	return &entity.Subscriber{
		ID:             data.ID,
		Email:          data.Email,
		IsActive:       data.IsActive,
		SubscribedAt:   data.SubscribedAt,
		UnsubscribedAt: data.UnsubscribedAt,
	}
}

// fromSubscriberDomain converts a domain Subscriber to a GORM model.
func fromSubscriberDomain(data *entity.Subscriber) *model.SubscriberModel {
	if data == nil {
		return nil
	}

	return &model.SubscriberModel{
		ID:             data.ID,
		Email:          strings.ToLower(strings.TrimSpace(data.Email)),
		IsActive:       data.IsActive,
		SubscribedAt:   data.SubscribedAt,
		UnsubscribedAt: data.UnsubscribedAt,
	}
}
