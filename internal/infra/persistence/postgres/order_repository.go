package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order together with its item snapshot. GORM
// inserts the associated items in the same statement batch.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("order references a missing record")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	*order = *toOrderDomain(orderM)

	return nil
}

// FindByID retrieves an order with its items, scoped to the owning user
// unless userID is uuid.Nil.
func (repo *orderRepository) FindByID(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	query := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", orderID)
	if userID != uuid.Nil {
		query = query.Where("user_id = ?", userID)
	}

	if err := query.First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser retrieves a user's orders, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders for user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// List retrieves orders matching the list parameters across all users,
// newest first.
func (repo *orderRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Order, int64, error) {
	params = params.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Search != "" {
		query = query.Where("gateway_order_id ILIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := query.
		Preload("Items").
		Order("created_at DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// Update persists changes to an existing order. Only the order row is
// written; the item snapshot is immutable after creation.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	orderM.Items = nil

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", orderM.ID).
		Updates(map[string]any{
			"status":             orderM.Status,
			"payment_status":     orderM.PaymentStatus,
			"gateway_payment_id": orderM.GatewayPaymentID,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.OrderItem{
			ID:         itemM.ID,
			OrderID:    itemM.OrderID,
			ProductID:  itemM.ProductID,
			Name:       itemM.Name,
			PriceMinor: itemM.PriceMinor,
			Quantity:   itemM.Quantity,
		})
	}

	return &entity.Order{
		ID:               data.ID,
		UserID:           data.UserID,
		Items:            items,
		SubtotalMinor:    data.SubtotalMinor,
		DiscountMinor:    data.DiscountMinor,
		TotalMinor:       data.TotalMinor,
		CouponID:         data.CouponID,
		AddressID:        data.AddressID,
		Status:           entity.OrderStatus(data.Status),
		PaymentStatus:    entity.PaymentStatus(data.PaymentStatus),
		GatewayOrderID:   data.GatewayOrderID,
		GatewayPaymentID: data.GatewayPaymentID,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:         item.ID,
			OrderID:    item.OrderID,
			ProductID:  item.ProductID,
			Name:       item.Name,
			PriceMinor: item.PriceMinor,
			Quantity:   item.Quantity,
		})
	}

	return &model.OrderModel{
		ID:               data.ID,
		UserID:           data.UserID,
		SubtotalMinor:    data.SubtotalMinor,
		DiscountMinor:    data.DiscountMinor,
		TotalMinor:       data.TotalMinor,
		CouponID:         data.CouponID,
		AddressID:        data.AddressID,
		Status:           string(data.Status),
		PaymentStatus:    string(data.PaymentStatus),
		GatewayOrderID:   data.GatewayOrderID,
		GatewayPaymentID: data.GatewayPaymentID,
		Items:            items,
	}
}
