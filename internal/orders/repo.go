package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/db/models"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/enums"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/pagination"
)

// Repository defines persistence operations for delivery orders.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindMerchant(ctx context.Context, merchantID uuid.UUID) (*models.Merchant, error)
	FindOrderStatus(ctx context.Context, name string) (*models.Status, error)
	FindScoped(ctx context.Context, merchantID, orderID uuid.UUID) (*models.Order, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID, statusName string, params pagination.Params) ([]models.Order, int64, error)
	ListByCourier(ctx context.Context, courierID uuid.UUID, statusName string, params pagination.Params) ([]models.Order, int64, error)
	ListAssignments(ctx context.Context, orderID uuid.UUID) ([]models.OrderAssignment, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) FindMerchant(ctx context.Context, merchantID uuid.UUID) (*models.Merchant, error) {
	var merchant models.Merchant
	err := r.db.WithContext(ctx).Where("id = ?", merchantID).First(&merchant).Error
	if err != nil {
		return nil, err
	}
	return &merchant, nil
}

func (r *repository) FindOrderStatus(ctx context.Context, name string) (*models.Status, error) {
	var status models.Status
	err := r.db.WithContext(ctx).
		Where("name = ? AND type = ?", name, enums.StatusTypeOrder).
		First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *repository) FindScoped(ctx context.Context, merchantID, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Status").
		Where("id = ? AND merchant_id = ?", orderID, merchantID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func merchantFilter(merchantID uuid.UUID, statusName string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		q = q.Where("orders.merchant_id = ?", merchantID)
		if statusName != "" {
			q = q.
				Joins("JOIN statuses ON statuses.id = orders.status_id").
				Where("statuses.name = ?", statusName)
		}
		return q
	}
}

func (r *repository) ListByMerchant(ctx context.Context, merchantID uuid.UUID, statusName string, params pagination.Params) ([]models.Order, int64, error) {
	filter := merchantFilter(merchantID, statusName)

	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Scopes(filter).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []models.Order
	err = r.db.WithContext(ctx).
		Model(&models.Order{}).
		Scopes(filter).
		Preload("Status").
		Order("orders.created_at DESC").
		Scopes(params.Scope()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// courierFilter scopes orders to a courier's currently active assignments.
// The courier listing is ascending by creation time, the reverse of the
// merchant listing.
func courierFilter(courierID uuid.UUID, statusName string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		q = q.
			Joins("JOIN order_assignments ON order_assignments.order_id = orders.id").
			Where("order_assignments.user_id = ? AND order_assignments.is_active = ?", courierID, true)
		if statusName != "" {
			q = q.
				Joins("JOIN statuses ON statuses.id = orders.status_id").
				Where("statuses.name = ?", statusName)
		}
		return q
	}
}

func (r *repository) ListByCourier(ctx context.Context, courierID uuid.UUID, statusName string, params pagination.Params) ([]models.Order, int64, error) {
	filter := courierFilter(courierID, statusName)

	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Scopes(filter).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []models.Order
	err = r.db.WithContext(ctx).
		Model(&models.Order{}).
		Scopes(filter).
		Preload("Status").
		Order("orders.created_at ASC").
		Scopes(params.Scope()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *repository) ListAssignments(ctx context.Context, orderID uuid.UUID) ([]models.OrderAssignment, error) {
	var rows []models.OrderAssignment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("order_id = ?", orderID).
		Order("assigned_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
