package couriers

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/db/models"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/enums"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/pagination"
)

// StatusCount is one row of the per-courier active workload breakdown.
type StatusCount struct {
	Name  string
	Count int64
}

// Repository defines read operations over a merchant's courier pool.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindMerchant(ctx context.Context, merchantID uuid.UUID) (*models.Merchant, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID, params pagination.Params) ([]models.User, int64, error)
	CountActiveAssignments(ctx context.Context, courierID uuid.UUID) (int64, error)
	ActiveOrdersByStatus(ctx context.Context, courierID uuid.UUID) ([]StatusCount, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a couriers repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FindMerchant(ctx context.Context, merchantID uuid.UUID) (*models.Merchant, error) {
	var merchant models.Merchant
	err := r.db.WithContext(ctx).Where("id = ?", merchantID).First(&merchant).Error
	if err != nil {
		return nil, err
	}
	return &merchant, nil
}

func driverFilter(merchantID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		return q.
			Joins("JOIN roles ON roles.id = users.role_id").
			Where("users.merchant_id = ? AND roles.name = ?", merchantID, enums.RoleDriver)
	}
}

func (r *repository) ListByMerchant(ctx context.Context, merchantID uuid.UUID, params pagination.Params) ([]models.User, int64, error) {
	filter := driverFilter(merchantID)

	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Scopes(filter).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []models.User
	err = r.db.WithContext(ctx).
		Model(&models.User{}).
		Scopes(filter).
		Order("users.created_at DESC").
		Scopes(params.Scope()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *repository) CountActiveAssignments(ctx context.Context, courierID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.OrderAssignment{}).
		Where("user_id = ? AND is_active = ?", courierID, true).
		Count(&count).Error
	return count, err
}

func (r *repository) ActiveOrdersByStatus(ctx context.Context, courierID uuid.UUID) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).
		Model(&models.OrderAssignment{}).
		Select("statuses.name AS name, COUNT(*) AS count").
		Joins("JOIN orders ON orders.id = order_assignments.order_id").
		Joins("JOIN statuses ON statuses.id = orders.status_id").
		Where("order_assignments.user_id = ? AND order_assignments.is_active = ?", courierID, true).
		Group("statuses.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
