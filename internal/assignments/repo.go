package assignments

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/db/models"
)

// Repository defines persistence operations for courier assignments.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	FindUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	DeactivateForOrder(ctx context.Context, orderID uuid.UUID) error
	Create(ctx context.Context, assignment *models.OrderAssignment) (*models.OrderAssignment, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]models.OrderAssignment, error)
	CountActiveByOrder(ctx context.Context, orderID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an assignments repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FindOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) FindUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Role").Where("id = ?", userID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) DeactivateForOrder(ctx context.Context, orderID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.OrderAssignment{}).
		Where("order_id = ? AND is_active = ?", orderID, true).
		Update("is_active", false).Error
}

func (r *repository) Create(ctx context.Context, assignment *models.OrderAssignment) (*models.OrderAssignment, error) {
	if err := r.db.WithContext(ctx).Create(assignment).Error; err != nil {
		return nil, err
	}
	return assignment, nil
}

func (r *repository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]models.OrderAssignment, error) {
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

func (r *repository) CountActiveByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.OrderAssignment{}).
		Where("order_id = ? AND is_active = ?", orderID, true).
		Count(&count).Error
	return count, err
}
