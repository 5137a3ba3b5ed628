package merchants

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/db/models"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/pagination"
)

// Repository defines persistence operations for merchants.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, merchant *models.Merchant) (*models.Merchant, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Merchant, error)
	List(ctx context.Context, params pagination.Params) ([]models.Merchant, int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a merchants repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, merchant *models.Merchant) (*models.Merchant, error) {
	if err := r.db.WithContext(ctx).Create(merchant).Error; err != nil {
		return nil, err
	}
	return merchant, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Merchant, error) {
	var merchant models.Merchant
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&merchant).Error
	if err != nil {
		return nil, err
	}
	return &merchant, nil
}

func (r *repository) List(ctx context.Context, params pagination.Params) ([]models.Merchant, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Merchant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Merchant
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Scopes(params.Scope()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
