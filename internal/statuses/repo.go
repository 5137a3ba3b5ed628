package statuses

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/db/models"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/enums"
)

// Repository defines persistence operations for the status registry.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByNameAndType(ctx context.Context, name string, statusType enums.StatusType) (*models.Status, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Status, error)
	List(ctx context.Context, statusType *enums.StatusType) ([]models.Status, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a statuses repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FindByNameAndType(ctx context.Context, name string, statusType enums.StatusType) (*models.Status, error) {
	var status models.Status
	err := r.db.WithContext(ctx).
		Where("name = ? AND type = ?", name, statusType).
		First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Status, error) {
	var status models.Status
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *repository) List(ctx context.Context, statusType *enums.StatusType) ([]models.Status, error) {
	var rows []models.Status
	query := r.db.WithContext(ctx).Order("type ASC, name ASC")
	if statusType != nil {
		query = query.Where("type = ?", *statusType)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
