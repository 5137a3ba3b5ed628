package contacts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/db/models"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/pagination"
)

// Repository defines persistence operations for contact submissions.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	List(ctx context.Context, params pagination.Params) ([]models.Contact, int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a contacts repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	if err := r.db.WithContext(ctx).Create(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// List returns submissions oldest first so the back office reads them in
// arrival order.
func (r *repository) List(ctx context.Context, params pagination.Params) ([]models.Contact, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Contact{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Contact
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Scopes(params.Scope()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
