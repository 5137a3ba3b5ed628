package transactions

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/db/models"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/enums"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/pagination"
)

// Repository defines persistence operations for transactions and their
// audit trail.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
	Save(ctx context.Context, transaction *models.Transaction) error
	CreateHistory(ctx context.Context, row *models.TransactionHistory) error
	FindMerchant(ctx context.Context, merchantID uuid.UUID) (*models.Merchant, error)
	FindOrderScoped(ctx context.Context, merchantID, orderID uuid.UUID) (*models.Order, error)
	FindTransactionStatus(ctx context.Context, name string) (*models.Status, error)
	FindScoped(ctx context.Context, merchantID, orderID, transactionID uuid.UUID) (*models.Transaction, error)
	ListHistory(ctx context.Context, transactionID uuid.UUID) ([]models.TransactionHistory, error)
	ListScoped(ctx context.Context, merchantID, orderID uuid.UUID, params pagination.Params) ([]models.Transaction, int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a transactions repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	if err := r.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return nil, err
	}
	return transaction, nil
}

func (r *repository) Save(ctx context.Context, transaction *models.Transaction) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(transaction).Error
}

func (r *repository) CreateHistory(ctx context.Context, row *models.TransactionHistory) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) FindMerchant(ctx context.Context, merchantID uuid.UUID) (*models.Merchant, error) {
	var merchant models.Merchant
	err := r.db.WithContext(ctx).Where("id = ?", merchantID).First(&merchant).Error
	if err != nil {
		return nil, err
	}
	return &merchant, nil
}

func (r *repository) FindOrderScoped(ctx context.Context, merchantID, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Where("id = ? AND merchant_id = ?", orderID, merchantID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) FindTransactionStatus(ctx context.Context, name string) (*models.Status, error) {
	var status models.Status
	err := r.db.WithContext(ctx).
		Where("name = ? AND type = ?", name, enums.StatusTypeTransaction).
		First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *repository) FindScoped(ctx context.Context, merchantID, orderID, transactionID uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.WithContext(ctx).
		Preload("TransactionStatus").
		Where("id = ? AND merchant_id = ? AND order_id = ?", transactionID, merchantID, orderID).
		First(&transaction).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *repository) ListHistory(ctx context.Context, transactionID uuid.UUID) ([]models.TransactionHistory, error) {
	var rows []models.TransactionHistory
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListScoped(ctx context.Context, merchantID, orderID uuid.UUID, params pagination.Params) ([]models.Transaction, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("merchant_id = ? AND order_id = ?", merchantID, orderID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []models.Transaction
	err = r.db.WithContext(ctx).
		Preload("TransactionStatus").
		Where("merchant_id = ? AND order_id = ?", merchantID, orderID).
		Order("created_at DESC").
		Scopes(params.Scope()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
