package assignments

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/db/models"
	pkgerrors "github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/errors"
)

type gormTxRunner struct {
	db *gorm.DB
}

func (g gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	tx := g.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func setupAssignmentsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:assignments_test?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS merchants (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  contact_email TEXT NOT NULL,
  contact_phone TEXT NOT NULL,
  address TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  current_balance TEXT NOT NULL DEFAULT '0',
  created_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS roles (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  requires_merchant INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL,
  full_name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  is_staff INTEGER NOT NULL DEFAULT 0,
  email_verified INTEGER NOT NULL DEFAULT 0,
  phone_number TEXT,
  role_id TEXT,
  merchant_id TEXT,
  failed_login_attempts INTEGER NOT NULL DEFAULT 0,
  last_failed_login DATETIME,
  last_login DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS statuses (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  type TEXT NOT NULL,
  created_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  amount TEXT NOT NULL,
  customer_name TEXT NOT NULL,
  address_text TEXT NOT NULL,
  address_latitude REAL,
  address_longitude REAL,
  additional_notes TEXT,
  status_id TEXT NOT NULL,
  merchant_id TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS order_assignments (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  user_id TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  assigned_at DATETIME
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}
	for _, table := range []string{"order_assignments", "orders", "statuses", "users", "roles", "merchants"} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}
	return db
}

func seedOrderAndCouriers(t *testing.T, db *gorm.DB) (*models.Order, *models.User, *models.User) {
	t.Helper()

	merchant := &models.Merchant{Name: "M", ContactEmail: "m@x", ContactPhone: "0", Address: "a"}
	require.NoError(t, db.Create(merchant).Error)

	role := &models.Role{Name: "Driver", RequiresMerchant: true}
	require.NoError(t, db.Create(role).Error)

	status := &models.Status{Name: "Pending", Type: "Order"}
	require.NoError(t, db.Create(status).Error)

	order := &models.Order{
		Title:        "Groceries",
		Amount:       decimal.NewFromInt(40),
		CustomerName: "Dana",
		AddressText:  "2 Main St",
		StatusID:     status.ID,
		MerchantID:   merchant.ID,
	}
	require.NoError(t, db.Create(order).Error)

	courierA := &models.User{Email: "a@x", FullName: "Courier A", PasswordHash: "h", RoleID: &role.ID, MerchantID: &merchant.ID}
	require.NoError(t, db.Create(courierA).Error)
	courierB := &models.User{Email: "b@x", FullName: "Courier B", PasswordHash: "h", RoleID: &role.ID, MerchantID: &merchant.ID}
	require.NoError(t, db.Create(courierB).Error)

	return order, courierA, courierB
}

func newTestService(t *testing.T, db *gorm.DB) (Service, Repository) {
	t.Helper()
	repo := NewRepository(db)
	svc, err := NewService(repo, gormTxRunner{db: db})
	require.NoError(t, err)
	return svc, repo
}

func TestAssignCreatesSingleActiveAssignment(t *testing.T) {
	db := setupAssignmentsTestDB(t)
	svc, repo := newTestService(t, db)
	ctx := context.Background()

	order, courierA, _ := seedOrderAndCouriers(t, db)

	view, err := svc.Assign(ctx, order.ID, courierA.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, view.OrderID)
	assert.Equal(t, courierA.ID, view.UserID)
	assert.True(t, view.IsActive)

	active, err := repo.CountActiveByOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)
}

func TestReassignDeactivatesPriorAssignment(t *testing.T) {
	db := setupAssignmentsTestDB(t)
	svc, repo := newTestService(t, db)
	ctx := context.Background()

	order, courierA, courierB := seedOrderAndCouriers(t, db)

	first, err := svc.Assign(ctx, order.ID, courierA.ID)
	require.NoError(t, err)
	second, err := svc.Assign(ctx, order.ID, courierB.ID)
	require.NoError(t, err)

	active, err := repo.CountActiveByOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)

	rows, err := repo.ListByOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2, "assignment history must be preserved")

	byID := map[uuid.UUID]models.OrderAssignment{}
	for _, row := range rows {
		byID[row.ID] = row
	}
	assert.False(t, byID[first.ID].IsActive)
	assert.True(t, byID[second.ID].IsActive)
	assert.Equal(t, courierB.ID, byID[second.ID].UserID)
}

func TestReassignSameCourierStillSingleActive(t *testing.T) {
	db := setupAssignmentsTestDB(t)
	svc, repo := newTestService(t, db)
	ctx := context.Background()

	order, courierA, _ := seedOrderAndCouriers(t, db)

	_, err := svc.Assign(ctx, order.ID, courierA.ID)
	require.NoError(t, err)
	_, err = svc.Assign(ctx, order.ID, courierA.ID)
	require.NoError(t, err)

	active, err := repo.CountActiveByOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)

	rows, err := repo.ListByOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestAssignUnknownOrderFailsNotFound(t *testing.T) {
	db := setupAssignmentsTestDB(t)
	svc, _ := newTestService(t, db)
	ctx := context.Background()

	_, courierA, _ := seedOrderAndCouriers(t, db)

	_, err := svc.Assign(ctx, uuid.New(), courierA.ID)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestAssignUnknownCourierFailsNotFound(t *testing.T) {
	db := setupAssignmentsTestDB(t)
	svc, repo := newTestService(t, db)
	ctx := context.Background()

	order, _, _ := seedOrderAndCouriers(t, db)

	_, err := svc.Assign(ctx, order.ID, uuid.New())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	rows, listErr := repo.ListByOrder(ctx, order.ID)
	require.NoError(t, listErr)
	assert.Empty(t, rows, "failed assignment must not write rows")
}
