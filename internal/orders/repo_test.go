package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/db/models"
	pkgerrors "github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/errors"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/pagination"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:orders_test?mode=memory&cache=shared"), &gorm.Config{})
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
  requires_merchant INTEGER NOT NULL DEFAULT 0
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

type ordersFixture struct {
	merchant *models.Merchant
	courier  *models.User
	pending  *models.Status
	transit  *models.Status
}

func seedOrdersFixture(t *testing.T, db *gorm.DB) ordersFixture {
	t.Helper()

	merchant := &models.Merchant{Name: "M", ContactEmail: "m@x", ContactPhone: "0", Address: "a"}
	require.NoError(t, db.Create(merchant).Error)

	role := &models.Role{Name: "Driver", RequiresMerchant: true}
	require.NoError(t, db.Create(role).Error)

	courier := &models.User{Email: "c@x", FullName: "Courier One", PasswordHash: "h", RoleID: &role.ID, MerchantID: &merchant.ID}
	require.NoError(t, db.Create(courier).Error)

	pending := &models.Status{Name: "Pending", Type: "Order"}
	require.NoError(t, db.Create(pending).Error)
	transit := &models.Status{Name: "In Transit", Type: "Order"}
	require.NoError(t, db.Create(transit).Error)

	return ordersFixture{merchant: merchant, courier: courier, pending: pending, transit: transit}
}

func seedOrder(t *testing.T, db *gorm.DB, fx ordersFixture, title string, status *models.Status, createdAt time.Time) *models.Order {
	t.Helper()

	order := &models.Order{
		Title:        title,
		Amount:       decimal.NewFromInt(25),
		CustomerName: "Customer",
		AddressText:  "1 Side St",
		StatusID:     status.ID,
		MerchantID:   fx.merchant.ID,
		CreatedAt:    createdAt,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestMerchantListingDescCourierListingAsc(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	fx := seedOrdersFixture(t, db)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := seedOrder(t, db, fx, "first", fx.pending, base)
	second := seedOrder(t, db, fx, "second", fx.pending, base.Add(time.Hour))
	third := seedOrder(t, db, fx, "third", fx.pending, base.Add(2*time.Hour))

	for _, order := range []*models.Order{first, second, third} {
		require.NoError(t, db.Create(&models.OrderAssignment{
			OrderID: order.ID, UserID: fx.courier.ID, IsActive: true,
		}).Error)
	}

	merchantRows, total, err := repo.ListByMerchant(ctx, fx.merchant.ID, "", pagination.Params{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, merchantRows, 3)
	assert.Equal(t, "third", merchantRows[0].Title)
	assert.Equal(t, "first", merchantRows[2].Title)

	courierRows, total, err := repo.ListByCourier(ctx, fx.courier.ID, "", pagination.Params{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, courierRows, 3)
	assert.Equal(t, "first", courierRows[0].Title)
	assert.Equal(t, "third", courierRows[2].Title)
}

func TestCourierListingSkipsInactiveAssignments(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	fx := seedOrdersFixture(t, db)

	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	active := seedOrder(t, db, fx, "active", fx.pending, base)
	released := seedOrder(t, db, fx, "released", fx.pending, base.Add(time.Minute))

	require.NoError(t, db.Create(&models.OrderAssignment{OrderID: active.ID, UserID: fx.courier.ID, IsActive: true}).Error)
	require.NoError(t, db.Create(&models.OrderAssignment{OrderID: released.ID, UserID: fx.courier.ID, IsActive: false}).Error)

	rows, total, err := repo.ListByCourier(ctx, fx.courier.ID, "", pagination.Params{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "active", rows[0].Title)
}

func TestMerchantListingStatusFilter(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	fx := seedOrdersFixture(t, db)

	base := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	seedOrder(t, db, fx, "waiting", fx.pending, base)
	moving := seedOrder(t, db, fx, "moving", fx.transit, base.Add(time.Minute))

	rows, total, err := repo.ListByMerchant(ctx, fx.merchant.ID, "In Transit", pagination.Params{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, moving.ID, rows[0].ID)
	require.NotNil(t, rows[0].Status)
	assert.Equal(t, "In Transit", rows[0].Status.Name)
}

func TestFindScopedRejectsForeignMerchant(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	fx := seedOrdersFixture(t, db)

	order := seedOrder(t, db, fx, "mine", fx.pending, time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC))

	found, err := repo.FindScoped(ctx, fx.merchant.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)

	_, err = repo.FindScoped(ctx, uuid.New(), order.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestServiceCreateResolvesOrderStatus(t *testing.T) {
	db := setupOrdersTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)
	ctx := context.Background()
	fx := seedOrdersFixture(t, db)

	view, err := svc.Create(ctx, CreateInput{
		MerchantID:   fx.merchant.ID,
		Title:        "Flowers",
		Amount:       decimal.NewFromInt(15),
		CustomerName: "Rami",
		AddressText:  "7 Hill Rd",
		StatusName:   "Pending",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pending", view.Status)
	assert.Equal(t, fx.merchant.ID, view.MerchantID)

	_, err = svc.Create(ctx, CreateInput{
		MerchantID:   fx.merchant.ID,
		Title:        "Flowers",
		Amount:       decimal.NewFromInt(15),
		CustomerName: "Rami",
		AddressText:  "7 Hill Rd",
		StatusName:   "No Such Status",
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestServiceGetProjectsAssignmentHistory(t *testing.T) {
	db := setupOrdersTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)
	ctx := context.Background()
	fx := seedOrdersFixture(t, db)

	order := seedOrder(t, db, fx, "with courier", fx.pending, time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC))
	require.NoError(t, db.Create(&models.OrderAssignment{OrderID: order.ID, UserID: fx.courier.ID, IsActive: true}).Error)

	detail, err := svc.Get(ctx, fx.merchant.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "with courier", detail.Title)
	require.Len(t, detail.Assignments, 1)
	assert.Equal(t, fx.courier.ID, detail.Assignments[0].UserID)
	assert.Equal(t, "Courier One", detail.Assignments[0].UserFullName)
	assert.Equal(t, "c@x", detail.Assignments[0].UserEmail)

	_, err = svc.Get(ctx, uuid.New(), order.ID)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
