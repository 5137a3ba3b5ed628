package contacts

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/db/models"
	pkgerrors "github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/errors"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/pagination"
)

func setupContactsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:contacts_test?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE TABLE IF NOT EXISTS contacts (
  id TEXT PRIMARY KEY,
  business_name TEXT NOT NULL,
  contact_name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL,
  business_type TEXT NOT NULL,
  drivers_count INTEGER NOT NULL DEFAULT 0,
  message TEXT NOT NULL,
  created_at DATETIME
);`).Error)
	require.NoError(t, db.Exec("DELETE FROM contacts").Error)
	return db
}

func TestCreateAndGetContact(t *testing.T) {
	db := setupContactsTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		BusinessName: "Speedy Foods",
		ContactName:  "Lina",
		Email:        "lina@speedy.example",
		Phone:        "070000000",
		BusinessType: "Restaurant",
		DriversCount: 4,
		Message:      "We need delivery coverage downtown.",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Speedy Foods", got.BusinessName)
	assert.Equal(t, 4, got.DriversCount)
}

func TestCreateContactValidation(t *testing.T) {
	db := setupContactsTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateInput{Email: "x@y"})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestListContactsOldestFirst(t *testing.T) {
	db := setupContactsTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		contact := &models.Contact{
			BusinessName: name,
			ContactName:  "c",
			Email:        "c@x",
			Phone:        "0",
			BusinessType: "Retail",
			Message:      "m",
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(contact).Error)
	}

	list, err := svc.List(ctx, pagination.Params{PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), list.Total)
	require.Len(t, list.Contacts, 2)
	assert.Equal(t, "first", list.Contacts[0].BusinessName)
	assert.Equal(t, "second", list.Contacts[1].BusinessName)
}

func TestGetUnknownContactNotFound(t *testing.T) {
	db := setupContactsTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), uuid.New())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
