package statuses

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/db/models"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/enums"
)

func setupStatusesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:statuses_test?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS statuses (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  type TEXT NOT NULL,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)
	require.NoError(t, db.Exec(`DELETE FROM statuses`).Error)
	return db
}

func seedStatus(t *testing.T, db *gorm.DB, name string, statusType enums.StatusType) *models.Status {
	t.Helper()
	status := &models.Status{Name: name, Type: statusType}
	require.NoError(t, db.Create(status).Error)
	return status
}

func TestFindByNameAndTypeScopesByType(t *testing.T) {
	db := setupStatusesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	orderPending := seedStatus(t, db, "Pending", enums.StatusTypeOrder)
	txPending := seedStatus(t, db, "Pending", enums.StatusTypeTransaction)

	found, err := repo.FindByNameAndType(ctx, "Pending", enums.StatusTypeTransaction)
	require.NoError(t, err)
	assert.Equal(t, txPending.ID, found.ID)
	assert.NotEqual(t, orderPending.ID, found.ID)

	_, err = repo.FindByNameAndType(ctx, "Shipped", enums.StatusTypeTransaction)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListFiltersByType(t *testing.T) {
	db := setupStatusesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedStatus(t, db, "Pending", enums.StatusTypeOrder)
	seedStatus(t, db, "Delivered", enums.StatusTypeOrder)
	seedStatus(t, db, "Paid", enums.StatusTypeTransaction)

	orderType := enums.StatusTypeOrder
	rows, err := repo.List(ctx, &orderType)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, enums.StatusTypeOrder, row.Type)
	}

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
