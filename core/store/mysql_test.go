package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestMySQLScan(t *testing.T) {
	db, mock := setupMockDB(t)
	st := NewMySQLStoreWithDB(db)

	rows := sqlmock.NewRows([]string{"purchase_order_number", "status", "last_modified_on", "last_modified_by"})
	rows.AddRow("PO-1", "Open", "14/11/2023, 22:13:20", "alice")
	rows.AddRow("PO-2", "Parked", "15/11/2023, 09:00:00", "bob")

	mock.ExpectQuery("SELECT \\* FROM `purchase_orders`").WillReturnRows(rows)

	orders, err := st.Scan(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "PO-1", orders[0].Number)
	assert.Equal(t, "Parked", orders[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLPut(t *testing.T) {
	db, mock := setupMockDB(t)
	st := NewMySQLStoreWithDB(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `purchase_orders`").
		WithArgs("PO-1", "Open", "14/11/2023, 22:13:20", "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := st.Put(context.Background(), PurchaseOrder{
		Number:         "PO-1",
		Status:         "Open",
		LastModifiedOn: "14/11/2023, 22:13:20",
		LastModifiedBy: "alice",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLDelete(t *testing.T) {
	db, mock := setupMockDB(t)
	st := NewMySQLStoreWithDB(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `purchase_orders`").
		WithArgs("PO-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := st.Delete(context.Background(), "PO-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLScanError(t *testing.T) {
	db, mock := setupMockDB(t)
	st := NewMySQLStoreWithDB(db)

	mock.ExpectQuery("SELECT \\* FROM `purchase_orders`").WillReturnError(assert.AnError)

	_, err := st.Scan(context.Background())

	assert.Error(t, err)
}
