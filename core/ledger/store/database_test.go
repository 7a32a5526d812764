package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"trade-ledger/core/ledger"

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

var blobColumns = []string{"key", "data", "updated_at"}

func TestDatabaseStore_Load_MySQL(t *testing.T) {
	selectSQL := regexp.QuoteMeta("SELECT * FROM `ledger_blobs` WHERE `ledger_blobs`.`key` = ?")

	t.Run("Existing Row", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(selectSQL).
			WillReturnRows(sqlmock.NewRows(blobColumns).
				AddRow(DefaultKey, []byte(`[{"receiver":"alice","items":[{"id":1,"name":"Sword","quantity":2}]}]`), time.Now()))

		l, err := NewDatabaseStore(db, DefaultKey).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ledger.Ledger{{Receiver: "alice", Items: []ledger.ItemRecord{{ID: 1, Name: "Sword", Quantity: 2}}}}, l)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Row", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(selectSQL).WillReturnRows(sqlmock.NewRows(blobColumns))

		l, err := NewDatabaseStore(db, DefaultKey).Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, l)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Query Error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(selectSQL).WillReturnError(errors.New("connection reset"))

		_, err := NewDatabaseStore(db, DefaultKey).Load(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestDatabaseStore_Save_MySQL(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `ledger_blobs`") + ".*" + regexp.QuoteMeta("ON DUPLICATE KEY UPDATE")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := NewDatabaseStore(db, DefaultKey).Save(context.Background(), sample)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseStore_Reset_MySQL(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `ledger_blobs` WHERE `ledger_blobs`.`key` = ?")).
		WithArgs(DefaultKey).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewDatabaseStore(db, DefaultKey).Reset(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
