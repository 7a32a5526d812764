package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trade-ledger/core/ledger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerBlob is the row holding a serialized ledger.
type LedgerBlob struct {
	Key       string    `gorm:"column:key;primaryKey;size:191"`
	Data      []byte    `gorm:"column:data"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name.
func (LedgerBlob) TableName() string {
	return "ledger_blobs"
}

// DatabaseStore keeps the serialized ledger in a SQL table.
type DatabaseStore struct {
	db  *gorm.DB
	key string
}

// NewDatabaseStore creates a store for key using db.
// The table must exist; see Migrate.
func NewDatabaseStore(db *gorm.DB, key string) *DatabaseStore {
	if key == "" {
		key = DefaultKey
	}
	return &DatabaseStore{db: db, key: key}
}

// Migrate creates or updates the ledger_blobs table.
func (s *DatabaseStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&LedgerBlob{}); err != nil {
		return fmt.Errorf("failed to migrate ledger table: %w", err)
	}
	return nil
}

// Load implements Store.
func (s *DatabaseStore) Load(ctx context.Context) (ledger.Ledger, error) {
	var row LedgerBlob
	err := s.db.WithContext(ctx).Where(&LedgerBlob{Key: s.key}).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ledger.Ledger{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger %s: %w", s.key, err)
	}
	return Decode(row.Data)
}

// Save implements Store.
func (s *DatabaseStore) Save(ctx context.Context, l ledger.Ledger) error {
	data, err := Encode(l)
	if err != nil {
		return err
	}

	row := LedgerBlob{Key: s.key, Data: data, UpdatedAt: time.Now().UTC()}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save ledger %s: %w", s.key, err)
	}
	return nil
}

// Reset implements Store.
func (s *DatabaseStore) Reset(ctx context.Context) error {
	err := s.db.WithContext(ctx).Where(&LedgerBlob{Key: s.key}).Delete(&LedgerBlob{}).Error
	if err != nil {
		return fmt.Errorf("failed to reset ledger %s: %w", s.key, err)
	}
	return nil
}
