// Package postgres persists keys to a Postgres table through gorm.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"hippo/internal/storage/core"
)

// Entry is one stored key.
type Entry struct {
	Key       string `gorm:"column:key;primaryKey"`
	Value     string `gorm:"column:value;not null"`
	UpdatedAt time.Time
}

func (Entry) TableName() string { return "hippo_kv" }

// Store is a key/value table in Postgres.
type Store struct {
	db *gorm.DB
}

var _ core.Store = (*Store)(nil)

// OpenDB connects to Postgres with gorm's logger silenced.
func OpenDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn required")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Open connects and migrates the table.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := OpenDB(dsn)
	if err != nil {
		return nil, err
	}
	return New(ctx, db)
}

// New wraps an existing connection and migrates the table.
func New(ctx context.Context, db *gorm.DB) (*Store, error) {
	if err := db.WithContext(ctx).AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate %s: %w", Entry{}.TableName(), err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Driver() core.Driver { return core.DriverPostgres }

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var row Entry
	err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", core.ErrNotFound
		}
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return row.Value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	row := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&Entry{}).Error; err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
