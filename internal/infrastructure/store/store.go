package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("key not found")

// Document is one persisted key-value entry. All state (the account
// directory, each account's progress document and the current session
// pointer) lives in this single table inside a device-local SQLite file.
type Document struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (Document) TableName() string {
	return "documents"
}

// Store is the durable key-value store scoped to the device. Writes are
// committed before Set returns; there is no dirty buffering.
type Store struct {
	db *gorm.DB
}

// Open creates or opens the SQLite database at path and runs the table
// migration.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open store at %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var doc Document
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.Value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	doc := Document{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Save(&doc).Error
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Document{}, "key = ?", key).Error
}
