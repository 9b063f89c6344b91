package store

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StorageSlot is the row type backing GormStore: one JSON document per key.
type StorageSlot struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value []byte `gorm:"type:jsonb"`
}

// GormStore persists the slots in a database table. Same contract as
// FileStore; used when a DATABASE_URL is configured.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&StorageSlot{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(key string, out any) error {
	var slot StorageSlot
	if err := s.db.First(&slot, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(slot.Value, out)
}

func (s *GormStore) Put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	slot := StorageSlot{Key: key, Value: data}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&slot).Error
}

func (s *GormStore) Delete(key string) error {
	err := s.db.Delete(&StorageSlot{}, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
