package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/cafe-pos/models"
)

// GormStore menyimpan koleksi di satu tabel kv_entries lewat GORM
// (SQLite embedded secara default, MySQL opsional lewat config).
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Get(key string) ([]byte, bool, error) {
	var entry models.KVEntry
	err := s.DB.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return entry.Value, true, nil
}

func (s *GormStore) Put(key string, value []byte) error {
	entry := models.KVEntry{Key: key, Value: value}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&entry).Error
}

func (s *GormStore) Delete(key string) error {
	return s.DB.Delete(&models.KVEntry{}, "key = ?", key).Error
}
