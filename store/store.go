package store

import (
	"encoding/json"

	"github.com/yeremiapane/cafe-pos/utils"
)

// Store adalah boundary persistensi: koleksi utuh disimpan per key sebagai
// blob JSON, sama seperti key localStorage pada build browser.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// Key koleksi. Nama mengikuti key localStorage lama supaya file backup tetap
// kompatibel.
const (
	OrdersKey     = "posOrders"
	TablesKey     = "posTables"
	MenuItemsKey  = "posMenuItems"
	CategoriesKey = "posCategories"
	UsersKey      = "posUsers"
	SettingsKey   = "posSettings"
)

// LoadJSON mengisi out dari koleksi tersimpan. Key yang belum ada bukan error:
// out dibiarkan apa adanya.
func LoadJSON(s Store, key string, out interface{}) error {
	raw, found, err := s.Get(key)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// SaveJSON menulis koleksi secara fire-and-forget: state in-memory sudah
// commit, kegagalan tulis hanya dicatat dan tidak di-rollback.
func SaveJSON(s Store, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to marshal collection %s: %v", key, err)
		return
	}
	if err := s.Put(key, raw); err != nil {
		utils.ErrorLogger.Printf("Failed to persist collection %s: %v", key, err)
	}
}
