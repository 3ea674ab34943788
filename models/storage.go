package models

import "time"

// KVEntry adalah satu koleksi yang dipersist sebagai blob JSON, meniru model
// key-value localStorage dari build browser.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)"`
	Value     []byte    `gorm:"type:blob"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ImageBlob menyimpan gambar menu dan QR struk, di-key dengan id opaque.
type ImageBlob struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	Data      []byte    `gorm:"type:blob"`
	CreatedAt time.Time `gorm:"not null"`
}
