package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yeremiapane/cafe-pos/models"
)

var ErrImageNotFound = errors.New("image not found")

// ImageStore menyimpan blob gambar (foto menu, QR struk) di tabel image_blobs,
// di-key dengan id opaque. Padanan dari object store IndexedDB di build browser.
type ImageStore struct {
	DB *gorm.DB
}

func NewImageStore(db *gorm.DB) *ImageStore {
	return &ImageStore{DB: db}
}

func (is *ImageStore) SaveImage(data []byte) (string, error) {
	blob := models.ImageBlob{
		ID:   uuid.NewString(),
		Data: data,
	}
	if err := is.DB.Create(&blob).Error; err != nil {
		return "", err
	}
	return blob.ID, nil
}

func (is *ImageStore) GetImage(id string) ([]byte, error) {
	var blob models.ImageBlob
	err := is.DB.First(&blob, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, err
	}
	return blob.Data, nil
}

func (is *ImageStore) DeleteImage(id string) error {
	return is.DB.Delete(&models.ImageBlob{}, "id = ?", id).Error
}
