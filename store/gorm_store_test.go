package store_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/store"
	"github.com/yeremiapane/cafe-pos/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.Migrator().DropTable(&models.KVEntry{}, &models.ImageBlob{}))
	assert.NoError(t, db.AutoMigrate(&models.KVEntry{}, &models.ImageBlob{}))
	return db
}

func TestGormStorePutGet(t *testing.T) {
	s := store.NewGormStore(setupTestDB(t))

	assert.NoError(t, s.Put("posSettings", []byte(`{"tax":0}`)))

	raw, found, err := s.Get("posSettings")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"tax":0}`, string(raw))
}

func TestGormStoreGetMissingKey(t *testing.T) {
	s := store.NewGormStore(setupTestDB(t))

	raw, found, err := s.Get("posOrders")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, raw)
}

func TestGormStorePutUpserts(t *testing.T) {
	s := store.NewGormStore(setupTestDB(t))

	assert.NoError(t, s.Put("posTables", []byte(`[]`)))
	assert.NoError(t, s.Put("posTables", []byte(`[{"id":"T1"}]`)))

	raw, found, err := s.Get("posTables")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"id":"T1"}]`, string(raw))
}

func TestGormStoreDelete(t *testing.T) {
	s := store.NewGormStore(setupTestDB(t))

	assert.NoError(t, s.Put("posUsers", []byte(`[]`)))
	assert.NoError(t, s.Delete("posUsers"))

	_, found, err := s.Get("posUsers")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestLoadJSONMissingKeyLeavesOutUntouched(t *testing.T) {
	s := store.NewGormStore(setupTestDB(t))

	out := []string{"seeded"}
	assert.NoError(t, store.LoadJSON(s, "posCategories", &out))
	assert.Equal(t, []string{"seeded"}, out)
}

func TestSaveJSONRoundTrip(t *testing.T) {
	s := store.NewGormStore(setupTestDB(t))

	store.SaveJSON(s, "posCategories", []models.Category{{ID: "C1", Name: "Food", Color: "#e74c3c"}})

	var out []models.Category
	assert.NoError(t, store.LoadJSON(s, "posCategories", &out))
	assert.Len(t, out, 1)
	assert.Equal(t, "Food", out[0].Name)
}

func TestImageStoreSaveGetDelete(t *testing.T) {
	images := store.NewImageStore(setupTestDB(t))

	id, err := images.SaveImage([]byte{0x89, 0x50, 0x4e, 0x47})
	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	data, err := images.GetImage(id)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, data)

	assert.NoError(t, images.DeleteImage(id))
	_, err = images.GetImage(id)
	assert.ErrorIs(t, err, store.ErrImageNotFound)
}
