package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB membuka datastore lokal. Default SQLite file supaya checkout baru
// langsung jalan tanpa setup apapun; set DB_DRIVER=mysql dengan DB_DSN untuk
// memakai server MySQL.
func InitDB() (*gorm.DB, error) {
	switch os.Getenv("DB_DRIVER") {
	case "mysql":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			return nil, fmt.Errorf("DB_DSN is required when DB_DRIVER=mysql")
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "cafe_pos.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
}

// Port mengembalikan port HTTP, default 8080.
func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}
