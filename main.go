package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yeremiapane/cafe-pos/config"
	"github.com/yeremiapane/cafe-pos/database"
	"github.com/yeremiapane/cafe-pos/middlewares"
	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/pos"
	"github.com/yeremiapane/cafe-pos/router"
	"github.com/yeremiapane/cafe-pos/services"
	"github.com/yeremiapane/cafe-pos/store"
	"github.com/yeremiapane/cafe-pos/utils"
)

func init() {
	// Load .env di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	// Initialize datastore
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open datastore: %v", err)
	}

	if err := db.AutoMigrate(&models.KVEntry{}, &models.ImageBlob{}); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	// Set gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	kv := store.NewGormStore(db)
	images := store.NewImageStore(db)

	// Seed data awal untuk instalasi baru
	if err := database.Seed(kv); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed collections: %v", err)
	}

	// Managers: order dan meja adalah dua aggregate terpisah yang hanya
	// berkomunikasi lewat TableLinker
	tables := pos.NewTableManager(kv)
	orders := pos.NewOrderManager(kv, tables)
	catalog := pos.NewMenuCatalog(kv)

	// Monitor order bayar-nanti yang menggantung
	monitor := services.NewUnpaidMonitor(orders)
	monitor.Start()
	defer monitor.Stop()

	// Bersihkan blacklist token secara periodik
	go func() {
		for {
			time.Sleep(1 * time.Hour)
			utils.CleanupBlacklist()
		}
	}()

	// Setup router + rate limiter global
	r := router.SetupRouter(router.Deps{
		Store:   kv,
		Images:  images,
		Orders:  orders,
		Tables:  tables,
		Catalog: catalog,
	})
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := config.Port()
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
