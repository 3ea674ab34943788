package controllers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/pos"
	"github.com/yeremiapane/cafe-pos/store"
	"github.com/yeremiapane/cafe-pos/utils"
)

type BackupController struct {
	Store   store.Store
	Orders  *pos.OrderManager
	Tables  *pos.TableManager
	Catalog *pos.MenuCatalog
}

func NewBackupController(s store.Store, orders *pos.OrderManager, tables *pos.TableManager, catalog *pos.MenuCatalog) *BackupController {
	return &BackupController{Store: s, Orders: orders, Tables: tables, Catalog: catalog}
}

// backupKeys adalah key JSON file backup; sama dengan format export build
// browser supaya file lama tetap bisa di-restore.
var backupKeys = map[string]string{
	"orders":     store.OrdersKey,
	"tables":     store.TablesKey,
	"menuItems":  store.MenuItemsKey,
	"categories": store.CategoriesKey,
	"settings":   store.SettingsKey,
}

// Export menyatukan seluruh koleksi menjadi satu dokumen JSON.
func (bc *BackupController) Export(c *gin.Context) {
	payload := make(map[string]json.RawMessage, len(backupKeys))
	for field, key := range backupKeys {
		raw, found, err := bc.Store.Get(key)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		if !found {
			raw = []byte("null")
		}
		payload[field] = raw
	}

	filename := fmt.Sprintf("pos-backup-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.JSON(http.StatusOK, payload)
}

// Import me-restore seluruh koleksi dari satu dokumen backup. Validasinya
// hanya cek kehadiran key struktural, tanpa versi skema.
func (bc *BackupController) Import(c *gin.Context) {
	var payload map[string]json.RawMessage
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	for field := range backupKeys {
		if _, ok := payload[field]; !ok {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid backup file format"))
			return
		}
	}

	var orders []models.Order
	var tables []models.Table
	var menuItems []models.MenuItem
	var categories []models.Category
	if err := json.Unmarshal(payload["orders"], &orders); err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid orders collection: %w", err))
		return
	}
	if err := json.Unmarshal(payload["tables"], &tables); err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid tables collection: %w", err))
		return
	}
	if err := json.Unmarshal(payload["menuItems"], &menuItems); err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid menuItems collection: %w", err))
		return
	}
	if err := json.Unmarshal(payload["categories"], &categories); err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid categories collection: %w", err))
		return
	}

	bc.Orders.ReplaceHistory(orders)
	bc.Tables.Replace(tables)
	bc.Catalog.Replace(menuItems, categories)
	if string(payload["settings"]) != "null" {
		if err := bc.Store.Put(store.SettingsKey, payload["settings"]); err != nil {
			utils.ErrorLogger.Printf("Failed to restore settings: %v", err)
		}
	}

	utils.InfoLogger.Printf("Backup restored: %d orders, %d tables, %d menu items, %d categories",
		len(orders), len(tables), len(menuItems), len(categories))
	utils.RespondJSON(c, http.StatusOK, "Backup restored", gin.H{
		"orders":     len(orders),
		"tables":     len(tables),
		"menuItems":  len(menuItems),
		"categories": len(categories),
	})
}

// ExportOrdersCSV mengekspor riwayat order sebagai CSV untuk spreadsheet.
func (bc *BackupController) ExportOrdersCSV(c *gin.Context) {
	filename := fmt.Sprintf("pos-orders-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "text/csv")

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"id", "created_at", "created_by", "status", "payment_status", "table_id", "items", "subtotal", "discount", "total"})

	for _, order := range bc.Orders.History() {
		w.Write([]string{
			order.ID,
			order.CreatedAt.Format(time.RFC3339),
			order.CreatedBy,
			order.Status,
			order.PaymentStatus,
			order.TableID,
			strconv.Itoa(len(order.Items)),
			strconv.FormatFloat(order.Subtotal, 'f', 2, 64),
			strconv.FormatFloat(order.Discount, 'f', 2, 64),
			strconv.FormatFloat(order.Total, 'f', 2, 64),
		})
	}
	w.Flush()
}

// GetSettings / PutSettings menyimpan preferensi UI sebagai blob bebas.
func (bc *BackupController) GetSettings(c *gin.Context) {
	raw, found, err := bc.Store.Get(store.SettingsKey)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !found {
		raw = []byte("{}")
	}
	c.Data(http.StatusOK, "application/json", raw)
}

func (bc *BackupController) PutSettings(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !json.Valid(raw) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("settings must be valid JSON"))
		return
	}

	if err := bc.Store.Put(store.SettingsKey, raw); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Settings saved", nil)
}
