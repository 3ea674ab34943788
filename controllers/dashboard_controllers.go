package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/pos"
	"github.com/yeremiapane/cafe-pos/utils"
)

type DashboardController struct {
	Orders  *pos.OrderManager
	Tables  *pos.TableManager
	Catalog *pos.MenuCatalog
}

func NewDashboardController(orders *pos.OrderManager, tables *pos.TableManager, catalog *pos.MenuCatalog) *DashboardController {
	return &DashboardController{Orders: orders, Tables: tables, Catalog: catalog}
}

// GetDashboardStats mengambil statistik penjualan untuk dashboard admin
func (dc *DashboardController) GetDashboardStats(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var stats struct {
		TotalOrders   int     `json:"total_orders"`
		TodayOrders   int     `json:"today_orders"`
		TotalSales    float64 `json:"total_sales"`
		TodaySales    float64 `json:"today_sales"`
		AvgOrderValue float64 `json:"avg_order_value"`
		OrderStats    struct {
			Completed int `json:"completed"`
			Unpaid    int `json:"unpaid"`
			Canceled  int `json:"canceled"`
		} `json:"order_stats"`
		TableStats struct {
			Available int `json:"available"`
			Occupied  int `json:"occupied"`
			Reserved  int `json:"reserved"`
		} `json:"table_stats"`
		CategoryStats []struct {
			CategoryID string `json:"category_id"`
			Name       string `json:"name"`
			ItemCount  int    `json:"item_count"`
		} `json:"category_stats"`
	}

	completedCount := 0
	for _, order := range dc.Orders.History() {
		stats.TotalOrders++
		if order.CreatedAt.Format("2006-01-02") == today {
			stats.TodayOrders++
		}

		switch order.Status {
		case models.OrderCompleted:
			stats.OrderStats.Completed++
		case models.OrderUnpaid:
			stats.OrderStats.Unpaid++
		case models.OrderCanceled:
			stats.OrderStats.Canceled++
		}

		// Penjualan hanya dihitung dari order completed
		if order.Status != models.OrderCompleted {
			continue
		}
		completedCount++
		stats.TotalSales += order.Total
		if order.CreatedAt.Format("2006-01-02") == today {
			stats.TodaySales += order.Total
		}
	}

	if completedCount > 0 {
		stats.AvgOrderValue = stats.TotalSales / float64(completedCount)
	}

	for _, table := range dc.Tables.List() {
		switch table.Status {
		case models.TableAvailable:
			stats.TableStats.Available++
		case models.TableOccupied:
			stats.TableStats.Occupied++
		case models.TableReserved:
			stats.TableStats.Reserved++
		}
	}

	items := dc.Catalog.Items()
	for _, category := range dc.Catalog.Categories() {
		count := 0
		for _, item := range items {
			if item.CategoryID == category.ID {
				count++
			}
		}
		stats.CategoryStats = append(stats.CategoryStats, struct {
			CategoryID string `json:"category_id"`
			Name       string `json:"name"`
			ItemCount  int    `json:"item_count"`
		}{category.ID, category.Name, count})
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}
