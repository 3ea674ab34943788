package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/cafe-pos/events"
	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/pos"
	"github.com/yeremiapane/cafe-pos/utils"
)

type TableController struct {
	Tables *pos.TableManager
}

func NewTableController(tables *pos.TableManager) *TableController {
	return &TableController{Tables: tables}
}

// CreateTable -> menambahkan meja baru
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		Number   int    `json:"number" binding:"required"`
		Capacity int    `json:"capacity" binding:"required"`
		Status   string `json:"status"` // optional, default "available"
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table := tc.Tables.AddTable(req.Number, req.Capacity, req.Status)

	stats := tc.tableStats()
	events.BroadcastMessage(events.Message{
		Event: events.EventTableCreate,
		Data: map[string]interface{}{
			"table": table,
			"stats": stats,
		},
	})

	utils.InfoLogger.Printf("New table created: %d (status=%s)", table.Number, table.Status)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables -> menampilkan seluruh meja, bisa difilter ?status=
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables := tc.Tables.List()

	if status := c.Query("status"); status != "" {
		filtered := make([]models.Table, 0, len(tables))
		for _, t := range tables {
			if t.Status == status {
				filtered = append(filtered, t)
			}
		}
		utils.RespondJSON(c, http.StatusOK, "Tables with status: "+status, filtered)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID -> detail satu meja
func (tc *TableController) GetTableByID(c *gin.Context) {
	table, found := tc.Tables.GetByID(c.Param("table_id"))
	if !found {
		utils.RespondError(c, http.StatusNotFound, errors.New(pos.ReasonTableNotFound))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTable -> merge field yang dikirim ke meja. Edit manual lewat endpoint
// ini bisa menembus invariant occupied<->order-link; lihat DESIGN.md.
func (tc *TableController) UpdateTable(c *gin.Context) {
	tableID := c.Param("table_id")

	var body struct {
		Number         *int    `json:"number"`
		Capacity       *int    `json:"capacity"`
		Status         *string `json:"status"`
		CurrentOrderID *string `json:"current_order_id"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	outcome := tc.Tables.UpdateTable(tableID, pos.TablePatch{
		Number:         body.Number,
		Capacity:       body.Capacity,
		Status:         body.Status,
		CurrentOrderID: body.CurrentOrderID,
	})
	if !outcome.Applied {
		respondOutcome(c, outcome, "", nil)
		return
	}

	table, _ := tc.Tables.GetByID(tableID)
	events.BroadcastTableUpdate(table)

	utils.InfoLogger.Printf("Table %d updated (status=%s)", table.Number, table.Status)
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable -> menghapus meja. Manager sendiri permisif; guard meja occupied
// ada di sini, layer pemanggil.
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID := c.Param("table_id")

	table, found := tc.Tables.GetByID(tableID)
	if !found {
		utils.RespondError(c, http.StatusNotFound, errors.New(pos.ReasonTableNotFound))
		return
	}

	if table.Status == models.TableOccupied {
		utils.RespondError(c, http.StatusConflict, errors.New("table is occupied"))
		return
	}

	tc.Tables.DeleteTable(tableID)

	stats := tc.tableStats()
	events.BroadcastMessage(events.Message{
		Event: events.EventTableDelete,
		Data: map[string]interface{}{
			"table_id": tableID,
			"stats":    stats,
		},
	})

	utils.InfoLogger.Printf("Table %d deleted", table.Number)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{
		"id": tableID,
	})
}

// tableStats menghitung okupansi untuk broadcast dashboard
func (tc *TableController) tableStats() map[string]interface{} {
	var available, occupied, reserved int

	tables := tc.Tables.List()
	for _, t := range tables {
		switch t.Status {
		case models.TableAvailable:
			available++
		case models.TableOccupied:
			occupied++
		case models.TableReserved:
			reserved++
		}
	}

	return map[string]interface{}{
		"available": available,
		"occupied":  occupied,
		"reserved":  reserved,
		"total":     len(tables),
	}
}
