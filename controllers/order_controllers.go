package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/cafe-pos/events"
	"github.com/yeremiapane/cafe-pos/pos"
	"github.com/yeremiapane/cafe-pos/utils"
)

type OrderController struct {
	Orders  *pos.OrderManager
	Catalog *pos.MenuCatalog
}

func NewOrderController(orders *pos.OrderManager, catalog *pos.MenuCatalog) *OrderController {
	return &OrderController{Orders: orders, Catalog: catalog}
}

// GetAllOrders -> riwayat order final (order berjalan tidak termasuk)
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of orders", oc.Orders.History())
}

// GetCurrentOrder -> order berjalan
func (oc *OrderController) GetCurrentOrder(c *gin.Context) {
	order, found := oc.Orders.Current()
	if !found {
		utils.RespondError(c, http.StatusNotFound, errors.New(pos.ReasonNoCurrentOrder))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Current order", order)
}

// CreateOrder -> mengganti order berjalan dengan order kosong baru, meja opsional
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body struct {
		TableID string `json:"table_id"`
	}
	// Body kosong diperbolehkan
	c.ShouldBindJSON(&body)

	actorID := c.GetString("user_id")
	outcome := oc.Orders.NewOrder(actorID, body.TableID)
	if !outcome.Applied {
		respondOutcome(c, outcome, "", nil)
		return
	}

	order, _ := oc.Orders.Current()
	events.BroadcastOrderUpdate(order)
	utils.InfoLogger.Printf("New order %s created by %s (table=%s)", order.ID, actorID, body.TableID)
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// AddItem -> menambahkan menu ke order berjalan. Snapshot nama/harga diambil
// dari katalog di sini; setelah itu order tidak terpengaruh edit katalog.
func (oc *OrderController) AddItem(c *gin.Context) {
	var body struct {
		MenuItemID string `json:"menu_item_id" binding:"required"`
		Quantity   int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menuItem, found := oc.Catalog.GetItem(body.MenuItemID)
	if !found {
		utils.RespondError(c, http.StatusNotFound, errors.New(pos.ReasonMenuNotFound))
		return
	}

	outcome := oc.Orders.AddItem(pos.ItemSnapshot{
		MenuItemID: menuItem.ID,
		Name:       menuItem.Name,
		Price:      menuItem.Price,
		Quantity:   body.Quantity,
	})
	if !outcome.Applied {
		respondOutcome(c, outcome, "", nil)
		return
	}

	order, _ := oc.Orders.Current()
	events.BroadcastOrderUpdate(order)
	utils.RespondJSON(c, http.StatusOK, "Item added", order)
}

// UpdateItem -> ganti quantity; nilai <= 0 menghapus baris
func (oc *OrderController) UpdateItem(c *gin.Context) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	outcome := oc.Orders.SetItemQuantity(c.Param("item_id"), body.Quantity)
	if !outcome.Applied {
		respondOutcome(c, outcome, "", nil)
		return
	}

	order, _ := oc.Orders.Current()
	events.BroadcastOrderUpdate(order)
	utils.RespondJSON(c, http.StatusOK, "Item updated", order)
}

// RemoveItem
func (oc *OrderController) RemoveItem(c *gin.Context) {
	outcome := oc.Orders.RemoveItem(c.Param("item_id"))
	if !outcome.Applied {
		respondOutcome(c, outcome, "", nil)
		return
	}

	order, _ := oc.Orders.Current()
	events.BroadcastOrderUpdate(order)
	utils.RespondJSON(c, http.StatusOK, "Item removed", order)
}

// ApplyDiscount -> set nominal discount flat untuk order berjalan
func (oc *OrderController) ApplyDiscount(c *gin.Context) {
	var body struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	outcome := oc.Orders.ApplyDiscount(body.Amount)
	if !outcome.Applied {
		respondOutcome(c, outcome, "", nil)
		return
	}

	order, _ := oc.Orders.Current()
	events.BroadcastOrderUpdate(order)
	utils.RespondJSON(c, http.StatusOK, "Discount applied", order)
}

// AssignTable -> menautkan order berjalan ke meja
func (oc *OrderController) AssignTable(c *gin.Context) {
	var body struct {
		TableID string `json:"table_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	outcome := oc.Orders.AssignTable(body.TableID)
	if !outcome.Applied {
		respondOutcome(c, outcome, "", nil)
		return
	}

	order, _ := oc.Orders.Current()
	events.BroadcastOrderUpdate(order)
	utils.RespondJSON(c, http.StatusOK, "Table assigned", order)
}

// FinalizeOrder -> tutup order berjalan. pay_now=true: completed/paid dan meja
// bebas; pay_now=false: unpaid, meja tetap occupied sampai dibayar.
func (oc *OrderController) FinalizeOrder(c *gin.Context) {
	var body struct {
		PayNow bool `json:"pay_now"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	before, _ := oc.Orders.Current()

	outcome := oc.Orders.Finalize(body.PayNow)
	if !outcome.Applied {
		respondOutcome(c, outcome, "", nil)
		return
	}

	finalized, _ := oc.Orders.GetByID(before.ID)
	events.BroadcastOrderFinalized(finalized)

	utils.InfoLogger.Printf("Order %s finalized (status=%s, total=%s)",
		finalized.ID, finalized.Status, utils.FormatCurrency(finalized.Total))
	utils.RespondJSON(c, http.StatusOK, "Order finalized", finalized)
}

// CancelOrder -> batalkan order berjalan; order kosong dibuang tanpa jejak
func (oc *OrderController) CancelOrder(c *gin.Context) {
	before, _ := oc.Orders.Current()

	outcome := oc.Orders.Cancel()
	if !outcome.Applied {
		respondOutcome(c, outcome, "", nil)
		return
	}

	if canceled, found := oc.Orders.GetByID(before.ID); found {
		events.BroadcastOrderFinalized(canceled)
	}

	order, _ := oc.Orders.Current()
	utils.RespondJSON(c, http.StatusOK, "Order canceled", order)
}

// PayOrder -> melunasi order riwayat yang ditempatkan dengan bayar-nanti
func (oc *OrderController) PayOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	outcome := oc.Orders.MarkPaid(orderID)
	if !outcome.Applied {
		respondOutcome(c, outcome, "", nil)
		return
	}

	order, _ := oc.Orders.GetByID(orderID)
	events.BroadcastOrderFinalized(order)

	utils.InfoLogger.Printf("Order %s marked as paid (total=%s)", order.ID, utils.FormatCurrency(order.Total))
	utils.RespondJSON(c, http.StatusOK, "Order paid", order)
}

// GetOrderByID -> detail satu order riwayat
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, found := oc.Orders.GetByID(c.Param("order_id"))
	if !found {
		utils.RespondError(c, http.StatusNotFound, errors.New(pos.ReasonOrderNotFound))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}
