package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/cafe-pos/controllers"
	"github.com/yeremiapane/cafe-pos/models"
)

func setupOrderRouter(env *testEnv) *gin.Engine {
	router := gin.Default()
	orderCtrl := controllers.NewOrderController(env.Orders, env.Catalog)

	auth := router.Group("/", authAs("U1", models.RoleCashier))
	auth.GET("/orders", orderCtrl.GetAllOrders)
	auth.POST("/orders", orderCtrl.CreateOrder)
	auth.GET("/orders/current", orderCtrl.GetCurrentOrder)
	auth.POST("/orders/current/items", orderCtrl.AddItem)
	auth.PATCH("/orders/current/items/:item_id", orderCtrl.UpdateItem)
	auth.DELETE("/orders/current/items/:item_id", orderCtrl.RemoveItem)
	auth.POST("/orders/current/discount", orderCtrl.ApplyDiscount)
	auth.POST("/orders/current/table", orderCtrl.AssignTable)
	auth.POST("/orders/current/finalize", orderCtrl.FinalizeOrder)
	auth.POST("/orders/current/cancel", orderCtrl.CancelOrder)
	auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	auth.POST("/orders/:order_id/pay", orderCtrl.PayOrder)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, url string, body interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	assert.NoError(t, err)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(payload))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedMenu(env *testEnv) models.MenuItem {
	category := env.Catalog.AddCategory("Food", "#e74c3c")
	return env.Catalog.AddItem("Burger", 8.99, category.ID, "")
}

func TestOrderCheckoutFlow(t *testing.T) {
	env := newTestEnv()
	burger := seedMenu(env)
	table := env.Tables.AddTable(1, 4, "")
	router := setupOrderRouter(env)

	// Buka order baru di meja 1
	w := postJSON(t, router, "/orders", map[string]string{"table_id": table.ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	got, _ := env.Tables.GetByID(table.ID)
	assert.Equal(t, models.TableOccupied, got.Status)

	// Tiga burger: subtotal 26.97
	w = postJSON(t, router, "/orders/current/items", map[string]interface{}{
		"menu_item_id": burger.ID,
		"quantity":     3,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.InDelta(t, 26.97, data["subtotal"].(float64), 0.0001)

	// Discount 2.00 -> total 24.97
	w = postJSON(t, router, "/orders/current/discount", map[string]float64{"amount": 2})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data = response["data"].(map[string]interface{})
	assert.InDelta(t, 24.97, data["total"].(float64), 0.0001)

	// Bayar sekarang
	w = postJSON(t, router, "/orders/current/finalize", map[string]bool{"pay_now": true})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data = response["data"].(map[string]interface{})
	assert.Equal(t, models.OrderCompleted, data["status"])
	assert.Equal(t, models.PaymentPaid, data["payment_status"])

	// Meja kembali available dan order berjalan baru kosong
	got, _ = env.Tables.GetByID(table.ID)
	assert.Equal(t, models.TableAvailable, got.Status)
	current, _ := env.Orders.Current()
	assert.Empty(t, current.Items)
}

func TestPayLaterThenSettle(t *testing.T) {
	env := newTestEnv()
	burger := seedMenu(env)
	table := env.Tables.AddTable(2, 2, "")
	router := setupOrderRouter(env)

	postJSON(t, router, "/orders", map[string]string{"table_id": table.ID})
	postJSON(t, router, "/orders/current/items", map[string]interface{}{"menu_item_id": burger.ID})

	before, _ := env.Orders.Current()
	w := postJSON(t, router, "/orders/current/finalize", map[string]bool{"pay_now": false})
	assert.Equal(t, http.StatusOK, w.Code)

	// Meja masih occupied selama belum dibayar
	got, _ := env.Tables.GetByID(table.ID)
	assert.Equal(t, models.TableOccupied, got.Status)

	w = postJSON(t, router, "/orders/"+before.ID+"/pay", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	got, _ = env.Tables.GetByID(table.ID)
	assert.Equal(t, models.TableAvailable, got.Status)

	order, _ := env.Orders.GetByID(before.ID)
	assert.Equal(t, models.OrderCompleted, order.Status)
	assert.Equal(t, models.PaymentPaid, order.PaymentStatus)
}

func TestAddItemUnknownMenu(t *testing.T) {
	env := newTestEnv()
	router := setupOrderRouter(env)

	postJSON(t, router, "/orders", nil)
	w := postJSON(t, router, "/orders/current/items", map[string]string{"menu_item_id": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFinalizeEmptyOrderConflict(t *testing.T) {
	env := newTestEnv()
	router := setupOrderRouter(env)

	postJSON(t, router, "/orders", nil)
	w := postJSON(t, router, "/orders/current/finalize", map[string]bool{"pay_now": true})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCancelOrderWithItems(t *testing.T) {
	env := newTestEnv()
	burger := seedMenu(env)
	router := setupOrderRouter(env)

	postJSON(t, router, "/orders", nil)
	postJSON(t, router, "/orders/current/items", map[string]interface{}{"menu_item_id": burger.ID})

	before, _ := env.Orders.Current()
	w := postJSON(t, router, "/orders/current/cancel", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	canceled, found := env.Orders.GetByID(before.ID)
	assert.True(t, found)
	assert.Equal(t, models.OrderCanceled, canceled.Status)
}

func TestUpdateItemQuantityZeroRemovesLine(t *testing.T) {
	env := newTestEnv()
	burger := seedMenu(env)
	router := setupOrderRouter(env)

	postJSON(t, router, "/orders", nil)
	postJSON(t, router, "/orders/current/items", map[string]interface{}{"menu_item_id": burger.ID, "quantity": 2})

	current, _ := env.Orders.Current()
	lineID := current.Items[0].ID

	payload, _ := json.Marshal(map[string]int{"quantity": 0})
	req, _ := http.NewRequest("PATCH", "/orders/current/items/"+lineID, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	current, _ = env.Orders.Current()
	assert.Empty(t, current.Items)
}

func TestGetCurrentOrderBeforeAnyOrder(t *testing.T) {
	env := newTestEnv()
	router := setupOrderRouter(env)

	req, _ := http.NewRequest("GET", "/orders/current", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
