package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/cafe-pos/controllers"
	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/pos"
	"github.com/yeremiapane/cafe-pos/store"
)

func setupReceiptRouter(env *testEnv) *gin.Engine {
	router := gin.Default()
	receiptCtrl := controllers.NewReceiptController(env.Orders, env.Tables, env.Store, env.Images)
	router.GET("/orders/:order_id/receipt", receiptCtrl.GenerateReceipt)
	return router
}

func finalizedOrder(env *testEnv, payNow bool) string {
	category := env.Catalog.AddCategory("Food", "#e74c3c")
	item := env.Catalog.AddItem("Burger", 8.99, category.ID, "")
	env.Orders.NewOrder("U1", "")
	env.Orders.AddItem(pos.ItemSnapshot{MenuItemID: item.ID, Name: item.Name, Price: item.Price, Quantity: 3})
	env.Orders.ApplyDiscount(2)

	current, _ := env.Orders.Current()
	env.Orders.Finalize(payNow)
	return current.ID
}

func TestGenerateReceiptForPaidOrder(t *testing.T) {
	env := newTestEnv()
	store.SaveJSON(env.Store, store.UsersKey, []models.User{
		{ID: "U1", Username: "cashier", Name: "Jane", Role: models.RoleCashier},
	})
	orderID := finalizedOrder(env, true)
	router := setupReceiptRouter(env)

	req, _ := http.NewRequest("GET", "/orders/"+orderID+"/receipt", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})

	receiptInfo := data["receipt_info"].(map[string]interface{})
	assert.Contains(t, receiptInfo["number"], "RCP/")
	assert.Equal(t, "Jane", receiptInfo["cashier"])

	priceDetails := data["price_details"].(map[string]interface{})
	assert.InDelta(t, 26.97, priceDetails["subtotal"].(float64), 0.0001)
	assert.InDelta(t, 24.97, priceDetails["total"].(float64), 0.0001)
	assert.Equal(t, "$24.97", priceDetails["total_formatted"])

	// QR tersimpan sebagai blob dan bisa diambil kembali
	qrImageID := data["qr_image_id"].(string)
	assert.NotEmpty(t, qrImageID)
	png, err := env.Images.GetImage(qrImageID)
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestGenerateReceiptUnpaidOrderRejected(t *testing.T) {
	env := newTestEnv()
	orderID := finalizedOrder(env, false)
	router := setupReceiptRouter(env)

	req, _ := http.NewRequest("GET", "/orders/"+orderID+"/receipt", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "order is not paid", response["message"])
}

func TestGenerateReceiptUnknownOrder(t *testing.T) {
	env := newTestEnv()
	router := setupReceiptRouter(env)

	req, _ := http.NewRequest("GET", "/orders/missing/receipt", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
