package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/yeremiapane/cafe-pos/events"
	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/pos"
	"github.com/yeremiapane/cafe-pos/store"
	"github.com/yeremiapane/cafe-pos/utils"
)

type ReceiptController struct {
	Orders *pos.OrderManager
	Tables *pos.TableManager
	Store  store.Store
	Images *store.ImageStore
}

func NewReceiptController(orders *pos.OrderManager, tables *pos.TableManager, s store.Store, images *store.ImageStore) *ReceiptController {
	return &ReceiptController{Orders: orders, Tables: tables, Store: s, Images: images}
}

type receiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

type receiptData struct {
	RestaurantInfo struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
	} `json:"restaurant_info"`
	ReceiptInfo struct {
		Number      string    `json:"number"`
		DateTime    time.Time `json:"date_time"`
		TableNumber int       `json:"table_number,omitempty"`
		Cashier     string    `json:"cashier"`
	} `json:"receipt_info"`
	Items        []receiptItem `json:"items"`
	PriceDetails struct {
		Subtotal          float64 `json:"subtotal"`
		Discount          float64 `json:"discount"`
		Total             float64 `json:"total"`
		SubtotalFormatted string  `json:"subtotal_formatted"`
		DiscountFormatted string  `json:"discount_formatted"`
		TotalFormatted    string  `json:"total_formatted"`
	} `json:"price_details"`
	QRImageID string `json:"qr_image_id"`
}

// GenerateReceipt membuat struk untuk order yang sudah lunas.
func (rc *ReceiptController) GenerateReceipt(c *gin.Context) {
	orderID := c.Param("order_id")

	order, found := rc.Orders.GetByID(orderID)
	if !found {
		utils.RespondError(c, http.StatusNotFound, errors.New(pos.ReasonOrderNotFound))
		return
	}

	// Pastikan order sudah dibayar
	if order.PaymentStatus != models.PaymentPaid {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("order is not paid"))
		return
	}

	receiptNumber := fmt.Sprintf("RCP/%s/%s",
		time.Now().Format("20060102"),
		shortID(order.ID))

	var data receiptData
	data.RestaurantInfo.Name = envOr("RESTAURANT_NAME", "Cafe POS")
	data.RestaurantInfo.Address = os.Getenv("RESTAURANT_ADDRESS")
	data.RestaurantInfo.Phone = os.Getenv("RESTAURANT_PHONE")

	data.ReceiptInfo.Number = receiptNumber
	data.ReceiptInfo.DateTime = time.Now()
	data.ReceiptInfo.Cashier = rc.cashierName(order.CreatedBy)
	if order.TableID != "" {
		if table, ok := rc.Tables.GetByID(order.TableID); ok {
			data.ReceiptInfo.TableNumber = table.Number
		}
	}

	for _, item := range order.Items {
		data.Items = append(data.Items, receiptItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Subtotal:  item.Price * float64(item.Quantity),
		})
	}

	data.PriceDetails.Subtotal = order.Subtotal
	data.PriceDetails.Discount = order.Discount
	data.PriceDetails.Total = order.Total
	data.PriceDetails.SubtotalFormatted = utils.FormatCurrency(order.Subtotal)
	data.PriceDetails.DiscountFormatted = utils.FormatCurrency(order.Discount)
	data.PriceDetails.TotalFormatted = utils.FormatCurrency(order.Total)

	// QR berisi nomor struk + id order untuk pencarian ulang
	png, err := qrcode.Encode(receiptNumber+"|"+order.ID, qrcode.Medium, 256)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	qrImageID, err := rc.Images.SaveImage(png)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	data.QRImageID = qrImageID

	events.BroadcastMessage(events.Message{
		Event: events.EventReceiptUpdate,
		Data: map[string]interface{}{
			"order_id":       order.ID,
			"receipt_number": receiptNumber,
		},
	})

	utils.RespondJSON(c, http.StatusOK, "Receipt generated", data)
}

func (rc *ReceiptController) cashierName(userID string) string {
	var users []models.User
	if err := store.LoadJSON(rc.Store, store.UsersKey, &users); err != nil {
		return userID
	}
	for i := range users {
		if users[i].ID == userID {
			return users[i].Name
		}
	}
	return userID
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// shortID memotong uuid menjadi segmen pertama untuk nomor struk yang bisa dibaca.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
