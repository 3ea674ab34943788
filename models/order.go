package models

import "time"

// Order lifecycle status
const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderCanceled  = "canceled"
	OrderUnpaid    = "unpaid"
)

// Payment status
const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// OrderItem adalah snapshot nilai dari menu item pada saat ditambahkan ke order.
// Perubahan harga/nama di katalog setelah itu tidak pernah mengubah item yang
// sudah tercatat di order.
type OrderItem struct {
	ID         string  `json:"id"`
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type Order struct {
	ID            string      `json:"id"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Discount      float64     `json:"discount"`
	Total         float64     `json:"total"`
	CreatedAt     time.Time   `json:"created_at"`
	CreatedBy     string      `json:"created_by"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"payment_status"`
	TableID       string      `json:"table_id,omitempty"`
}

// Finalized melaporkan apakah order sudah masuk ke salah satu status terminal
// (completed/canceled) atau sudah ditempatkan untuk dibayar nanti.
func (o *Order) Finalized() bool {
	return o.Status != OrderPending
}
