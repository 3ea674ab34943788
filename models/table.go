package models

// Table status
const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
)

// Table adalah satu meja fisik. CurrentOrderID terisi hanya selama meja
// ditempati oleh order yang belum final.
type Table struct {
	ID             string `json:"id"`
	Number         int    `json:"number"`
	Capacity       int    `json:"capacity"`
	Status         string `json:"status"`
	CurrentOrderID string `json:"current_order_id,omitempty"`
}
