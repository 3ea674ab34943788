package pos

import (
	"math"

	"github.com/yeremiapane/cafe-pos/models"
)

// CalculateTotals menghitung ulang subtotal dan total dari line item sebuah
// order. Discount berupa nominal flat dan tidak pernah membuat total negatif.
// Pemformatan dua desimal terjadi di boundary tampilan, bukan di sini.
func CalculateTotals(items []models.OrderItem, discount float64) (subtotal, total float64) {
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	total = math.Max(0, subtotal-discount)
	return subtotal, total
}
