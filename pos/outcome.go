package pos

// Outcome melaporkan apakah sebuah mutasi benar-benar diterapkan atau dilewati
// karena prekondisinya tidak terpenuhi. Mutasi yang dilewati bukan error: UI
// hanya menampilkan aksi yang sesuai state saat ini, jadi kondisi ini tidak
// muncul pada pemakaian normal tetapi tetap bisa di-assert oleh test.
type Outcome struct {
	Applied bool   `json:"applied"`
	Reason  string `json:"reason,omitempty"`
}

func Accepted() Outcome { return Outcome{Applied: true} }

func Skipped(reason string) Outcome { return Outcome{Reason: reason} }

// Alasan skip
const (
	ReasonNoCurrentOrder   = "no current order"
	ReasonNoActor          = "no authenticated user"
	ReasonItemNotFound     = "line item not found"
	ReasonEmptyOrder       = "order is empty"
	ReasonOrderNotFound    = "order not found"
	ReasonTableNotFound    = "table not found"
	ReasonCategoryInUse    = "category has menu items"
	ReasonMenuNotFound     = "menu item not found"
	ReasonCategoryNotFound = "category not found"
)
