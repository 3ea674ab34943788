package pos

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/store"
	"github.com/yeremiapane/cafe-pos/utils"
)

// TableLinker adalah satu-satunya jalur perubahan lifecycle order menuju
// koleksi meja. Order dan meja tetap dua aggregate terpisah: dua tulisan
// independen tanpa transaksi gabungan (lihat DESIGN.md).
type TableLinker interface {
	MarkOccupied(tableID, orderID string) Outcome
	MarkAvailable(tableID string) Outcome
}

// ItemSnapshot adalah input AddItem: nama dan harga sudah dipotret dari
// katalog oleh pemanggil, sehingga edit katalog belakangan tidak pernah
// mengubah order yang sedang berjalan.
type ItemSnapshot struct {
	MenuItemID string
	Name       string
	Price      float64
	Quantity   int
}

// OrderManager memiliki satu order berjalan (current) dan daftar riwayat
// append-only. Hanya riwayat yang dipersist; order berjalan hidup di memori,
// sama seperti aslinya.
type OrderManager struct {
	mu      sync.Mutex
	current *models.Order
	history []models.Order
	tables  TableLinker
	store   store.Store
}

func NewOrderManager(s store.Store, tables TableLinker) *OrderManager {
	om := &OrderManager{store: s, tables: tables}
	if err := store.LoadJSON(s, store.OrdersKey, &om.history); err != nil {
		utils.ErrorLogger.Printf("Failed to load orders collection: %v", err)
	}
	return om
}

// persist dipanggil dengan lock sudah dipegang.
func (om *OrderManager) persist() {
	store.SaveJSON(om.store, store.OrdersKey, om.history)
}

// NewOrder membuat order kosong baru sebagai order berjalan. Butuh aktor
// ter-autentikasi; tanpa aktor mutasi dilewati. Jika tableID terisi, meja
// langsung ditandai occupied dan ditautkan ke order ini.
func (om *OrderManager) NewOrder(actorID, tableID string) Outcome {
	if actorID == "" {
		return Skipped(ReasonNoActor)
	}

	om.mu.Lock()
	defer om.mu.Unlock()
	om.startOrder(actorID, tableID)
	return Accepted()
}

// startOrder mengganti order berjalan. Lock harus sudah dipegang.
func (om *OrderManager) startOrder(actorID, tableID string) {
	order := &models.Order{
		ID:            uuid.NewString(),
		Items:         []models.OrderItem{},
		CreatedAt:     time.Now(),
		CreatedBy:     actorID,
		Status:        models.OrderPending,
		PaymentStatus: models.PaymentUnpaid,
		TableID:       tableID,
	}
	om.current = order

	if tableID != "" {
		om.tables.MarkOccupied(tableID, order.ID)
	}
}

// AddItem menambahkan snapshot menu ke order berjalan. Item dengan sumber menu
// yang sama digabung: quantity bertambah, tidak dibuat baris duplikat.
func (om *OrderManager) AddItem(snap ItemSnapshot) Outcome {
	om.mu.Lock()
	defer om.mu.Unlock()

	if om.current == nil {
		return Skipped(ReasonNoCurrentOrder)
	}

	qty := snap.Quantity
	if qty <= 0 {
		qty = 1
	}

	merged := false
	for i := range om.current.Items {
		if om.current.Items[i].MenuItemID == snap.MenuItemID {
			om.current.Items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		om.current.Items = append(om.current.Items, models.OrderItem{
			ID:         uuid.NewString(),
			MenuItemID: snap.MenuItemID,
			Name:       snap.Name,
			Price:      snap.Price,
			Quantity:   qty,
		})
	}

	om.recompute()
	return Accepted()
}

// SetItemQuantity mengganti quantity sebuah line item. Quantity <= 0 sama
// dengan RemoveItem: tidak ada baris ber-quantity nol.
func (om *OrderManager) SetItemQuantity(lineItemID string, quantity int) Outcome {
	om.mu.Lock()
	defer om.mu.Unlock()

	if om.current == nil {
		return Skipped(ReasonNoCurrentOrder)
	}
	if quantity <= 0 {
		return om.removeItemLocked(lineItemID)
	}

	for i := range om.current.Items {
		if om.current.Items[i].ID == lineItemID {
			om.current.Items[i].Quantity = quantity
			om.recompute()
			return Accepted()
		}
	}
	return Skipped(ReasonItemNotFound)
}

func (om *OrderManager) RemoveItem(lineItemID string) Outcome {
	om.mu.Lock()
	defer om.mu.Unlock()

	if om.current == nil {
		return Skipped(ReasonNoCurrentOrder)
	}
	return om.removeItemLocked(lineItemID)
}

func (om *OrderManager) removeItemLocked(lineItemID string) Outcome {
	for i := range om.current.Items {
		if om.current.Items[i].ID == lineItemID {
			om.current.Items = append(om.current.Items[:i], om.current.Items[i+1:]...)
			om.recompute()
			return Accepted()
		}
	}
	return Skipped(ReasonItemNotFound)
}

// ApplyDiscount mengganti nominal discount. Nilai tidak divalidasi terhadap
// subtotal; satu-satunya aturan adalah total tidak boleh di bawah nol.
func (om *OrderManager) ApplyDiscount(amount float64) Outcome {
	om.mu.Lock()
	defer om.mu.Unlock()

	if om.current == nil {
		return Skipped(ReasonNoCurrentOrder)
	}
	om.current.Discount = amount
	om.recompute()
	return Accepted()
}

// Finalize menutup order berjalan. payNow=true berarti completed/paid dan meja
// yang tertaut dibebaskan; payNow=false menempatkan order sebagai unpaid dan
// mejanya tetap occupied sampai pembayaran lewat MarkPaid. Order kosong tidak
// bisa difinalisasi. Setelahnya selalu dibuat order berjalan baru tanpa meja.
func (om *OrderManager) Finalize(payNow bool) Outcome {
	om.mu.Lock()
	defer om.mu.Unlock()

	if om.current == nil {
		return Skipped(ReasonNoCurrentOrder)
	}
	if len(om.current.Items) == 0 {
		return Skipped(ReasonEmptyOrder)
	}

	done := *om.current
	done.Items = append([]models.OrderItem(nil), om.current.Items...)
	if payNow {
		done.Status = models.OrderCompleted
		done.PaymentStatus = models.PaymentPaid
	} else {
		done.Status = models.OrderUnpaid
		done.PaymentStatus = models.PaymentUnpaid
	}

	om.history = append(om.history, done)
	om.persist()

	// Meja hanya dibebaskan ketika dibayar sekarang
	if payNow && done.TableID != "" {
		om.tables.MarkAvailable(done.TableID)
	}

	om.startOrder(done.CreatedBy, "")
	return Accepted()
}

// Cancel membatalkan order berjalan. Order berisi item dicatat ke riwayat
// dengan status canceled dan mejanya dibebaskan; order kosong dibuang tanpa
// jejak riwayat. Selalu dibuat order berjalan baru.
func (om *OrderManager) Cancel() Outcome {
	om.mu.Lock()
	defer om.mu.Unlock()

	if om.current == nil {
		return Skipped(ReasonNoCurrentOrder)
	}

	if len(om.current.Items) > 0 {
		done := *om.current
		done.Items = append([]models.OrderItem(nil), om.current.Items...)
		done.Status = models.OrderCanceled
		done.PaymentStatus = models.PaymentUnpaid

		om.history = append(om.history, done)
		om.persist()

		if done.TableID != "" {
			om.tables.MarkAvailable(done.TableID)
		}
	}

	om.startOrder(om.current.CreatedBy, "")
	return Accepted()
}

// AssignTable menautkan order berjalan ke sebuah meja. Tidak dicek apakah meja
// sudah tertaut ke order aktif lain; tautan lama tertimpa diam-diam (perilaku
// asli yang dipertahankan, lihat DESIGN.md).
func (om *OrderManager) AssignTable(tableID string) Outcome {
	om.mu.Lock()
	defer om.mu.Unlock()

	if om.current == nil {
		return Skipped(ReasonNoCurrentOrder)
	}
	om.current.TableID = tableID
	om.tables.MarkOccupied(tableID, om.current.ID)
	return Accepted()
}

// MarkPaid melunasi order riwayat yang ditempatkan dengan bayar-nanti. Meja
// dibebaskan lebih dulu, kemudian status order diubah ke completed/paid.
func (om *OrderManager) MarkPaid(orderID string) Outcome {
	om.mu.Lock()
	defer om.mu.Unlock()

	idx := -1
	for i := range om.history {
		if om.history[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Skipped(ReasonOrderNotFound)
	}

	if om.history[idx].TableID != "" {
		om.tables.MarkAvailable(om.history[idx].TableID)
	}

	om.history[idx].Status = models.OrderCompleted
	om.history[idx].PaymentStatus = models.PaymentPaid
	om.persist()
	return Accepted()
}

// Current mengembalikan salinan order berjalan.
func (om *OrderManager) Current() (models.Order, bool) {
	om.mu.Lock()
	defer om.mu.Unlock()

	if om.current == nil {
		return models.Order{}, false
	}
	order := *om.current
	order.Items = append([]models.OrderItem(nil), om.current.Items...)
	return order, true
}

// GetByID mencari order di riwayat. Order berjalan tidak termasuk.
func (om *OrderManager) GetByID(orderID string) (models.Order, bool) {
	om.mu.Lock()
	defer om.mu.Unlock()

	for i := range om.history {
		if om.history[i].ID == orderID {
			order := om.history[i]
			order.Items = append([]models.OrderItem(nil), om.history[i].Items...)
			return order, true
		}
	}
	return models.Order{}, false
}

func (om *OrderManager) History() []models.Order {
	om.mu.Lock()
	defer om.mu.Unlock()
	return append([]models.Order(nil), om.history...)
}

// ReplaceHistory mengganti seluruh riwayat, dipakai restore backup.
func (om *OrderManager) ReplaceHistory(orders []models.Order) {
	om.mu.Lock()
	defer om.mu.Unlock()
	om.history = append([]models.Order(nil), orders...)
	om.persist()
}

// recompute menjaga invariant subtotal/total setelah setiap mutasi.
// Lock harus sudah dipegang.
func (om *OrderManager) recompute() {
	om.current.Subtotal, om.current.Total = CalculateTotals(om.current.Items, om.current.Discount)
}
