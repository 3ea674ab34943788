package pos

import (
	"sync"

	"github.com/google/uuid"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/store"
	"github.com/yeremiapane/cafe-pos/utils"
)

// TablePatch berisi field yang ingin di-merge lewat UpdateTable. Field nil
// dibiarkan apa adanya; CurrentOrderID string kosong menghapus tautan order.
type TablePatch struct {
	Number         *int
	Capacity       *int
	Status         *string
	CurrentOrderID *string
}

// TableManager memiliki koleksi meja. Status occupied dan tautan order hanya
// diubah OrderManager lewat MarkOccupied/MarkAvailable; UpdateTable manual
// oleh admin bisa menembus invariant itu (celah yang disengaja, lihat DESIGN.md).
type TableManager struct {
	mu     sync.Mutex
	tables []models.Table
	store  store.Store
}

func NewTableManager(s store.Store) *TableManager {
	tm := &TableManager{store: s}
	if err := store.LoadJSON(s, store.TablesKey, &tm.tables); err != nil {
		utils.ErrorLogger.Printf("Failed to load tables collection: %v", err)
	}
	return tm
}

// persist dipanggil dengan lock sudah dipegang.
func (tm *TableManager) persist() {
	store.SaveJSON(tm.store, store.TablesKey, tm.tables)
}

// AddTable menambahkan meja baru. Nomor meja tidak dicek unik dan nilai
// non-positif diterima apa adanya.
func (tm *TableManager) AddTable(number, capacity int, status string) models.Table {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if status == "" {
		status = models.TableAvailable
	}
	table := models.Table{
		ID:       uuid.NewString(),
		Number:   number,
		Capacity: capacity,
		Status:   status,
	}
	tm.tables = append(tm.tables, table)
	tm.persist()
	return table
}

// UpdateTable me-merge patch ke meja yang cocok. No-op jika id tidak ditemukan.
func (tm *TableManager) UpdateTable(id string, patch TablePatch) Outcome {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	idx := tm.indexOf(id)
	if idx < 0 {
		return Skipped(ReasonTableNotFound)
	}

	table := &tm.tables[idx]
	if patch.Number != nil {
		table.Number = *patch.Number
	}
	if patch.Capacity != nil {
		table.Capacity = *patch.Capacity
	}
	if patch.Status != nil {
		table.Status = *patch.Status
	}
	if patch.CurrentOrderID != nil {
		table.CurrentOrderID = *patch.CurrentOrderID
	}

	tm.persist()
	return Accepted()
}

// DeleteTable menghapus meja tanpa syarat. Guard "meja occupied tidak boleh
// dihapus" adalah tanggung jawab pemanggil di layer HTTP.
func (tm *TableManager) DeleteTable(id string) Outcome {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	idx := tm.indexOf(id)
	if idx < 0 {
		return Skipped(ReasonTableNotFound)
	}
	tm.tables = append(tm.tables[:idx], tm.tables[idx+1:]...)
	tm.persist()
	return Accepted()
}

func (tm *TableManager) GetByID(id string) (models.Table, bool) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	idx := tm.indexOf(id)
	if idx < 0 {
		return models.Table{}, false
	}
	return tm.tables[idx], true
}

func (tm *TableManager) List() []models.Table {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return append([]models.Table(nil), tm.tables...)
}

// MarkOccupied menempati meja untuk sebuah order. Tautan yang sudah ada
// ditimpa begitu saja, sama seperti perilaku aslinya.
func (tm *TableManager) MarkOccupied(tableID, orderID string) Outcome {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	idx := tm.indexOf(tableID)
	if idx < 0 {
		return Skipped(ReasonTableNotFound)
	}
	tm.tables[idx].Status = models.TableOccupied
	tm.tables[idx].CurrentOrderID = orderID
	tm.persist()
	return Accepted()
}

// MarkAvailable membebaskan meja: status dan tautan order dibersihkan bersama.
func (tm *TableManager) MarkAvailable(tableID string) Outcome {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	idx := tm.indexOf(tableID)
	if idx < 0 {
		return Skipped(ReasonTableNotFound)
	}
	tm.tables[idx].Status = models.TableAvailable
	tm.tables[idx].CurrentOrderID = ""
	tm.persist()
	return Accepted()
}

// Replace mengganti seluruh koleksi, dipakai restore backup.
func (tm *TableManager) Replace(tables []models.Table) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.tables = append([]models.Table(nil), tables...)
	tm.persist()
}

func (tm *TableManager) indexOf(id string) int {
	for i := range tm.tables {
		if tm.tables[i].ID == id {
			return i
		}
	}
	return -1
}
