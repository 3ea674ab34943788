package pos

import (
	"sync"

	"github.com/google/uuid"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/store"
	"github.com/yeremiapane/cafe-pos/utils"
)

// MenuItemPatch dan CategoryPatch berisi field yang ingin diubah; nil berarti
// field dibiarkan.
type MenuItemPatch struct {
	Name       *string
	Price      *float64
	CategoryID *string
	ImageID    *string
}

type CategoryPatch struct {
	Name  *string
	Color *string
}

// MenuCatalog memiliki katalog menu dan kategorinya. Order hanya membaca
// katalog lewat snapshot saat AddItem; mutasi katalog tidak pernah menyentuh
// order yang sudah tercatat.
type MenuCatalog struct {
	mu         sync.Mutex
	items      []models.MenuItem
	categories []models.Category
	store      store.Store
}

func NewMenuCatalog(s store.Store) *MenuCatalog {
	mc := &MenuCatalog{store: s}
	if err := store.LoadJSON(s, store.MenuItemsKey, &mc.items); err != nil {
		utils.ErrorLogger.Printf("Failed to load menu items collection: %v", err)
	}
	if err := store.LoadJSON(s, store.CategoriesKey, &mc.categories); err != nil {
		utils.ErrorLogger.Printf("Failed to load categories collection: %v", err)
	}
	return mc
}

func (mc *MenuCatalog) persistItems() {
	store.SaveJSON(mc.store, store.MenuItemsKey, mc.items)
}

func (mc *MenuCatalog) persistCategories() {
	store.SaveJSON(mc.store, store.CategoriesKey, mc.categories)
}

func (mc *MenuCatalog) Items() []models.MenuItem {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return append([]models.MenuItem(nil), mc.items...)
}

func (mc *MenuCatalog) Categories() []models.Category {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return append([]models.Category(nil), mc.categories...)
}

func (mc *MenuCatalog) AddItem(name string, price float64, categoryID, imageID string) models.MenuItem {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	item := models.MenuItem{
		ID:         uuid.NewString(),
		Name:       name,
		Price:      price,
		CategoryID: categoryID,
		ImageID:    imageID,
	}
	mc.items = append(mc.items, item)
	mc.persistItems()
	return item
}

func (mc *MenuCatalog) UpdateItem(id string, patch MenuItemPatch) Outcome {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	for i := range mc.items {
		if mc.items[i].ID != id {
			continue
		}
		if patch.Name != nil {
			mc.items[i].Name = *patch.Name
		}
		if patch.Price != nil {
			mc.items[i].Price = *patch.Price
		}
		if patch.CategoryID != nil {
			mc.items[i].CategoryID = *patch.CategoryID
		}
		if patch.ImageID != nil {
			mc.items[i].ImageID = *patch.ImageID
		}
		mc.persistItems()
		return Accepted()
	}
	return Skipped(ReasonMenuNotFound)
}

func (mc *MenuCatalog) DeleteItem(id string) Outcome {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	for i := range mc.items {
		if mc.items[i].ID == id {
			mc.items = append(mc.items[:i], mc.items[i+1:]...)
			mc.persistItems()
			return Accepted()
		}
	}
	return Skipped(ReasonMenuNotFound)
}

func (mc *MenuCatalog) GetItem(id string) (models.MenuItem, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	for i := range mc.items {
		if mc.items[i].ID == id {
			return mc.items[i], true
		}
	}
	return models.MenuItem{}, false
}

func (mc *MenuCatalog) AddCategory(name, color string) models.Category {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	category := models.Category{
		ID:    uuid.NewString(),
		Name:  name,
		Color: color,
	}
	mc.categories = append(mc.categories, category)
	mc.persistCategories()
	return category
}

func (mc *MenuCatalog) UpdateCategory(id string, patch CategoryPatch) Outcome {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	for i := range mc.categories {
		if mc.categories[i].ID != id {
			continue
		}
		if patch.Name != nil {
			mc.categories[i].Name = *patch.Name
		}
		if patch.Color != nil {
			mc.categories[i].Color = *patch.Color
		}
		mc.persistCategories()
		return Accepted()
	}
	return Skipped(ReasonCategoryNotFound)
}

// DeleteCategory ditolak selama masih ada menu item yang menunjuk kategori ini.
func (mc *MenuCatalog) DeleteCategory(id string) Outcome {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	for i := range mc.items {
		if mc.items[i].CategoryID == id {
			return Skipped(ReasonCategoryInUse)
		}
	}

	for i := range mc.categories {
		if mc.categories[i].ID == id {
			mc.categories = append(mc.categories[:i], mc.categories[i+1:]...)
			mc.persistCategories()
			return Accepted()
		}
	}
	return Skipped(ReasonCategoryNotFound)
}

func (mc *MenuCatalog) GetCategory(id string) (models.Category, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	for i := range mc.categories {
		if mc.categories[i].ID == id {
			return mc.categories[i], true
		}
	}
	return models.Category{}, false
}

// Replace mengganti kedua koleksi sekaligus, dipakai restore backup.
func (mc *MenuCatalog) Replace(items []models.MenuItem, categories []models.Category) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.items = append([]models.MenuItem(nil), items...)
	mc.categories = append([]models.Category(nil), categories...)
	mc.persistItems()
	mc.persistCategories()
}
