package pos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/cafe-pos/pos"
)

func TestAddItemAndCategory(t *testing.T) {
	catalog := pos.NewMenuCatalog(newMemStore())

	category := catalog.AddCategory("Food", "#e74c3c")
	item := catalog.AddItem("Burger", 8.99, category.ID, "")

	got, found := catalog.GetItem(item.ID)
	assert.True(t, found)
	assert.Equal(t, "Burger", got.Name)
	assert.Equal(t, category.ID, got.CategoryID)
	assert.Len(t, catalog.Items(), 1)
	assert.Len(t, catalog.Categories(), 1)
}

func TestUpdateItemMergesOnlyProvidedFields(t *testing.T) {
	catalog := pos.NewMenuCatalog(newMemStore())
	item := catalog.AddItem("Coffee", 2.50, "C1", "")

	price := 3.00
	assert.True(t, catalog.UpdateItem(item.ID, pos.MenuItemPatch{Price: &price}).Applied)

	got, _ := catalog.GetItem(item.ID)
	assert.InDelta(t, 3.00, got.Price, 0.0001)
	assert.Equal(t, "Coffee", got.Name)
	assert.Equal(t, "C1", got.CategoryID)
}

func TestUpdateItemUnknownIDSkipped(t *testing.T) {
	catalog := pos.NewMenuCatalog(newMemStore())

	name := "Tea"
	outcome := catalog.UpdateItem("missing", pos.MenuItemPatch{Name: &name})
	assert.False(t, outcome.Applied)
	assert.Equal(t, pos.ReasonMenuNotFound, outcome.Reason)
}

func TestDeleteCategoryBlockedWhileReferenced(t *testing.T) {
	catalog := pos.NewMenuCatalog(newMemStore())
	category := catalog.AddCategory("Drinks", "#3498db")
	item := catalog.AddItem("Coffee", 2.50, category.ID, "")

	outcome := catalog.DeleteCategory(category.ID)
	assert.False(t, outcome.Applied)
	assert.Equal(t, pos.ReasonCategoryInUse, outcome.Reason)
	assert.Len(t, catalog.Categories(), 1)

	// Setelah item terakhir dilepas, kategori boleh dihapus
	assert.True(t, catalog.DeleteItem(item.ID).Applied)
	assert.True(t, catalog.DeleteCategory(category.ID).Applied)
	assert.Empty(t, catalog.Categories())
}

func TestDeleteCategoryUnknownIDSkipped(t *testing.T) {
	catalog := pos.NewMenuCatalog(newMemStore())

	outcome := catalog.DeleteCategory("missing")
	assert.False(t, outcome.Applied)
	assert.Equal(t, pos.ReasonCategoryNotFound, outcome.Reason)
}

func TestCatalogSurvivesRestart(t *testing.T) {
	s := newMemStore()
	catalog := pos.NewMenuCatalog(s)
	category := catalog.AddCategory("Desserts", "#2ecc71")
	catalog.AddItem("Ice Cream", 4.50, category.ID, "")

	reloaded := pos.NewMenuCatalog(s)
	assert.Len(t, reloaded.Items(), 1)
	assert.Len(t, reloaded.Categories(), 1)
	assert.Equal(t, "Ice Cream", reloaded.Items()[0].Name)
}
