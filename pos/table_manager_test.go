package pos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/pos"
)

func TestAddTableDefaultsToAvailable(t *testing.T) {
	tables := pos.NewTableManager(newMemStore())

	table := tables.AddTable(1, 4, "")
	assert.NotEmpty(t, table.ID)
	assert.Equal(t, models.TableAvailable, table.Status)
	assert.Empty(t, table.CurrentOrderID)
}

func TestAddTableAcceptsDuplicateNumbers(t *testing.T) {
	tables := pos.NewTableManager(newMemStore())

	first := tables.AddTable(3, 2, "")
	second := tables.AddTable(3, 6, models.TableReserved)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, tables.List(), 2)
	assert.Equal(t, models.TableReserved, second.Status)
}

func TestUpdateTableMergesOnlyProvidedFields(t *testing.T) {
	tables := pos.NewTableManager(newMemStore())
	table := tables.AddTable(2, 4, "")

	capacity := 8
	assert.True(t, tables.UpdateTable(table.ID, pos.TablePatch{Capacity: &capacity}).Applied)

	got, found := tables.GetByID(table.ID)
	assert.True(t, found)
	assert.Equal(t, 8, got.Capacity)
	assert.Equal(t, 2, got.Number)
	assert.Equal(t, models.TableAvailable, got.Status)
}

func TestUpdateTableUnknownIDSkipped(t *testing.T) {
	tables := pos.NewTableManager(newMemStore())

	number := 5
	outcome := tables.UpdateTable("missing", pos.TablePatch{Number: &number})
	assert.False(t, outcome.Applied)
	assert.Equal(t, pos.ReasonTableNotFound, outcome.Reason)
}

func TestDeleteTableIgnoresOccupancy(t *testing.T) {
	tables := pos.NewTableManager(newMemStore())
	table := tables.AddTable(4, 2, "")
	tables.MarkOccupied(table.ID, "order-1")

	// Manager tidak tahu-menahu soal guard occupied; itu urusan layer HTTP
	assert.True(t, tables.DeleteTable(table.ID).Applied)
	assert.Empty(t, tables.List())
}

func TestMarkOccupiedOverwritesExistingLink(t *testing.T) {
	tables := pos.NewTableManager(newMemStore())
	table := tables.AddTable(6, 4, "")

	tables.MarkOccupied(table.ID, "order-1")
	tables.MarkOccupied(table.ID, "order-2")

	got, _ := tables.GetByID(table.ID)
	assert.Equal(t, models.TableOccupied, got.Status)
	assert.Equal(t, "order-2", got.CurrentOrderID)
}

func TestMarkAvailableClearsStatusAndLink(t *testing.T) {
	tables := pos.NewTableManager(newMemStore())
	table := tables.AddTable(6, 4, "")
	tables.MarkOccupied(table.ID, "order-1")

	assert.True(t, tables.MarkAvailable(table.ID).Applied)

	got, _ := tables.GetByID(table.ID)
	assert.Equal(t, models.TableAvailable, got.Status)
	assert.Empty(t, got.CurrentOrderID)
}

func TestMarkOccupiedUnknownTableSkipped(t *testing.T) {
	tables := pos.NewTableManager(newMemStore())

	outcome := tables.MarkOccupied("missing", "order-1")
	assert.False(t, outcome.Applied)
	assert.Equal(t, pos.ReasonTableNotFound, outcome.Reason)
}

func TestTablesSurviveRestart(t *testing.T) {
	s := newMemStore()
	tables := pos.NewTableManager(s)
	table := tables.AddTable(9, 2, "")
	tables.MarkOccupied(table.ID, "order-1")

	reloaded := pos.NewTableManager(s)
	got, found := reloaded.GetByID(table.ID)
	assert.True(t, found)
	assert.Equal(t, models.TableOccupied, got.Status)
	assert.Equal(t, "order-1", got.CurrentOrderID)
}
