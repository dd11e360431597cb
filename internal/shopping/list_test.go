package shopping

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/krywa5/forkify/internal/errors"
)

func qty(v float64) *float64 { return &v }

func TestAddItem(t *testing.T) {
	l := NewList()

	item := l.AddItem(qty(2), "cup", "flour")

	assert.NotEqual(t, uuid.Nil, item.ID)
	require.NotNil(t, item.Quantity)
	assert.InDelta(t, 2.0, *item.Quantity, 1e-9)
	assert.Equal(t, "cup", item.Unit)
	assert.Equal(t, "flour", item.Name)
	assert.Equal(t, 1, l.Len())
}

func TestAddItemNilQuantity(t *testing.T) {
	l := NewList()

	item := l.AddItem(nil, "", "salt to taste")
	assert.Nil(t, item.Quantity)
}

func TestAddItemDuplicatesNotMerged(t *testing.T) {
	l := NewList()

	first := l.AddItem(qty(1), "cup", "olive oil")
	second := l.AddItem(qty(2), "cup", "olive oil")

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, l.Len())
}

func TestDeleteItem(t *testing.T) {
	l := NewList()
	a := l.AddItem(qty(1), "cup", "flour")
	b := l.AddItem(qty(2), "tbsp", "sugar")
	c := l.AddItem(qty(3), "tsp", "salt")

	l.DeleteItem(b.ID)

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, a.ID, items[0].ID, "surviving ids are untouched")
	assert.Equal(t, c.ID, items[1].ID)

	// Deleting an unknown id is a no-op.
	l.DeleteItem(uuid.New())
	assert.Equal(t, 2, l.Len())
}

func TestAddThenDeleteLeavesEmpty(t *testing.T) {
	l := NewList()
	item := l.AddItem(qty(4), "oz", "butter")

	l.DeleteItem(item.ID)
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Items())
}

func TestUpdateCount(t *testing.T) {
	l := NewList()
	item := l.AddItem(qty(2), "cup", "flour")

	require.NoError(t, l.UpdateCount(item.ID, 3.5))
	assert.InDelta(t, 3.5, *l.Items()[0].Quantity, 1e-9)

	require.NoError(t, l.UpdateCount(item.ID, 0))
	assert.InDelta(t, 0.0, *l.Items()[0].Quantity, 1e-9)
}

func TestUpdateCountUnknownID(t *testing.T) {
	l := NewList()
	l.AddItem(qty(2), "cup", "flour")

	err := l.UpdateCount(uuid.New(), 3)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateCountNegative(t *testing.T) {
	l := NewList()
	item := l.AddItem(qty(2), "cup", "flour")

	err := l.UpdateCount(item.ID, -1)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.TypeValidation))
	assert.InDelta(t, 2.0, *l.Items()[0].Quantity, 1e-9, "value unchanged on error")
}

func TestItemsReturnsCopy(t *testing.T) {
	l := NewList()
	l.AddItem(qty(2), "cup", "flour")

	items := l.Items()
	*items[0].Quantity = 999

	assert.InDelta(t, 2.0, *l.Items()[0].Quantity, 1e-9)
}
