// Package shopping implements the mutable shopping list.
package shopping

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/krywa5/forkify/internal/domain"
	apperrors "github.com/krywa5/forkify/internal/errors"
)

// List is an ordered collection of purchasable items. Item ids are generated at
// insertion and stable for the item's lifetime; deletion never renumbers the
// rest. Duplicate ingredient names are kept as distinct entries.
type List struct {
	items []domain.ShoppingItem
}

// NewList creates an empty shopping list.
func NewList() *List {
	return &List{}
}

// AddItem appends a new item with a fresh id and returns it.
func (l *List) AddItem(quantity *float64, unit, name string) domain.ShoppingItem {
	item := domain.ShoppingItem{
		ID:   uuid.New(),
		Unit: unit,
		Name: name,
	}
	if quantity != nil {
		q := *quantity
		item.Quantity = &q
	}
	l.items = append(l.items, item)
	return item
}

// DeleteItem removes the item with the given id; a no-op when absent.
func (l *List) DeleteItem(id uuid.UUID) {
	for i, item := range l.items {
		if item.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// UpdateCount sets the quantity of the item with the given id. The value must
// be non-negative; fractional values are allowed. An absent id is a
// programming-contract violation surfaced as a not-found error.
func (l *List) UpdateCount(id uuid.UUID, value float64) error {
	if value < 0 {
		return apperrors.ValidationError("quantity must be non-negative").WithContext("value", value)
	}
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Quantity = &value
			return nil
		}
	}
	return fmt.Errorf("failed to update count: %w",
		apperrors.NotFoundError("shopping list item not found").WithContext("item_id", id.String()))
}

// Len returns the number of items on the list.
func (l *List) Len() int { return len(l.items) }

// Items returns a copy of the list in insertion order.
func (l *List) Items() []domain.ShoppingItem {
	out := make([]domain.ShoppingItem, len(l.items))
	for i, item := range l.items {
		out[i] = item
		if item.Quantity != nil {
			q := *item.Quantity
			out[i].Quantity = &q
		}
	}
	return out
}
