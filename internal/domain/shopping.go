package domain

import "github.com/google/uuid"

// ShoppingItem is one purchasable entry on the shopping list. The ID is
// generated at insertion time and is stable for the item's lifetime; it has no
// relation to recipe or ingredient identity. Quantity is nil when the source
// ingredient carried no quantity.
type ShoppingItem struct {
	ID       uuid.UUID
	Quantity *float64
	Unit     string
	Name     string
}
