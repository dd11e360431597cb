package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krywa5/forkify/internal/domain"
)

func qty(v float64) *float64 { return &v }

func newTestSession(servings int, quantities ...*float64) *Session {
	entries := make([]domain.IngredientEntry, len(quantities))
	for i, q := range quantities {
		entries[i] = domain.IngredientEntry{Quantity: q, Unit: "cup", Name: "ingredient"}
	}
	return New(&domain.RecipeData{
		ID:       "47746",
		Title:    "Pizza",
		Author:   "101 Cookbooks",
		Servings: servings,
	}, entries)
}

func TestRescaleProportional(t *testing.T) {
	s := newTestSession(4, qty(2), qty(0.5), nil)

	s.Rescale(6)

	assert.Equal(t, 6, s.Servings())
	ings := s.Ingredients()
	require.NotNil(t, ings[0].Quantity)
	assert.InDelta(t, 3.0, *ings[0].Quantity, 1e-9)
	assert.InDelta(t, 0.75, *ings[1].Quantity, 1e-9)
	assert.Nil(t, ings[2].Quantity, "nil quantities stay nil")
}

func TestRescaleReversible(t *testing.T) {
	s := newTestSession(4, qty(2), qty(1.0/3.0))

	// Walk through several serving counts and return to the original.
	for _, n := range []int{7, 13, 2, 100, 4} {
		s.Rescale(n)
	}

	ings := s.Ingredients()
	assert.InDelta(t, 2.0, *ings[0].Quantity, 1e-9)
	assert.InDelta(t, 1.0/3.0, *ings[1].Quantity, 1e-9)
}

func TestRescaleClampsBelowOne(t *testing.T) {
	s := newTestSession(4, qty(2))

	s.Rescale(0)
	assert.Equal(t, 4, s.Servings())

	s.Rescale(-3)
	assert.Equal(t, 4, s.Servings())
	assert.InDelta(t, 2.0, *s.Ingredients()[0].Quantity, 1e-9)
}

func TestUpdateServings(t *testing.T) {
	s := newTestSession(2, qty(1))

	s.IncreaseServings()
	assert.Equal(t, 3, s.Servings())
	assert.InDelta(t, 1.5, *s.Ingredients()[0].Quantity, 1e-9)

	s.DecreaseServings()
	s.DecreaseServings()
	assert.Equal(t, 1, s.Servings())

	// Decreasing at one serving is a no-op.
	s.DecreaseServings()
	assert.Equal(t, 1, s.Servings())
	assert.InDelta(t, 0.5, *s.Ingredients()[0].Quantity, 1e-9)
}

func TestMalformedServingsClampedAtConstruction(t *testing.T) {
	s := newTestSession(0, qty(2))
	assert.Equal(t, 1, s.Servings())
}

func TestPrepTime(t *testing.T) {
	tests := []struct {
		ingredients int
		minutes     int
	}{
		{0, 0},
		{1, 15},
		{3, 15},
		{4, 30},
		{6, 30},
		{7, 45},
	}

	for _, tt := range tests {
		quantities := make([]*float64, tt.ingredients)
		s := newTestSession(2, quantities...)
		assert.Equal(t, tt.minutes, s.PrepTime(), "ingredients=%d", tt.ingredients)
	}
}

func TestIngredientsReturnsCopy(t *testing.T) {
	s := newTestSession(2, qty(1))

	ings := s.Ingredients()
	*ings[0].Quantity = 999
	ings[0].Name = "tampered"

	fresh := s.Ingredients()
	assert.InDelta(t, 1.0, *fresh[0].Quantity, 1e-9)
	assert.Equal(t, "ingredient", fresh[0].Name)
}

func TestSnapshot(t *testing.T) {
	s := newTestSession(4, qty(2), qty(1))
	s.Rescale(8)

	snap := s.Snapshot()
	assert.Equal(t, "47746", snap.ID)
	assert.Equal(t, "Pizza", snap.Title)
	assert.Equal(t, 8, snap.Servings)
	assert.Equal(t, 15, snap.PrepTimeMinutes)
	require.Len(t, snap.Ingredients, 2)
	assert.InDelta(t, 4.0, *snap.Ingredients[0].Quantity, 1e-9)
}
