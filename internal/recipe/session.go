// Package recipe implements the recipe session: one loaded recipe, its parsed
// ingredient list, and serving-count rescaling.
package recipe

import (
	"github.com/krywa5/forkify/internal/domain"
)

// Minutes of estimated preparation time per started block of ingredients.
const (
	prepPeriodSize    = 3
	prepMinutesPeriod = 15
)

// Session owns one recipe's state. Rescaling always recomputes from the
// immutable base snapshot taken at construction, so repeated serving changes
// never accumulate floating-point drift.
type Session struct {
	id       string
	title    string
	author   string
	imageURL string

	servings     int
	baseServings int
	base         []domain.IngredientEntry
	current      []domain.IngredientEntry
}

// New builds a session from fetched recipe data and its parsed ingredients.
// The entries become the base snapshot at data.Servings.
func New(data *domain.RecipeData, entries []domain.IngredientEntry) *Session {
	base := make([]domain.IngredientEntry, len(entries))
	current := make([]domain.IngredientEntry, len(entries))
	for i, e := range entries {
		base[i] = e.Clone()
		current[i] = e.Clone()
	}

	servings := data.Servings
	if servings < 1 {
		servings = 1
	}

	return &Session{
		id:           data.ID,
		title:        data.Title,
		author:       data.Author,
		imageURL:     data.ImageURL,
		servings:     servings,
		baseServings: servings,
		base:         base,
		current:      current,
	}
}

// ID returns the recipe identifier.
func (s *Session) ID() string { return s.id }

// Servings returns the current serving count, always >= 1.
func (s *Session) Servings() int { return s.servings }

// PrepTime returns the estimated preparation time in minutes, a step function
// monotonically non-decreasing in ingredient count.
func (s *Session) PrepTime() int {
	if len(s.base) == 0 {
		return 0
	}
	periods := (len(s.base) + prepPeriodSize - 1) / prepPeriodSize
	return periods * prepMinutesPeriod
}

// Rescale sets the serving count to newServings and recomputes every non-nil
// quantity as base * newServings / baseServings. Calls with newServings < 1
// are a no-op.
func (s *Session) Rescale(newServings int) {
	if newServings < 1 {
		return
	}

	ratio := float64(newServings) / float64(s.baseServings)
	for i, e := range s.base {
		if e.Quantity == nil {
			continue
		}
		scaled := *e.Quantity * ratio
		s.current[i].Quantity = &scaled
	}
	s.servings = newServings
}

// IncreaseServings adds one serving. There is no upper bound.
func (s *Session) IncreaseServings() {
	s.Rescale(s.servings + 1)
}

// DecreaseServings removes one serving; a no-op at one serving.
func (s *Session) DecreaseServings() {
	if s.servings == 1 {
		return
	}
	s.Rescale(s.servings - 1)
}

// Ingredients returns a copy of the current (scaled) ingredient entries.
func (s *Session) Ingredients() []domain.IngredientEntry {
	out := make([]domain.IngredientEntry, len(s.current))
	for i, e := range s.current {
		out[i] = e.Clone()
	}
	return out
}

// Snapshot materializes the session into the payload shape published to views.
func (s *Session) Snapshot() *domain.Recipe {
	return &domain.Recipe{
		ID:              s.id,
		Title:           s.title,
		Author:          s.author,
		ImageURL:        s.imageURL,
		Servings:        s.servings,
		PrepTimeMinutes: s.PrepTime(),
		Ingredients:     s.Ingredients(),
	}
}
