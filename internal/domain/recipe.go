package domain

import "context"

// IngredientEntry is one parsed ingredient line. Quantity is nil when the line
// carried no recognizable quantity token ("salt to taste"); nil means
// unspecified, never zero. Name is never empty after a successful parse.
type IngredientEntry struct {
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit"`
	Name     string   `json:"name"`
}

// Clone returns a deep copy of the entry (Quantity is re-boxed).
func (e IngredientEntry) Clone() IngredientEntry {
	c := e
	if e.Quantity != nil {
		q := *e.Quantity
		c.Quantity = &q
	}
	return c
}

// RecipeData is the raw recipe payload as returned by the recipe-fetch
// collaborator, before ingredient parsing.
type RecipeData struct {
	ID          string
	Title       string
	Author      string
	ImageURL    string
	Servings    int
	Ingredients []string
}

// RecipeFetcher retrieves one recipe by identifier from the external source.
type RecipeFetcher interface {
	GetRecipe(ctx context.Context, id string) (*RecipeData, error)
}
