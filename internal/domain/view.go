package domain

// Recipe is the fully materialized recipe payload published to the view:
// parsed, scaled ingredients plus the derived preparation-time estimate.
type Recipe struct {
	ID              string
	Title           string
	Author          string
	ImageURL        string
	Servings        int
	PrepTimeMinutes int
	Ingredients     []IngredientEntry
}

// View is the presentation collaborator. The model layer pushes payloads
// through it and never learns how they are rendered. Implementations must not
// call back into the service from within a Show method.
type View interface {
	// ShowSearchResults publishes one page of results. activeRecipeID carries
	// the currently open recipe so the view can highlight it; empty when none.
	ShowSearchResults(query string, page int, totalPages int, results []SearchResult, activeRecipeID string)

	// ShowRecipe publishes the full active recipe together with its like-state.
	ShowRecipe(recipe *Recipe, liked bool)

	// ShowShoppingItem publishes one newly added shopping list item.
	ShowShoppingItem(item ShoppingItem)

	// ShowShoppingItemRemoved signals the removal of a shopping list item.
	ShowShoppingItemRemoved(id string)

	// ShowFavorite publishes one favorite together with the new like count.
	ShowFavorite(fav Favorite, numLikes int)

	// ShowFavoriteRemoved signals an un-liked recipe together with the new like count.
	ShowFavoriteRemoved(recipeID string, numLikes int)

	// ShowError surfaces one user-visible failure notification.
	ShowError(err error)
}
