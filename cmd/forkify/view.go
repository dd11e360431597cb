package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/krywa5/forkify/internal/domain"
)

// consoleView renders model payloads as plain text. It carries no model state
// and never calls back into the service.
type consoleView struct {
	w io.Writer
}

func newConsoleView(w io.Writer) *consoleView {
	return &consoleView{w: w}
}

func (v *consoleView) ShowSearchResults(query string, page, totalPages int, results []domain.SearchResult, activeRecipeID string) {
	fmt.Fprintf(v.w, "Results for %q (page %d/%d):\n", query, page, totalPages)
	for _, r := range results {
		marker := " "
		if r.ID == activeRecipeID {
			marker = "*"
		}
		fmt.Fprintf(v.w, " %s %-8s %s - %s\n", marker, r.ID, r.Title, r.Publisher)
	}
}

func (v *consoleView) ShowRecipe(r *domain.Recipe, liked bool) {
	heart := ""
	if liked {
		heart = " ♥"
	}
	fmt.Fprintf(v.w, "%s by %s%s\n", r.Title, r.Author, heart)
	fmt.Fprintf(v.w, "Servings: %d  Prep time: %d min\n", r.Servings, r.PrepTimeMinutes)
	for _, ing := range r.Ingredients {
		fmt.Fprintf(v.w, "  - %s\n", formatIngredient(ing))
	}
}

func (v *consoleView) ShowShoppingItem(item domain.ShoppingItem) {
	fmt.Fprintf(v.w, "Added to list [%s]: %s\n", item.ID, formatIngredient(domain.IngredientEntry{
		Quantity: item.Quantity,
		Unit:     item.Unit,
		Name:     item.Name,
	}))
}

func (v *consoleView) ShowShoppingItemRemoved(id string) {
	fmt.Fprintf(v.w, "Removed from list: %s\n", id)
}

func (v *consoleView) ShowFavorite(fav domain.Favorite, numLikes int) {
	fmt.Fprintf(v.w, "♥ %s - %s (%d liked)\n", fav.Title, fav.Author, numLikes)
}

func (v *consoleView) ShowFavoriteRemoved(recipeID string, numLikes int) {
	fmt.Fprintf(v.w, "Unliked %s (%d liked)\n", recipeID, numLikes)
}

func (v *consoleView) ShowError(err error) {
	fmt.Fprintf(v.w, "Something went wrong: %v\n", err)
}

func formatIngredient(ing domain.IngredientEntry) string {
	var parts []string
	if ing.Quantity != nil {
		parts = append(parts, strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", *ing.Quantity), "0"), "."))
	}
	if ing.Unit != "" {
		parts = append(parts, ing.Unit)
	}
	parts = append(parts, ing.Name)
	return strings.Join(parts, " ")
}
