package app

import (
	"context"
	"strconv"
	"strings"

	apperrors "github.com/krywa5/forkify/internal/errors"
)

// Action names accepted by Dispatch. Event sources (CLI, tests) map their own
// inputs onto these; the service never references a presentation layer.
const (
	ActionSearch           = "search"
	ActionOpenRecipe       = "open-recipe"
	ActionPage             = "page"
	ActionServingsIncrease = "servings-increase"
	ActionServingsDecrease = "servings-decrease"
	ActionListAdd          = "list-add"
	ActionListRemove       = "list-remove"
	ActionListUpdate       = "list-update"
	ActionToggleLike       = "toggle-like"
)

// Dispatch routes a named user action to the matching service operation.
// Unknown actions and malformed arguments are validation errors.
func (s *Service) Dispatch(ctx context.Context, action string, args ...string) error {
	switch action {
	case ActionSearch:
		return s.HandleSearch(ctx, strings.Join(args, " "))

	case ActionOpenRecipe:
		if len(args) != 1 {
			return apperrors.ValidationError("open-recipe takes exactly one recipe id")
		}
		return s.HandleNavigation(ctx, args[0])

	case ActionPage:
		if len(args) != 1 {
			return apperrors.ValidationError("page takes exactly one page number")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return apperrors.ValidationError("page number is not an integer").WithContext("arg", args[0])
		}
		return s.HandlePage(n)

	case ActionServingsIncrease:
		return s.HandleServings(ServingsIncrease)

	case ActionServingsDecrease:
		return s.HandleServings(ServingsDecrease)

	case ActionListAdd:
		return s.HandleAddToList()

	case ActionListRemove:
		if len(args) != 1 {
			return apperrors.ValidationError("list-remove takes exactly one item id")
		}
		return s.HandleDeleteItem(args[0])

	case ActionListUpdate:
		if len(args) != 2 {
			return apperrors.ValidationError("list-update takes an item id and a quantity")
		}
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return apperrors.ValidationError("quantity is not a number").WithContext("arg", args[1])
		}
		return s.HandleUpdateCount(args[0], value)

	case ActionToggleLike:
		return s.HandleToggleLike(ctx)

	default:
		return apperrors.ValidationError("unknown action").WithContext("action", action)
	}
}
