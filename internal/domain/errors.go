package domain

import "errors"

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrItemNotFound   = errors.New("shopping list item not found")
	ErrKeyNotFound    = errors.New("storage key not found")
	ErrAlreadyLiked   = errors.New("recipe already liked")
)
