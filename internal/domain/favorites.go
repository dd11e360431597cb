package domain

import (
	"context"
	"time"
)

// Favorite is one liked recipe. RecipeID is unique within the store.
type Favorite struct {
	RecipeID string    `json:"recipe_id"`
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	ImageURL string    `json:"image_url"`
	LikedAt  time.Time `json:"liked_at"`
}

// KeyValueStore is the durable storage collaborator: a flat key-value store
// with synchronous get/set semantics. Get returns ErrKeyNotFound when the key
// is absent.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
