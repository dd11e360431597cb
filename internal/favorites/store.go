// Package favorites implements the persisted collection of liked recipes.
//
// Every add/delete is written through to the durable key-value collaborator
// before the operation returns; there is no write-back window. The store only
// reports membership; toggle decisions belong to the orchestrator.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/krywa5/forkify/internal/domain"
	apperrors "github.com/krywa5/forkify/internal/errors"
)

// StorageKey is the single fixed key under which the collection persists.
const StorageKey = "forkify:favorites"

// Store holds the liked recipes, synchronized with a durable key-value store.
type Store struct {
	kv    domain.KeyValueStore
	clock clockwork.Clock
	likes []domain.Favorite
}

// NewStore creates an empty store backed by kv. Call ReadStorage once at
// process start to load the persisted collection.
func NewStore(kv domain.KeyValueStore, clock clockwork.Clock) *Store {
	return &Store{kv: kv, clock: clock}
}

// IsLiked reports whether recipeID is present in the store.
func (s *Store) IsLiked(recipeID string) bool {
	for _, like := range s.likes {
		if like.RecipeID == recipeID {
			return true
		}
	}
	return false
}

// AddLike appends a record and persists the collection. Liking an already
// liked recipe is rejected; callers check IsLiked first and toggle.
func (s *Store) AddLike(ctx context.Context, recipeID, title, author, imageURL string) (domain.Favorite, error) {
	if s.IsLiked(recipeID) {
		return domain.Favorite{}, fmt.Errorf("failed to add like: %w", domain.ErrAlreadyLiked)
	}

	fav := domain.Favorite{
		RecipeID: recipeID,
		Title:    title,
		Author:   author,
		ImageURL: imageURL,
		LikedAt:  s.clock.Now().UTC(),
	}
	s.likes = append(s.likes, fav)

	if err := s.persist(ctx); err != nil {
		// Roll back so memory never diverges from storage.
		s.likes = s.likes[:len(s.likes)-1]
		return domain.Favorite{}, err
	}
	return fav, nil
}

// DeleteLike removes the matching record and persists; a no-op when absent.
func (s *Store) DeleteLike(ctx context.Context, recipeID string) error {
	for i, like := range s.likes {
		if like.RecipeID == recipeID {
			removed := like
			s.likes = append(s.likes[:i], s.likes[i+1:]...)
			if err := s.persist(ctx); err != nil {
				s.likes = append(s.likes[:i], append([]domain.Favorite{removed}, s.likes[i:]...)...)
				return err
			}
			return nil
		}
	}
	return nil
}

// NumLikes returns the number of liked recipes.
func (s *Store) NumLikes() int { return len(s.likes) }

// Likes returns a copy of the collection in like order.
func (s *Store) Likes() []domain.Favorite {
	out := make([]domain.Favorite, len(s.likes))
	copy(out, s.likes)
	return out
}

// ReadStorage replaces the in-memory collection with the persisted one. An
// absent key means an empty collection; a corrupt payload is a fetch error.
func (s *Store) ReadStorage(ctx context.Context) error {
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			s.likes = nil
			return nil
		}
		return fmt.Errorf("failed to read favorites: %w", err)
	}

	var likes []domain.Favorite
	if err := json.Unmarshal([]byte(raw), &likes); err != nil {
		return apperrors.FetchError("favorites payload is malformed", err)
	}
	s.likes = likes
	return nil
}

func (s *Store) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.likes)
	if err != nil {
		return fmt.Errorf("failed to marshal favorites: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, string(raw)); err != nil {
		return fmt.Errorf("failed to persist favorites: %w", err)
	}
	return nil
}
