package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/krywa5/forkify/internal/domain"
	apperrors "github.com/krywa5/forkify/internal/errors"
	"github.com/krywa5/forkify/internal/favorites"
	"github.com/krywa5/forkify/internal/ingredient"
	"github.com/krywa5/forkify/internal/logging"
	"github.com/krywa5/forkify/internal/metrics"
	"github.com/krywa5/forkify/internal/recipe"
	"github.com/krywa5/forkify/internal/search"
	"github.com/krywa5/forkify/internal/shopping"
)

// Service is the application layer. It owns at most one live search session
// and one live recipe session at a time, plus the process-wide shopping list
// and favorites store. All state behind the mutex; fetches happen outside it,
// and a response whose query/id no longer matches the active one at
// resolution time is discarded (stale-response guarding substitutes for
// cancellation).
type Service struct {
	recipes  domain.RecipeFetcher
	searches domain.SearchFetcher
	view     domain.View
	clock    clockwork.Clock
	pageSize int

	loadGroup singleflight.Group

	mu             sync.Mutex
	searchState    LoadState
	recipeState    LoadState
	activeQuery    string
	activeRecipeID string
	searchSession  *search.Session
	recipeSession  *recipe.Session
	list           *shopping.List
	likes          *favorites.Store
}

// NewService creates the application layer service. The shopping list starts
// empty; likes must be loaded via Start before the first user action.
func NewService(recipes domain.RecipeFetcher, searches domain.SearchFetcher, likes *favorites.Store, view domain.View, clock clockwork.Clock, pageSize int) *Service {
	if pageSize < 1 {
		pageSize = search.DefaultPageSize
	}
	return &Service{
		recipes:     recipes,
		searches:    searches,
		view:        view,
		clock:       clock,
		pageSize:    pageSize,
		searchState: StateIdle,
		recipeState: StateIdle,
		list:        shopping.NewList(),
		likes:       likes,
	}
}

// Start loads the persisted favorites and publishes them, mirroring what the
// user left behind in the previous session.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.likes.ReadStorage(ctx); err != nil {
		return fmt.Errorf("failed to restore favorites: %w", err)
	}

	num := s.likes.NumLikes()
	metrics.FavoritesSize.Set(float64(num))
	for _, fav := range s.likes.Likes() {
		s.view.ShowFavorite(fav, num)
	}
	return nil
}

// HandleSearch runs one search submission: the previous search session is
// replaced wholesale and the first result page is published. An empty query is
// ignored, matching the original behavior of a blank search box.
func (s *Service) HandleSearch(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	log := logging.WithQuery(query)

	s.mu.Lock()
	s.searchState = StateLoading
	s.activeQuery = query
	s.mu.Unlock()

	start := s.clock.Now()
	results, err := s.searches.Search(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeQuery != query {
		metrics.SearchesTotal.WithLabelValues("stale").Inc()
		log.Debug("Discarding stale search response")
		return nil
	}

	if err != nil {
		s.searchState = StateFailed
		metrics.SearchesTotal.WithLabelValues("failed").Inc()
		log.Error("Search failed", "error", err)
		s.view.ShowError(err)
		return err
	}

	s.searchSession = search.New(query, results)
	s.searchState = StateReady
	metrics.SearchesTotal.WithLabelValues("ready").Inc()
	log.Info("Search completed", "results", len(results), "duration", s.clock.Since(start))

	s.publishPage(1)
	return nil
}

// HandlePage republishes page n of the live search session without refetching.
func (s *Service) HandlePage(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.searchSession == nil {
		return apperrors.ValidationError("no active search session")
	}
	if n < 1 || n > s.searchSession.TotalPages(s.pageSize) {
		return apperrors.ValidationError("page out of range").WithContext("page", n)
	}
	s.publishPage(n)
	return nil
}

// publishPage pushes one result page to the view. Callers hold the mutex.
func (s *Service) publishPage(n int) {
	s.view.ShowSearchResults(
		s.searchSession.Query(),
		n,
		s.searchSession.TotalPages(s.pageSize),
		s.searchSession.Page(n, s.pageSize),
		s.activeRecipeID,
	)
}

// loadResult carries a fetched-and-parsed recipe out of the singleflight group.
type loadResult struct {
	data    *domain.RecipeData
	entries []domain.IngredientEntry
}

// HandleNavigation loads the recipe with the given id, replacing any current
// recipe session. Concurrent navigations to the same id collapse into one
// fetch; a resolution for an id that is no longer active is discarded.
func (s *Service) HandleNavigation(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}

	log := logging.WithRecipe(id)

	s.mu.Lock()
	s.recipeState = StateLoading
	s.activeRecipeID = id
	s.mu.Unlock()

	start := s.clock.Now()
	v, err, _ := s.loadGroup.Do(id, func() (any, error) {
		data, err := s.recipes.GetRecipe(ctx, id)
		if err != nil {
			return nil, err
		}
		entries, err := ingredient.ParseAll(data.Ingredients)
		if err != nil {
			metrics.IngredientParseFailures.Inc()
			return nil, err
		}
		return loadResult{data: data, entries: entries}, nil
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeRecipeID != id {
		metrics.RecipeLoadsTotal.WithLabelValues("stale").Inc()
		log.Debug("Discarding stale recipe response")
		return nil
	}

	if err != nil {
		s.recipeState = StateFailed
		metrics.RecipeLoadsTotal.WithLabelValues("failed").Inc()
		log.Error("Recipe load failed", "error", err)
		s.view.ShowError(err)
		return err
	}

	res := v.(loadResult)
	s.recipeSession = recipe.New(res.data, res.entries)
	s.recipeState = StateReady
	metrics.RecipeLoadsTotal.WithLabelValues("ready").Inc()
	log.Info("Recipe loaded", "ingredients", len(res.entries), "duration", s.clock.Since(start))

	s.view.ShowRecipe(s.recipeSession.Snapshot(), s.likes.IsLiked(id))
	return nil
}

// HandleServings adjusts the serving count of the active recipe and
// republishes it. Decreasing at one serving is a no-op.
func (s *Service) HandleServings(direction ServingsDirection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.recipeSession == nil {
		return apperrors.ValidationError("no active recipe")
	}

	switch direction {
	case ServingsIncrease:
		s.recipeSession.IncreaseServings()
	case ServingsDecrease:
		s.recipeSession.DecreaseServings()
	default:
		return apperrors.ValidationError("unknown servings direction").WithContext("direction", string(direction))
	}

	s.view.ShowRecipe(s.recipeSession.Snapshot(), s.likes.IsLiked(s.recipeSession.ID()))
	return nil
}

// HandleAddToList snapshots the active recipe's current (scaled) ingredients
// into the shopping list, one item per entry. Later rescaling does not touch
// items already added. Duplicate names are kept as distinct entries.
func (s *Service) HandleAddToList() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.recipeSession == nil {
		return apperrors.ValidationError("no active recipe")
	}

	for _, entry := range s.recipeSession.Ingredients() {
		item := s.list.AddItem(entry.Quantity, entry.Unit, entry.Name)
		s.view.ShowShoppingItem(item)
	}
	metrics.ShoppingListSize.Set(float64(s.list.Len()))
	return nil
}

// HandleDeleteItem removes one shopping list item. An unknown id is treated as
// caller misuse and returned, not surfaced as a user alert.
func (s *Service) HandleDeleteItem(rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return apperrors.ValidationError("invalid item id").WithContext("item_id", rawID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.list.DeleteItem(id)
	metrics.ShoppingListSize.Set(float64(s.list.Len()))
	s.view.ShowShoppingItemRemoved(rawID)
	return nil
}

// HandleUpdateCount sets the quantity of one shopping list item.
func (s *Service) HandleUpdateCount(rawID string, value float64) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return apperrors.ValidationError("invalid item id").WithContext("item_id", rawID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.UpdateCount(id, value)
}

// HandleToggleLike toggles the like state of the active recipe. The store only
// reports membership; the toggle decision lives here.
func (s *Service) HandleToggleLike(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.recipeSession == nil {
		return apperrors.ValidationError("no active recipe")
	}

	snap := s.recipeSession.Snapshot()

	if s.likes.IsLiked(snap.ID) {
		if err := s.likes.DeleteLike(ctx, snap.ID); err != nil {
			s.view.ShowError(err)
			return err
		}
		metrics.FavoritesSize.Set(float64(s.likes.NumLikes()))
		s.view.ShowFavoriteRemoved(snap.ID, s.likes.NumLikes())
		return nil
	}

	fav, err := s.likes.AddLike(ctx, snap.ID, snap.Title, snap.Author, snap.ImageURL)
	if err != nil {
		s.view.ShowError(err)
		return err
	}
	metrics.FavoritesSize.Set(float64(s.likes.NumLikes()))
	s.view.ShowFavorite(fav, s.likes.NumLikes())
	return nil
}

// --- State accessors ---

// SearchState returns the search state machine's current state.
func (s *Service) SearchState() LoadState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchState
}

// RecipeState returns the recipe state machine's current state.
func (s *Service) RecipeState() LoadState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recipeState
}

// CurrentRecipe returns the active recipe payload, or nil when none is loaded.
func (s *Service) CurrentRecipe() *domain.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.recipeSession == nil {
		return nil
	}
	return s.recipeSession.Snapshot()
}

// ShoppingItems returns the current shopping list contents.
func (s *Service) ShoppingItems() []domain.ShoppingItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Items()
}

// Favorites returns the current liked recipes.
func (s *Service) Favorites() []domain.Favorite {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.likes.Likes()
}
