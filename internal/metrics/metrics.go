// Package metrics defines the Prometheus instrumentation for the model layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// External fetch metrics
var (
	// FetchesTotal tracks recipe/search fetches by endpoint and status
	FetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forkify_fetches_total",
			Help: "Total external API fetches by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)

	// FetchDuration tracks external API latency in seconds
	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "forkify_fetch_duration_seconds",
			Help:    "External API fetch duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)
)

// Model state metrics
var (
	// RecipeLoadsTotal tracks recipe navigations by outcome
	RecipeLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forkify_recipe_loads_total",
			Help: "Recipe navigations by outcome (ready/failed/stale)",
		},
		[]string{"outcome"},
	)

	// SearchesTotal tracks search submissions by outcome
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forkify_searches_total",
			Help: "Search submissions by outcome (ready/failed/stale)",
		},
		[]string{"outcome"},
	)

	// IngredientParseFailures tracks ingredient lines that yielded no name
	IngredientParseFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "forkify_ingredient_parse_failures_total",
			Help: "Ingredient lines rejected because no name could be derived",
		},
	)

	// ShoppingListSize tracks the current number of shopping list items
	ShoppingListSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "forkify_shopping_list_size",
			Help: "Current number of shopping list items",
		},
	)

	// FavoritesSize tracks the current number of liked recipes
	FavoritesSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "forkify_favorites_size",
			Help: "Current number of liked recipes",
		},
	)
)
