// Package api implements the HTTP client for the external recipe service.
//
// Implements the domain RecipeFetcher and SearchFetcher collaborators. Any
// transport failure or shape deviation in a response is a fetch error; an id
// the service does not know is a not-found error. Nothing here retries.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/krywa5/forkify/internal/domain"
	apperrors "github.com/krywa5/forkify/internal/errors"
	"github.com/krywa5/forkify/internal/metrics"
)

// DefaultBaseURL is the public recipe API endpoint.
const DefaultBaseURL = "https://forkify-api.herokuapp.com/api"

// Client talks to the recipe service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL with the given
// request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type searchResponse struct {
	Recipes []struct {
		RecipeID  string `json:"recipe_id"`
		Title     string `json:"title"`
		Publisher string `json:"publisher"`
		ImageURL  string `json:"image_url"`
	} `json:"recipes"`
}

// Search fetches the candidate list for query, preserving the service's order.
func (c *Client) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s", c.baseURL, url.QueryEscape(query))

	var payload searchResponse
	if err := c.getJSON(ctx, "search", endpoint, &payload); err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, len(payload.Recipes))
	for i, r := range payload.Recipes {
		results[i] = domain.SearchResult{
			ID:        r.RecipeID,
			Title:     r.Title,
			Publisher: r.Publisher,
			ImageURL:  r.ImageURL,
		}
	}
	return results, nil
}

type recipeResponse struct {
	Recipe struct {
		RecipeID    string   `json:"recipe_id"`
		Title       string   `json:"title"`
		Publisher   string   `json:"publisher"`
		ImageURL    string   `json:"image_url"`
		Servings    int      `json:"servings"`
		Ingredients []string `json:"ingredients"`
	} `json:"recipe"`
}

// GetRecipe fetches one recipe by id. Responses missing required fields
// (title, a positive serving count, a non-empty ingredient list) are malformed.
func (c *Client) GetRecipe(ctx context.Context, id string) (*domain.RecipeData, error) {
	endpoint := fmt.Sprintf("%s/get?rId=%s", c.baseURL, url.QueryEscape(id))

	var payload recipeResponse
	if err := c.getJSON(ctx, "get", endpoint, &payload); err != nil {
		return nil, err
	}

	r := payload.Recipe
	if r.Title == "" || r.Servings < 1 || len(r.Ingredients) == 0 {
		return nil, apperrors.FetchError("recipe response is missing required fields", nil).WithContext("recipe_id", id)
	}

	data := &domain.RecipeData{
		ID:          r.RecipeID,
		Title:       r.Title,
		Author:      r.Publisher,
		ImageURL:    r.ImageURL,
		Servings:    r.Servings,
		Ingredients: r.Ingredients,
	}
	if data.ID == "" {
		data.ID = id
	}
	return data, nil
}

// getJSON performs the GET and decodes the body, mapping transport and shape
// failures to the error taxonomy and recording fetch metrics.
func (c *Client) getJSON(ctx context.Context, endpoint, rawURL string, out any) error {
	start := time.Now()
	status := "error"
	defer func() {
		metrics.FetchesTotal.WithLabelValues(endpoint, status).Inc()
		metrics.FetchDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return apperrors.FetchError("failed to build request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.FetchError("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		status = "not_found"
		return apperrors.NotFoundError("identifier not recognized by the recipe service")
	case resp.StatusCode != http.StatusOK:
		return apperrors.FetchError(fmt.Sprintf("unexpected status code %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.FetchError("response body is malformed", err)
	}

	status = "ok"
	return nil
}
