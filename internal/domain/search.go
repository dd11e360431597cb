package domain

import "context"

// SearchResult is one candidate recipe returned by the search-fetch collaborator.
type SearchResult struct {
	ID        string
	Title     string
	Publisher string
	ImageURL  string
}

// SearchFetcher retrieves the candidate list for a query from the external source.
// Result order is the collaborator's order; no client-side re-ranking happens anywhere.
type SearchFetcher interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}
