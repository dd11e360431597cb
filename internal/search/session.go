// Package search implements the search session: one query and its fetched
// result list, with a stateless pagination view.
package search

import "github.com/krywa5/forkify/internal/domain"

// DefaultPageSize is the number of results shown per page.
const DefaultPageSize = 10

// Session holds one query's results in collaborator order. A new search always
// produces a new session; results are never merged across queries.
type Session struct {
	query   string
	results []domain.SearchResult
}

// New builds a session for query with the collaborator's result order preserved.
func New(query string, results []domain.SearchResult) *Session {
	copied := make([]domain.SearchResult, len(results))
	copy(copied, results)
	return &Session{query: query, results: copied}
}

// Query returns the query this session was created for.
func (s *Session) Query() string { return s.query }

// Len returns the total number of results.
func (s *Session) Len() int { return len(s.results) }

// Results returns a copy of the full result list.
func (s *Session) Results() []domain.SearchResult {
	out := make([]domain.SearchResult, len(s.results))
	copy(out, s.results)
	return out
}

// Page returns the 1-based page n as a contiguous slice view over the results.
// Out-of-range pages and non-positive sizes return an empty slice. Pages are
// re-derivable at any time without refetching.
func (s *Session) Page(n, size int) []domain.SearchResult {
	if n < 1 || size < 1 {
		return nil
	}
	start := (n - 1) * size
	if start >= len(s.results) {
		return nil
	}
	end := start + size
	if end > len(s.results) {
		end = len(s.results)
	}
	out := make([]domain.SearchResult, end-start)
	copy(out, s.results[start:end])
	return out
}

// TotalPages returns how many pages of the given size the results span.
func (s *Session) TotalPages(size int) int {
	if size < 1 {
		return 0
	}
	return (len(s.results) + size - 1) / size
}
