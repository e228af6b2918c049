package search

import (
	"context"
	"strings"

	"github.com/zhouzirui/shopfront/backend/internal/model/catalog"
)

// Result is the payload returned for a catalog search.
type Result struct {
	Query   string         `json:"query"`
	Results []catalog.Item `json:"results"`
}

// Service filters the catalog by name.
type Service struct {
	store catalog.Store
}

// NewService binds a search service to an immutable catalog.
func NewService(store catalog.Store) *Service {
	return &Service{store: store}
}

// Search lowercases name and returns every item whose lowercased name
// contains it, in catalog order. An empty name matches everything.
func (s *Service) Search(_ context.Context, name string) Result {
	query := strings.ToLower(name)

	matches := make([]catalog.Item, 0)
	for _, item := range s.store.List() {
		if strings.Contains(strings.ToLower(item.Name), query) {
			matches = append(matches, item)
		}
	}

	return Result{Query: query, Results: matches}
}
