package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zhouzirui/shopfront/backend/internal/model/catalog"
	"github.com/zhouzirui/shopfront/backend/internal/service/search"
)

func newService() *search.Service {
	return search.NewService(catalog.NewMemoryStore(catalog.Seed()))
}

func TestSearchEmptyQueryMatchesAll(t *testing.T) {
	res := newService().Search(context.Background(), "")

	assert.Equal(t, "", res.Query)
	assert.Equal(t, catalog.Seed(), res.Results)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	res := newService().Search(context.Background(), "MOUSE")

	assert.Equal(t, "mouse", res.Query)
	assert.Equal(t, []catalog.Item{{ID: 3, Name: "Mouse"}}, res.Results)
}

func TestSearchSubstringPreservesCatalogOrder(t *testing.T) {
	res := newService().Search(context.Background(), "o")

	var ids []int
	for _, item := range res.Results {
		ids = append(ids, item.ID)
	}
	// Laptop, Keyboard, Mouse, Monitor, Phone all contain "o".
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids)

	res = newService().Search(context.Background(), "mo")
	assert.Equal(t, []catalog.Item{{ID: 3, Name: "Mouse"}, {ID: 4, Name: "Monitor"}}, res.Results)
}

func TestSearchNoMatchReturnsEmptySlice(t *testing.T) {
	res := newService().Search(context.Background(), "xyz123")

	assert.Equal(t, "xyz123", res.Query)
	assert.NotNil(t, res.Results)
	assert.Empty(t, res.Results)
}

func TestSearchIsNotTokenized(t *testing.T) {
	res := newService().Search(context.Background(), "lap top")
	assert.Empty(t, res.Results)
}
