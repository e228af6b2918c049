package catalog

// Store is the read side of the product catalog. There is no write side: the
// catalog is fixed when the process starts.
type Store interface {
	// List returns every item in insertion order, which is also the order
	// search results are reported in.
	List() []Item
}

// MemoryStore keeps the catalog in a slice shared by all request goroutines.
// Concurrent List calls need no lock because nothing writes to items after
// NewMemoryStore returns.
type MemoryStore struct {
	items []Item
}

// NewMemoryStore copies items, so a caller mutating its seed slice later
// cannot change what is served.
func NewMemoryStore(items []Item) *MemoryStore {
	return &MemoryStore{items: append([]Item(nil), items...)}
}

// List hands out a fresh copy. Callers such as the search service filter and
// keep the result; a copy keeps them from reordering or editing the shared
// slice that other requests are reading.
func (s *MemoryStore) List() []Item {
	return append([]Item(nil), s.items...)
}
