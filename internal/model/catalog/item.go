package catalog

// Item is a searchable catalog entry.
type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Seed provides the product catalog served by the search API.
func Seed() []Item {
	return []Item{
		{ID: 1, Name: "Laptop"},
		{ID: 2, Name: "Keyboard"},
		{ID: 3, Name: "Mouse"},
		{ID: 4, Name: "Monitor"},
		{ID: 5, Name: "Phone"},
	}
}
