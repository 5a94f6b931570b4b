package model

// PlaceholderDescription is used when an item is added without a description.
const PlaceholderDescription = "No description provided"

// Item is the domain model for a todo entry.
type Item struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Expanded    bool   `json:"expanded"`
}

// Seed returns the items a fresh list starts with.
func Seed() []Item {
	return []Item{
		{ID: 1, Title: "todo 1", Description: "This is the description for todo 1"},
		{ID: 2, Title: "todo 2", Description: "This is the description for todo 2"},
	}
}
