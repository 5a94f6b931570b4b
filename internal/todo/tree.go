package todo

import "github.com/idilsaglam/tada/internal/model"

// Row is the visible line of an item: checkbox, title and delete trigger.
type Row struct {
	ID        int
	Title     string
	Completed bool
}

// DescriptionRegion sits directly under its row and is shown only when
// the item is expanded.
type DescriptionRegion struct {
	ID      int
	Text    string
	Visible bool
}

// Entry pairs a row with its description region.
type Entry struct {
	Row         Row
	Description DescriptionRegion
}

// Tree is the full visual representation of the list, in list order.
type Tree struct {
	Entries []Entry
}

// Len reports the number of rows in the tree.
func (t Tree) Len() int { return len(t.Entries) }

// Index returns the position of the entry for id, or -1.
func (t Tree) Index(id int) int {
	for i, e := range t.Entries {
		if e.Row.ID == id {
			return i
		}
	}
	return -1
}

func buildTree(items []model.Item) Tree {
	entries := make([]Entry, 0, len(items))
	for _, it := range items {
		entries = append(entries, Entry{
			Row: Row{ID: it.ID, Title: it.Title, Completed: it.Completed},
			Description: DescriptionRegion{
				ID:      it.ID,
				Text:    it.Description,
				Visible: it.Expanded,
			},
		})
	}
	return Tree{Entries: entries}
}
