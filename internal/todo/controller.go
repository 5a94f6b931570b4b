// Package todo owns the task list and every mutation on it. After a
// mutation the whole list is rebuilt into a Tree and handed to the
// Surface; nothing is patched incrementally.
package todo

import (
	"log/slog"
	"strings"

	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/model"
)

// Surface is the presentation side the controller reads from and renders into.
type Surface interface {
	// Inputs returns the current values of the title and description inputs.
	Inputs() (title, description string)
	// ClearInputs empties both inputs.
	ClearInputs()
	// Replace swaps the container contents for tree.
	Replace(tree Tree)
}

// Controller owns the ordered item list. It is not safe for concurrent use;
// all calls are expected from the UI loop.
type Controller struct {
	items   []model.Item
	nextID  int
	surface Surface
	log     *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithItems seeds the list. The ID counter starts past the largest seeded ID.
func WithItems(items []model.Item) Option {
	return func(c *Controller) {
		c.items = append([]model.Item(nil), items...)
	}
}

// WithLogger sets the logger used for mutation events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New builds a controller bound to surface and renders the initial list.
func New(surface Surface, opts ...Option) *Controller {
	c := &Controller{
		surface: surface,
		log:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.nextID = 1
	for _, it := range c.items {
		if it.ID >= c.nextID {
			c.nextID = it.ID + 1
		}
	}
	c.Render()
	return c
}

// Add appends a new item. An empty (or whitespace-only) title is ignored
// and reported as false; nothing is rendered and the inputs stay as they are.
func (c *Controller) Add(title, description string) (model.Item, bool) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		c.log.Debug("add ignored", "reason", "empty title")
		return model.Item{}, false
	}
	if description == "" {
		description = model.PlaceholderDescription
	}

	it := model.Item{
		ID:          c.nextID,
		Title:       title,
		Description: description,
	}
	c.nextID++
	c.items = append(c.items, it)
	c.log.Debug("item added", "id", it.ID, "title", it.Title)

	c.Render()
	c.surface.ClearInputs()
	return it, true
}

// Submit adds an item from the surface's current input values.
func (c *Controller) Submit() (model.Item, bool) {
	title, description := c.surface.Inputs()
	return c.Add(title, description)
}

// Remove drops the item with id. The list is re-rendered either way.
func (c *Controller) Remove(id int) bool {
	kept := c.items[:0]
	removed := false
	for _, it := range c.items {
		if it.ID == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	c.items = kept
	if removed {
		c.log.Debug("item removed", "id", id)
	}
	c.Render()
	return removed
}

// ToggleCompleted flips the completed flag of id. It does not re-render:
// the checkbox on the surface already shows the new state.
func (c *Controller) ToggleCompleted(id int) bool {
	i := c.find(id)
	if i < 0 {
		return false
	}
	c.items[i].Completed = !c.items[i].Completed
	c.log.Debug("item toggled", "id", id, "completed", c.items[i].Completed)
	return true
}

// ToggleExpanded flips the expanded flag of id and re-renders.
// Unknown ids are ignored without rendering.
func (c *Controller) ToggleExpanded(id int) bool {
	i := c.find(id)
	if i < 0 {
		return false
	}
	c.items[i].Expanded = !c.items[i].Expanded
	c.log.Debug("item expanded", "id", id, "expanded", c.items[i].Expanded)
	c.Render()
	return true
}

// Render rebuilds the visual tree from the current list.
func (c *Controller) Render() {
	c.surface.Replace(buildTree(c.items))
}

// Items returns a copy of the list in display order.
func (c *Controller) Items() []model.Item {
	return append([]model.Item(nil), c.items...)
}

// Stats counts completed and pending items.
func (c *Controller) Stats() (done, pending int) {
	for _, it := range c.items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func (c *Controller) find(id int) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}
