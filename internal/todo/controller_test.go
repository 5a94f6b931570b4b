package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/model"
)

// recordingSurface records every call the controller makes.
type recordingSurface struct {
	title, description string
	clears             int
	trees              []Tree
}

func (s *recordingSurface) Inputs() (string, string) { return s.title, s.description }
func (s *recordingSurface) ClearInputs() {
	s.clears++
	s.title, s.description = "", ""
}
func (s *recordingSurface) Replace(tree Tree) { s.trees = append(s.trees, tree) }

func (s *recordingSurface) renders() int { return len(s.trees) }
func (s *recordingSurface) last() Tree   { return s.trees[len(s.trees)-1] }

func newSeeded(t *testing.T) (*Controller, *recordingSurface) {
	t.Helper()
	s := &recordingSurface{}
	c := New(s, WithItems(model.Seed()))
	require.Equal(t, 1, s.renders(), "constructor renders once")
	return c, s
}

func ids(items []model.Item) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestAddAppendsWithIncreasingIDs(t *testing.T) {
	c := New(&recordingSurface{})

	titles := []string{"a", "b", "  c  ", "d"}
	for _, title := range titles {
		_, ok := c.Add(title, "")
		require.True(t, ok)
	}

	items := c.Items()
	require.Len(t, items, len(titles))
	for i := 1; i < len(items); i++ {
		assert.Greater(t, items[i].ID, items[i-1].ID)
	}
	assert.Equal(t, "c", items[2].Title)
}

func TestAddRejectsEmptyTitle(t *testing.T) {
	c, s := newSeeded(t)
	s.title, s.description = "   ", "x"
	before := c.Items()

	for _, title := range []string{"", "   ", "\t\n"} {
		_, ok := c.Add(title, "x")
		assert.False(t, ok)
	}
	_, ok := c.Submit()
	assert.False(t, ok)

	assert.Equal(t, before, c.Items())
	assert.Equal(t, 1, s.renders(), "rejected adds do not render")
	assert.Zero(t, s.clears, "rejected adds keep the inputs")
	assert.Equal(t, "x", s.description)
}

func TestAddUsesPlaceholderDescription(t *testing.T) {
	c := New(&recordingSurface{})

	it, ok := c.Add("t", "   ")
	require.True(t, ok)
	assert.Equal(t, model.PlaceholderDescription, it.Description)

	it, ok = c.Add("u", "  details  ")
	require.True(t, ok)
	assert.Equal(t, "details", it.Description)
}

func TestAddToSeededList(t *testing.T) {
	c, s := newSeeded(t)

	it, ok := c.Add("buy milk", "")
	require.True(t, ok)

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, model.Item{
		ID:          3,
		Title:       "buy milk",
		Description: model.PlaceholderDescription,
	}, items[2])
	assert.Equal(t, items[2], it)
	assert.Equal(t, 2, s.renders())
	assert.Equal(t, 3, s.last().Len())
	assert.Equal(t, 1, s.clears)
}

func TestSubmitReadsAndClearsInputs(t *testing.T) {
	c, s := newSeeded(t)
	s.title, s.description = "  write report ", " by friday "

	it, ok := c.Submit()
	require.True(t, ok)
	assert.Equal(t, "write report", it.Title)
	assert.Equal(t, "by friday", it.Description)
	assert.Equal(t, 1, s.clears)
	assert.Empty(t, s.title)
	assert.Empty(t, s.description)
}

func TestIDsAreNeverReused(t *testing.T) {
	c, _ := newSeeded(t)

	a, _ := c.Add("third", "")
	c.Remove(a.ID)
	b, _ := c.Add("fourth", "")

	assert.Equal(t, 3, a.ID)
	assert.Equal(t, 4, b.ID)
}

func TestNextIDStartsPastSeed(t *testing.T) {
	c := New(&recordingSurface{}, WithItems([]model.Item{
		{ID: 7, Title: "seven"},
		{ID: 3, Title: "three"},
	}))

	it, ok := c.Add("next", "")
	require.True(t, ok)
	assert.Equal(t, 8, it.ID)
}

func TestRemove(t *testing.T) {
	c, s := newSeeded(t)
	c.Add("buy milk", "")

	assert.True(t, c.Remove(1))
	assert.Equal(t, []int{2, 3}, ids(c.Items()))
	assert.Equal(t, 3, s.renders())
	assert.Equal(t, -1, s.last().Index(1))
}

func TestRemoveMissingLeavesListUnchanged(t *testing.T) {
	c, s := newSeeded(t)
	before := c.Items()

	assert.False(t, c.Remove(42))
	assert.Equal(t, before, c.Items())
	assert.Equal(t, 2, s.renders(), "remove re-renders even when nothing matched")
}

func TestToggleCompletedDoesNotRender(t *testing.T) {
	c, s := newSeeded(t)

	assert.True(t, c.ToggleCompleted(2))
	assert.True(t, c.Items()[1].Completed)
	assert.Equal(t, 1, s.renders())

	assert.True(t, c.ToggleCompleted(2))
	assert.False(t, c.Items()[1].Completed)

	assert.False(t, c.ToggleCompleted(99))
	assert.Equal(t, 1, s.renders())
}

func TestToggleExpanded(t *testing.T) {
	c, s := newSeeded(t)

	assert.True(t, c.ToggleExpanded(1))
	assert.True(t, c.Items()[0].Expanded)
	assert.Equal(t, 2, s.renders())
	assert.True(t, s.last().Entries[0].Description.Visible)
	assert.False(t, s.last().Entries[1].Description.Visible)

	assert.True(t, c.ToggleExpanded(1))
	assert.False(t, c.Items()[0].Expanded)
	assert.Equal(t, 3, s.renders())
}

func TestToggleExpandedMissingDoesNotRender(t *testing.T) {
	c, s := newSeeded(t)

	assert.False(t, c.ToggleExpanded(99))
	assert.Equal(t, 1, s.renders())
}

func TestRenderBuildsTreeInListOrder(t *testing.T) {
	c, s := newSeeded(t)
	c.Add("third", "three")
	c.ToggleCompleted(2)
	c.ToggleExpanded(3)

	tree := s.last()
	require.Equal(t, 3, tree.Len())
	for i, it := range c.Items() {
		e := tree.Entries[i]
		assert.Equal(t, it.ID, e.Row.ID)
		assert.Equal(t, it.Title, e.Row.Title)
		assert.Equal(t, it.Completed, e.Row.Completed)
		assert.Equal(t, it.ID, e.Description.ID)
		assert.Equal(t, it.Description, e.Description.Text)
		assert.Equal(t, it.Expanded, e.Description.Visible)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	c, _ := newSeeded(t)

	items := c.Items()
	items[0].Title = "changed"

	assert.Equal(t, "todo 1", c.Items()[0].Title)
}

func TestStats(t *testing.T) {
	c, _ := newSeeded(t)
	c.Add("third", "")
	c.ToggleCompleted(1)

	done, pending := c.Stats()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)
}
