package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewControl(t *testing.T) {
	tests := []struct {
		name         string
		current      int
		total        int
		prevDisabled bool
		nextDisabled bool
		visible      bool
	}{
		{"first page", 1, 5, true, false, true},
		{"middle page", 3, 5, false, false, true},
		{"last page", 5, 5, false, true, true},
		{"only page", 1, 1, true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewControl(tt.current, tt.total)
			assert.Equal(t, tt.prevDisabled, c.PrevDisabled)
			assert.Equal(t, tt.nextDisabled, c.NextDisabled)
			assert.Equal(t, tt.visible, c.Visible())
			assert.Equal(t, Window(tt.current, tt.total), c.Tokens)
		})
	}
}

func TestControlCallbacks(t *testing.T) {
	var selected []int
	onSelect := func(p int) { selected = append(selected, p) }

	c := NewControl(5, 10)
	for _, tok := range c.Tokens {
		c.Select(tok, onSelect)
	}
	assert.Equal(t, []int{1, 4, 5, 6, 10}, selected, "ellipses are inert")

	selected = nil
	c.Prev(onSelect)
	c.Next(onSelect)
	assert.Equal(t, []int{4, 6}, selected)

	selected = nil
	first := NewControl(1, 3)
	first.Prev(onSelect)
	first.Next(onSelect)
	assert.Equal(t, []int{2}, selected)

	selected = nil
	last := NewControl(3, 3)
	last.Prev(onSelect)
	last.Next(onSelect)
	assert.Equal(t, []int{2}, selected)
}

func TestControlSelectPassesPageThrough(t *testing.T) {
	// The control forwards whatever page it is handed without clamping.
	var got int
	NewControl(1, 3).Select(PageToken(42), func(p int) { got = p })
	assert.Equal(t, 42, got)
}

func TestControlIsCurrent(t *testing.T) {
	c := NewControl(4, 10)
	assert.True(t, c.IsCurrent(PageToken(4)))
	assert.False(t, c.IsCurrent(PageToken(5)))
	assert.False(t, c.IsCurrent(EllipsisToken()))
}
