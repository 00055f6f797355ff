package listing

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestLocationPage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"/posts", 1},
		{"/posts?page=4", 4},
		{"/posts?page=0", 1},
		{"/posts?page=-3", 1},
		{"/posts?page=abc", 1},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NewLocation(mustURL(t, tt.raw)).Page())
		})
	}
	assert.Equal(t, 1, NewLocation(nil).Page())
}

func TestLocationSetPageNotifiesOnChange(t *testing.T) {
	loc := NewLocation(mustURL(t, "/posts?page=1&lang=en"))
	var got []int
	cancel := loc.Subscribe(func(p int) { got = append(got, p) })

	loc.SetPage(2)
	loc.SetPage(2)
	loc.SetPage(3)
	assert.Equal(t, []int{2, 3}, got)
	assert.Equal(t, "/posts?lang=en&page=3", loc.URL())

	cancel()
	loc.SetPage(4)
	assert.Equal(t, []int{2, 3}, got, "cancelled subscribers are not called")
	assert.Equal(t, 4, loc.Page())
}

func TestLocationPageURL(t *testing.T) {
	loc := NewLocation(mustURL(t, "/contact?lang=zh&page=2"))
	assert.Equal(t, "/contact?lang=zh&page=5", loc.PageURL(5))
	assert.Equal(t, 2, loc.Page(), "PageURL does not navigate")
}
