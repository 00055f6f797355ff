package pagination

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func render(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, ",")
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    string
	}{
		{"single page hides the bar", 1, 1, ""},
		{"zero pages hides the bar", 1, 0, ""},
		{"few pages render plainly", 1, 5, "1,2,3,4,5"},
		{"seven pages render plainly", 4, 7, "1,2,3,4,5,6,7"},
		{"eight pages start using ellipses", 1, 8, "1,2,3,4,…,8"},
		{"near start", 1, 10, "1,2,3,4,…,10"},
		{"page three is still near start", 3, 10, "1,2,3,4,…,10"},
		{"page four is middle", 4, 10, "1,…,3,4,5,…,10"},
		{"middle", 5, 10, "1,…,4,5,6,…,10"},
		{"last middle page", 7, 10, "1,…,6,7,8,…,10"},
		{"total minus two is near end", 8, 10, "1,…,7,8,9,10"},
		{"near end", 10, 10, "1,…,7,8,9,10"},
		{"large total middle", 50, 100, "1,…,49,50,51,…,100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(Window(tt.current, tt.total)))
		})
	}
}

func TestWindowIsPure(t *testing.T) {
	first := Window(5, 10)
	second := Window(5, 10)
	assert.Equal(t, first, second)

	first[0] = PageToken(99)
	assert.Equal(t, "1,…,4,5,6,…,10", render(Window(5, 10)), "results must not share state")
}

func TestWindowDoesNotValidateCurrentPage(t *testing.T) {
	// Out-of-range input is the caller's problem; the regimes still apply.
	assert.Equal(t, "1,2,3,4,…,10", render(Window(0, 10)))
	assert.Equal(t, "1,…,7,8,9,10", render(Window(12, 10)))
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "…", EllipsisToken().String())
	assert.Equal(t, "12", PageToken(12).String())
}
