package listing

import (
	"strings"

	"officeweb/internal/pagination"
)

func tokensString(c pagination.Control) string {
	parts := make([]string, len(c.Tokens))
	for i, t := range c.Tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, ",")
}
