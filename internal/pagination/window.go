// Package pagination computes which page links a list view shows.
package pagination

import "strconv"

// maxPlainPages is the largest page count rendered without ellipses.
const maxPlainPages = 7

// Ellipsis is how an ellipsis token prints.
const Ellipsis = "…"

// Token is one slot in the pagination bar: a page number or an ellipsis.
type Token struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// PageToken returns a selectable page token.
func PageToken(page int) Token { return Token{Page: page} }

// EllipsisToken returns a non-interactive gap marker.
func EllipsisToken() Token { return Token{Ellipsis: true} }

func (t Token) String() string {
	if t.Ellipsis {
		return Ellipsis
	}
	return strconv.Itoa(t.Page)
}

// Window returns the tokens to render for currentPage out of totalPages.
// It returns nil when totalPages <= 1 since the bar is hidden. currentPage is
// not validated; callers pass a value already within [1, totalPages].
func Window(currentPage, totalPages int) []Token {
	if totalPages <= 1 {
		return nil
	}
	if totalPages <= maxPlainPages {
		return pageRange(nil, 1, totalPages)
	}

	var out []Token
	switch {
	case currentPage <= 3:
		out = pageRange(out, 1, 4)
		out = append(out, EllipsisToken(), PageToken(totalPages))
	case currentPage >= totalPages-2:
		out = append(out, PageToken(1), EllipsisToken())
		out = pageRange(out, totalPages-3, totalPages)
	default:
		out = append(out, PageToken(1), EllipsisToken())
		out = pageRange(out, currentPage-1, currentPage+1)
		out = append(out, EllipsisToken(), PageToken(totalPages))
	}
	return out
}

func pageRange(out []Token, from, to int) []Token {
	for p := from; p <= to; p++ {
		out = append(out, PageToken(p))
	}
	return out
}
