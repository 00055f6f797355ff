package views

import (
	"officeweb/internal/listing"
	"officeweb/internal/pagination"
)

// List is the model of a paged list page.
type List[T any] struct {
	Items  []T
	Pager  Pager
	Failed bool
}

// NewList builds a list model from a controller snapshot. pageURL is usually
// the controller's PageURL.
func NewList[T any](state listing.State[T], pageURL func(page int) string) List[T] {
	return List[T]{
		Items:  state.Items,
		Pager:  NewPager(state.Control(), pageURL),
		Failed: state.Err != nil,
	}
}

// PagerLink is one numbered entry or gap of a rendered pagination bar.
type PagerLink struct {
	Label    string
	URL      string
	Current  bool
	Ellipsis bool
}

// Pager is a pagination bar with resolved link targets. An empty PrevURL or
// NextURL means the arrow is disabled.
type Pager struct {
	Visible bool
	PrevURL string
	NextURL string
	Links   []PagerLink
}

// NewPager resolves ctrl's tokens into links using pageURL, the URL a page
// change would navigate to.
func NewPager(ctrl pagination.Control, pageURL func(page int) string) Pager {
	p := Pager{Visible: ctrl.Visible()}
	if !p.Visible {
		return p
	}
	ctrl.Prev(func(n int) { p.PrevURL = pageURL(n) })
	ctrl.Next(func(n int) { p.NextURL = pageURL(n) })
	for _, t := range ctrl.Tokens {
		link := PagerLink{Label: t.String(), Current: ctrl.IsCurrent(t), Ellipsis: t.Ellipsis}
		if !link.Current {
			ctrl.Select(t, func(n int) { link.URL = pageURL(n) })
		}
		p.Links = append(p.Links, link)
	}
	return p
}
