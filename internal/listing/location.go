package listing

import (
	"net/url"
	"strconv"
	"sync"
)

// PageParam is the query parameter that carries the current page.
const PageParam = "page"

// Location is the navigable URL state of a list view. The page number lives
// in its query string; changing it notifies subscribers, which is how a
// Controller learns it should fetch.
type Location struct {
	mu        sync.Mutex
	path      string
	query     url.Values
	listeners map[int]func(page int)
	nextID    int
}

// NewLocation copies path and query from u.
func NewLocation(u *url.URL) *Location {
	l := &Location{path: "/", query: url.Values{}, listeners: map[int]func(int){}}
	if u != nil {
		if u.Path != "" {
			l.path = u.Path
		}
		l.query = u.Query()
	}
	return l
}

// Page returns the page in the URL, defaulting to 1 when absent, malformed
// or below 1.
func (l *Location) Page() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return parsePage(l.query.Get(PageParam))
}

func parsePage(s string) int {
	if s == "" {
		return 1
	}
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 {
		return 1
	}
	return p
}

// SetPage writes page into the URL. Subscribers are told only when the value
// actually changes.
func (l *Location) SetPage(page int) {
	l.mu.Lock()
	prev := l.query.Get(PageParam)
	next := strconv.Itoa(page)
	if prev == next {
		l.mu.Unlock()
		return
	}
	l.query.Set(PageParam, next)
	fns := make([]func(int), 0, len(l.listeners))
	for _, fn := range l.listeners {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(page)
	}
}

// Subscribe registers fn for page changes and returns its cancel func.
func (l *Location) Subscribe(fn func(page int)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextID
	l.nextID++
	l.listeners[id] = fn
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.listeners, id)
	}
}

// URL returns the current path and query.
func (l *Location) URL() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return (&url.URL{Path: l.path, RawQuery: l.query.Encode()}).String()
}

// PageURL returns the URL SetPage(page) would produce, keeping every other
// query parameter (such as lang) intact.
func (l *Location) PageURL(page int) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	q := url.Values{}
	for k, v := range l.query {
		q[k] = append([]string(nil), v...)
	}
	q.Set(PageParam, strconv.Itoa(page))
	return (&url.URL{Path: l.path, RawQuery: q.Encode()}).String()
}
