// Package listing drives paged list views backed by a remote collection.
package listing

import (
	"context"
	"log/slog"
	"sync"

	"officeweb/internal/domain"
	"officeweb/internal/pagination"
)

// Fetcher loads one page of a remote collection.
type Fetcher[T any] func(ctx context.Context, p domain.PaginationParams) (*domain.PagedResult[T], error)

// State is a snapshot of a list view.
type State[T any] struct {
	CurrentPage int
	TotalPages  int
	Items       []T
	Loading     bool
	// Err is the most recent fetch failure. Items and TotalPages still hold
	// the last good response.
	Err error
}

// Control returns the pagination bar for the snapshot.
func (s State[T]) Control() pagination.Control {
	return pagination.NewControl(s.CurrentPage, s.TotalPages)
}

// Controller keeps a list view in step with its Location. Each fetch gets a
// sequence number; only the response to the newest fetch is applied, so a
// slow response for a page the visitor already left cannot overwrite the
// page they are on.
type Controller[T any] struct {
	loc      *Location
	fetch    Fetcher[T]
	pageSize int
	logger   *slog.Logger

	mu    sync.Mutex
	ctx   context.Context
	seq   uint64
	state State[T]
	// known is set once a response has reported TotalPages.
	known       bool
	unsubscribe func()
	inflight    sync.WaitGroup
}

// NewController returns an unmounted controller.
func NewController[T any](loc *Location, fetch Fetcher[T], pageSize int, logger *slog.Logger) *Controller[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller[T]{
		loc:      loc,
		fetch:    fetch,
		pageSize: pageSize,
		logger:   logger,
		state:    State[T]{CurrentPage: 1, TotalPages: 1},
	}
}

// Mount reads the page from the Location, starts listening for changes and
// issues the first fetch. ctx bounds every fetch the controller makes.
func (c *Controller[T]) Mount(ctx context.Context) {
	page := c.loc.Page()
	c.mu.Lock()
	c.ctx = ctx
	c.state.CurrentPage = page
	c.mu.Unlock()

	c.unsubscribe = c.loc.Subscribe(c.pageChanged)
	c.load(page)
}

// Unmount stops reacting to Location changes. Responses still in flight are
// dropped.
func (c *Controller[T]) Unmount() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.mu.Lock()
	c.seq++
	c.state.Loading = false
	c.mu.Unlock()
}

// OnPageChange records page in the Location. The Location change triggers
// the fetch; this method does not fetch on its own. Pages below 1, or past
// the last page once it is known, are ignored.
func (c *Controller[T]) OnPageChange(page int) {
	c.mu.Lock()
	ok := c.inRange(page)
	c.mu.Unlock()
	if !ok {
		c.logger.Debug("ignoring out-of-range page", "page", page)
		return
	}
	c.loc.SetPage(page)
}

// inRange reports whether page may be fetched. c.mu must be held.
func (c *Controller[T]) inRange(page int) bool {
	if page < 1 {
		return false
	}
	return !c.known || page <= c.state.TotalPages
}

// PageURL is the link target for page, for renderers that navigate by URL.
func (c *Controller[T]) PageURL(page int) string {
	return c.loc.PageURL(page)
}

func (c *Controller[T]) pageChanged(page int) {
	c.mu.Lock()
	if page == c.state.CurrentPage || !c.inRange(page) {
		c.mu.Unlock()
		return
	}
	c.state.CurrentPage = page
	c.mu.Unlock()
	c.load(page)
}

func (c *Controller[T]) load(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startLocked(page)
}

// startLocked issues the fetch for page. c.mu must be held.
func (c *Controller[T]) startLocked(page int) {
	c.seq++
	token := c.seq
	c.state.Loading = true
	ctx := orBackground(c.ctx)
	params := domain.PaginationParams{Page: page, PageSize: c.pageSize}

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		res, err := c.fetch(ctx, params)
		if last, moved := c.apply(token, page, res, err); moved {
			c.loc.SetPage(last)
		}
	}()
}

// apply stores a response. When the page turns out to be past the end, the
// controller moves to the last page, starts fetching it and reports the new
// page so the caller can rewrite the Location.
func (c *Controller[T]) apply(token uint64, page int, res *domain.PagedResult[T], err error) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.seq {
		c.logger.Debug("discarding stale list response", "page", page, "token", token, "latest", c.seq)
		return 0, false
	}
	c.state.Loading = false
	if err != nil {
		c.state.Err = err
		c.logger.ErrorContext(orBackground(c.ctx), "list fetch failed", "page", page, "page_size", c.pageSize, "err", err)
		return 0, false
	}
	if res == nil {
		return 0, false
	}
	c.state.Err = nil
	c.state.Items = res.Items
	c.state.TotalPages = res.TotalPages
	if c.state.TotalPages < 1 {
		c.state.TotalPages = 1
	}
	c.known = true

	if c.state.CurrentPage > c.state.TotalPages {
		last := c.state.TotalPages
		c.logger.Debug("page past the end, moving to last page", "page", page, "last", last)
		c.state.CurrentPage = last
		c.startLocked(last)
		return last, true
	}
	return 0, false
}

func orBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// Wait blocks until every fetch issued so far has completed.
func (c *Controller[T]) Wait() {
	c.inflight.Wait()
}

// State returns a snapshot of the view.
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Items = append([]T(nil), c.state.Items...)
	return s
}

// Load mounts a controller for loc, waits for the first fetch and returns the
// resulting state. It is how a server-rendered handler drives a list view
// within a single request.
func Load[T any](ctx context.Context, loc *Location, fetch Fetcher[T], pageSize int, logger *slog.Logger) (State[T], *Controller[T]) {
	c := NewController(loc, fetch, pageSize, logger)
	c.Mount(ctx)
	c.Wait()
	c.Unmount()
	return c.State(), c
}
