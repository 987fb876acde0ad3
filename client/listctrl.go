package client

import (
	"context"
	"sync"
)

// Lister is the fetch half of Resource[T], split out so controllers can be
// exercised against fakes.
type Lister[T Identifiable] interface {
	List(ctx context.Context, q ListQuery) (Page[T], Status, error)
}

// ListController owns the state of one listing screen: the current query,
// the items of the current page and the collection total. Query changes and
// refetches may overlap; only the newest request is allowed to commit, so
// the visible items always correspond to the visible query. A failed fetch
// keeps the last successfully loaded items on screen and reports the failure.
type ListController[T Identifiable] struct {
	Source Lister[T]
	Label  string
	Notify Notifier

	// OnSettled, when set, is called after every fetch attempt commits or is
	// discarded as stale.
	OnSettled func()

	mu      sync.Mutex
	query   ListQuery
	items   []T
	total   int64
	loading bool
	gen     uint64
}

// Query returns the query currently driving the listing.
func (lc *ListController[T]) Query() ListQuery {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.query
}

// Items returns the currently displayed page.
func (lc *ListController[T]) Items() []T {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.items
}

// Total returns the collection-wide element count from the last good fetch.
func (lc *ListController[T]) Total() int64 {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.total
}

// Loading reports whether a fetch is in flight.
func (lc *ListController[T]) Loading() bool {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.loading
}

// SetQuery replaces the query and starts a fetch for it.
func (lc *ListController[T]) SetQuery(ctx context.Context, q ListQuery) {
	lc.mu.Lock()
	lc.query = q
	gen := lc.begin()
	lc.mu.Unlock()
	go lc.fetch(ctx, q, gen)
}

// Refetch reloads the current query, e.g. after a mutation on this page.
func (lc *ListController[T]) Refetch(ctx context.Context) {
	lc.mu.Lock()
	q := lc.query
	gen := lc.begin()
	lc.mu.Unlock()
	go lc.fetch(ctx, q, gen)
}

// begin is called with mu held.
func (lc *ListController[T]) begin() uint64 {
	lc.gen++
	lc.loading = true
	return lc.gen
}

func (lc *ListController[T]) fetch(ctx context.Context, q ListQuery, gen uint64) {
	page, status, err := lc.Source.List(ctx, q)

	lc.mu.Lock()
	if gen != lc.gen {
		lc.mu.Unlock()
		return
	}
	lc.loading = false
	settled := lc.OnSettled
	if err == nil && status == StatusOK {
		lc.items = page.Content
		lc.total = page.TotalElements
		lc.mu.Unlock()
		if settled != nil {
			settled()
		}
		return
	}
	lc.mu.Unlock()

	if lc.Notify != nil {
		lc.Notify.Error(msgListFailed(lc.Label))
	}
	if settled != nil {
		settled()
	}
}
