package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *fakeNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *fakeNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

// gatedLister blocks each List call on a per-query gate so tests control the
// order in which overlapping fetches return.
type gatedLister struct {
	mu    sync.Mutex
	gates map[string]chan struct{}
	pages map[string]Page[Category]
	fail  map[string]bool
}

func newGatedLister() *gatedLister {
	return &gatedLister{
		gates: map[string]chan struct{}{},
		pages: map[string]Page[Category]{},
		fail:  map[string]bool{},
	}
}

func (g *gatedLister) add(q ListQuery, page Page[Category]) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gates[q.Key()] = make(chan struct{})
	g.pages[q.Key()] = page
}

func (g *gatedLister) release(q ListQuery) {
	g.mu.Lock()
	gate := g.gates[q.Key()]
	g.mu.Unlock()
	close(gate)
}

func (g *gatedLister) List(ctx context.Context, q ListQuery) (Page[Category], Status, error) {
	g.mu.Lock()
	gate := g.gates[q.Key()]
	page := g.pages[q.Key()]
	failed := g.fail[q.Key()]
	g.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if failed {
		return Page[Category]{}, StatusException, errors.New("network down")
	}
	return page, StatusOK, nil
}

func waitSettled(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("fetch did not settle in time")
	}
}

func TestListControllerCommitsFetch(t *testing.T) {
	src := newGatedLister()
	q := ListQuery{Search: "ao"}
	src.add(q, Page[Category]{Content: []Category{{ID: 1, Name: "Áo dài"}}, TotalElements: 1})

	settled := make(chan struct{}, 4)
	lc := &ListController[Category]{Source: src, Label: "phân loại", OnSettled: func() { settled <- struct{}{} }}

	lc.SetQuery(context.Background(), q)
	if !lc.Loading() {
		t.Fatalf("controller should be loading while fetch is gated")
	}
	src.release(q)
	waitSettled(t, settled)

	if got := lc.Items(); len(got) != 1 || got[0].Name != "Áo dài" {
		t.Errorf("items not committed: %+v", got)
	}
	if lc.Total() != 1 {
		t.Errorf("total not committed: %d", lc.Total())
	}
	if lc.Loading() {
		t.Errorf("loading should clear after settle")
	}
}

func TestListControllerLastQueryWins(t *testing.T) {
	src := newGatedLister()
	q1 := ListQuery{Search: "one"}
	q2 := ListQuery{Search: "two"}
	src.add(q1, Page[Category]{Content: []Category{{ID: 1, Name: "stale"}}, TotalElements: 99})
	src.add(q2, Page[Category]{Content: []Category{{ID: 2, Name: "fresh"}}, TotalElements: 1})

	settled := make(chan struct{}, 4)
	lc := &ListController[Category]{Source: src, Label: "phân loại", OnSettled: func() { settled <- struct{}{} }}

	ctx := context.Background()
	lc.SetQuery(ctx, q1)
	lc.SetQuery(ctx, q2)

	// The newer query returns first and commits.
	src.release(q2)
	waitSettled(t, settled)

	// The older query returns afterwards and must be discarded silently.
	src.release(q1)
	time.Sleep(50 * time.Millisecond)

	if got := lc.Items(); len(got) != 1 || got[0].Name != "fresh" {
		t.Errorf("stale response overwrote newer one: %+v", got)
	}
	if lc.Total() != 1 {
		t.Errorf("stale total committed: %d", lc.Total())
	}
	if lc.Query().Key() != q2.Key() {
		t.Errorf("query should remain the newest one")
	}
}

func TestListControllerKeepsItemsOnFailure(t *testing.T) {
	src := newGatedLister()
	good := ListQuery{}
	bad := ListQuery{Search: "boom"}
	src.add(good, Page[Category]{Content: []Category{{ID: 1, Name: "kept"}}, TotalElements: 1})
	src.add(bad, Page[Category]{})
	src.fail[bad.Key()] = true

	notify := &fakeNotifier{}
	settled := make(chan struct{}, 4)
	lc := &ListController[Category]{Source: src, Label: "phân loại", Notify: notify, OnSettled: func() { settled <- struct{}{} }}

	ctx := context.Background()
	lc.SetQuery(ctx, good)
	src.release(good)
	waitSettled(t, settled)

	lc.SetQuery(ctx, bad)
	src.release(bad)
	waitSettled(t, settled)

	if got := lc.Items(); len(got) != 1 || got[0].Name != "kept" {
		t.Errorf("failed fetch should keep last good items, got %+v", got)
	}
	notify.mu.Lock()
	defer notify.mu.Unlock()
	if len(notify.errors) != 1 || notify.errors[0] != msgListFailed("phân loại") {
		t.Errorf("failure should notify once, got %v", notify.errors)
	}
}
