// Package tracking keeps the process-lifetime record of listings that have
// already been handed to the dispatcher. The record only ever grows; a listing
// marked here is never dispatched again for the life of the process, even if
// its booking attempt later fails.
package tracking

import "sync"

// DedupTracker records which listing identifiers have been dispatched. The
// check and the mark happen under one lock, so two concurrent poll cycles can
// never both claim the same listing.
type DedupTracker struct {
	mu         sync.Mutex
	dispatched map[string]struct{}
}

// NewDedupTracker creates an empty tracker.
func NewDedupTracker() *DedupTracker {
	return &DedupTracker{dispatched: make(map[string]struct{})}
}

// TryMark atomically checks and marks the listing identifier. It returns true
// exactly once per identifier; every later call returns false.
func (t *DedupTracker) TryMark(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, seen := t.dispatched[id]; seen {
		return false
	}
	t.dispatched[id] = struct{}{}

	return true
}

// Seen reports whether the listing identifier has been marked.
func (t *DedupTracker) Seen(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, seen := t.dispatched[id]

	return seen
}

// Release removes a mark. It is used only when a marked listing could not be
// handed to the dispatcher, so a later poll cycle can pick it up again.
func (t *DedupTracker) Release(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.dispatched, id)
}

// Size returns the number of marked listings.
func (t *DedupTracker) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.dispatched)
}
