// Package admission serializes fix operations per draft: at most one
// in-flight fix per draft id, so concurrent triggers cannot duplicate
// generator spend.
package admission

import "sync"

// Guard tracks in-flight fix operations by draft id.
type Guard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewGuard creates an empty guard.
func NewGuard() *Guard {
	return &Guard{inflight: make(map[string]struct{})}
}

// Acquire reserves the draft for a fix operation. It returns false if one is
// already in flight for this draft.
func (g *Guard) Acquire(draftID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inflight[draftID]; busy {
		return false
	}
	g.inflight[draftID] = struct{}{}
	return true
}

// Release frees the draft after its fix operation completes.
func (g *Guard) Release(draftID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, draftID)
}

// InFlight returns the number of currently reserved drafts.
func (g *Guard) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.inflight)
}
