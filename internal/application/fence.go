package application

import "sync"

// FetchGate orders superseding asynchronous fetches. Each fetch key (selected
// room, user, period) carries a monotonically increasing generation: Begin
// issues one before the fetch starts, Admit answers whether a completed fetch
// is still the latest for its key. A stale response is simply discarded, so a
// slow fetch for a previous selection can never overwrite state derived from
// a newer one.
type FetchGate struct {
	mu          sync.Mutex
	generations map[string]uint64
	closed      bool
}

func NewFetchGate() *FetchGate {
	return &FetchGate{generations: map[string]uint64{}}
}

func (g *FetchGate) Begin(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.generations[key]++
	return g.generations[key]
}

func (g *FetchGate) Admit(key string, generation uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return false
	}

	return g.generations[key] == generation
}

// Close tears the gate down: every in-flight fetch is discarded on
// completion. Used when the consuming screen goes away.
func (g *FetchGate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
}
