package builder

import "sync"

// IDGenerator hands out session-local type ids. Ids increase
// monotonically and are never reused, even after a delete.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
}

// NewIDGenerator returns a generator whose first id is 1.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns a fresh id.
func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.last++
	return g.last
}

// Observe records an id assigned elsewhere (for example by a loaded
// snapshot) so that Next never returns it.
func (g *IDGenerator) Observe(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id > g.last {
		g.last = id
	}
}
