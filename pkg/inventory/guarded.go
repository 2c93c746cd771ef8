package inventory

import "sync"

// Guarded serializes access to an Inventory shared between goroutines.
// Update holds the write lock; View holds the read lock.
type Guarded[T Item[T]] struct {
	mu  sync.RWMutex
	inv *Inventory[T]
}

// NewGuarded wraps inv. The caller must not use inv directly afterwards.
func NewGuarded[T Item[T]](inv *Inventory[T]) *Guarded[T] {
	return &Guarded[T]{inv: inv}
}

// Update runs fn with exclusive access and returns its error.
func (g *Guarded[T]) Update(fn func(inv *Inventory[T]) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.inv)
}

// View runs fn with shared access. fn must not mutate the inventory.
func (g *Guarded[T]) View(fn func(inv *Inventory[T])) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	fn(g.inv)
}

// String renders the inventory under the read lock.
func (g *Guarded[T]) String() string {
	var s string
	g.View(func(inv *Inventory[T]) { s = inv.String() })
	return s
}
