package hashing

import (
	"sync"
)

// ThreadSafeNodeTable wraps NodeTable with mutex protection for concurrent access.
type ThreadSafeNodeTable struct {
	table *NodeTable
	mu    sync.Mutex
}

// NewThreadSafeNodeTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeNodeTable(maxCapacity int) *ThreadSafeNodeTable {
	return &ThreadSafeNodeTable{
		table: NewNodeTable(maxCapacity),
	}
}

// Lookup returns the count stored for a position searched to depth.
func (t *ThreadSafeNodeTable) Lookup(hash uint64, depth int) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(hash, depth)
}

// Store records a count.
func (t *ThreadSafeNodeTable) Store(hash uint64, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Store(hash, depth, nodes)
}

// Len returns the number of stored counts.
func (t *ThreadSafeNodeTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Len()
}

// Hits returns the number of successful lookups.
func (t *ThreadSafeNodeTable) Hits() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Hits()
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *ThreadSafeNodeTable) IsFull() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.IsFull()
}
