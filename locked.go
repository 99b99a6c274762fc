package htable

import "sync"

// Locked serializes access to a Table with a read/write mutex
type Locked[V any] struct {
	mu sync.RWMutex
	t  *Table[V]
}

// NewLocked takes ownership of t. The caller must not use t directly after.
func NewLocked[V any](t *Table[V]) *Locked[V] {
	return &Locked[V]{t: t}
}

// Insert adds or updates a key-value pair and reports whether a value was replaced
func (l *Locked[V]) Insert(key string, val V) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.t.Insert(key, val)
}

// Get retrieves a copy of the value stored under key
func (l *Locked[V]) Get(key string) (V, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.t.Get(key)
}

// Erase removes key and reports whether it was present
func (l *Locked[V]) Erase(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.t.Erase(key)
}

// Update applies fn to the value under key while holding the write lock.
// It reports false without calling fn when key is absent.
func (l *Locked[V]) Update(key string, fn func(*V)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v := l.t.Find(key)
	if v == nil {
		return false
	}
	fn(v)
	return true
}

// Len returns the number of live entries
func (l *Locked[V]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.t.Len()
}

// Stats returns the counters of the underlying table
func (l *Locked[V]) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.t.Stats()
}

// Close releases the underlying table
func (l *Locked[V]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.t.Close()
}
