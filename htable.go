package htable

import (
	"strings"

	"github.com/sirupsen/logrus"
)

type bucketState uint8

const (
	empty bucketState = iota
	occupied
	removed
)

// bucket is one slot of the backing array. A removed bucket keeps its key.
type bucket[V any] struct {
	state bucketState
	key   string
	val   V
}

// Table is a string-keyed hash table with open addressing and linear probing
type Table[V any] struct {
	buckets    []bucket[V]
	size       int
	tombstones int
	resizes    uint64
	loadFactor float64
	log        logrus.FieldLogger
}

// New creates an empty table with the default capacity and load factor
func New[V any]() *Table[V] {
	return newTable[V](defaultConfig())
}

// NewWithOptions creates an empty table configured by opts
func NewWithOptions[V any](opts ...Option) (*Table[V], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return newTable[V](cfg), nil
}

func newTable[V any](cfg config) *Table[V] {
	return &Table[V]{
		buckets:    make([]bucket[V], cfg.initialCap),
		loadFactor: cfg.loadFactor,
		log:        cfg.logger,
	}
}

// Len returns the number of live entries
func (t *Table[V]) Len() int { return t.size }

// Cap returns the current bucket count
func (t *Table[V]) Cap() int { return len(t.buckets) }

// Find returns a pointer to the value stored under key, or nil if key is
// absent. The pointer is valid until the next Insert, Erase or Close.
func (t *Table[V]) Find(key string) *V {
	n := uint64(len(t.buckets))
	hash := Hash(key)

	for i := uint64(0); i < n; i++ {
		b := &t.buckets[(hash+i)%n]

		switch b.state {
		case empty:
			return nil
		case occupied:
			if b.key == key {
				return &b.val
			}
		case removed:
			if b.key == key {
				return nil
			}
		}
	}

	return nil
}

// Get retrieves a copy of the value stored under key
func (t *Table[V]) Get(key string) (V, bool) {
	if v := t.Find(key); v != nil {
		return *v, true
	}
	var zero V
	return zero, false
}

// Insert adds or updates the value for key. It reports true when an existing
// value was replaced and false when a new mapping was created.
func (t *Table[V]) Insert(key string, val V) bool {
	if t.buckets == nil {
		panic(ErrClosed)
	}

	for float64(t.size) >= float64(len(t.buckets))*t.loadFactor {
		t.resize()
	}

	idx, found := t.probeInsert(key)
	b := &t.buckets[idx]
	if found {
		b.val = val
		return true
	}

	if b.state == removed {
		t.tombstones--
	}
	b.key = strings.Clone(key)
	b.val = val
	b.state = occupied
	t.size++
	return false
}

// probeInsert returns the bucket holding key when it is live, otherwise the
// bucket a new entry for key should claim: the first tombstone on the probe
// path, or the terminating empty bucket.
func (t *Table[V]) probeInsert(key string) (idx uint64, found bool) {
	n := uint64(len(t.buckets))
	hash := Hash(key)
	claim, haveClaim := uint64(0), false

probe:
	for i := uint64(0); i < n; i++ {
		cur := (hash + i) % n
		b := &t.buckets[cur]

		switch b.state {
		case empty:
			if !haveClaim {
				claim, haveClaim = cur, true
			}
			break probe
		case occupied:
			if b.key == key {
				return cur, true
			}
		case removed:
			if !haveClaim {
				claim, haveClaim = cur, true
			}
			if b.key == key {
				break probe
			}
		}
	}

	if !haveClaim {
		panic(ErrProbeExhausted)
	}
	return claim, false
}

// Erase removes key from the table and reports whether it was present.
// The bucket becomes a tombstone that keeps the key until it is reclaimed.
func (t *Table[V]) Erase(key string) bool {
	n := uint64(len(t.buckets))
	hash := Hash(key)

	for i := uint64(0); i < n; i++ {
		b := &t.buckets[(hash+i)%n]

		switch b.state {
		case empty:
			return false
		case occupied:
			if b.key == key {
				var zero V
				b.val = zero
				b.state = removed
				t.size--
				t.tombstones++
				return true
			}
		case removed:
			if b.key == key {
				return false
			}
		}
	}

	return false
}

// resize doubles the bucket count and rehashes every live entry. Tombstones
// are dropped along with the old array.
func (t *Table[V]) resize() {
	old := t.buckets
	newCap := len(old) * 2

	t.log.WithFields(logrus.Fields{
		"old_cap":    len(old),
		"new_cap":    newCap,
		"size":       t.size,
		"tombstones": t.tombstones,
	}).Debug("htable: resizing")

	t.buckets = make([]bucket[V], newCap)
	n := uint64(newCap)
	for i := range old {
		if old[i].state != occupied {
			continue
		}
		hash := Hash(old[i].key)
		for j := uint64(0); j < n; j++ {
			b := &t.buckets[(hash+j)%n]
			if b.state == empty {
				b.key = old[i].key
				b.val = old[i].val
				b.state = occupied
				break
			}
		}
	}

	t.tombstones = 0
	t.resizes++
}

// Close releases every key and the bucket array. The table must not be used
// afterwards; Insert on a closed table panics with ErrClosed.
func (t *Table[V]) Close() {
	for i := range t.buckets {
		t.buckets[i] = bucket[V]{}
	}
	t.buckets = nil
	t.size = 0
	t.tombstones = 0
}
