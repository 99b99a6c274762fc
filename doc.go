/*
Package htable provides a generic string-keyed hash table using open addressing.

Table is a single-owner associative container parameterized over its value
type. Keys are text; the table keeps its own copy of every key it stores, so
callers may reuse or mutate the buffers they build keys from.

Basic usage:

	import "github.com/theflywheel/htable"

	t := htable.New[int]()
	defer t.Close()

	t.Insert("a", 10)
	t.Insert("b", 11)

	if v := t.Find("a"); v != nil {
		fmt.Println("Value:", *v)
	}

	t.Erase("b")

Features:

  - One generic implementation for every value type
  - Open addressing with linear probing for collision resolution
  - Lazy deletion with tombstones, reclaimed by later inserts and on resize
  - Automatic doubling when the live entry count reaches the load factor (0.6)
  - Tunable initial capacity, load factor and logger through Options
  - Locked wrapper for callers that need to share a table across goroutines

Implementation Details:

Each bucket is Empty, Occupied or Removed. A probe starts at Hash(key) modulo
the capacity and walks consecutive buckets with wraparound. An Empty bucket
ends every probe. A Removed bucket keeps the key it held, which lets a lookup
for exactly that key stop early while lookups for other keys walk past it.

Resizing is checked before every insert and counts only Occupied buckets.
A resize doubles the capacity, rehashes the live entries into a fresh array
and drops every tombstone. Capacity never shrinks.

Table is not safe for concurrent use. Wrap it with NewLocked, or serialize
access externally.
*/
package htable
