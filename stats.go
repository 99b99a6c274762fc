package htable

// Stats is a point-in-time snapshot of a table's bookkeeping.
type Stats struct {
	Len        int
	Cap        int
	Tombstones int
	Resizes    uint64
	LoadFactor float64
}

// Stats returns the current counters. LoadFactor is the configured resize
// threshold, not the observed fill ratio.
func (t *Table[V]) Stats() Stats {
	return Stats{
		Len:        t.size,
		Cap:        len(t.buckets),
		Tombstones: t.tombstones,
		Resizes:    t.resizes,
		LoadFactor: t.loadFactor,
	}
}
