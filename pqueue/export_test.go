package pqueue

// Test-only accessors for private state, so external tests can check the
// heap invariant and the resize policy directly.

// Live returns a copy of the live prefix of the backing buffer in heap
// order. Tests use it to verify the min-heap property; production code must
// never see buffer internals.
func (q *Queue) Live() []Record {
	out := make([]Record, q.size)
	copy(out, q.buf[:q.size])

	return out
}

// Floor exposes the capacity floor the shrink policy is bounded by.
func (q *Queue) Floor() int {
	return q.initialCap
}

// ForceResize calls the internal resize directly, so tests can exercise the
// invalid-resize guard that normal operation never reaches.
func (q *Queue) ForceResize(newCap int) {
	q.resize(newCap)
}
