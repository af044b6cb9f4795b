package pqueue

import "fmt"

// Queue is a min-heap priority queue over Record values, backed by a single
// contiguous buffer that the Queue owns exclusively.
//
// The live records occupy buf[0:size] arranged so that for every index i with
// 1 ≤ i < size, buf[parent(i)].Weight ≤ buf[i].Weight, where parent(i) = (i-1)/2.
// The buffer grows by growFactor when full and shrinks by the same factor when
// the load falls below shrinkThreshold, never below initialCap.
//
// A Queue must not be copied after first use: two copies would alias the same
// backing buffer and corrupt each other. go vet reports such copies. It is
// not safe for concurrent use without external synchronization.
type Queue struct {
	noCopy noCopy // go vet copylocks guard; zero size

	buf  []Record // backing buffer; len(buf) is the allocated capacity
	size int      // live records occupy buf[0:size]

	initialCap      int     // capacity floor; shrinking never goes below this
	growFactor      float64 // capacity multiplier on overflow
	shrinkThreshold float64 // load fraction below which capacity divides by growFactor
}

// New constructs an empty Queue with the given resize policy. It accepts
// functional options (WithInitialCapacity, WithGrowFactor,
// WithShrinkThreshold); defaults reproduce DefaultOptions.
//
// New panics with ErrBadShrinkThreshold if the combined policy admits
// thrashing, i.e. ShrinkThreshold ≥ 1/GrowFactor: a buffer grown by
// GrowFactor would then be immediately shrink-eligible, and alternating
// Enqueue/Dequeue at a capacity boundary would reallocate on every call.
// The per-option bounds are enforced by the option constructors themselves.
//
// Complexity: O(InitialCapacity) for the initial allocation.
func New(opts ...Option) *Queue {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}

	// 2) Cross-option validation: the anti-thrash constraint relates
	//    ShrinkThreshold and GrowFactor, so it cannot live in either
	//    option constructor alone.
	if cfg.ShrinkThreshold >= 1/cfg.GrowFactor {
		panic(ErrBadShrinkThreshold.Error())
	}

	// 3) Allocate the initial buffer and adopt the policy.
	return &Queue{
		buf:             make([]Record, cfg.InitialCapacity),
		size:            0,
		initialCap:      cfg.InitialCapacity,
		growFactor:      cfg.GrowFactor,
		shrinkThreshold: cfg.ShrinkThreshold,
	}
}

// IsEmpty reports whether the queue holds no records. O(1), no side effects.
func (q *Queue) IsEmpty() bool {
	return q.size == 0
}

// Len returns the number of records currently in the queue. O(1).
func (q *Queue) Len() int {
	return q.size
}

// Cap returns the allocated capacity of the backing buffer. Useful for
// load-factor introspection and benchmarks; never smaller than Len. O(1).
func (q *Queue) Cap() int {
	return len(q.buf)
}

// Peek returns the minimum-weight record without removing it. If several
// records tie for the minimum weight, any one of them may be surfaced.
// Returns ErrEmptyQueue on an empty queue, leaving state untouched. O(1).
func (q *Queue) Peek() (Record, error) {
	if q.size == 0 {
		return Record{}, ErrEmptyQueue
	}

	return q.buf[0], nil
}

// Enqueue inserts a copy of r into the queue.
//
// Steps:
//  1. If the buffer is full, grow it to capacity*GrowFactor (rounded down)
//     before inserting.
//  2. Place r at index size and increment size.
//  3. Sift up: swap r with its parent while r's weight is strictly less than
//     the parent's, stopping at the root or at a parent no greater than r.
//
// Complexity: amortized O(log n); worst-case O(n) only on the rare
// reallocation step.
func (q *Queue) Enqueue(r Record) {
	// 1) Grow on overflow.
	if q.size == len(q.buf) {
		next := int(float64(len(q.buf)) * q.growFactor)
		if next <= len(q.buf) {
			// Rounding must still make progress (e.g. capacity 1 with
			// factor 1.5 rounds back down to 1).
			next = len(q.buf) + 1
		}
		q.resize(next)
	}

	// 2) Append the new record to the live prefix.
	q.buf[q.size] = r
	q.size++

	// 3) Restore the heap order along the root path.
	q.siftUp(q.size - 1)
}

// Dequeue removes and returns the minimum-weight record. If several records
// tie for the minimum weight, any one of them may be returned. Returns
// ErrEmptyQueue on an empty queue, leaving state untouched.
//
// Steps:
//  1. Save the root record as the result.
//  2. Move the last live record into the root slot and decrement size.
//  3. Sift down from the root: swap with the smaller child while a child is
//     smaller, stop when neither child is smaller or no child is in range.
//  4. If load dropped below ShrinkThreshold, shrink the buffer to
//     max(InitialCapacity, capacity/GrowFactor).
//
// Complexity: amortized O(log n).
func (q *Queue) Dequeue() (Record, error) {
	if q.size == 0 {
		return Record{}, ErrEmptyQueue
	}

	// 1) The root holds the minimum.
	root := q.buf[0]

	// 2) Fill the hole with the last live record.
	q.size--
	q.buf[0] = q.buf[q.size]
	q.buf[q.size] = Record{} // drop the stale copy so its Name can be collected

	// 3) Restore the heap order from the root.
	q.siftDown(0)

	// 4) Shrink once load falls below the threshold, but never below the
	//    initial-capacity floor.
	if float64(q.size) < q.shrinkThreshold*float64(len(q.buf)) {
		target := int(float64(len(q.buf)) / q.growFactor)
		if target < q.initialCap {
			target = q.initialCap
		}
		if target < len(q.buf) {
			q.resize(target)
		}
	}

	return root, nil
}

// Drain dequeues every record and returns them in non-decreasing weight
// order. The queue is empty afterwards. Complexity: O(n log n).
func (q *Queue) Drain() []Record {
	out := make([]Record, 0, q.size)
	for q.size > 0 {
		r, _ := q.Dequeue() // cannot fail: size > 0 checked above
		out = append(out, r)
	}

	return out
}

// parent returns the heap index of the parent of index i.
func (q *Queue) parent(i int) int { return (i - 1) / 2 }

// leftChild returns the heap index of the left child of index i.
func (q *Queue) leftChild(i int) int { return 2*i + 1 }

// rightChild returns the heap index of the right child of index i.
func (q *Queue) rightChild(i int) int { return 2*i + 2 }

// siftUp restores the heap order by moving the record at index i toward the
// root while it weighs strictly less than its parent.
func (q *Queue) siftUp(i int) {
	var p int
	for i > 0 {
		p = q.parent(i)
		if q.buf[i].Weight >= q.buf[p].Weight {
			break // parent is no greater; heap order holds
		}
		q.buf[i], q.buf[p] = q.buf[p], q.buf[i]
		i = p
	}
}

// siftDown restores the heap order by moving the record at index i toward the
// leaves while a child within the live prefix weighs less.
func (q *Queue) siftDown(i int) {
	var left, right, smallest int
	for {
		left = q.leftChild(i)
		right = q.rightChild(i)
		smallest = i
		if left < q.size && q.buf[left].Weight < q.buf[smallest].Weight {
			smallest = left
		}
		if right < q.size && q.buf[right].Weight < q.buf[smallest].Weight {
			smallest = right
		}
		if smallest == i {
			break // neither child is smaller; heap order holds
		}
		q.buf[i], q.buf[smallest] = q.buf[smallest], q.buf[i]
		i = smallest // repeat one level deeper
	}
}

// resize reallocates the backing buffer to newCap slots, copying the live
// prefix across and abandoning the old buffer to the collector. Callers must
// never request a capacity below the live record count; both triggers (grow
// on overflow, shrink bounded by the floor) uphold this, so a violation marks
// an internal logic defect and panics with ErrInvalidResize.
//
// Complexity: O(size).
func (q *Queue) resize(newCap int) {
	if newCap < q.size {
		panic(fmt.Errorf("%w: capacity %d < size %d", ErrInvalidResize, newCap, q.size))
	}
	next := make([]Record, newCap)
	copy(next, q.buf[:q.size])
	q.buf = next
}

// noCopy triggers go vet's copylocks check when a struct embedding it is
// copied by value. It occupies no space and is never locked.
type noCopy struct{}

// Lock is a no-op used by go vet's copylocks checker.
func (*noCopy) Lock() {}

// Unlock is a no-op used by go vet's copylocks checker.
func (*noCopy) Unlock() {}
