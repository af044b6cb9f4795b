// Package pqueue provides a precise, high-performance min-heap priority queue
// over weighted records, backed by a single contiguous buffer with an explicit
// grow/shrink policy.
//
// Overview:
//
//   - A Queue stores Record values (a name plus an int64 weight) and always
//     surfaces the lowest-weight record first. Ties among equal weights are
//     broken arbitrarily.
//   - The backing buffer is owned exclusively by the Queue. It grows by a
//     multiplicative factor when full and shrinks by the same factor when the
//     load drops below a threshold, never below the initial capacity floor.
//   - The min-heap property — every parent weighs no more than its children —
//     holds after every completed operation.
//
// When to use:
//
//   - Any algorithm that needs repeated access to a running minimum while new
//     candidates keep arriving: event scheduling, k-way merging of sorted
//     runs, best-k selection, discrete-event simulation.
//   - As the ordering engine behind the sibling merge and topk packages.
//
// Key features:
//
//   - Functional options tune the initial capacity, grow factor and shrink
//     threshold without changing the API signature.
//   - Enqueue/Dequeue run in amortized O(log n); Peek, Len and IsEmpty in O(1).
//   - The shrink threshold is validated against the grow factor at
//     construction, so alternating Enqueue/Dequeue near a capacity boundary
//     can never thrash between grow and shrink reallocations.
//   - DebugString renders the heap level by level for human inspection.
//
// Performance and complexity:
//
//   - Enqueue: amortized O(log n); a reallocation step costs O(n) but occurs
//     O(log n) times over n insertions (geometric series, O(n) total).
//   - Dequeue: amortized O(log n), including the occasional shrink.
//   - Peek / Len / IsEmpty / Cap: O(1).
//   - Space: O(capacity); load never drops below shrinkThreshold of capacity
//     for long, and capacity never drops below the initial floor.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyQueue:
//     Returned by Peek and Dequeue when the queue holds no records. This is a
//     precondition violation by the caller, not a transient fault; the queue
//     state is left untouched.
//   - ErrInvalidResize:
//     Used as a panic value if an internal resize ever targets a capacity
//     below the live record count. Unreachable in a correct build; it marks
//     an internal logic defect, not a user-facing condition.
//   - ErrBadCapacity / ErrBadGrowFactor / ErrBadShrinkThreshold:
//     Used as panic values by the option constructors and New when the
//     resize policy is misconfigured (see Options).
//
// API reference:
//
//	func New(opts ...Option) *Queue
//
//	  - WithInitialCapacity(n): buffer floor and starting size (default 100).
//	  - WithGrowFactor(f):      multiplicative growth, f > 1 (default 2.0).
//	  - WithShrinkThreshold(t): shrink when load < t, 0 < t < 1/f (default 0.25).
//
//	(q *Queue) Enqueue(r Record)
//	(q *Queue) Dequeue() (Record, error)
//	(q *Queue) Peek() (Record, error)
//	(q *Queue) IsEmpty() bool
//	(q *Queue) Len() int
//	(q *Queue) Cap() int
//	(q *Queue) Drain() []Record
//	(q *Queue) DebugString() string
//
// Thread safety:
//
//   - A Queue is not safe for concurrent use. All operations are synchronous
//     and run to completion; if multiple goroutines share one Queue, guard it
//     with external synchronization (mutexes, channels, etc.).
//   - A Queue must not be copied after first use: it has sole ownership of
//     its buffer, and two copies would alias the same storage. go vet flags
//     such copies.
//
// See also:
//
//   - merge.Merge: combine several weight-sorted lists into one.
//   - topk.Largest / topk.Smallest: best-k selection over record streams.
//
// Thanks for choosing lvlqueue! If you spot any issue or have suggestions,
// please open an issue or PR on GitHub.
package pqueue
