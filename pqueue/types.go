// Package pqueue defines the Record element type and configuration options
// for the binary-heap priority queue.
//
// A Queue orders records by weight ascending (min-heap): lower weight means
// higher priority. The backing buffer grows multiplicatively when full and
// shrinks when the load factor falls below a threshold, bounded below by the
// initial capacity.
//
// Options (validated eagerly, construction panics on misuse):
//
//	– InitialCapacity: starting buffer size and permanent capacity floor (> 0).
//	– GrowFactor:      multiplicative growth applied when the buffer fills (> 1).
//	– ShrinkThreshold: load fraction below which the buffer shrinks (0 < t < 1/GrowFactor).
//
// The upper bound on ShrinkThreshold is the anti-thrash constraint: if the
// threshold reached 1/GrowFactor, a freshly grown buffer would already be
// shrink-eligible, and alternating Enqueue/Dequeue at the boundary would
// reallocate on every call.
package pqueue

// Record is the element stored in a Queue: an immutable-by-convention pair of
// a name and an integer weight. Ordering inside the queue is defined solely
// by Weight, ascending; Name never participates in comparisons. Two records
// are equal only when both fields match, which matters to tests, not to the
// heap itself.
type Record struct {
	Name   string // opaque payload label; not interpreted by the queue
	Weight int64  // priority key; lower weight dequeues first
}

// Default resize-policy constants. DefaultGrowFactor doubles the buffer on
// overflow; DefaultShrinkThreshold halves it only once the queue is less than
// a quarter full, keeping the two triggers well apart.
const (
	// DefaultInitialCapacity is the buffer size of a freshly constructed
	// Queue and the floor below which shrinking never goes.
	DefaultInitialCapacity = 100

	// DefaultGrowFactor is the multiplicative growth applied when an
	// Enqueue finds the buffer full.
	DefaultGrowFactor = 2.0

	// DefaultShrinkThreshold is the load fraction below which a Dequeue
	// shrinks the buffer. It must stay strictly below 1/DefaultGrowFactor.
	DefaultShrinkThreshold = 0.25
)

// Options configures the resize policy of a Queue.
//
// InitialCapacity – starting buffer size and permanent capacity floor. Must be > 0.
// GrowFactor      – buffer multiplier on overflow. Must be > 1.
// ShrinkThreshold – load fraction triggering a shrink. Must satisfy 0 < t < 1/GrowFactor.
type Options struct {
	InitialCapacity int     // starting capacity; also the shrink floor
	GrowFactor      float64 // capacity multiplier when the buffer fills
	ShrinkThreshold float64 // load fraction below which capacity divides by GrowFactor
}

// Option represents a functional option for configuring a Queue.
type Option func(*Options)

// WithInitialCapacity sets the starting buffer size and the capacity floor.
// Must pass a positive value; zero or negative cause a panic with ErrBadCapacity.
func WithInitialCapacity(n int) Option {
	return func(o *Options) {
		if n < 1 {
			// Panic to signal invalid configuration early.
			// In Go, panic in Option constructors is acceptable for invalid arguments.
			panic(ErrBadCapacity.Error())
		}
		o.InitialCapacity = n
	}
}

// WithGrowFactor sets the multiplicative growth applied when the buffer fills.
// Must pass a value strictly greater than 1; anything else cannot make the
// buffer larger and causes a panic with ErrBadGrowFactor.
func WithGrowFactor(f float64) Option {
	return func(o *Options) {
		if f <= 1 {
			panic(ErrBadGrowFactor.Error())
		}
		o.GrowFactor = f
	}
}

// WithShrinkThreshold sets the load fraction below which a Dequeue shrinks
// the buffer. Must pass a value in (0, 1); the stricter upper bound
// t < 1/GrowFactor relates two options and is enforced by New.
func WithShrinkThreshold(t float64) Option {
	return func(o *Options) {
		if t <= 0 || t >= 1 {
			panic(ErrBadShrinkThreshold.Error())
		}
		o.ShrinkThreshold = t
	}
}

// DefaultOptions returns an Options struct initialized with the default
// resize policy. Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - InitialCapacity: 100 (buffer floor; never shrinks below this).
//   - GrowFactor:      2.0 (double on overflow).
//   - ShrinkThreshold: 0.25 (halve when less than a quarter full).
func DefaultOptions() Options {
	return Options{
		InitialCapacity: DefaultInitialCapacity,
		GrowFactor:      DefaultGrowFactor,
		ShrinkThreshold: DefaultShrinkThreshold,
	}
}
