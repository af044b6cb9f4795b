package pqueue

import "errors"

var (
	// ErrEmptyQueue indicates a Peek or Dequeue on a queue with no records.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")
	// ErrInvalidResize indicates an internal resize below the live record
	// count; unreachable in a correct build, used as a panic value.
	ErrInvalidResize = errors.New("pqueue: resize below current size")
	// ErrBadCapacity indicates a non-positive initial capacity option.
	ErrBadCapacity = errors.New("pqueue: InitialCapacity must be positive")
	// ErrBadGrowFactor indicates a grow factor not strictly greater than 1.
	ErrBadGrowFactor = errors.New("pqueue: GrowFactor must be greater than 1")
	// ErrBadShrinkThreshold indicates a shrink threshold outside (0, 1/GrowFactor).
	ErrBadShrinkThreshold = errors.New("pqueue: ShrinkThreshold must satisfy 0 < t < 1/GrowFactor")
)
