package topk

import (
	"errors"

	"github.com/katalvlaran/lvlqueue/pqueue"
)

// ErrBadK indicates a selection size below 1.
var ErrBadK = errors.New("topk: k must be at least 1")

// Largest returns the k highest-weight records of stream, sorted by weight
// descending. If the stream holds fewer than k records, all of them are
// returned. Ties at the cut-off weight are resolved arbitrarily: any of the
// tied records may make the result.
//
// The selection maintains a min-heap of the current best k: the root is the
// weakest record still in the running, so a new candidate either beats it
// and takes its place or is discarded immediately.
//
// Complexity:
//
//   - Time:  O(n log k), n = len(stream).
//   - Space: O(k).
func Largest(k int, stream []pqueue.Record) ([]pqueue.Record, error) {
	if k < 1 {
		return nil, ErrBadK
	}

	// 1) Size the heap at k+1 so the transient replace step never grows it.
	q := pqueue.New(pqueue.WithInitialCapacity(k + 1))

	// 2) Scan the stream, keeping only the best k in the heap.
	var r, weakest pqueue.Record
	var err error
	for _, r = range stream {
		if q.Len() < k {
			q.Enqueue(r)

			continue
		}
		weakest, err = q.Peek() // root = weakest of the current best k
		if err != nil {
			return nil, err // unreachable: Len() >= k >= 1 here
		}
		if r.Weight <= weakest.Weight {
			continue // candidate cannot displace anything
		}
		if _, err = q.Dequeue(); err != nil {
			return nil, err // unreachable, as above
		}
		q.Enqueue(r)
	}

	// 3) Drain gives ascending order; reverse for best-first.
	out := q.Drain()
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}

// Smallest returns the k lowest-weight records of stream, sorted by weight
// ascending. If the stream holds fewer than k records, all of them are
// returned. Ties at the cut-off weight are resolved arbitrarily.
//
// Unlike Largest, the whole stream passes through the heap, trading memory
// for the heap's natural extraction order.
//
// Complexity:
//
//   - Time:  O(n log n), n = len(stream).
//   - Space: O(n).
func Smallest(k int, stream []pqueue.Record) ([]pqueue.Record, error) {
	if k < 1 {
		return nil, ErrBadK
	}

	q := pqueue.New(pqueue.WithInitialCapacity(max(len(stream), 1)))
	var r pqueue.Record
	for _, r = range stream {
		q.Enqueue(r)
	}

	if k > q.Len() {
		k = q.Len()
	}
	out := make([]pqueue.Record, 0, k)
	var err error
	for i := 0; i < k; i++ {
		if r, err = q.Dequeue(); err != nil {
			return nil, err // unreachable: k capped at Len above
		}
		out = append(out, r)
	}

	return out, nil
}
