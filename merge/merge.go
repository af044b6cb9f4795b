package merge

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlqueue/pqueue"
)

// ErrUnsortedInput indicates an input list whose weights are not
// non-decreasing; Merge validates every list before doing any work.
var ErrUnsortedInput = errors.New("merge: input list is not sorted by weight")

// Merge combines any number of weight-sorted record lists into one list in
// non-decreasing weight order. Records with equal weight may appear in any
// relative order. Empty lists and a zero-list call are fine; the latter
// yields an empty result.
//
// Preconditions and validation (in order):
//  1. Every list must be sorted by weight ascending (ErrUnsortedInput,
//     detected by an O(N) pre-scan before any merging happens).
//
// The heap does all the ordering work: every record is enqueued once and
// dequeued once through the public pqueue API.
//
// Complexity:
//
//   - Time:  O(N log N), N = total record count.
//   - Space: O(N).
func Merge(lists ...[]pqueue.Record) ([]pqueue.Record, error) {
	// 1) Fail fast on unsorted input, before touching the heap.
	total := 0
	for li, list := range lists {
		for i := 1; i < len(list); i++ {
			if list[i].Weight < list[i-1].Weight {
				return nil, fmt.Errorf("%w: list %d decreases at index %d (%d after %d)",
					ErrUnsortedInput, li, i, list[i].Weight, list[i-1].Weight)
			}
		}
		total += len(list)
	}

	// 2) Size the queue for the whole workload up front; a single
	//    allocation instead of a grow cascade.
	q := pqueue.New(pqueue.WithInitialCapacity(max(total, 1)))

	// 3) Feed every record through the heap.
	var r pqueue.Record
	for _, list := range lists {
		for _, r = range list {
			q.Enqueue(r)
		}
	}

	// 4) Drain in ascending weight order.
	return q.Drain(), nil
}
