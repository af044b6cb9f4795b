// Package merge combines several weight-sorted record lists into a single
// sorted list, using the pqueue min-heap as its ordering engine.
//
// Overview:
//
//   - Merge accepts any number of lists, each already sorted by weight
//     ascending, and returns one list containing every record in
//     non-decreasing weight order.
//   - Inputs are validated up front: a list whose weights ever decrease
//     fails fast with ErrUnsortedInput before any work is done.
//   - The implementation drives the priority queue purely through its public
//     operations; it never touches heap internals.
//
// Performance and complexity:
//
//   - Time:  O(N log N) for N total records — every record passes through
//     the heap once.
//   - Space: O(N) for the heap plus the output list.
//
// Error handling (sentinel errors):
//
//   - ErrUnsortedInput:
//     Returned when any input list is not sorted by weight ascending. The
//     error message names the offending list and position.
//
// Thread safety:
//
//   - Merge is a pure function over its inputs; concurrent calls with
//     distinct arguments are safe. Do not mutate an input list concurrently
//     with a call that reads it.
package merge
