// Package topk selects the best-k records of a stream, using the pqueue
// min-heap as its ordering engine.
//
// Overview:
//
//   - Largest keeps the k highest-weight records seen so far in a
//     size-bounded min-heap: the heap root is always the weakest of the
//     current best, so each new candidate either replaces it or is dropped.
//   - Smallest returns the k lowest-weight records by feeding the whole
//     stream through the heap and taking the first k extractions.
//   - Both drive the priority queue purely through its public operations.
//
// Performance and complexity:
//
//   - Largest:  O(n log k) time, O(k) space — the heap never exceeds k
//     records, which is the point of the min-heap-of-the-best-k trick.
//   - Smallest: O(n log n) time, O(n) space — every record passes through
//     the heap once.
//
// Error handling (sentinel errors):
//
//   - ErrBadK:
//     Returned when k < 1; a best-zero selection is meaningless.
//
// Thread safety:
//
//   - Both functions are pure over their inputs; concurrent calls with
//     distinct arguments are safe.
package topk
