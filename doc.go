// Package lvlqueue is your in-memory toolbox for priority-ordered data —
// a bounded-array binary-heap priority queue plus the classic consumers
// built on top of it.
//
// 🚀 What is lvlqueue?
//
//	A small, focused library that brings together:
//		• pqueue: a min-heap priority queue over weighted records with an
//		  explicit grow/shrink policy on its backing buffer
//		• merge:  combine several weight-sorted lists into one sorted list
//		• topk:   maintain the best-k records of a stream
//
// ✨ Why choose lvlqueue?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable memory – multiplicative growth, thresholded shrink,
//     a hard capacity floor; no silent buffer bloat after a burst
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – functional options tune capacity and resize policy
//
// Under the hood, everything is organized under three subpackages:
//
//	pqueue/ — Record & Queue types, the binary-heap core
//	merge/  — k-way merge of weight-sorted record lists
//	topk/   — best-k selection over record streams
//
// Quick ASCII example:
//
//	        (1)
//	       /   \
//	     (3)   (2)
//	    /   \
//	  (7)   (4)
//
//	a min-heap: every parent weighs no more than its children.
//
// Dive into the per-package docs for full examples and complexity notes.
//
//	go get github.com/katalvlaran/lvlqueue
package lvlqueue
