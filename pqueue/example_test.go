// Package pqueue_test provides examples demonstrating how to use the
// priority queue. Each example is runnable via “go test -run Example”,
// showing both code and expected output.
package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/lvlqueue/pqueue"
)

// ExampleQueue demonstrates the basic enqueue/peek/dequeue cycle.
// Records surface in ascending weight order regardless of insertion order.
func ExampleQueue() {
	// 1) Construct an empty queue with the default resize policy.
	q := pqueue.New()

	// 2) Insert three records out of order.
	q.Enqueue(pqueue.Record{Name: "ship", Weight: 7})
	q.Enqueue(pqueue.Record{Name: "build", Weight: 2})
	q.Enqueue(pqueue.Record{Name: "test", Weight: 4})

	// 3) Peek previews the minimum without removing it.
	head, _ := q.Peek()
	fmt.Printf("next: %s (weight %d)\n", head.Name, head.Weight)

	// 4) Drain the queue; records come out by ascending weight.
	for !q.IsEmpty() {
		r, _ := q.Dequeue()
		fmt.Printf("%s ", r.Name)
	}
	fmt.Println()
	// Output:
	// next: build (weight 2)
	// build test ship
}

// ExampleQueue_options demonstrates tuning the resize policy: a small
// initial capacity with a gentler shrink threshold.
func ExampleQueue_options() {
	// 1) Start tiny so growth is observable, keep the default grow factor.
	q := pqueue.New(
		pqueue.WithInitialCapacity(4),
		pqueue.WithShrinkThreshold(0.3),
	)

	// 2) Ten records overflow a capacity-4 buffer twice (4 → 8 → 16).
	for i := 10; i >= 1; i-- {
		q.Enqueue(pqueue.Record{Name: fmt.Sprintf("job%d", i), Weight: int64(i)})
	}
	fmt.Printf("len=%d cap=%d\n", q.Len(), q.Cap())

	// 3) The minimum is job1 no matter the insertion order.
	head, _ := q.Peek()
	fmt.Printf("next: %s\n", head.Name)
	// Output:
	// len=10 cap=16
	// next: job1
}

// ExampleQueue_errors demonstrates the empty-queue error contract: failed
// calls report ErrEmptyQueue and leave the queue untouched.
func ExampleQueue_errors() {
	q := pqueue.New()

	if _, err := q.Dequeue(); err != nil {
		fmt.Println("error:", err)
	}
	fmt.Printf("len after failed dequeue: %d\n", q.Len())
	// Output:
	// error: pqueue: queue is empty
	// len after failed dequeue: 0
}
