package pqueue

import (
	"fmt"
	"strings"
)

// DebugString renders the live buffer level by level, one heap level per
// line, for human inspection while debugging. The exact format carries no
// contract and may change; nothing should parse it or rely on it for
// correctness.
//
// Example output for weights 1,3,2,7,4:
//
//	pqueue 5/8:
//	{a 1}
//	{c 3} {b 2}
//	{d 7} {e 4}
func (q *Queue) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pqueue %d/%d:", q.size, len(q.buf))

	level := 0
	for i := 0; i < q.size; i++ {
		// Index 2^level - 1 opens a new heap level.
		if i == (1<<level)-1 {
			b.WriteByte('\n')
			level++
		} else {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "{%s %d}", q.buf[i].Name, q.buf[i].Weight)
	}
	b.WriteByte('\n')

	return b.String()
}
