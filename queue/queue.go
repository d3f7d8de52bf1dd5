// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package queue provides a double ended queue of strings with a set of
// reordering and filtering operations, including a stable sort, built
// on list.Double.
package queue

import (
	"strings"

	"cloudeng.io/listsort/list"
)

// Queue is a double ended queue of strings. It is not safe for
// concurrent use.
type Queue struct {
	l *list.Double[string]
}

// New returns a new, empty, Queue.
func New() *Queue {
	return &Queue{l: list.NewDouble[string]()}
}

// Len returns the number of strings in the queue.
func (q *Queue) Len() int {
	return q.l.Len()
}

// Values returns the contents of the queue from head to tail.
func (q *Queue) Values() []string {
	vals := make([]string, 0, q.l.Len())
	for v := range q.l.Forward() {
		vals = append(vals, v)
	}
	return vals
}

// InsertHead adds s to the head of the queue.
func (q *Queue) InsertHead(s string) {
	q.l.Prepend(s)
}

// InsertTail adds s to the tail of the queue.
func (q *Queue) InsertTail(s string) {
	q.l.Append(s)
}

// RemoveHead removes and returns the string at the head of the queue.
// It returns false if the queue is empty.
func (q *Queue) RemoveHead() (string, bool) {
	return q.remove(q.l.Front())
}

// RemoveTail removes and returns the string at the tail of the queue.
// It returns false if the queue is empty.
func (q *Queue) RemoveTail() (string, bool) {
	return q.remove(q.l.Back())
}

func (q *Queue) remove(e *list.Element[string]) (string, bool) {
	if e == nil {
		return "", false
	}
	q.l.RemoveItem(e)
	return e.Value, true
}

// DeleteMid removes the middle element, ie. the one at index Len()/2
// counting from zero. It returns false if the queue is empty.
func (q *Queue) DeleteMid() bool {
	n := q.l.Len()
	if n == 0 {
		return false
	}
	// Walk from whichever end is closer.
	mid := n / 2
	if mid < n-mid {
		e := q.l.Front()
		for range mid {
			e = q.l.After(e)
		}
		q.l.RemoveItem(e)
		return true
	}
	e := q.l.Back()
	for range n - 1 - mid {
		e = q.l.Before(e)
	}
	q.l.RemoveItem(e)
	return true
}

// DeleteDup removes every string that occurs more than once in a
// sorted queue; all copies are removed. It returns false if the queue
// is empty.
func (q *Queue) DeleteDup() bool {
	if q.l.Len() == 0 {
		return false
	}
	e := q.l.Front()
	for e != nil {
		next := q.l.After(e)
		if next == nil || next.Value != e.Value {
			e = next
			continue
		}
		for next != nil && next.Value == e.Value {
			after := q.l.After(next)
			q.l.RemoveItem(next)
			next = after
		}
		q.l.RemoveItem(e)
		e = next
	}
	return true
}

// Swap swaps every two adjacent elements.
func (q *Queue) Swap() {
	q.ReverseK(2)
}

// Reverse reverses the order of the queue.
func (q *Queue) Reverse() {
	root := q.l.Root()
	for e := range q.l.Elements() {
		q.l.MoveAfter(e, root)
	}
}

// ReverseK reverses the order of each successive group of k elements.
// A final group of fewer than k elements is left as is.
func (q *Queue) ReverseK(k int) {
	if k < 2 {
		return
	}
	mark := q.l.Root()
	for remaining := q.l.Len(); remaining >= k; remaining -= k {
		first := q.l.After(mark)
		for range k - 1 {
			q.l.MoveAfter(q.l.After(first), mark)
		}
		mark = first
	}
}

// Sort sorts the queue, stably, in ascending or descending order of
// strings.Compare.
func (q *Queue) Sort(descend bool, opts ...list.SortOption) {
	if descend {
		q.l.Sort(func(a, b string) int { return strings.Compare(b, a) }, opts...)
		return
	}
	q.l.Sort(strings.Compare, opts...)
}

// Ascend removes every element that has an element strictly less than
// it anywhere to its right, leaving a queue in ascending order. It
// returns the new length of the queue.
func (q *Queue) Ascend() int {
	return q.keepMonotonic(func(v, limit string) bool { return v > limit })
}

// Descend removes every element that has an element strictly greater
// than it anywhere to its right, leaving a queue in descending order. It
// returns the new length of the queue.
func (q *Queue) Descend() int {
	return q.keepMonotonic(func(v, limit string) bool { return v < limit })
}

// keepMonotonic walks the queue from the tail, removing every element
// for which drop reports true when compared with the most extreme
// element kept so far.
func (q *Queue) keepMonotonic(drop func(v, limit string) bool) int {
	e := q.l.Back()
	if e == nil {
		return 0
	}
	limit := e.Value
	for e = q.l.Before(e); e != nil; {
		prev := q.l.Before(e)
		if drop(e.Value, limit) {
			q.l.RemoveItem(e)
		} else {
			limit = e.Value
		}
		e = prev
	}
	return q.l.Len()
}

// Verify checks the integrity of the underlying list.
func (q *Queue) Verify() error {
	return q.l.Verify()
}
