// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

// CompareFunc is the type of the comparison function used by Sort.
// It must return a value <= 0 if a should sort before b or if their
// original order is to be preserved, and > 0 if a should sort after b.
// priv is the opaque value supplied to Sort.
type CompareFunc[T, P any] func(priv P, a, b *Element[T]) int

// YieldInterval is the number of elements, appended to the sorted ring
// without requiring a comparison, between calls to the function
// supplied via WithYield.
const YieldInterval = 256

// Sort sorts the ring headed by the sentinel head, in place and stably,
// using cmp. The sentinel itself is relinked but otherwise untouched
// and on return heads a sorted ring containing the same elements.
// Lists of zero or one elements are not modified.
//
// Sort never allocates, cannot fail and is not safe for concurrent use
// on the same ring. A nil head or cmp will cause a panic.
func Sort[T, P any](priv P, head *Element[T], cmp CompareFunc[T, P], opts ...SortOption) {
	var o sortOptions
	for _, fn := range opts {
		fn(&o)
	}
	input := head.next
	if input == head.prev {
		return
	}
	// Break the ring to obtain a nil terminated list.
	head.prev.next = nil

	var stack pending[T]
	for input != nil {
		next := input.next
		fold(&stack, priv, cmp, input)
		if o.afterFold != nil {
			o.afterFold(stack.count, stack.sizes())
		}
		input = next
	}
	cascade(&stack, priv, cmp, o.yield, head)
}

// SortFunc is like Sort for comparison functions that do not need
// a private value.
func SortFunc[T any](head *Element[T], cmp func(a, b *Element[T]) int, opts ...SortOption) {
	Sort(cmp, head, compareElements[T], opts...)
}

func compareElements[T any](cmp func(a, b *Element[T]) int, a, b *Element[T]) int {
	return cmp(a, b)
}

// run is a sorted, nil terminated sequence of elements linked via next.
// The prev links of the elements in a run are not maintained except
// for that of the first element, which is used by pending. Merging
// consumes both input runs.
type run[T any] struct {
	first *Element[T]
}

func (r run[T]) len() int {
	n := 0
	for e := r.first; e != nil; e = e.next {
		n++
	}
	return n
}

// merge merges a and b into a single sorted run, taking from a when
// cmp reports a tie.
func merge[T, P any](priv P, cmp CompareFunc[T, P], a, b run[T]) run[T] {
	var first *Element[T]
	tail := &first
	x, y := a.first, b.first
	for {
		if cmp(priv, x, y) <= 0 {
			*tail = x
			tail = &x.next
			if x = x.next; x == nil {
				*tail = y
				break
			}
			continue
		}
		*tail = y
		tail = &y.next
		if y = y.next; y == nil {
			*tail = x
			break
		}
	}
	return run[T]{first: first}
}

// mergeFinal is like merge but also sets the prev link of every element
// and closes the result into a ring headed by head.
func mergeFinal[T, P any](priv P, cmp CompareFunc[T, P], yield func(), head *Element[T], a, b run[T]) {
	tail := head
	x, y := a.first, b.first
	for {
		if cmp(priv, x, y) <= 0 {
			tail.next = x
			x.prev = tail
			tail = x
			if x = x.next; x == nil {
				break
			}
			continue
		}
		tail.next = y
		y.prev = tail
		tail = y
		if y = y.next; y == nil {
			y = x
			break
		}
	}

	// y holds whatever remains of either input, it is never nil.
	tail.next = y
	for n := 1; y != nil; n++ {
		if yield != nil && n%YieldInterval == 0 {
			yield()
		}
		y.prev = tail
		tail = y
		y = y.next
	}
	tail.next = head
	head.prev = tail
}

// pending is a stack of sorted runs awaiting merging. The runs are
// linked through the prev field of their first element with the
// newest, and smallest, run on top. Every run has a power of two
// length and there are at most two runs of any given length.
type pending[T any] struct {
	top   *Element[T]
	count uint
}

// fold adds e to the stack as a run of length one after first merging
// the pair of runs selected by count, if any. The two runs of length
// 2^k are merged when count reaches an odd multiple of 2^k, which is
// signalled by the lowest clear bit of count not being its highest.
// This limits the stack to O(log n) runs and ensures that no later
// merge is more unbalanced than 2:1.
func fold[T, P any](p *pending[T], priv P, cmp CompareFunc[T, P], e *Element[T]) {
	tail := &p.top
	bits := p.count
	for ; bits&1 != 0; bits >>= 1 {
		tail = &(*tail).prev
	}
	if bits != 0 {
		newer := *tail
		older := newer.prev
		merged := merge(priv, cmp, run[T]{first: older}, run[T]{first: newer})
		merged.first.prev = older.prev
		*tail = merged.first
	}
	e.prev = p.top
	e.next = nil
	p.top = e
	p.count++
}

// cascade merges all of the pending runs, newest first, into the ring
// headed by head. The stack must hold at least two runs.
func cascade[T, P any](p *pending[T], priv P, cmp CompareFunc[T, P], yield func(), head *Element[T]) {
	merged := run[T]{first: p.top}
	older := p.top.prev
	for older.prev != nil {
		next := older.prev
		merged = merge(priv, cmp, run[T]{first: older}, merged)
		older = next
	}
	mergeFinal(priv, cmp, yield, head, run[T]{first: older}, merged)
	p.top, p.count = nil, 0
}

// sizes returns the lengths of the pending runs, from the top of the
// stack down.
func (p *pending[T]) sizes() []int {
	var s []int
	for r := p.top; r != nil; r = r.prev {
		s = append(s, run[T]{first: r}.len())
	}
	return s
}
