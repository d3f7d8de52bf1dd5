// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import (
	"iter"
)

// Element is a link in a circular, doubly linked list. The payload is
// carried alongside the links in Value; the list and sort operations
// never inspect it.
type Element[T any] struct {
	next, prev *Element[T]
	Value      T
}

// Next returns the element following e in its ring. For the last
// element of a list this is the list's Root; use Double.After to
// stop at the end of the list.
func (e *Element[T]) Next() *Element[T] {
	return e.next
}

// Prev returns the element preceding e.
func (e *Element[T]) Prev() *Element[T] {
	return e.prev
}

// Double provides a doubly linked list.
type Double[T any] struct {
	sentinel Element[T] // sentinel to avoid having to handle head/tail corner cases.
	len      int
}

func NewDouble[T any]() *Double[T] {
	dl := &Double[T]{}
	dl.Reset()
	return dl
}

func (dl *Double[T]) Reset() {
	dl.len = 0
	dl.sentinel.next = &dl.sentinel
	dl.sentinel.prev = &dl.sentinel
}

func (dl *Double[T]) Len() int {
	return dl.len
}

// Root returns the sentinel element that heads the list's ring. It
// is the head argument expected by Sort and Verify.
func (dl *Double[T]) Root() *Element[T] {
	return &dl.sentinel
}

// Front returns the first element of the list or nil if it is empty.
func (dl *Double[T]) Front() *Element[T] {
	if dl.len == 0 {
		return nil
	}
	return dl.sentinel.next
}

// Back returns the last element of the list or nil if it is empty.
func (dl *Double[T]) Back() *Element[T] {
	if dl.len == 0 {
		return nil
	}
	return dl.sentinel.prev
}

// After returns the element following e in the list, or nil when e
// is the last element.
func (dl *Double[T]) After(e *Element[T]) *Element[T] {
	if n := e.next; n != &dl.sentinel {
		return n
	}
	return nil
}

// Before returns the element preceding e in the list, or nil when e
// is the first element.
func (dl *Double[T]) Before(e *Element[T]) *Element[T] {
	if p := e.prev; p != &dl.sentinel {
		return p
	}
	return nil
}

func (dl *Double[T]) Forward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := dl.sentinel.next; n != &dl.sentinel; n = n.next {
			if !yield(n.Value) {
				break
			}
		}
	}
}

func (dl *Double[T]) Reverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := dl.sentinel.prev; n != &dl.sentinel; n = n.prev {
			if !yield(n.Value) {
				break
			}
		}
	}
}

// Elements iterates over the list's elements from front to back. The
// element being visited may be removed or moved.
func (dl *Double[T]) Elements() iter.Seq[*Element[T]] {
	return func(yield func(*Element[T]) bool) {
		for n := dl.sentinel.next; n != &dl.sentinel; {
			next := n.next
			if !yield(n) {
				break
			}
			n = next
		}
	}
}

func (dl *Double[T]) Head() T {
	if dl.len == 0 {
		return dl.sentinel.Value
	}
	return dl.sentinel.next.Value
}

func (dl *Double[T]) Tail() T {
	if dl.len == 0 {
		return dl.sentinel.Value
	}
	return dl.sentinel.prev.Value
}

func link[T any](n, prev *Element[T]) {
	n.prev = prev
	n.next = prev.next
	n.prev.next = n
	n.next.prev = n
}

func unlink[T any](n *Element[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
}

func (dl *Double[T]) insertAfterItem(val T, it *Element[T]) *Element[T] {
	n := &Element[T]{Value: val}
	link(n, it)
	dl.len++
	return n
}

func (dl *Double[T]) Append(val T) *Element[T] {
	return dl.insertAfterItem(val, dl.sentinel.prev)
}

func (dl *Double[T]) Prepend(val T) *Element[T] {
	return dl.insertAfterItem(val, &dl.sentinel)
}

// InsertAfter inserts val immediately after mark, which must be an
// element of the list.
func (dl *Double[T]) InsertAfter(val T, mark *Element[T]) *Element[T] {
	return dl.insertAfterItem(val, mark)
}

// MoveAfter relinks e so that it immediately follows mark. Both must be
// elements of the list; the Root may be used as mark to move e to the
// front.
func (dl *Double[T]) MoveAfter(e, mark *Element[T]) {
	if e == mark || mark.next == e {
		return
	}
	unlink(e)
	link(e, mark)
}

func (dl *Double[T]) removeItem(it *Element[T]) {
	dl.len--
	unlink(it)
	it.next, it.prev = nil, nil
}

// RemoveItem removes the element from the list. Its Value remains
// available to the caller.
func (dl *Double[T]) RemoveItem(it *Element[T]) {
	dl.removeItem(it)
}

func (dl *Double[T]) Remove(val T, cmp func(a, b T) bool) {
	for n := dl.sentinel.next; n != &dl.sentinel; n = n.next {
		if cmp(n.Value, val) {
			dl.removeItem(n)
			return
		}
	}
}

func (dl *Double[T]) RemoveReverse(val T, cmp func(a, b T) bool) {
	for n := dl.sentinel.prev; n != &dl.sentinel; n = n.prev {
		if cmp(n.Value, val) {
			dl.removeItem(n)
			return
		}
	}
}

// Sort sorts the list in place, stably, using cmp on the payloads.
// See the package level Sort function for details.
func (dl *Double[T]) Sort(cmp func(a, b T) int, opts ...SortOption) {
	Sort(cmp, &dl.sentinel, compareValues[T], opts...)
}

func compareValues[T any](cmp func(a, b T) int, a, b *Element[T]) int {
	return cmp(a.Value, b.Value)
}
