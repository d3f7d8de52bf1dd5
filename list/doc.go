// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package list provides a circular, doubly linked list with a sentinel
// element and a stable, in-place merge sort for such lists.
//
// Sort runs in O(n log n) time in the worst case, allocates nothing and
// preserves the relative order of elements that compare as equal. It
// only relinks elements; payloads are never copied or inspected.
//
//	dl := list.NewDouble[int]()
//	dl.Append(3)
//	dl.Append(1)
//	dl.Append(2)
//	dl.Sort(cmp.Compare[int])
//
// Sort itself accepts any sentinel whose ring is well formed together
// with an opaque value that is passed, unmodified, to every call of the
// comparison function:
//
//	list.Sort(keyIndex, dl.Root(), func(k int, a, b *list.Element[[]int]) int {
//		return cmp.Compare(a.Value[k], b.Value[k])
//	})
//
// The sort is a bottom-up merge sort whose merges are scheduled so that
// the two inputs of any merge differ in size by at most a factor of
// two. Elements are taken from the input one at a time and pushed onto
// a stack of pending, sorted runs whose sizes are powers of two; there
// are never more than two runs of the same size on the stack. Each time
// the count of elements consumed reaches an odd multiple of 2^k, the two
// runs of size 2^k are merged. Once the input is exhausted the pending
// runs are merged from smallest to largest, with the last merge also
// rebuilding the back links and closing the ring. The number of
// comparisons made is close to n*log2(n) and never more than
// 2*n*ceil(log2(n)).
//
// Verify can be used to check the integrity of a ring, for example in
// tests or after manipulating elements directly.
package list
