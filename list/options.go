// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

type sortOptions struct {
	yield     func()
	afterFold func(count uint, sizes []int)
}

// SortOption represents an option to Sort.
type SortOption func(*sortOptions)

// WithYield provides a function that is called once for every
// YieldInterval elements that the final merge appends to the sorted
// ring without needing to compare them. Highly unbalanced final merges,
// for example when the input is already sorted, can append a very large
// number of elements without calling the comparison function and fn
// gives the caller an opportunity to check for cancellation or to
// yield the processor. fn cannot influence the sort order.
func WithYield(fn func()) SortOption {
	return func(o *sortOptions) {
		o.yield = fn
	}
}
