// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrBrokenLink is reported when an element's neighbour does not
	// link back to it.
	ErrBrokenLink = errors.New("broken link")
	// ErrNoClosure is reported when following next links from the head
	// does not lead back to the head.
	ErrNoClosure = errors.New("ring is not closed")
	// ErrLength is reported when a ring's length differs from the
	// length recorded for it.
	ErrLength = errors.New("length mismatch")
)

// IntegrityError describes a single violation found by Verify. Index
// is the position of the offending element in the ring, with the head
// at position 0.
type IntegrityError struct {
	Index int
	Err   error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("element %v: %v", e.Index, e.Err)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// MaxIntegrityErrors is the maximum number of violations that Verify
// will report before giving up.
const MaxIntegrityErrors = 16

// Verify checks that head heads a well formed ring: every element's
// next and prev neighbours link back to it and the next links return
// to head within limit+1 steps. It returns the number of elements in
// the ring, excluding head, and an errors.M containing every violation
// found, up to MaxIntegrityErrors, or nil.
func Verify[T any](head *Element[T], limit int) (int, error) {
	errs := &errors.M{}
	found := 0
	report := func(i int, err error) bool {
		errs.Append(&IntegrityError{Index: i, Err: err})
		found++
		return found < MaxIntegrityErrors
	}
	n := 0
	for e := head; ; n++ {
		if n > limit {
			report(n, fmt.Errorf("%w: more than %v elements", ErrNoClosure, limit))
			return n, errs.Err()
		}
		if e.next == nil || e.prev == nil {
			report(n, fmt.Errorf("%w: nil link", ErrNoClosure))
			return n, errs.Err()
		}
		if e.next.prev != e && !report(n, fmt.Errorf("%w: next.prev", ErrBrokenLink)) {
			return n, errs.Err()
		}
		if e.prev.next != e && !report(n, fmt.Errorf("%w: prev.next", ErrBrokenLink)) {
			return n, errs.Err()
		}
		if e = e.next; e == head {
			break
		}
	}
	return n, errs.Err()
}

// Verify checks the integrity of the list's ring and that it contains
// Len elements.
func (dl *Double[T]) Verify() error {
	n, err := Verify(&dl.sentinel, dl.len)
	if err != nil {
		return err
	}
	if n != dl.len {
		return &IntegrityError{Index: n, Err: fmt.Errorf("%w: found %v, want %v", ErrLength, n, dl.len)}
	}
	return nil
}
