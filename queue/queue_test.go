// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package queue_test

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"cloudeng.io/listsort/queue"
	"github.com/google/go-cmp/cmp"
)

func newQueue(vals ...string) *queue.Queue {
	q := queue.New()
	for _, v := range vals {
		q.InsertTail(v)
	}
	return q
}

func compare(t *testing.T, q *queue.Queue, want []string) {
	t.Helper()
	if want == nil {
		want = []string{}
	}
	if diff := cmp.Diff(want, q.Values()); diff != "" {
		t.Errorf("queue mismatch (-want +got):\n%s", diff)
	}
	if got, want := q.Len(), len(want); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := q.Verify(); err != nil {
		t.Errorf("integrity: %v", err)
	}
}

func TestInsertRemove(t *testing.T) {
	q := queue.New()
	compare(t, q, nil)
	if _, ok := q.RemoveHead(); ok {
		t.Errorf("removed from an empty queue")
	}
	if _, ok := q.RemoveTail(); ok {
		t.Errorf("removed from an empty queue")
	}
	q.InsertHead("b")
	q.InsertHead("a")
	q.InsertTail("c")
	compare(t, q, []string{"a", "b", "c"})

	if v, ok := q.RemoveHead(); !ok || v != "a" {
		t.Errorf("got %v, %v, want a, true", v, ok)
	}
	if v, ok := q.RemoveTail(); !ok || v != "c" {
		t.Errorf("got %v, %v, want c, true", v, ok)
	}
	compare(t, q, []string{"b"})
	if v, ok := q.RemoveTail(); !ok || v != "b" {
		t.Errorf("got %v, %v, want b, true", v, ok)
	}
	compare(t, q, nil)
}

func TestDeleteMid(t *testing.T) {
	if queue.New().DeleteMid() {
		t.Errorf("deleted from an empty queue")
	}
	for _, tc := range []struct {
		in, want []string
	}{
		{[]string{"a"}, nil},
		{[]string{"a", "b"}, []string{"a"}},
		{[]string{"a", "b", "c"}, []string{"a", "c"}},
		{[]string{"a", "b", "c", "d"}, []string{"a", "b", "d"}},
		{[]string{"1", "3", "4", "7", "1", "2", "6"}, []string{"1", "3", "4", "1", "2", "6"}},
	} {
		q := newQueue(tc.in...)
		if !q.DeleteMid() {
			t.Errorf("%v: DeleteMid failed", tc.in)
		}
		compare(t, q, tc.want)
	}
}

func TestDeleteDup(t *testing.T) {
	if queue.New().DeleteDup() {
		t.Errorf("deleted from an empty queue")
	}
	for _, tc := range []struct {
		in, want []string
	}{
		{[]string{"a"}, []string{"a"}},
		{[]string{"a", "a"}, nil},
		{[]string{"a", "a", "b", "c", "c", "c", "d"}, []string{"b", "d"}},
		{[]string{"a", "b", "b", "c"}, []string{"a", "c"}},
		{[]string{"a", "b", "c"}, []string{"a", "b", "c"}},
	} {
		q := newQueue(tc.in...)
		if !q.DeleteDup() {
			t.Errorf("%v: DeleteDup failed", tc.in)
		}
		compare(t, q, tc.want)
	}
}

func TestReverse(t *testing.T) {
	for _, tc := range []struct {
		in []string
		k  int
	}{
		{nil, 2},
		{[]string{"a"}, 2},
		{[]string{"a", "b", "c", "d", "e"}, 1},
		{[]string{"a", "b", "c", "d", "e"}, 2},
		{[]string{"a", "b", "c", "d", "e"}, 3},
		{[]string{"a", "b", "c", "d", "e", "f"}, 3},
		{[]string{"a", "b", "c", "d", "e"}, 5},
		{[]string{"a", "b", "c", "d", "e"}, 6},
	} {
		q := newQueue(tc.in...)
		q.Reverse()
		want := slices.Clone(tc.in)
		slices.Reverse(want)
		compare(t, q, want)

		q = newQueue(tc.in...)
		q.ReverseK(tc.k)
		want = slices.Clone(tc.in)
		for i := 0; tc.k > 1 && i+tc.k <= len(want); i += tc.k {
			slices.Reverse(want[i : i+tc.k])
		}
		compare(t, q, want)
	}

	q := newQueue("1", "2", "3", "4", "5")
	q.Swap()
	compare(t, q, []string{"2", "1", "4", "3", "5"})
}

func TestSort(t *testing.T) {
	q := newQueue("pear", "apple", "fig", "banana", "apple")
	q.Sort(false)
	compare(t, q, []string{"apple", "apple", "banana", "fig", "pear"})
	q.Sort(true)
	compare(t, q, []string{"pear", "fig", "banana", "apple", "apple"})

	rnd := rand.New(rand.NewSource(7))
	for _, n := range []int{0, 1, 2, 17, 300, 2000} {
		in := make([]string, n)
		for i := range in {
			in[i] = fmt.Sprintf("%04d", rnd.Intn(n+1))
		}
		q := newQueue(in...)
		q.Sort(false)
		want := slices.Clone(in)
		slices.Sort(want)
		compare(t, q, want)

		q.Sort(true)
		slices.SortFunc(want, func(a, b string) int { return strings.Compare(b, a) })
		compare(t, q, want)
	}
}

func TestAscendDescend(t *testing.T) {
	q := queue.New()
	if got, want := q.Ascend(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := q.Descend(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	q = newQueue("5", "2", "3", "3", "8")
	if got, want := q.Descend(), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	compare(t, q, []string{"8"})

	q = newQueue("e", "b", "m", "c", "h")
	if got, want := q.Descend(), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	compare(t, q, []string{"m", "h"})

	q = newQueue("e", "b", "m", "c", "h")
	if got, want := q.Ascend(), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	compare(t, q, []string{"b", "c", "h"})

	q = newQueue("a", "a", "b", "a")
	if got, want := q.Ascend(), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	compare(t, q, []string{"a", "a", "a"})
}
