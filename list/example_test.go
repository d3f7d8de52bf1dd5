// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list_test

import (
	"cmp"
	"fmt"
	"strings"

	"cloudeng.io/listsort/list"
)

func ExampleDouble_Sort() {
	dl := list.NewDouble[string]()
	for _, s := range []string{"pear", "Fig", "apple", "banana", "fig"} {
		dl.Append(s)
	}
	dl.Sort(func(a, b string) int {
		return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	for s := range dl.Forward() {
		fmt.Println(s)
	}
	// Output:
	// apple
	// banana
	// Fig
	// fig
	// pear
}

func ExampleSort() {
	type employee struct {
		name  string
		grade int
	}
	dl := list.NewDouble[employee]()
	dl.Append(employee{"ann", 3})
	dl.Append(employee{"bob", 1})
	dl.Append(employee{"cat", 3})
	dl.Append(employee{"dan", 2})

	descending := true
	list.Sort(descending, dl.Root(), func(desc bool, a, b *list.Element[employee]) int {
		if desc {
			return cmp.Compare(b.Value.grade, a.Value.grade)
		}
		return cmp.Compare(a.Value.grade, b.Value.grade)
	})
	for e := range dl.Forward() {
		fmt.Println(e.name, e.grade)
	}
	// Output:
	// ann 3
	// cat 3
	// dan 2
	// bob 1
}
