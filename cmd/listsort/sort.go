// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/listsort/list"
	"cloudeng.io/listsort/queue"
	"cloudeng.io/logging/ctxlog"
)

type sortFlags struct {
	cmdutil.LoggingFlags
	Descend bool `subcmd:"descend,false,sort in descending order"`
	Numeric bool `subcmd:"numeric,false,'sort by the integer at the start of each line, lines without one sort first'"`
	Unique  bool `subcmd:"unique,false,'remove every line that occurs more than once, lexical order only'"`
}

var errUniqueNumeric = errors.New("--unique cannot be used with --numeric")

func sortLines(ctx context.Context, values any, args []string) error {
	fv := values.(*sortFlags)
	if fv.Unique && fv.Numeric {
		return errUniqueNumeric
	}
	ctx, closer, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()

	lines, err := readLines(ctx, args)
	if err != nil {
		return err
	}
	yield := cancelCheck(ctx)

	var sorted []string
	if fv.Numeric {
		sorted = sortNumeric(lines, fv.Descend, yield)
	} else {
		sorted = sortLexical(lines, fv.Descend, fv.Unique, yield)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("sorted", "lines", len(lines), "output", len(sorted), "numeric", fv.Numeric, "descend", fv.Descend)
	return writeLines(os.Stdout, sorted)
}

// cancelCheck returns a yield function for the sort that logs, once,
// if the context has been canceled. The sort itself always runs to
// completion.
func cancelCheck(ctx context.Context) list.SortOption {
	logged := false
	return list.WithYield(func() {
		if !logged && ctx.Err() != nil {
			ctxlog.Logger(ctx).Warn("sort interrupted, waiting for it to complete")
			logged = true
		}
	})
}

func readLines(ctx context.Context, files []string) ([]string, error) {
	if len(files) == 0 {
		return scanLines(os.Stdin, nil)
	}
	var lines []string
	errs := &errors.M{}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			errs.Append(err)
			continue
		}
		lines, err = scanLines(f, lines)
		errs.Append(err, f.Close())
		ctxlog.Logger(ctx).Debug("read", "file", name, "lines", len(lines))
	}
	return lines, errs.Err()
}

func scanLines(rd io.Reader, lines []string) ([]string, error) {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func writeLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := fmt.Fprintln(bw, l); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func sortLexical(lines []string, descend, unique bool, opts ...list.SortOption) []string {
	q := queue.New()
	for _, l := range lines {
		q.InsertTail(l)
	}
	q.Sort(descend, opts...)
	if unique {
		q.DeleteDup()
	}
	return q.Values()
}

// numbered is a line with an optional leading integer key.
type numbered struct {
	key    int64
	hasKey bool
	text   string
}

func parseNumbered(line string) numbered {
	field := strings.TrimSpace(line)
	if i := strings.IndexFunc(field, func(r rune) bool { return r == ' ' || r == '\t' }); i >= 0 {
		field = field[:i]
	}
	key, err := strconv.ParseInt(field, 10, 64)
	return numbered{key: key, hasKey: err == nil, text: line}
}

func compareNumbered(descend bool, a, b *list.Element[numbered]) int {
	x, y := a.Value, b.Value
	if descend {
		x, y = y, x
	}
	switch {
	case x.hasKey && y.hasKey:
		return cmp.Compare(x.key, y.key)
	case x.hasKey:
		return 1
	case y.hasKey:
		return -1
	}
	return 0
}

func sortNumeric(lines []string, descend bool, opts ...list.SortOption) []string {
	dl := list.NewDouble[numbered]()
	for _, l := range lines {
		dl.Append(parseNumbered(l))
	}
	list.Sort(descend, dl.Root(), compareNumbered, opts...)
	sorted := make([]string, 0, dl.Len())
	for n := range dl.Forward() {
		sorted = append(sorted, n.text)
	}
	return sorted
}
