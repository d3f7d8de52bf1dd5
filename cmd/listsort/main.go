// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command listsort sorts lines of text using the stable, in-place,
// linked list merge sort implemented by cloudeng.io/listsort/list and
// measures the number of comparisons that the sort makes.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/signals"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: listsort
summary: sort text or benchmark the linked list merge sort
commands:
  - name: sort
    summary: sort the lines read from the named files, or from stdin if none are given
    arguments:
      - <file>
      - ...
  - name: bench
    summary: |
      sort generated lists of integers, verify the results and report the
      number of comparisons made against the 2*n*ceil(log2(n)) bound
`

var cmdSet = subcmd.MustFromYAML(cmdSpec)

func init() {
	cmdSet.Set("sort").MustRunnerAndFlags(sortLines,
		subcmd.MustRegisteredFlagSet(&sortFlags{}))
	cmdSet.Set("bench").MustRunnerAndFlags(benchmark,
		subcmd.MustRegisteredFlagSet(&benchFlags{}))
}

func main() {
	// A first signal cancels the context, a second exits immediately.
	ctx, _ := signals.NotifyWithCancel(context.Background(), signals.Defaults()...)
	subcmd.Dispatch(ctx, cmdSet)
}

// withLogger returns a context carrying the logger configured by lf
// and a function to close it.
func withLogger(ctx context.Context, lf *cmdutil.LoggingFlags) (context.Context, func(), error) {
	logger, err := lf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.Context(ctx, logger.Logger), func() { logger.Close() }, nil
}
