// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"math/bits"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/cmdutil/profiling"
	"cloudeng.io/errors"
	"cloudeng.io/listsort/list"
	"cloudeng.io/logging/ctxlog"
	"github.com/go-json-experiment/json"
)

type benchFlags struct {
	cmdutil.LoggingFlags
	Config  string                `subcmd:"config,,'yaml file describing the workloads to run, overrides --sizes and --orders'"`
	Sizes   flags.Commas          `subcmd:"sizes,,'comma separated list sizes, defaults to 10,1000,100000'"`
	Orders  flags.Commas          `subcmd:"orders,,'comma separated input orders, one or more of random, sorted, reversed, organ or few-unique, defaults to all'"`
	Seed    int64                 `subcmd:"seed,0,'seed for the random number generator, 0 for a time based seed'"`
	Repeat  int                   `subcmd:"repeat,1,number of times to run each workload"`
	JSON    bool                  `subcmd:"json,false,'write results as json, one object per line'"`
	Profile profiling.ProfileFlag `subcmd:"profile,,'write a profile, as <profile>:<filename>, eg. cpu:cpu.out'"`
}

// Order describes the arrangement of the values in a generated list.
type Order string

const (
	Random    Order = "random"
	Sorted    Order = "sorted"
	Reversed  Order = "reversed"
	Organ     Order = "organ"
	FewUnique Order = "few-unique"
)

var allOrders = []Order{Random, Sorted, Reversed, Organ, FewUnique}

var defaultSizes = []int{10, 1000, 100000}

var errUnknownOrder = errors.New("unknown input order")

// Workload is a set of lists to be generated and sorted.
type Workload struct {
	Name   string  `yaml:"name"`
	Sizes  []int   `yaml:"sizes"`
	Orders []Order `yaml:"orders"`
	Repeat int     `yaml:"repeat"`
}

// BenchConfig is the format of the yaml file accepted by --config.
type BenchConfig struct {
	Seed      int64      `yaml:"seed"`
	Workloads []Workload `yaml:"workloads"`
}

// Result records the outcome of sorting a single generated list.
type Result struct {
	Workload    string        `json:"workload"`
	Order       Order         `json:"order"`
	Size        int           `json:"size"`
	Comparisons int           `json:"comparisons"`
	Bound       int           `json:"bound"`
	Yields      int           `json:"yields"`
	Duration    time.Duration `json:"duration_ns,format:nano"`
}

func (r Result) String() string {
	ratio := 0.0
	if r.Bound > 0 {
		ratio = float64(r.Comparisons) / float64(r.Bound)
	}
	return fmt.Sprintf("%-12s %-10s %10d %12d %12d %6.3f %8d %v",
		r.Workload, r.Order, r.Size, r.Comparisons, r.Bound, ratio, r.Yields, r.Duration)
}

// comparisonBound returns 2*n*ceil(log2(n)).
func comparisonBound(n int) int {
	if n < 2 {
		return 0
	}
	return 2 * n * bits.Len(uint(n-1))
}

func parseOrders(vals []string) ([]Order, error) {
	orders := make([]Order, 0, len(vals))
	for _, v := range vals {
		o := Order(strings.TrimSpace(v))
		if err := o.validate(); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (o Order) validate() error {
	for _, known := range allOrders {
		if o == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", errUnknownOrder, o)
}

func parseSizes(vals []string) ([]int, error) {
	sizes := make([]int, 0, len(vals))
	for _, v := range vals {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid size: %v", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// configFromFlags builds a BenchConfig from either the yaml file named
// by --config or the remaining flags.
func configFromFlags(ctx context.Context, fv *benchFlags) (BenchConfig, error) {
	var cfg BenchConfig
	if len(fv.Config) > 0 {
		if err := cmdyaml.ParseConfigFileStrict(ctx, fv.Config, &cfg); err != nil {
			return cfg, err
		}
	} else {
		wl := Workload{Name: "flags", Repeat: fv.Repeat}
		var err error
		if wl.Sizes, err = parseSizes(fv.Sizes.Values); err != nil {
			return cfg, err
		}
		if wl.Orders, err = parseOrders(fv.Orders.Values); err != nil {
			return cfg, err
		}
		cfg = BenchConfig{Seed: fv.Seed, Workloads: []Workload{wl}}
	}
	if fv.Seed != 0 {
		cfg.Seed = fv.Seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, cfg.normalize()
}

func (cfg *BenchConfig) normalize() error {
	errs := &errors.M{}
	for i := range cfg.Workloads {
		wl := &cfg.Workloads[i]
		if len(wl.Name) == 0 {
			wl.Name = fmt.Sprintf("workload-%d", i)
		}
		if len(wl.Sizes) == 0 {
			wl.Sizes = defaultSizes
		}
		if len(wl.Orders) == 0 {
			wl.Orders = allOrders
		}
		if wl.Repeat <= 0 {
			wl.Repeat = 1
		}
		for _, o := range wl.Orders {
			errs.Append(o.validate())
		}
		for _, n := range wl.Sizes {
			if n < 0 {
				errs.Append(fmt.Errorf("%v: invalid size: %v", wl.Name, n))
			}
		}
	}
	return errs.Err()
}

// generate returns n values arranged according to order.
func generate(rnd *rand.Rand, order Order, n int) []int {
	vals := make([]int, n)
	for i := range vals {
		switch order {
		case Random:
			vals[i] = rnd.Int()
		case Sorted:
			vals[i] = i
		case Reversed:
			vals[i] = n - i
		case Organ:
			vals[i] = min(i, n-i)
		case FewUnique:
			vals[i] = rnd.Intn(8)
		}
	}
	return vals
}

// item is the payload sorted by the benchmark, seq records its input
// position so that stability can be checked.
type item struct {
	val, seq int
}

type counter struct {
	comparisons int
}

func (c *counter) compare(a, b item) int {
	c.comparisons++
	return cmp.Compare(a.val, b.val)
}

// run sorts a single generated list and verifies the result.
func run(name string, order Order, vals []int) (Result, error) {
	dl := list.NewDouble[item]()
	for i, v := range vals {
		dl.Append(item{val: v, seq: i})
	}
	c := &counter{}
	r := Result{Workload: name, Order: order, Size: len(vals), Bound: comparisonBound(len(vals))}
	start := time.Now()
	dl.Sort(c.compare, list.WithYield(func() { r.Yields++ }))
	r.Duration = time.Since(start)
	r.Comparisons = c.comparisons

	errs := &errors.M{}
	errs.Append(dl.Verify())
	if len(vals) >= 2 && r.Comparisons > r.Bound {
		errs.Append(fmt.Errorf("%v/%v/%v: %v comparisons exceeds bound of %v", name, order, len(vals), r.Comparisons, r.Bound))
	}
	var prev *item
	for v := range dl.Forward() {
		if prev != nil {
			if prev.val > v.val {
				errs.Append(fmt.Errorf("%v/%v/%v: out of order: %v before %v", name, order, len(vals), prev.val, v.val))
				break
			}
			if prev.val == v.val && prev.seq > v.seq {
				errs.Append(fmt.Errorf("%v/%v/%v: unstable: %v", name, order, len(vals), v.val))
				break
			}
		}
		p := v
		prev = &p
	}
	return r, errs.Err()
}

// runWorkloads runs every workload in cfg, writing a line per result
// to out, either as a table row or as a json object. All failures are
// accumulated and returned.
func runWorkloads(ctx context.Context, cfg BenchConfig, out io.Writer, asJSON bool) ([]Result, error) {
	rnd := rand.New(rand.NewSource(cfg.Seed))
	logger := ctxlog.Logger(ctx)
	logger.Info("benchmark", "seed", cfg.Seed, "workloads", len(cfg.Workloads))
	if !asJSON {
		fmt.Fprintf(out, "%-12s %-10s %10s %12s %12s %6s %8s %v\n",
			"workload", "order", "size", "compares", "bound", "ratio", "yields", "time")
	}
	var results []Result
	errs := &errors.M{}
	for _, wl := range cfg.Workloads {
		for _, order := range wl.Orders {
			for _, n := range wl.Sizes {
				for range wl.Repeat {
					if err := ctx.Err(); err != nil {
						errs.Append(err)
						return results, errs.Err()
					}
					r, err := run(wl.Name, order, generate(rnd, order, n))
					errs.Append(err)
					results = append(results, r)
					if err := writeResult(out, r, asJSON); err != nil {
						errs.Append(err)
						return results, errs.Err()
					}
					logger.Debug("sorted", "workload", r.Workload, "order", r.Order, "size", r.Size,
						"comparisons", r.Comparisons, "bound", r.Bound, "yields", r.Yields, "duration", r.Duration)
				}
			}
		}
	}
	return results, errs.Err()
}

func writeResult(out io.Writer, r Result, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintln(out, r)
		return err
	}
	if err := json.MarshalWrite(out, r); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out)
	return err
}

func benchmark(ctx context.Context, values any, _ []string) error {
	fv := values.(*benchFlags)
	ctx, closer, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	cfg, err := configFromFlags(ctx, fv)
	if err != nil {
		return err
	}
	if len(fv.Profile.Profiles) > 0 {
		save, err := profiling.StartFromSpecs(fv.Profile.Profiles...)
		if err != nil {
			return err
		}
		defer save()
	}
	_, err = runWorkloads(ctx, cfg, os.Stdout, fv.JSON)
	return err
}
