// Package bench runs independent sand worlds headlessly and reports how
// their contents evolved.
package bench

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/logrusorgru/aurora"

	"sandfall/internal/sand"
)

var logger = loggo.GetLogger("sandfall.bench")

// Result summarises one seeded run.
type Result struct {
	Seed    int64
	Steps   int
	Before  sand.Census
	After   sand.Census
	Elapsed time.Duration
}

// Drift is the change in non-void cells over the run.
func (r Result) Drift() int { return r.After.NonVoid() - r.Before.NonVoid() }

// TicksPerSecond is the measured stepping rate.
func (r Result) TicksPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Steps) / r.Elapsed.Seconds()
}

// Seeds returns n consecutive seeds starting at first.
func Seeds(first int64, n int) ([]int64, error) {
	if n < 0 {
		return nil, errors.NotValidf("runs %d", n)
	}
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = first + int64(i)
	}
	return seeds, nil
}

// Run steps one world per seed for the given number of ticks on a pool of
// workers. Each world is owned by exactly one goroutine. Results come back
// sorted by seed. A cancelled context stops outstanding runs early and is
// reported as the error.
func Run(ctx context.Context, cfg sand.Config, seeds []int64, steps, workers int) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	if steps < 0 {
		return nil, errors.NotValidf("steps %d", steps)
	}
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan int64)
	results := make(chan Result)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runOne(ctx, cfg, seed, steps)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	go func() {
		defer close(jobs)
		for _, seed := range seeds {
			select {
			case jobs <- seed:
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []Result
	for r := range results {
		logger.Debugf("seed %d finished %d steps in %v", r.Seed, r.Steps, r.Elapsed)
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	if err := ctx.Err(); err != nil {
		return all, errors.Annotate(err, "bench interrupted")
	}
	return all, nil
}

func runOne(ctx context.Context, cfg sand.Config, seed int64, steps int) Result {
	cfg.Seed = seed
	w := sand.NewWithConfig(cfg)
	w.Reset(0)
	r := Result{Seed: seed, Before: w.Census()}
	start := time.Now()
	for i := 0; i < steps; i++ {
		if ctx.Err() != nil {
			break
		}
		w.Step()
		r.Steps++
	}
	r.Elapsed = time.Since(start)
	r.After = w.Census()
	return r
}

// Format renders a result as one report line. Zero drift is shown in green.
func Format(r Result, au aurora.Aurora) string {
	var b strings.Builder
	fmt.Fprintf(&b, "seed %v  %d steps  %v tps  drift ",
		au.Cyan(r.Seed), r.Steps, au.Bold(fmt.Sprintf("%.0f", r.TicksPerSecond())))
	if d := r.Drift(); d == 0 {
		b.WriteString(au.Green("0").String())
	} else {
		b.WriteString(au.Yellow(fmt.Sprintf("%+d", d)).String())
	}
	for _, k := range sand.Kinds() {
		if k == sand.KindVoid {
			continue
		}
		before, after := r.Before.Count(k), r.After.Count(k)
		if before == 0 && after == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %s %d", k, after)
		if after != before {
			fmt.Fprintf(&b, "(%+d)", after-before)
		}
	}
	return b.String()
}
