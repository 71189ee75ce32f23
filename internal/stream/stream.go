package stream

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/mersenne/mt64"
)

// Job describes one independent sequence. Key takes precedence over Seed when
// it is non-empty.
type Job struct {
	Name  string
	Seed  uint64
	Key   []uint64
	Skip  int
	Count int
}

// Result holds the values produced for a Job.
type Result struct {
	Name   string
	Values []uint64
}

// Generator returns a generator seeded for the job.
func (j Job) Generator() *mt64.Generator {
	g := mt64.New()
	if len(j.Key) > 0 {
		g.SeedSlice(j.Key)
	} else {
		g.Seed(j.Seed)
	}
	return g
}

// Run draws Skip values and then Count values from a fresh generator.
func (j Job) Run(ctx context.Context) (Result, error) {
	if j.Skip < 0 || j.Count < 0 {
		return Result{}, fmt.Errorf("stream %q: skip and count must not be negative", j.Name)
	}

	g := j.Generator()
	for i := 0; i < j.Skip; i++ {
		if _, err := g.Next(); err != nil {
			return Result{}, fmt.Errorf("stream %q: %w", j.Name, err)
		}
	}

	values := make([]uint64, j.Count)
	for i := range values {
		// Check for cancellation once per state regeneration.
		if i%mt64.StateSize == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		v, err := g.Next()
		if err != nil {
			return Result{}, fmt.Errorf("stream %q: %w", j.Name, err)
		}
		values[i] = v
	}
	return Result{Name: j.Name, Values: values}, nil
}

// Generate runs jobs concurrently, each with its own generator, and returns
// results in job order. workers <= 0 uses GOMAXPROCS.
func Generate(ctx context.Context, jobs []Job, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		g.Go(func() error {
			res, err := job.Run(ctx)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
