// Package parallel runs independent differentiation tasks concurrently.
//
// A tape is single-threaded, so parallelism comes from giving each task its
// own tape: sampling sweeps, per-argument derivatives and the like.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Maximum concurrent tasks.
	MinTasks   int  // Below this many tasks, run sequentially.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinTasks:   4, // A task builds a whole tape; few are enough to pay off.
	}
}

// Run executes f(ctx, i) for i in [0, n).
//
// The first error cancels the context passed to the remaining tasks and is
// returned once all running tasks finish. Tasks not yet started when the
// context is cancelled are skipped.
func Run(ctx context.Context, n int, cfg Config, f func(ctx context.Context, i int) error) error {
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinTasks {
		for i := range n {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := f(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.NumWorkers)
	for i := range n {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return f(ctx, i)
		})
	}
	return g.Wait()
}

// Map runs f over [0, n) like Run and collects the results in order.
func Map[R any](ctx context.Context, n int, cfg Config, f func(ctx context.Context, i int) (R, error)) ([]R, error) {
	out := make([]R, n)
	err := Run(ctx, n, cfg, func(ctx context.Context, i int) error {
		r, err := f(ctx, i)
		if err != nil {
			return err
		}
		out[i] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
