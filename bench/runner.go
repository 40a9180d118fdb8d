package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/subiso/builder"
	"github.com/katalvlaran/subiso/core"
	"github.com/katalvlaran/subiso/subiso"
)

// Sink receives the records of a finished run. bench/store implements it.
type Sink interface {
	Append(ctx context.Context, recs ...Record) error
}

// Runner executes suites. The zero value logs nothing, keeps records in
// memory only and runs GOMAXPROCS jobs at a time.
type Runner struct {
	// Logger receives progress lines; nil disables logging.
	Logger *log.Logger
	// Sink stores the records once the whole run succeeded; may be nil.
	Sink Sink
	// Metrics is updated per record; may be nil.
	Metrics *Metrics
	// Parallel bounds concurrent jobs; ≤ 0 means runtime.GOMAXPROCS(0).
	Parallel int
}

// Run executes every job of s and returns the records in job order, each
// job contributing one record per algorithm (naive is skipped above
// NaiveMaxTarget). All records share one run ID.
//
// The first failing job cancels the rest; nothing is written to the sink
// unless every job succeeded.
func (r *Runner) Run(ctx context.Context, s *Suite) ([]Record, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	algs, _ := s.algorithms()
	timeout, _ := s.timeout()

	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	limit := r.Parallel
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	runID := uuid.NewString()
	jobs := s.Jobs()
	results := make([][]Record, len(jobs))
	var done atomic.Int64

	logger.Info("starting run", "suite", s.Name, "run_id", runID, "jobs", len(jobs), "parallel", limit)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, job := range jobs {
		g.Go(func() error {
			recs, err := r.runJob(gctx, s, job, algs, timeout)
			if err != nil {
				return fmt.Errorf("%s n=%d k=%d trial=%d: %w",
					job.GraphType, job.Size, job.PatternSize, job.Trial, err)
			}
			for k := range recs {
				recs[k].RunID = runID
				r.Metrics.Observe(recs[k])
			}
			results[i] = recs

			n := done.Add(1)
			logger.Debug("job done", "graph", job.GraphType, "size", job.Size,
				"pattern", job.PatternSize, "trial", job.Trial, "progress", fmt.Sprintf("%d/%d", n, len(jobs)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("bench: run %s: %w", runID, err)
	}

	var out []Record
	for _, recs := range results {
		out = append(out, recs...)
	}
	if r.Sink != nil {
		if err := r.Sink.Append(ctx, out...); err != nil {
			return nil, fmt.Errorf("bench: store: %w", err)
		}
	}
	logger.Info("run finished", "run_id", runID, "records", len(out))

	return out, nil
}

func (r *Runner) runJob(ctx context.Context, s *Suite, job Job, algs []subiso.Algorithm, timeout time.Duration) ([]Record, error) {
	target, err := generate(job.GraphType, job.Size, job.Density, job.TargetSeed, "t")
	if err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	pattern, err := generate(job.Case.Pattern, job.PatternSize, job.Case.PatternDensity, job.PatternSeed, "p")
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}

	var opts []subiso.Option
	if s.MaxSteps > 0 {
		opts = append(opts, subiso.WithMaxSteps(s.MaxSteps))
	}

	recs := make([]Record, 0, len(algs))
	for _, alg := range algs {
		if alg == subiso.Naive && s.NaiveMaxTarget > 0 && job.Size > s.NaiveMaxTarget {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		mctx, cancel := ctx, func() {}
		if timeout > 0 {
			mctx, cancel = context.WithTimeout(ctx, timeout)
		}
		rec, err := Measure(mctx, alg, job.Params, target, pattern, opts...)
		cancel()
		if err != nil {
			return nil, err
		}
		// A deadline on the parent context is a failure, not a slow instance.
		if rec.Aborted && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ctx.Err()
		}
		recs = append(recs, rec)
	}

	return recs, nil
}

// generate builds one graph of the named topology with a private RNG.
func generate(kind string, n int, p float64, seed int64, prefix string) (*core.Graph, error) {
	ctor, err := builder.Topology(kind, n, p)
	if err != nil {
		return nil, err
	}

	return builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithPrefixIDs(prefix)}, ctor)
}
