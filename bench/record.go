package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/subiso/subiso"
)

// Record is one timed matcher call. Algorithm, Size, Density and Time keep
// the names of the flat results file the plotting tools consume.
type Record struct {
	RunID       string    `json:"run_id" parquet:"run_id"`
	Algorithm   string    `json:"algorithm" parquet:"algorithm"`
	GraphType   string    `json:"graph_type" parquet:"graph_type"`
	Size        int       `json:"size" parquet:"size"`
	PatternSize int       `json:"pattern_size" parquet:"pattern_size"`
	Density     float64   `json:"density" parquet:"density"`
	Trial       int       `json:"trial" parquet:"trial"`
	Found       bool      `json:"found" parquet:"found"`
	Aborted     bool      `json:"aborted,omitempty" parquet:"aborted"`
	Steps       int64     `json:"steps" parquet:"steps"`
	Time        float64   `json:"time" parquet:"time"` // seconds
	Timestamp   time.Time `json:"timestamp" parquet:"timestamp"`
}

// Duration returns Time as a time.Duration.
func (r Record) Duration() time.Duration {
	return time.Duration(r.Time * float64(time.Second))
}

// Params describes the instance a Record measures.
type Params struct {
	GraphType   string
	Size        int
	PatternSize int
	Density     float64
	Trial       int
}

// Measure times one call of alg on (target, pattern) and checks the witness.
//
// A search stopped by the step limit or by a deadline on ctx yields a Record
// with Aborted set, the expansions made so far, and a nil error, so sweeps
// keep going. Cancellation of ctx
// itself, invalid input, and an unsound witness are returned as errors.
func Measure(ctx context.Context, alg subiso.Algorithm, p Params, target, pattern subiso.View, opts ...subiso.Option) (Record, error) {
	rec := Record{
		Algorithm:   alg.String(),
		GraphType:   p.GraphType,
		Size:        p.Size,
		PatternSize: p.PatternSize,
		Density:     p.Density,
		Trial:       p.Trial,
		Timestamp:   time.Now().UTC(),
	}

	opts = append([]subiso.Option{subiso.WithContext(ctx)}, opts...)
	start := time.Now()
	res, err := subiso.Find(alg, target, pattern, opts...)
	rec.Time = time.Since(start).Seconds()

	switch {
	case err == nil:
	case errors.Is(err, subiso.ErrStepLimit), errors.Is(err, context.DeadlineExceeded):
		rec.Aborted = true
		if res != nil {
			rec.Steps = res.Stats.Expanded
		}
		return rec, nil
	default:
		return rec, fmt.Errorf("bench: %s: %w", alg, err)
	}

	rec.Found = res.Found
	rec.Steps = res.Stats.Expanded
	if res.Found {
		if err := subiso.Verify(target, pattern, res.Mapping); err != nil {
			return rec, fmt.Errorf("bench: %s returned an unsound witness: %w", alg, err)
		}
	}

	return rec, nil
}
