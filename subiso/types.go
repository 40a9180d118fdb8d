package subiso

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	// ErrGraphNil is returned when a nil target or pattern view is passed.
	ErrGraphNil = errors.New("subiso: graph is nil")

	// ErrInvalidInput indicates a view that is not a well-formed undirected
	// graph: empty or duplicate vertex IDs, neighbours outside the vertex set,
	// or adjacency listed from one endpoint only.
	ErrInvalidInput = errors.New("subiso: invalid input graph")

	// ErrStepLimit is returned when the search expands more states than
	// allowed by WithMaxSteps.
	ErrStepLimit = errors.New("subiso: step limit exceeded")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm and Find for an
	// unregistered strategy name.
	ErrUnknownAlgorithm = errors.New("subiso: unknown algorithm")

	// ErrInvalidMapping is the parent of every Verify failure.
	ErrInvalidMapping = errors.New("subiso: invalid mapping")

	// ErrIncompleteMapping: some pattern vertex has no image.
	ErrIncompleteMapping = fmt.Errorf("%w: incomplete", ErrInvalidMapping)

	// ErrNotInjective: two pattern vertices share an image.
	ErrNotInjective = fmt.Errorf("%w: not injective", ErrInvalidMapping)

	// ErrUnknownVertex: a key is not a pattern vertex or an image is not a target vertex.
	ErrUnknownVertex = fmt.Errorf("%w: unknown vertex", ErrInvalidMapping)

	// ErrEdgeNotPreserved: a pattern edge or loop has no counterpart in the target.
	ErrEdgeNotPreserved = fmt.Errorf("%w: edge not preserved", ErrInvalidMapping)
)

// View is the read-only graph surface the matchers consume. Vertices must
// be non-empty and unique; NeighborIDs must list every neighbour of id,
// including id itself when it carries a self-loop. Adjacency must be
// symmetric. *core.Graph satisfies View.
type View interface {
	Vertices() []string
	NeighborIDs(id string) ([]string, error)
}

// Mapping assigns each pattern vertex ID the target vertex ID it embeds into.
type Mapping map[string]string

// Keys returns the mapped pattern vertices in ascending order.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Image returns the set of target vertices used by m, in ascending order.
func (m Mapping) Image() []string {
	img := make([]string, 0, len(m))
	for _, v := range m {
		img = append(img, v)
	}
	sort.Strings(img)

	return img
}

// Clone returns an independent copy of m (nil stays nil).
func (m Mapping) Clone() Mapping {
	if m == nil {
		return nil
	}
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// Stats carries search diagnostics.
type Stats struct {
	// Expanded counts tentative assignments (search-tree nodes entered).
	Expanded int64
	// Rejected counts candidates discarded by degree, loop or adjacency checks,
	// and for the naive matcher, complete placements that failed the edge test.
	Rejected int64
	// Backtracks counts assignments rolled back after a failed subtree.
	Backtracks int64
	// Elapsed is the wall time of the whole call, including indexing.
	Elapsed time.Duration
}

// Result is the outcome of one embedding search.
type Result struct {
	// Found reports whether an embedding exists. When false, Mapping is nil.
	Found bool
	// Mapping is the witness: complete, injective and edge-preserving.
	// Non-nil (possibly empty) whenever Found is true.
	Mapping Mapping
	// Order is the pattern search order used by the ordered matcher;
	// empty for the naive matcher.
	Order []string
	// Stats holds diagnostics for the call.
	Stats Stats
}

// Option configures a matcher call.
type Option func(*Options)

// Options holds per-call search settings.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is polled every pollInterval expansions.
	Ctx context.Context

	// MaxSteps bounds the number of expanded states; 0 means unlimited.
	MaxSteps int64
}

// pollInterval is the number of expansions between context checks.
const pollInterval = 1024

// DefaultOptions returns Options with a background context and no step limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: 0,
	}
}

// WithContext sets the context used for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds the number of expanded states; 0 disables the limit.
// Panics on a negative limit.
func WithMaxSteps(n int64) Option {
	if n < 0 {
		panic("subiso: WithMaxSteps(n<0)")
	}
	return func(o *Options) {
		o.MaxSteps = n
	}
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
