// File: naive.go
// Role: Exhaustive k-permutation matcher used as the correctness oracle.
// Determinism:
//   - Placements are enumerated in lexicographic order of dense target
//     indices, pattern vertices in ascending ID order.

package subiso

import (
	"fmt"
	"time"

	"github.com/soniakeys/bits"
)

const methodNaive = "FindEmbeddingNaive"

// naiveWalker enumerates ordered selections of distinct target vertices.
type naiveWalker struct {
	t, p  *index
	edges [][2]int // pattern edges u<v plus loops as {v,v}
	img   []int
	used  bits.Bits
	opts  Options
	stats Stats
}

// FindEmbeddingNaive searches for an embedding of pattern into target by
// testing every ordered selection of |pattern| distinct target vertices.
// It prunes nothing: every pattern edge is checked only once a placement
// is complete, so its answer serves as the reference for the ordered matcher.
//
// Edge policy:
//   - empty pattern (any target) → Found with an empty mapping;
//   - pattern larger than target → not Found, without enumerating.
//
// Errors:
//   - ErrGraphNil, ErrInvalidInput, ErrStepLimit, wrapped ctx.Err().
//   - On ErrStepLimit or cancellation the Result is still returned, not
//     Found, with the Stats gathered before the search stopped.
//
// Complexity:
//   - Time O(V!/(V-k)! · E_p) for target order V and pattern order k.
func FindEmbeddingNaive(target, pattern View, opts ...Option) (*Result, error) {
	start := time.Now()
	o := resolveOptions(opts)

	t, err := newIndex(methodNaive, "target", target)
	if err != nil {
		return nil, err
	}
	p, err := newIndex(methodNaive, "pattern", pattern)
	if err != nil {
		return nil, err
	}

	if p.size() == 0 {
		return &Result{Found: true, Mapping: Mapping{}, Order: []string{}, Stats: Stats{Elapsed: time.Since(start)}}, nil
	}
	if p.size() > t.size() {
		return &Result{Found: false, Order: []string{}, Stats: Stats{Elapsed: time.Since(start)}}, nil
	}

	w := &naiveWalker{
		t:    t,
		p:    p,
		img:  make([]int, p.size()),
		used: bits.New(t.size()),
		opts: o,
	}
	for u := 0; u < p.size(); u++ {
		if p.loop[u] {
			w.edges = append(w.edges, [2]int{u, u})
		}
		for _, v := range p.nbrs[u] {
			if u < v {
				w.edges = append(w.edges, [2]int{u, v})
			}
		}
	}

	found, err := w.place(0)
	w.stats.Elapsed = time.Since(start)
	if err != nil {
		return &Result{Order: []string{}, Stats: w.stats}, fmt.Errorf("%s: %w", methodNaive, err)
	}

	res := &Result{Found: found, Order: []string{}, Stats: w.stats}
	if found {
		res.Mapping = make(Mapping, p.size())
		for pv, tv := range w.img {
			res.Mapping[p.ids[pv]] = t.ids[tv]
		}
	}

	return res, nil
}

// place assigns pattern vertex i onto every unused target vertex in turn.
func (w *naiveWalker) place(i int) (bool, error) {
	if i == w.p.size() {
		if w.preserves() {
			return true, nil
		}
		w.stats.Rejected++
		return false, nil
	}

	for c := 0; c < w.t.size(); c++ {
		if w.used.Bit(c) == 1 {
			continue
		}
		w.stats.Expanded++
		if err := checkBudget(w.opts, w.stats.Expanded); err != nil {
			return false, err
		}

		w.img[i] = c
		w.used.SetBit(c, 1)
		ok, err := w.place(i + 1)
		if ok || err != nil {
			return ok, err
		}
		w.used.SetBit(c, 0)
		w.stats.Backtracks++
	}

	return false, nil
}

// preserves reports whether the complete placement keeps every pattern edge.
func (w *naiveWalker) preserves() bool {
	for _, e := range w.edges {
		if !w.t.hasEdge(w.img[e[0]], w.img[e[1]]) {
			return false
		}
	}

	return true
}
