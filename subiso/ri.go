// File: ri.go
// Role: Ordered backtracking matcher with degree, loop and adjacency pruning.
// Determinism:
//   - Candidates are tried in ascending dense target index; the first
//     complete mapping found is returned.
// Concurrency:
//   - Each call owns its walker; concurrent calls over read-only views are safe.

package subiso

import (
	"fmt"
	"time"

	"github.com/soniakeys/bits"
)

const methodOrdered = "FindEmbeddingOrdered"

// riWalker holds the mutable search state of one ordered-matcher call.
// img and visited move in lockstep: visited is exactly the image of img.
type riWalker struct {
	t, p    *index
	order   []int   // pattern dense indices in search order
	earlier [][]int // earlier[k]: pattern neighbours of order[k] placed before step k
	img     []int   // pattern index → target index, -1 when unassigned
	all     []int   // 0..|target|-1, the unanchored candidate list
	visited bits.Bits
	opts    Options
	stats   Stats
}

// FindEmbeddingOrdered searches for an embedding of pattern into target
// using a greatest-constraint-first order and pruned depth-first search.
//
// Edge policy:
//   - empty pattern (any target) → Found with an empty mapping;
//   - pattern larger than target → not Found.
//
// Implementation:
//   - Stage 1: Index both views (validation, dense numbering, bitsets).
//   - Stage 2: Plan the pattern order (PlanOrder).
//   - Stage 3: At step k, try unvisited target candidates whose degree is at
//     least that of order[k], that carry a loop when order[k] does, and that
//     are adjacent to the image of every earlier-ordered neighbour. Candidates
//     come from the neighbourhood of one such image when one exists.
//   - Stage 4: Assign, recurse, and roll back on failure.
//
// Errors:
//   - ErrGraphNil, ErrInvalidInput, ErrStepLimit, wrapped ctx.Err().
//   - On ErrStepLimit or cancellation the Result is still returned, not
//     Found, with the Stats gathered before the search stopped.
//
// Complexity:
//   - Worst case exponential in |pattern|; O(V² + E) preprocessing.
func FindEmbeddingOrdered(target, pattern View, opts ...Option) (*Result, error) {
	start := time.Now()
	o := resolveOptions(opts)

	t, err := newIndex(methodOrdered, "target", target)
	if err != nil {
		return nil, err
	}
	p, err := newIndex(methodOrdered, "pattern", pattern)
	if err != nil {
		return nil, err
	}

	if p.size() == 0 {
		return &Result{Found: true, Mapping: Mapping{}, Order: []string{}, Stats: Stats{Elapsed: time.Since(start)}}, nil
	}
	if p.size() > t.size() {
		return &Result{Found: false, Order: []string{}, Stats: Stats{Elapsed: time.Since(start)}}, nil
	}

	w := newRIWalker(t, p, planOrder(p), o)
	found, err := w.match(0)
	w.stats.Elapsed = time.Since(start)
	if err != nil {
		return &Result{Order: p.names(w.order), Stats: w.stats}, fmt.Errorf("%s: %w", methodOrdered, err)
	}

	res := &Result{Found: found, Order: p.names(w.order), Stats: w.stats}
	if found {
		res.Mapping = w.mapping()
	}

	return res, nil
}

func newRIWalker(t, p *index, order []int, o Options) *riWalker {
	pos := make([]int, p.size())
	for k, v := range order {
		pos[v] = k
	}
	earlier := make([][]int, len(order))
	for k, v := range order {
		for _, u := range p.nbrs[v] {
			if pos[u] < k {
				earlier[k] = append(earlier[k], u)
			}
		}
	}

	img := make([]int, p.size())
	for i := range img {
		img[i] = -1
	}

	all := make([]int, t.size())
	for i := range all {
		all[i] = i
	}

	return &riWalker{
		t:       t,
		p:       p,
		order:   order,
		earlier: earlier,
		img:     img,
		all:     all,
		visited: bits.New(t.size()),
		opts:    o,
	}
}

// match places order[k..] and reports whether a complete mapping was reached.
// On a false return every assignment made below step k has been undone.
func (w *riWalker) match(k int) (bool, error) {
	if k == len(w.order) {
		return true, nil
	}

	pv := w.order[k]
	for _, c := range w.candidates(k) {
		if w.visited.Bit(c) == 1 {
			continue
		}
		if !w.feasible(k, pv, c) {
			w.stats.Rejected++
			continue
		}

		if err := w.expand(); err != nil {
			return false, err
		}
		w.img[pv] = c
		w.visited.SetBit(c, 1)

		ok, err := w.match(k + 1)
		if ok || err != nil {
			return ok, err
		}

		w.visited.SetBit(c, 0)
		w.img[pv] = -1
		w.stats.Backtracks++
	}

	return false, nil
}

// candidates returns the target indices to scan at step k, ascending.
// With earlier-ordered neighbours, only the neighbourhood of the image with
// the smallest degree can contain compatible candidates.
func (w *riWalker) candidates(k int) []int {
	if len(w.earlier[k]) == 0 {
		return w.all
	}

	anchor := w.img[w.earlier[k][0]]
	for _, u := range w.earlier[k][1:] {
		if img := w.img[u]; w.t.deg[img] < w.t.deg[anchor] {
			anchor = img
		}
	}

	return w.t.nbrs[anchor]
}

// feasible applies the degree, loop and adjacency checks for placing pv on c.
func (w *riWalker) feasible(k, pv, c int) bool {
	if w.t.deg[c] < w.p.deg[pv] {
		return false
	}
	if w.p.loop[pv] && !w.t.loop[c] {
		return false
	}
	for _, u := range w.earlier[k] {
		if !w.t.hasEdge(c, w.img[u]) {
			return false
		}
	}

	return true
}

// expand counts one search-tree node, enforcing the step limit and polling
// the context every pollInterval expansions.
func (w *riWalker) expand() error {
	w.stats.Expanded++
	return checkBudget(w.opts, w.stats.Expanded)
}

// mapping materialises a fresh copy of the current assignment.
func (w *riWalker) mapping() Mapping {
	m := make(Mapping, len(w.img))
	for pv, tv := range w.img {
		m[w.p.ids[pv]] = w.t.ids[tv]
	}

	return m
}

// checkBudget enforces MaxSteps and cancellation for the expanded-th node.
// The context is polled on the first expansion and every pollInterval after.
func checkBudget(o Options, expanded int64) error {
	if o.MaxSteps > 0 && expanded > o.MaxSteps {
		return fmt.Errorf("after %d expansions: %w", o.MaxSteps, ErrStepLimit)
	}
	if (expanded-1)%pollInterval == 0 {
		select {
		case <-o.Ctx.Done():
			return fmt.Errorf("cancelled: %w", o.Ctx.Err())
		default:
		}
	}

	return nil
}
