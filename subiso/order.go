// File: order.go
// Role: Greatest-constraint-first ordering of pattern vertices.
// Determinism:
//   - Ties on every key go to the smallest dense index, i.e. the
//     lexicographically smallest vertex ID.

package subiso

// PlanOrder returns the search order the ordered matcher uses for pattern.
//
// Implementation:
//   - Stage 1: The first vertex has maximum degree.
//   - Stage 2: Each next vertex maximises, lexicographically,
//     (edges to ordered vertices, edges to unordered vertices, degree).
//   - Stage 3: Repeat until every vertex is ordered.
//
// Degrees count distinct neighbours other than the vertex itself.
// An empty pattern yields an empty (non-nil) order.
//
// Errors:
//   - ErrGraphNil, ErrInvalidInput (see View).
//
// Complexity:
//   - Time O(V² + E), Space O(V).
func PlanOrder(pattern View) ([]string, error) {
	p, err := newIndex("PlanOrder", "pattern", pattern)
	if err != nil {
		return nil, err
	}

	return p.names(planOrder(p)), nil
}

// planOrder computes the greatest-constraint-first order over dense indices.
func planOrder(p *index) []int {
	n := p.size()
	order := make([]int, 0, n)
	if n == 0 {
		return order
	}

	placed := make([]bool, n)
	toOrdered := make([]int, n) // neighbours already in order

	take := func(v int) {
		placed[v] = true
		order = append(order, v)
		for _, w := range p.nbrs[v] {
			toOrdered[w]++
		}
	}

	first := 0
	for v := 1; v < n; v++ {
		if p.deg[v] > p.deg[first] {
			first = v
		}
	}
	take(first)

	for len(order) < n {
		best := -1
		var bestA, bestB, bestC int
		for v := 0; v < n; v++ {
			if placed[v] {
				continue
			}
			a := toOrdered[v]
			b := p.deg[v] - a
			c := p.deg[v]
			if best < 0 || a > bestA ||
				(a == bestA && b > bestB) ||
				(a == bestA && b == bestB && c > bestC) {
				best, bestA, bestB, bestC = v, a, b, c
			}
		}
		take(best)
	}

	return order
}

// names maps dense indices back to IDs.
func (x *index) names(dense []int) []string {
	out := make([]string, len(dense))
	for i, v := range dense {
		out[i] = x.ids[v]
	}

	return out
}
