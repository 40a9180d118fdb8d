package subiso

import "fmt"

const methodVerify = "Verify"

// Verify checks that m is a complete, injective, edge-preserving embedding
// of pattern into target. Pattern loops must land on target loops.
// Vertices are checked in ascending pattern ID order, so the reported
// failure is deterministic.
//
// Errors (all wrap ErrInvalidMapping):
//   - ErrIncompleteMapping, ErrUnknownVertex, ErrNotInjective, ErrEdgeNotPreserved.
//   - ErrGraphNil / ErrInvalidInput for malformed views.
func Verify(target, pattern View, m Mapping) error {
	t, err := newIndex(methodVerify, "target", target)
	if err != nil {
		return err
	}
	p, err := newIndex(methodVerify, "pattern", pattern)
	if err != nil {
		return err
	}

	for _, k := range m.Keys() {
		if _, ok := p.pos[k]; !ok {
			return fmt.Errorf("%s: %q is not a pattern vertex: %w", methodVerify, k, ErrUnknownVertex)
		}
	}

	img := make([]int, p.size())
	owner := make(map[int]string, p.size())
	for i, pid := range p.ids {
		tid, ok := m[pid]
		if !ok {
			return fmt.Errorf("%s: %q has no image: %w", methodVerify, pid, ErrIncompleteMapping)
		}
		ti, ok := t.pos[tid]
		if !ok {
			return fmt.Errorf("%s: image %q of %q is not a target vertex: %w", methodVerify, tid, pid, ErrUnknownVertex)
		}
		if prev, dup := owner[ti]; dup {
			return fmt.Errorf("%s: %q and %q both map to %q: %w", methodVerify, prev, pid, tid, ErrNotInjective)
		}
		owner[ti] = pid
		img[i] = ti
	}

	for u := range p.ids {
		if p.loop[u] && !t.loop[img[u]] {
			return fmt.Errorf("%s: loop at %q not preserved: %w", methodVerify, p.ids[u], ErrEdgeNotPreserved)
		}
		for _, v := range p.nbrs[u] {
			if u < v && !t.hasEdge(img[u], img[v]) {
				return fmt.Errorf("%s: edge %q-%q maps to non-edge %q-%q: %w",
					methodVerify, p.ids[u], p.ids[v], t.ids[img[u]], t.ids[img[v]], ErrEdgeNotPreserved)
			}
		}
	}

	return nil
}
