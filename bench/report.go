package bench

import (
	"cmp"
	"math"
	"slices"

	"github.com/katalvlaran/subiso/subiso"
)

// Key groups records that measure the same instance family.
type Key struct {
	GraphType   string
	Size        int
	PatternSize int
	Density     float64
}

func (k Key) compare(o Key) int {
	return cmp.Or(
		cmp.Compare(k.GraphType, o.GraphType),
		cmp.Compare(k.Density, o.Density),
		cmp.Compare(k.PatternSize, o.PatternSize),
		cmp.Compare(k.Size, o.Size),
	)
}

// Summary aggregates the records of one (Key, algorithm) group.
// Times are in seconds; aborted searches count in Runs and Aborted only.
type Summary struct {
	Key
	Algorithm string
	Runs      int
	Found     int
	Aborted   int
	Mean      float64
	Min       float64
	Max       float64
	MeanSteps float64
}

// SpeedUp compares the mean times of the naive and ordered matchers on one Key.
type SpeedUp struct {
	Key
	Naive  float64
	RI     float64
	Factor float64 // Naive / RI; +Inf when RI rounds to zero
}

// Summarize groups records by Key and algorithm, sorted by graph type,
// density, pattern size, size and algorithm.
func Summarize(recs []Record) []Summary {
	type gk struct {
		Key
		alg string
	}
	groups := make(map[gk]*Summary)
	for _, r := range recs {
		k := gk{Key{r.GraphType, r.Size, r.PatternSize, r.Density}, r.Algorithm}
		s, ok := groups[k]
		if !ok {
			s = &Summary{Key: k.Key, Algorithm: k.alg, Min: math.Inf(1)}
			groups[k] = s
		}
		s.Runs++
		if r.Aborted {
			s.Aborted++
			continue
		}
		if r.Found {
			s.Found++
		}
		s.Mean += r.Time
		s.MeanSteps += float64(r.Steps)
		s.Min = math.Min(s.Min, r.Time)
		s.Max = math.Max(s.Max, r.Time)
	}

	out := make([]Summary, 0, len(groups))
	for _, s := range groups {
		if done := s.Runs - s.Aborted; done > 0 {
			s.Mean /= float64(done)
			s.MeanSteps /= float64(done)
		} else {
			s.Min = 0
		}
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b Summary) int {
		return cmp.Or(a.Key.compare(b.Key), cmp.Compare(a.Algorithm, b.Algorithm))
	})

	return out
}

// SpeedUps pairs naive and RI summaries sharing a Key. Keys where either
// algorithm has no completed run are left out.
func SpeedUps(sums []Summary) []SpeedUp {
	naive := make(map[Key]Summary)
	for _, s := range sums {
		if s.Algorithm == subiso.Naive.String() && s.Runs > s.Aborted {
			naive[s.Key] = s
		}
	}

	var out []SpeedUp
	for _, s := range sums {
		if s.Algorithm != subiso.RI.String() || s.Runs == s.Aborted {
			continue
		}
		n, ok := naive[s.Key]
		if !ok {
			continue
		}
		f := math.Inf(1)
		if s.Mean > 0 {
			f = n.Mean / s.Mean
		}
		out = append(out, SpeedUp{Key: s.Key, Naive: n.Mean, RI: s.Mean, Factor: f})
	}
	slices.SortFunc(out, func(a, b SpeedUp) int { return a.Key.compare(b.Key) })

	return out
}
