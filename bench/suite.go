package bench

import (
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/subiso/builder"
	"github.com/katalvlaran/subiso/subiso"
)

// ErrInvalidSuite is returned for suite files that fail to parse or validate.
var ErrInvalidSuite = errors.New("bench: invalid suite")

// Suite describes a benchmark sweep:
//
//	name             = "graph-types"
//	algorithms       = ["naive", "ri"]
//	trials           = 3
//	seed             = 42
//	naive_max_target = 40
//	timeout          = "30s"
//
//	[[case]]
//	graph           = "random"
//	sizes           = [5, 10, 15, 20]
//	densities       = [0.4]
//	pattern         = "random"
//	pattern_sizes   = [5]
//	pattern_density = 0.4
type Suite struct {
	Name       string   `toml:"name"`
	Algorithms []string `toml:"algorithms"`
	Trials     int      `toml:"trials"`
	Seed       int64    `toml:"seed"`

	// NaiveMaxTarget skips the naive matcher on targets above this many
	// vertices; 0 means no cap.
	NaiveMaxTarget int `toml:"naive_max_target"`

	// MaxSteps bounds each search; 0 means unlimited.
	MaxSteps int64 `toml:"max_steps"`

	// Timeout bounds each search, e.g. "30s"; empty means none.
	Timeout string `toml:"timeout"`

	Cases []Case `toml:"case"`
}

// Case is one (target family, pattern family) sweep.
// Densities apply to random targets only.
type Case struct {
	Graph          string    `toml:"graph"`
	Sizes          []int     `toml:"sizes"`
	Densities      []float64 `toml:"densities"`
	Pattern        string    `toml:"pattern"`
	PatternSizes   []int     `toml:"pattern_sizes"`
	PatternDensity float64   `toml:"pattern_density"`
}

// Job is one (target, pattern) instance; every algorithm runs on it.
type Job struct {
	Params
	Case        Case
	TargetSeed  int64
	PatternSeed int64
}

// DefaultSuite reproduces the graph-type sweep and the pattern-size sweep.
func DefaultSuite() *Suite {
	sizes := []int{5, 10, 15, 20, 25, 30, 35, 40}

	s := &Suite{
		Name:           "default",
		Algorithms:     []string{string(subiso.Naive), string(subiso.RI)},
		Trials:         3,
		Seed:           42,
		NaiveMaxTarget: 40,
		Timeout:        "1m",
	}
	for _, kind := range []string{builder.KindRandom, builder.KindGrid, builder.KindComplete, builder.KindCycle, builder.KindPath} {
		s.Cases = append(s.Cases, Case{
			Graph:          kind,
			Sizes:          sizes,
			Densities:      []float64{0.4},
			Pattern:        builder.KindRandom,
			PatternSizes:   []int{5},
			PatternDensity: 0.4,
		})
	}
	s.Cases = append(s.Cases, Case{
		Graph:        builder.KindRandom,
		Sizes:        []int{13},
		Densities:    []float64{0.3},
		Pattern:      builder.KindPath,
		PatternSizes: []int{5, 6, 7, 8, 9, 10, 11},
	})

	return s
}

// LoadSuite reads and validates a TOML suite file.
func LoadSuite(path string) (*Suite, error) {
	var s Suite
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSuite, path, err)
	}

	return finishDecode(&s, md)
}

// DecodeSuite reads and validates a TOML suite from r.
func DecodeSuite(r io.Reader) (*Suite, error) {
	var s Suite
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSuite, err)
	}

	return finishDecode(&s, md)
}

func finishDecode(s *Suite, md toml.MetaData) (*Suite, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidSuite, strings.Join(keys, ", "))
	}
	if s.Trials == 0 {
		s.Trials = 1
	}
	if len(s.Algorithms) == 0 {
		for _, a := range subiso.Algorithms() {
			s.Algorithms = append(s.Algorithms, a.String())
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks algorithm names, topology kinds, sizes and densities.
func (s *Suite) Validate() error {
	if s.Trials < 1 {
		return fmt.Errorf("%w: trials must be ≥ 1, got %d", ErrInvalidSuite, s.Trials)
	}
	if s.NaiveMaxTarget < 0 || s.MaxSteps < 0 {
		return fmt.Errorf("%w: naive_max_target and max_steps must be ≥ 0", ErrInvalidSuite)
	}
	if _, err := s.timeout(); err != nil {
		return err
	}
	if _, err := s.algorithms(); err != nil {
		return err
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("%w: no [[case]] tables", ErrInvalidSuite)
	}

	for i, c := range s.Cases {
		if len(c.Sizes) == 0 || len(c.PatternSizes) == 0 {
			return fmt.Errorf("%w: case %d: sizes and pattern_sizes are required", ErrInvalidSuite, i)
		}
		if strings.EqualFold(c.Graph, builder.KindRandom) && len(c.Densities) == 0 {
			return fmt.Errorf("%w: case %d: random targets need densities", ErrInvalidSuite, i)
		}
		for _, p := range append(append([]float64(nil), c.Densities...), c.PatternDensity) {
			if p < builder.MinProbability || p > builder.MaxProbability {
				return fmt.Errorf("%w: case %d: density %v outside [0,1]", ErrInvalidSuite, i, p)
			}
		}
		if err := checkSizes(c.Graph, c.Sizes); err != nil {
			return fmt.Errorf("%w: case %d: %v", ErrInvalidSuite, i, err)
		}
		if err := checkSizes(c.Pattern, c.PatternSizes); err != nil {
			return fmt.Errorf("%w: case %d: pattern: %v", ErrInvalidSuite, i, err)
		}
	}

	return nil
}

// checkSizes rejects unknown kinds and sizes below the kind's minimum.
func checkSizes(kind string, sizes []int) error {
	minN, err := builder.MinVertices(kind)
	if err != nil {
		return err
	}
	for _, n := range sizes {
		if n < minN {
			return fmt.Errorf("%s size %d < %d", kind, n, minN)
		}
	}
	return nil
}

// Jobs expands the suite into instances in a fixed order:
// case, size, density, pattern size, trial.
//
// Seeds depend only on the suite seed and on the parameters that shape each
// graph, so one target is shared by every pattern size of a case.
func (s *Suite) Jobs() []Job {
	var jobs []Job
	for _, c := range s.Cases {
		densities := c.Densities
		if !strings.EqualFold(c.Graph, builder.KindRandom) {
			densities = []float64{0}
		}
		for _, n := range c.Sizes {
			for _, d := range densities {
				for _, k := range c.PatternSizes {
					for trial := 0; trial < s.Trials; trial++ {
						jobs = append(jobs, Job{
							Params: Params{
								GraphType:   strings.ToLower(c.Graph),
								Size:        n,
								PatternSize: k,
								Density:     d,
								Trial:       trial,
							},
							Case:        c,
							TargetSeed:  seedFor(s.Seed, "target", c.Graph, n, d, trial),
							PatternSeed: seedFor(s.Seed, "pattern", c.Pattern, k, c.PatternDensity, trial),
						})
					}
				}
			}
		}
	}

	return jobs
}

func (s *Suite) algorithms() ([]subiso.Algorithm, error) {
	out := make([]subiso.Algorithm, 0, len(s.Algorithms))
	for _, name := range s.Algorithms {
		a, err := subiso.ParseAlgorithm(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSuite, err)
		}
		out = append(out, a)
	}

	return out, nil
}

func (s *Suite) timeout() (time.Duration, error) {
	if s.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.Timeout)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: timeout %q", ErrInvalidSuite, s.Timeout)
	}

	return d, nil
}

func seedFor(base int64, parts ...any) int64 {
	h := fnv.New64a()
	fmt.Fprint(h, base)
	for _, p := range parts {
		fmt.Fprintf(h, "|%v", p)
	}

	return int64(h.Sum64() >> 1)
}
