package bench_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subiso/bench"
)

const sweepTOML = `
name       = "sizes"
algorithms = ["naive", "ri"]
trials     = 2
seed       = 7
timeout    = "5s"

[[case]]
graph           = "random"
sizes           = [6, 8]
densities       = [0.3, 0.6]
pattern         = "random"
pattern_sizes   = [3]
pattern_density = 0.4

[[case]]
graph         = "cycle"
sizes         = [6]
densities     = [0.9]
pattern       = "path"
pattern_sizes = [3, 4]
`

func TestDecodeSuite(t *testing.T) {
	t.Parallel()

	s, err := bench.DecodeSuite(strings.NewReader(sweepTOML))
	require.NoError(t, err)
	assert.Equal(t, "sizes", s.Name)
	require.Len(t, s.Cases, 2)

	jobs := s.Jobs()
	// random: 2 sizes × 2 densities × 1 pattern size × 2 trials
	// cycle: densities ignored, 2 pattern sizes × 2 trials
	require.Len(t, jobs, 8+4)
	assert.Equal(t, "cycle", jobs[8].GraphType)
	assert.Zero(t, jobs[8].Density)

	again, err := bench.DecodeSuite(strings.NewReader(sweepTOML))
	require.NoError(t, err)
	assert.Equal(t, jobs, again.Jobs(), "job expansion is deterministic")
}

func TestSuite_TargetSharedAcrossPatternSizes(t *testing.T) {
	t.Parallel()

	s, err := bench.DecodeSuite(strings.NewReader(sweepTOML))
	require.NoError(t, err)

	var cyc []bench.Job
	for _, j := range s.Jobs() {
		if j.GraphType == "cycle" && j.Trial == 0 {
			cyc = append(cyc, j)
		}
	}
	require.Len(t, cyc, 2)
	assert.Equal(t, cyc[0].TargetSeed, cyc[1].TargetSeed)
	assert.NotEqual(t, cyc[0].PatternSeed, cyc[1].PatternSeed)
}

func TestDecodeSuite_Defaults(t *testing.T) {
	t.Parallel()

	s, err := bench.DecodeSuite(strings.NewReader(`
[[case]]
graph = "complete"
sizes = [5]
pattern = "cycle"
pattern_sizes = [3]
`))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Trials)
	assert.Equal(t, []string{"naive", "ri"}, s.Algorithms)
}

func TestDecodeSuite_Invalid(t *testing.T) {
	t.Parallel()

	caseOK := "\n[[case]]\ngraph = \"path\"\nsizes = [4]\npattern = \"path\"\npattern_sizes = [2]\n"
	tests := map[string]string{
		"unknown key":        "trails = 3" + caseOK,
		"unknown case key":   caseOK + "colour = \"red\"\n",
		"bad algorithm":      "algorithms = [\"vf2\"]" + caseOK,
		"bad topology":       "[[case]]\ngraph = \"torus\"\nsizes = [4]\npattern = \"path\"\npattern_sizes = [2]\n",
		"bad pattern kind":   "[[case]]\ngraph = \"path\"\nsizes = [4]\npattern = \"blob\"\npattern_sizes = [2]\n",
		"zero size":          "[[case]]\ngraph = \"path\"\nsizes = [0]\npattern = \"path\"\npattern_sizes = [2]\n",
		"cycle pattern of 2": "[[case]]\ngraph = \"path\"\nsizes = [4]\npattern = \"cycle\"\npattern_sizes = [3, 2]\n",
		"star target of 1":   "[[case]]\ngraph = \"star\"\nsizes = [1]\npattern = \"path\"\npattern_sizes = [2]\n",
		"random no density":  "[[case]]\ngraph = \"random\"\nsizes = [4]\npattern = \"path\"\npattern_sizes = [2]\n",
		"density range":      "[[case]]\ngraph = \"random\"\nsizes = [4]\ndensities = [1.5]\npattern = \"path\"\npattern_sizes = [2]\n",
		"bad timeout":        "timeout = \"soon\"" + caseOK,
		"negative trials":    "trials = -1" + caseOK,
		"no cases":           "name = \"empty\"",
		"syntax":             "name = ",
	}
	for name, src := range tests {
		_, err := bench.DecodeSuite(strings.NewReader(src))
		assert.ErrorIs(t, err, bench.ErrInvalidSuite, name)
	}
}

func TestLoadSuite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "suite.toml")
	require.NoError(t, os.WriteFile(path, []byte(sweepTOML), 0o644))

	s, err := bench.LoadSuite(path)
	require.NoError(t, err)
	assert.Len(t, s.Jobs(), 12)

	_, err = bench.LoadSuite(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, bench.ErrInvalidSuite)
}

func TestDefaultSuite(t *testing.T) {
	t.Parallel()

	s := bench.DefaultSuite()
	require.NoError(t, s.Validate())
	// five graph types × eight sizes × three trials, plus seven path patterns × three trials
	assert.Len(t, s.Jobs(), 5*8*3+7*3)
}
