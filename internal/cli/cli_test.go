package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subiso/bench/store"
	"github.com/katalvlaran/subiso/graphio"
	"github.com/katalvlaran/subiso/subiso"
)

// run executes the CLI in an isolated config environment.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	err := Execute(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

// fixtures generates a 6-cycle target and a 4-path pattern in dir.
func fixtures(t *testing.T, dir string) (target, pattern string) {
	t.Helper()
	target = filepath.Join(dir, "target.yaml")
	pattern = filepath.Join(dir, "pattern.json")

	_, _, err := run(t, "generate", "cycle", "6", "-o", target)
	require.NoError(t, err)
	_, _, err = run(t, "generate", "path", "4", "--prefix", "p", "-o", pattern)
	require.NoError(t, err)

	return target, pattern
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.yaml")

	out, _, err := run(t, "generate", "random", "12", "--density", "0.5", "--seed", "3", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "random graph")
	assert.Contains(t, out, path)

	g, err := graphio.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, g.VertexCount())

	_, _, err = run(t, "generate", "torus", "4", "-o", path)
	assert.Error(t, err)
	_, _, err = run(t, "generate", "path", "four", "-o", path)
	assert.Error(t, err)
}

func TestMatch(t *testing.T) {
	target, pattern := fixtures(t, t.TempDir())

	for _, alg := range []string{"ri", "naive"} {
		out, _, err := run(t, "match", "-a", alg, target, pattern)
		require.NoError(t, err, alg)
		assert.Contains(t, out, "embeds into", alg)
		assert.Contains(t, out, "Pattern", alg)
		assert.Contains(t, out, "p3", alg)
	}
}

func TestMatch_NoEmbedding(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "path.yaml")
	pattern := filepath.Join(dir, "triangle.yaml")
	_, _, err := run(t, "generate", "path", "6", "-o", target)
	require.NoError(t, err)
	_, _, err = run(t, "generate", "complete", "3", "--prefix", "k", "-o", pattern)
	require.NoError(t, err)

	out, _, err := run(t, "match", target, pattern)
	assert.ErrorIs(t, err, errNoEmbedding)
	assert.True(t, IsSilent(err))
	assert.Contains(t, out, "does not embed")

	out, _, err = run(t, "match", "-q", target, pattern)
	assert.True(t, IsSilent(err))
	assert.Empty(t, out)
}

func TestMatch_LimitsAndErrors(t *testing.T) {
	target, pattern := fixtures(t, t.TempDir())

	_, _, err := run(t, "match", "--max-steps", "1", "-a", "naive", target, pattern)
	assert.ErrorIs(t, err, subiso.ErrStepLimit)

	_, _, err = run(t, "match", target, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, _, err = run(t, "match", target)
	assert.Error(t, err, "two arguments required")
}

func TestConfig_EnvAndFile(t *testing.T) {
	dir := t.TempDir()
	target, pattern := fixtures(t, dir)

	t.Run("env", func(t *testing.T) {
		t.Setenv("SUBISO_ALGORITHM", "vf2")
		_, _, err := run(t, "match", target, pattern)
		assert.ErrorIs(t, err, subiso.ErrUnknownAlgorithm)
	})

	t.Run("flag beats env", func(t *testing.T) {
		t.Setenv("SUBISO_ALGORITHM", "vf2")
		_, _, err := run(t, "match", "-a", "ri", target, pattern)
		assert.NoError(t, err)
	})

	t.Run("file", func(t *testing.T) {
		cfg := filepath.Join(dir, "subiso.yaml")
		require.NoError(t, os.WriteFile(cfg, []byte("algorithm: naive\nlog_level: debug\n"), 0o644))

		out, stderr, err := run(t, "--config", cfg, "match", target, pattern)
		require.NoError(t, err)
		assert.Contains(t, out, "naive")
		assert.Contains(t, stderr, "search finished")
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := run(t, "--config", filepath.Join(dir, "nope.yaml"), "match", target, pattern)
		assert.Error(t, err)
	})

	t.Run("negative limit", func(t *testing.T) {
		_, _, err := run(t, "match", "--max-steps", "-5", target, pattern)
		assert.Error(t, err)
	})
}

const tinySuite = `
name       = "tiny"
algorithms = ["naive", "ri"]
trials     = 2
seed       = 5

[[case]]
graph           = "random"
sizes           = [6, 7]
densities       = [0.5]
pattern         = "random"
pattern_sizes   = [3]
pattern_density = 0.5
`

func TestBenchAndReport(t *testing.T) {
	dir := t.TempDir()
	suite := filepath.Join(dir, "suite.toml")
	require.NoError(t, os.WriteFile(suite, []byte(tinySuite), 0o644))

	for _, results := range []string{filepath.Join(dir, "runs.json"), filepath.Join(dir, "runs.parquet")} {
		metrics := filepath.Join(dir, "subiso.prom")
		out, _, err := run(t, "bench", "--suite", suite, "--results", results,
			"--parallel", "2", "--metrics-file", metrics, "--summary")
		require.NoError(t, err, results)
		assert.Contains(t, out, "records appended")
		assert.Contains(t, out, "Runtime")

		st, err := store.Open(results)
		require.NoError(t, err)
		recs, err := st.Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, recs, 2*2*2)

		prom, err := os.ReadFile(metrics)
		require.NoError(t, err)
		assert.Contains(t, string(prom), "subiso_bench_searches_total")

		out, _, err = run(t, "report", results)
		require.NoError(t, err)
		assert.Contains(t, out, "Runtime")
		assert.Contains(t, out, "Speed-up")
		assert.Contains(t, out, "random")
	}

	out, _, err := run(t, "report", filepath.Join(dir, "empty.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "no records")

	_, _, err = run(t, "report", filepath.Join(dir, "runs.csv"))
	assert.ErrorIs(t, err, store.ErrUnsupportedFormat)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	target, pattern := fixtures(t, dir)

	dot := filepath.Join(dir, "match.dot")
	out, _, err := run(t, "render", target, "--pattern", pattern, "-o", dot)
	require.NoError(t, err)
	assert.Contains(t, out, "embedding found")

	data, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.Contains(t, string(data), "palegreen")
	assert.Contains(t, string(data), "penwidth=3")

	plain := filepath.Join(dir, "plain.dot")
	_, _, err = run(t, "render", target, "-o", plain)
	require.NoError(t, err)
	data, err = os.ReadFile(plain)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "palegreen")

	_, _, err = run(t, "render", target, "-o", filepath.Join(dir, "x.gif"))
	assert.Error(t, err)
}

func TestLoggerFromContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	l := newLogger(&bytes.Buffer{}, log.DebugLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func TestSetVersion(t *testing.T) {
	SetVersion("v1.2.3", "abc123", "2024-01-01")
	t.Cleanup(func() { SetVersion("dev", "", "") })

	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "subiso v1.2.3")
	assert.Contains(t, out, "commit: abc123")
}
