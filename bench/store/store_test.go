package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subiso/bench"
	"github.com/katalvlaran/subiso/bench/store"
)

func sample(alg string, size int, secs float64) bench.Record {
	return bench.Record{
		RunID:       "run-1",
		Algorithm:   alg,
		GraphType:   "random",
		Size:        size,
		PatternSize: 5,
		Density:     0.4,
		Found:       true,
		Steps:       17,
		Time:        secs,
		Timestamp:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStores_AppendLoad(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"results.json", "nested/results.parquet"} {
		name := name
		t.Run(filepath.Ext(name), func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			s, err := store.Open(filepath.Join(t.TempDir(), name))
			require.NoError(t, err)

			empty, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, empty)

			require.NoError(t, s.Append(ctx, sample("naive", 10, 0.5)))
			require.NoError(t, s.Append(ctx, sample("ri", 10, 0.01), sample("ri", 20, 0.02)))

			got, err := s.Load(ctx)
			require.NoError(t, err)
			require.Len(t, got, 3)
			assert.Equal(t, "naive", got[0].Algorithm)
			assert.Equal(t, 20, got[2].Size)
			assert.InDelta(t, 0.02, got[2].Time, 1e-12)
			assert.True(t, got[1].Found)
			assert.EqualValues(t, 17, got[1].Steps)
			assert.WithinDuration(t, sample("", 0, 0).Timestamp, got[0].Timestamp, time.Millisecond)
		})
	}
}

func TestJSONFile_ReadsLegacyRecords(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "performance_results.json")
	legacy := `[
    {"algorithm": "ri", "size": 5, "density": 0.5, "time": 0.0012},
    {"algorithm": "naive", "size": 5, "density": 0.5, "time": 0.31}
]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	s, err := store.Open(path)
	require.NoError(t, err)
	recs, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "naive", recs[1].Algorithm)
	assert.InDelta(t, 0.31, recs[1].Time, 1e-12)

	sums := bench.Summarize(recs)
	require.Len(t, sums, 2)
	ups := bench.SpeedUps(sums)
	require.Len(t, ups, 1)
	assert.InDelta(t, 0.31/0.0012, ups[0].Factor, 1e-6)
}

func TestOpen_Errors(t *testing.T) {
	t.Parallel()

	_, err := store.Open("results.csv")
	assert.ErrorIs(t, err, store.ErrUnsupportedFormat)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	s, err := store.Open(path)
	require.NoError(t, err)
	_, err = s.Load(context.Background())
	assert.Error(t, err)
	assert.Error(t, s.Append(context.Background(), sample("ri", 1, 0)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
