package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/parquet-go/parquet-go"

	"github.com/katalvlaran/subiso/bench"
)

// ParquetFile keeps records in one Parquet file. Parquet files are
// immutable, so Append rewrites the file with the old rows first.
type ParquetFile struct {
	path string
	mu   sync.Mutex
}

// Path implements Store.
func (s *ParquetFile) Path() string { return s.path }

// Load implements Store.
func (s *ParquetFile) Load(ctx context.Context) ([]bench.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Append implements bench.Sink.
func (s *ParquetFile) Append(ctx context.Context, recs ...bench.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return err
	}
	all = append(all, recs...)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := parquet.WriteFile(tmp, all); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}

	return nil
}

func (s *ParquetFile) load(ctx context.Context) ([]bench.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	recs, err := parquet.ReadFile[bench.Record](s.path)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", s.path, err)
	}
	for i := range recs {
		recs[i].Timestamp = recs[i].Timestamp.UTC()
	}

	return recs, nil
}
