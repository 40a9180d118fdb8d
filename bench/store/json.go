package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/katalvlaran/subiso/bench"
)

// JSONFile keeps records as one indented JSON array.
// Appends are read-modify-write and serialised within the process.
type JSONFile struct {
	path string
	mu   sync.Mutex
}

// Path implements Store.
func (s *JSONFile) Path() string { return s.path }

// Load implements Store.
func (s *JSONFile) Load(ctx context.Context) ([]bench.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Append implements bench.Sink.
func (s *JSONFile) Append(ctx context.Context, recs ...bench.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return err
	}
	all = append(all, recs...)

	data, err := json.MarshalIndent(all, "", "    ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", s.path, err)
	}

	return writeAtomic(s.path, data)
}

func (s *JSONFile) load(ctx context.Context) ([]bench.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var recs []bench.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", s.path, err)
	}

	return recs, nil
}

// writeAtomic replaces path via a temp file in the same directory.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".subiso-*")
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}

	return nil
}
