// Package store persists benchmark records.
//
// Two formats are supported, chosen by file extension:
//
//	.json     a flat JSON array of records, rewritten on every append
//	.parquet  a single Parquet file with one row per record
//
// Both load to the same []bench.Record.
package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/subiso/bench"
)

// ErrUnsupportedFormat is returned by Open for an unknown extension.
var ErrUnsupportedFormat = errors.New("store: unsupported file format")

// Store is an append-only record collection.
type Store interface {
	bench.Sink
	// Load returns every stored record; a missing file yields no records.
	Load(ctx context.Context) ([]bench.Record, error)
	// Path returns the backing file.
	Path() string
}

// Open returns the store for path without touching the file system.
func Open(path string) (Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return &JSONFile{path: path}, nil
	case ".parquet":
		return &ParquetFile{path: path}, nil
	default:
		return nil, fmt.Errorf("%q: %w (want .json or .parquet)", path, ErrUnsupportedFormat)
	}
}
