// File: graphio.go
// Role: YAML/JSON edge-list documents <-> core.Graph.
// Determinism:
//   - Encode lists vertices sorted and edges in insertion order.

package graphio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/subiso/core"
	"github.com/katalvlaran/subiso/subiso"
)

// ErrInvalidGraph is returned for documents that do not describe a valid
// graph. It wraps subiso.ErrInvalidInput so callers of the matchers can
// branch on one sentinel.
var ErrInvalidGraph = fmt.Errorf("graphio: %w", subiso.ErrInvalidInput)

// ErrUnknownFormat is returned when a path extension maps to no codec.
var ErrUnknownFormat = errors.New("graphio: unknown file format")

// Format selects the document codec.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// Document is the on-disk shape of a graph:
//
//	vertices: [a, b, c]
//	edges:
//	  - [a, b]
//	  - [b, c]
//
// When Vertices is empty the vertex set is the set of edge endpoints.
// Otherwise every endpoint must be declared.
type Document struct {
	Vertices   []string   `yaml:"vertices,omitempty" json:"vertices,omitempty"`
	Edges      [][]string `yaml:"edges" json:"edges"`
	Loops      bool       `yaml:"loops,omitempty" json:"loops,omitempty"`
	MultiEdges bool       `yaml:"multi_edges,omitempty" json:"multi_edges,omitempty"`
}

// FormatOf picks a format from the file extension (.yaml, .yml, .json).
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// Load reads and validates the graph stored at path.
func Load(path string) (*core.Graph, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open: %w", err)
	}
	defer fh.Close()

	g, err := Decode(fh, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Decode parses one document from r and builds the graph it describes.
func Decode(r io.Reader, f Format) (*core.Graph, error) {
	var doc Document
	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: yaml: %v", ErrInvalidGraph, err)
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: json: %v", ErrInvalidGraph, err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}

	return doc.Graph()
}

// Graph validates d and materialises it.
// Self-loops switch loop support on; a repeated pair collapses into one edge
// unless the document sets multi_edges.
func (d Document) Graph() (*core.Graph, error) {
	var opts []core.GraphOption
	if d.Loops || d.hasLoop() {
		opts = append(opts, core.WithLoops())
	}
	if d.MultiEdges {
		opts = append(opts, core.WithMultiEdges())
	}
	g := core.NewGraph(opts...)

	declared := make(map[string]bool, len(d.Vertices))
	for _, id := range d.Vertices {
		if id == "" {
			return nil, fmt.Errorf("%w: empty vertex ID", ErrInvalidGraph)
		}
		if declared[id] {
			return nil, fmt.Errorf("%w: duplicate vertex %q", ErrInvalidGraph, id)
		}
		declared[id] = true
		_ = g.AddVertex(id)
	}

	for i, e := range d.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%w: edge %d has %d endpoints", ErrInvalidGraph, i, len(e))
		}
		if e[0] == "" || e[1] == "" {
			return nil, fmt.Errorf("%w: edge %d has an empty endpoint", ErrInvalidGraph, i)
		}
		if len(declared) > 0 {
			for _, id := range e {
				if !declared[id] {
					return nil, fmt.Errorf("%w: edge %d endpoint %q is not a declared vertex", ErrInvalidGraph, i, id)
				}
			}
		}
		if !d.MultiEdges && g.HasEdge(e[0], e[1]) {
			continue
		}
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("%w: edge %d (%s, %s): %w", ErrInvalidGraph, i, e[0], e[1], err)
		}
	}

	return g, nil
}

func (d Document) hasLoop() bool {
	for _, e := range d.Edges {
		if len(e) == 2 && e[0] != "" && e[0] == e[1] {
			return true
		}
	}
	return false
}

// FromGraph captures g as a Document. Vertices are always listed so that
// isolated vertices survive a round trip.
func FromGraph(g *core.Graph) Document {
	edges := g.Edges()
	doc := Document{
		Vertices:   g.Vertices(),
		Edges:      make([][]string, 0, len(edges)),
		Loops:      g.Looped(),
		MultiEdges: g.Multigraph(),
	}
	for _, e := range edges {
		doc.Edges = append(doc.Edges, []string{e.From, e.To})
	}

	return doc
}

// Encode writes g to w in format f.
func Encode(w io.Writer, g *core.Graph, f Format) error {
	doc := FromGraph(g)
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("graphio: yaml: %w", err)
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("graphio: json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

// Save writes g to path, choosing the format by extension.
func Save(path string, g *core.Graph) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, g, f); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("graphio: write: %w", err)
	}

	return nil
}
