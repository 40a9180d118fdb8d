package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/subiso/core"
	"github.com/katalvlaran/subiso/subiso"
)

// Options configures DOT output.
type Options struct {
	// Pattern, when set, restricts bold edges to images of pattern edges.
	// Without it every edge between two image vertices is bold.
	Pattern subiso.View

	// Labels appends the pattern vertex name to each image vertex label.
	Labels bool

	// Layout is the Graphviz layout engine attribute; "" means "neato".
	Layout string
}

const (
	fillHighlight = "palegreen"
	fillPlain     = "white"
)

// ToDOT writes g as an undirected DOT graph. Vertices in the image of m are
// filled green; edges carrying m are drawn bold.
// Output is deterministic: vertices sorted, edges in insertion order.
func ToDOT(g *core.Graph, m subiso.Mapping, opts Options) string {
	layout := opts.Layout
	if layout == "" {
		layout = "neato"
	}

	inverse := make(map[string]string, len(m))
	for p, t := range m {
		inverse[t] = p
	}
	bold := boldEdges(m, opts.Pattern)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	fmt.Fprintf(&buf, "  layout=%q;\n", layout)
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for _, id := range g.Vertices() {
		label := id
		fill := fillPlain
		if p, ok := inverse[id]; ok {
			fill = fillHighlight
			if opts.Labels {
				label = id + "\n(" + p + ")"
			}
		}
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%s];\n", id, label, fill)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		attrs := ""
		if bold(e.From, e.To) {
			attrs = " [penwidth=3, color=darkgreen]"
		}
		fmt.Fprintf(&buf, "  %q -- %q%s;\n", e.From, e.To, attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// boldEdges returns a predicate over target endpoints.
func boldEdges(m subiso.Mapping, pattern subiso.View) func(u, v string) bool {
	if len(m) == 0 {
		return func(string, string) bool { return false }
	}
	if pattern == nil {
		image := make(map[string]bool, len(m))
		for _, t := range m {
			image[t] = true
		}
		return func(u, v string) bool { return image[u] && image[v] }
	}

	carried := make(map[[2]string]bool)
	for _, p := range pattern.Vertices() {
		nbrs, err := pattern.NeighborIDs(p)
		if err != nil {
			continue
		}
		for _, q := range nbrs {
			a, b := m[p], m[q]
			if a == "" || b == "" {
				continue
			}
			carried[edgeKey(a, b)] = true
		}
	}

	return func(u, v string) bool { return carried[edgeKey(u, v)] }
}

func edgeKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

// Format is an output format understood by Render.
type Format string

const (
	DOT Format = "dot"
	SVG Format = "svg"
	PNG Format = "png"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{string(DOT), string(SVG), string(PNG)}
}

// ParseFormat resolves a format name or file extension (".svg").
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	switch f {
	case DOT, SVG, PNG:
		return f, nil
	}
	return "", fmt.Errorf("render: unknown format %q (want one of %s)", s, strings.Join(Formats(), ", "))
}

// Render lays out dot and encodes it in format f. DOT input is returned as is.
func Render(ctx context.Context, dot string, f Format) ([]byte, error) {
	var gf graphviz.Format
	switch f {
	case DOT:
		return []byte(dot), nil
	case SVG:
		gf = graphviz.SVG
	case PNG:
		gf = graphviz.PNG
	default:
		return nil, fmt.Errorf("render: unknown format %q", f)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gf, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderSVG renders dot to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return Render(ctx, dot, SVG)
}

// RenderPNG renders dot to PNG.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return Render(ctx, dot, PNG)
}
