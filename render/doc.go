// Package render draws a target graph with an embedding highlighted.
//
// ToDOT produces Graphviz source: image vertices are filled green and the
// edges that carry pattern edges are bold. Render, RenderSVG and RenderPNG
// lay the source out with the embedded Graphviz from goccy/go-graphviz, so no
// external dot binary is needed.
package render
