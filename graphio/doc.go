// Package graphio loads and stores graphs as small YAML or JSON edge-list
// documents, the input format of the subiso command.
//
// A document lists vertices (optional) and edges as two-element sequences.
// Self-loops are kept; a pair listed twice (in either direction) collapses
// into one edge unless the document sets `multi_edges: true`. Every
// validation failure wraps ErrInvalidGraph, which in turn wraps
// subiso.ErrInvalidInput.
package graphio
