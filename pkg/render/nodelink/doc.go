// Package nodelink renders colored graphs as node-link diagrams.
//
// # Overview
//
// This package produces undirected Graphviz diagrams where every vertex is a
// circle filled with its assigned color. Uncolored vertices are white and
// conflict edges (both endpoints sharing a color) are drawn thick and red, so
// the quality of a coloring is visible at a glance.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Options
//
//   - Detailed: vertex labels also list the color and metadata
//   - Layout: Graphviz engine (neato by default; circo, fdp, dot, sfdp, twopi)
//   - HideConflicts: draw conflict edges like any other edge
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
