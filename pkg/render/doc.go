// Package render provides visual export for colored graphs.
//
// # Overview
//
// Graph diagrams are produced by the [nodelink] subpackage as SVG through
// Graphviz. This package adds generic format conversion on top of any SVG:
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [ToPDF] and [ToPNG] shell out to rsvg-convert (from librsvg). A missing
// binary is reported as a MISSING_TOOL error.
//
// [nodelink]: github.com/matzehuels/chromatic/pkg/render/nodelink
package render

import "slices"

// Output formats accepted by the command-line front end.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPDF = "pdf"
	FormatPNG = "png"
)

// Formats lists every supported output format.
func Formats() []string { return []string{FormatDOT, FormatSVG, FormatPDF, FormatPNG} }

// IsFormat reports whether f is a supported output format.
func IsFormat(f string) bool {
	return slices.Contains(Formats(), f)
}
