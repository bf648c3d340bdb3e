package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	cerrors "github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/observability"
	"github.com/matzehuels/chromatic/pkg/render"
)

// DefaultLayout is the Graphviz engine used when Options.Layout is empty.
const DefaultLayout = "neato"

// ConflictColor strokes edges whose endpoints share a color.
const ConflictColor = "#E03131"

var layouts = []string{"neato", "circo", "fdp", "sfdp", "dot", "twopi"}

// Layouts lists the accepted Graphviz engines.
func Layouts() []string { return slices.Clone(layouts) }

// ValidateLayout returns an INVALID_INPUT error for an unknown engine name.
// The empty string is valid and selects [DefaultLayout].
func ValidateLayout(layout string) error {
	if layout == "" || slices.Contains(layouts, layout) {
		return nil
	}
	return cerrors.New(cerrors.ErrCodeInvalidInput, "unknown layout %q (want one of %s)", layout, strings.Join(layouts, ", "))
}

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the color and metadata in vertex labels.
	// When false, only the vertex ID is shown.
	Detailed bool

	// Layout selects the Graphviz engine. Empty means DefaultLayout.
	Layout string

	// HideConflicts disables the red highlighting of conflict edges.
	HideConflicts bool
}

// ToDOT converts a graph to Graphviz DOT format. The resulting DOT string can
// be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(g *graph.Graph, opts Options) string {
	layout := opts.Layout
	if layout == "" {
		layout = DefaultLayout
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	fmt.Fprintf(&buf, "  layout=%s;\n", layout)
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  splines=true;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n", g.Tag())
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontname=\"Helvetica\", fontsize=14, width=0.5];\n")
	buf.WriteString("  edge [color=\"#555555\", penwidth=1.5];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %q [%s];\n", string(v.ID), strings.Join(fmtAttrs(v, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	conflicts := make(map[string]bool)
	if !opts.HideConflicts {
		for _, e := range g.DetectConflicts() {
			conflicts[e.String()] = true
		}
	}
	for _, e := range g.Edges() {
		if conflicts[e.String()] {
			fmt.Fprintf(&buf, "  %q -- %q [color=%q, penwidth=3];\n", string(e.From), string(e.To), ConflictColor)
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q;\n", string(e.From), string(e.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(v graph.Vertex, detailed bool) string {
	if !detailed {
		return string(v.ID)
	}

	color := "uncolored"
	if v.IsColored() {
		color = string(v.Color)
	}
	parts := []string{color}
	for _, k := range slices.Sorted(maps.Keys(v.Meta)) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, v.Meta[k]))
	}
	return string(v.ID) + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(v graph.Vertex, detailed bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(v, detailed))}
	if v.IsColored() {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", string(v.Color)))
	}
	if detailed {
		attrs = append(attrs, "shape=box", "style=\"rounded,filled\"")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) (out []byte, err error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, render.FormatSVG, strings.Count(dot, " [label="))
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, render.FormatSVG, time.Since(start), err) }()

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
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the SVG scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
