package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	cerrors "github.com/matzehuels/chromatic/pkg/errors"
)

// Raster scale bounds accepted by [ToPNG].
const (
	MinScale = 0.25
	MaxScale = 8.0
)

// converterBinary is the librsvg command used for PDF and PNG output.
var converterBinary = "rsvg-convert"

// ToPDF converts an SVG diagram to PDF.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return convert(ctx, svg, FormatPDF)
}

// ToPNG converts an SVG diagram to PNG. The scale is clamped to
// [MinScale, MaxScale]; zero or negative means 1x.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	return convert(ctx, svg, FormatPNG, "-z", fmt.Sprintf("%.2f", clampScale(scale)))
}

func clampScale(scale float64) float64 {
	switch {
	case scale <= 0:
		return 1
	case scale < MinScale:
		return MinScale
	case scale > MaxScale:
		return MaxScale
	}
	return scale
}

func convert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if len(svg) == 0 {
		return nil, cerrors.New(cerrors.ErrCodeInvalidInput, "%s export: empty SVG input", format)
	}
	bin, err := exec.LookPath(converterBinary)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeMissingTool, err,
			"%s export needs %s (brew install librsvg, apt install librsvg2-bin)", format, converterBinary)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%s: %w: %s", converterBinary, err, strings.TrimSpace(stderr.String()))
	}
	return out.Bytes(), nil
}
