package render

import (
	"context"
	"testing"

	cerrors "github.com/matzehuels/chromatic/pkg/errors"
)

func TestIsFormat(t *testing.T) {
	tests := []struct {
		format string
		want   bool
	}{
		{"svg", true},
		{"dot", true},
		{"pdf", true},
		{"png", true},
		{"SVG", false},
		{"jpeg", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsFormat(tt.format); got != tt.want {
			t.Errorf("IsFormat(%q) = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestClampScale(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 1},
		{-2, 1},
		{0.1, MinScale},
		{2, 2},
		{50, MaxScale},
	}
	for _, tt := range tests {
		if got := clampScale(tt.in); got != tt.want {
			t.Errorf("clampScale(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConvertErrors(t *testing.T) {
	ctx := context.Background()

	if _, err := ToPDF(ctx, nil); !cerrors.Is(err, cerrors.ErrCodeInvalidInput) {
		t.Errorf("ToPDF(nil) error = %v, want INVALID_INPUT", err)
	}

	old := converterBinary
	converterBinary = "chromatic-no-such-converter"
	t.Cleanup(func() { converterBinary = old })

	if _, err := ToPNG(ctx, []byte("<svg/>"), 2); !cerrors.Is(err, cerrors.ErrCodeMissingTool) {
		t.Errorf("ToPNG() error = %v, want MISSING_TOOL", err)
	}
}
