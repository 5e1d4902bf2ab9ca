package sheet

import (
	"github.com/foldline/foldline/pkg/pattern"
	"github.com/foldline/foldline/pkg/render"
)

// RenderPDF renders the pattern as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(u *pattern.UnfoldedPattern, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(RenderSVG(u, opts...))
}

// RenderPNG renders the pattern as PNG via SVG conversion with the
// given scale factor.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(u *pattern.UnfoldedPattern, scale float64, opts ...SVGOption) ([]byte, error) {
	return render.ToPNG(RenderSVG(u, opts...), scale)
}
