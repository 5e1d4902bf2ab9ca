package pipeline

import (
	"fmt"

	"github.com/foldline/foldline/pkg/buildinfo"
	"github.com/foldline/foldline/pkg/pattern"
	"github.com/foldline/foldline/pkg/render/foldgraph"
	"github.com/foldline/foldline/pkg/render/sheet"
)

// Render generates output artifacts in the requested formats.
func Render(u *pattern.UnfoldedPattern, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		data, err := renderFormat(u, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func renderFormat(u *pattern.UnfoldedPattern, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sheet.RenderSVG(u, svgOptions(opts)...), nil
	case FormatDXF:
		return sheet.RenderDXF(u), nil
	case FormatJSON:
		return sheet.RenderJSON(u, sheet.WithJSONGenerator("foldline", buildinfo.Version))
	case FormatPDF:
		return sheet.RenderPDF(u, svgOptions(opts)...)
	case FormatPNG:
		return sheet.RenderPNG(u, opts.PNGScale, svgOptions(opts)...)
	case FormatDOT:
		return []byte(foldgraph.ToDOT(u)), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// svgOptions translates pipeline options into sheet render options.
// PDF and PNG outputs go through the SVG renderer, so they share these.
func svgOptions(opts Options) []sheet.SVGOption {
	var svgOpts []sheet.SVGOption
	if opts.DPI != 0 && opts.DPI != sheet.DefaultDPI {
		svgOpts = append(svgOpts, sheet.WithDPI(opts.DPI))
	}
	if opts.NoLabels {
		svgOpts = append(svgOpts, sheet.WithoutLabels())
	}
	return svgOpts
}
