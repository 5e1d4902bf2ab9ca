// Package render provides output serialization for unfolded patterns.
//
// # Overview
//
// This package contains the serialization side of the engine. It
// provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Cut sheet output (in [sheet] subpackage)
//   - Fold connectivity graphs (in [foldgraph] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats
// using the external rsvg-convert tool (from librsvg). They are used by
// the sheet renderer's PDF and PNG outputs.
//
//	svg := sheet.RenderSVG(pat)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Cut Sheets
//
// The [sheet] subpackage serializes a pattern into printable and
// machine-readable cut sheets: SVG with per-edge line styling, DXF R12
// with one layer per edge treatment, and a JSON document mirroring the
// pattern structure.
//
// # Fold Graphs
//
// The [foldgraph] subpackage renders the fold connectivity between
// panels as a DOT graph, with Graphviz SVG output for debugging panel
// chains.
//
//	dot := foldgraph.ToDOT(pat)
//	svg, err := foldgraph.RenderSVG(dot)
//
// [sheet]: github.com/foldline/foldline/pkg/render/sheet
// [foldgraph]: github.com/foldline/foldline/pkg/render/foldgraph
package render
