// Package pkg provides the core libraries for Foldline pattern generation.
//
// # Overview
//
// Foldline turns parametric building descriptions into flat 2D
// cut-and-fold patterns for scale model construction. The pkg directory
// is organized into five main areas:
//
//  1. [building] - Input side (parametric description, scales, TOML loading)
//  2. [pattern] - The output data model (panels, edges, glue tabs)
//  3. [unfold] - The unfolding engine (strategies, roofs, details)
//  4. [render] - Serialization (SVG, DXF, JSON, fold graphs)
//  5. [pipeline] - Orchestration (load → unfold → render)
//
// # Architecture
//
// The typical data flow through Foldline:
//
//	building TOML file
//	         ↓
//	    [building] package (validate, scale conversion)
//	         ↓
//	    [unfold] package (walls, roof, tabs, details, layout)
//	         ↓
//	    [render] package (SVG / DXF / JSON / DOT output)
//
// # Quick Start
//
// Unfold a building and render the cut sheet:
//
//	import (
//	    "github.com/foldline/foldline/pkg/building"
//	    "github.com/foldline/foldline/pkg/render/sheet"
//	    "github.com/foldline/foldline/pkg/unfold"
//	)
//
//	// 1. Load the building description
//	params, _ := building.Load("depot.toml")
//
//	// 2. Unfold into a flat pattern
//	pat, _ := unfold.Unfold(params)
//
//	// 3. Render to SVG
//	svg := sheet.RenderSVG(pat)
//
// # Main Packages
//
// [building] - The parametric building description in real-world feet:
// footprint, roof, openings, floors, materials, trim, and accessories,
// plus model railroad scale conversion and TOML loading.
//
// [pattern] - The flat pattern data model: panels with typed edges
// (cut, fold-mountain, fold-valley, score, glue-tab), glue tabs,
// openings, stickers, and material/joint configuration.
//
// [unfold] - The unfolding engine. Selects one of three strategies from
// the material (folded strip, separate panels, score and fold), builds
// the roof faces for seven roof styles, synthesizes glue tabs, embeds
// openings, and generates trim and ornament detail panels.
//
// [render] - Serialization of finished patterns: printable SVG cut
// sheets, DXF R12 for cutting machines, JSON for downstream tools, and
// Graphviz fold connectivity graphs. Top-level utilities convert SVG to
// PDF/PNG.
//
// [pipeline] - The complete load → unfold → render pipeline used by the
// CLI and the preview server. Ensures consistent defaults across all
// entry points.
//
// [geom] - Small 2D geometry helpers (points, bounds, polygon area)
// shared by the engine and the renderers.
//
// [errors] - Structured error codes with user-facing messages.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// [building]: github.com/foldline/foldline/pkg/building
// [pattern]: github.com/foldline/foldline/pkg/pattern
// [unfold]: github.com/foldline/foldline/pkg/unfold
// [render]: github.com/foldline/foldline/pkg/render
// [pipeline]: github.com/foldline/foldline/pkg/pipeline
// [geom]: github.com/foldline/foldline/pkg/geom
// [errors]: github.com/foldline/foldline/pkg/errors
// [buildinfo]: github.com/foldline/foldline/pkg/buildinfo
package pkg
