// Package pipeline provides the core unfold pipeline for Foldline.
//
// This package implements the complete load → unfold → render pipeline
// that is shared by the CLI and the preview server. By centralizing this
// logic, we ensure consistent defaults and validation across all entry
// points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate building parameters from a TOML file or
//     from in-memory Params
//  2. Unfold: Turn the parameters into a flat cut-and-fold pattern
//  3. Render: Serialize the pattern in various formats (SVG, DXF, JSON,
//     PDF, PNG, DOT)
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    BuildingFile: "depot.toml",
//	    Formats:      []string{"svg", "dxf"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	params, err := pipeline.Load(opts)
//
//	// Render an existing pattern
//	artifacts, err := pipeline.Render(pat, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/foldline/foldline/pkg/building"
	"github.com/foldline/foldline/pkg/pattern"
	"github.com/foldline/foldline/pkg/render/sheet"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultDPI is the default SVG raster resolution.
	DefaultDPI = sheet.DefaultDPI

	// DefaultPNGScale is the default raster upscale factor for PNG output.
	DefaultPNGScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatDXF  = "dxf"
	FormatJSON = "json"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatDXF:  true,
	FormatJSON: true,
	FormatPDF:  true,
	FormatPNG:  true,
	FormatDOT:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the unfold pipeline.
// This struct supports JSON serialization for server requests.
type Options struct {
	// Input options. One of BuildingFile or Params is required; when
	// both are set, Params wins.
	BuildingFile string           `json:"building_file,omitempty"`
	Params       *building.Params `json:"params,omitempty"`

	// Unfold options
	TabWidth float64 `json:"tab_width,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	DPI      float64  `json:"dpi,omitempty"`
	NoLabels bool     `json:"no_labels,omitempty"`
	PNGScale float64  `json:"png_scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Pattern is the unfolded cut-and-fold pattern.
	Pattern *pattern.UnfoldedPattern

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PanelCount  int
	TabCount    int
	SheetWidth  float64
	SheetHeight float64
	LoadTime    time.Duration
	UnfoldTime  time.Duration
	RenderTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, dxf, json, pdf, png, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.BuildingFile == "" && o.Params == nil {
		return fmt.Errorf("building file or params is required")
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.DPI < 0 {
		return fmt.Errorf("dpi must be positive, got %g", o.DPI)
	}
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}
