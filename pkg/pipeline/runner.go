package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/foldline/foldline/pkg/unfold"
)

// Runner encapsulates pipeline execution. Both CLI and server use this
// to avoid duplicating stage wiring.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner with the given logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → unfold → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	params, err := Load(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stats.LoadTime = time.Since(loadStart)

	r.Logger.Info("loaded building",
		"name", params.Name,
		"scale", params.Scale.Label(),
		"roof", params.Roof.Style,
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Unfold
	unfoldStart := time.Now()
	unfoldOpts := []unfold.Option{unfold.WithLogger(opts.Logger)}
	if opts.TabWidth > 0 {
		unfoldOpts = append(unfoldOpts, unfold.WithTabWidth(opts.TabWidth))
	}
	pat, err := unfold.Unfold(params, unfoldOpts...)
	if err != nil {
		return nil, fmt.Errorf("unfold: %w", err)
	}
	result.Pattern = pat
	result.Stats.UnfoldTime = time.Since(unfoldStart)
	result.Stats.PanelCount = pat.PanelCount()
	result.Stats.TabCount = len(pat.GlueTabs)
	result.Stats.SheetWidth = pat.Width
	result.Stats.SheetHeight = pat.Height

	r.Logger.Info("unfolded building",
		"panels", result.Stats.PanelCount,
		"tabs", result.Stats.TabCount,
		"sheet", fmt.Sprintf("%.2fx%.2fin", pat.Width, pat.Height),
		"duration", result.Stats.UnfoldTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := Render(pat, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// applyLogger ensures the options carry the runner's logger unless the
// caller supplied their own.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
