// Package unfold turns a parametric building description into a flat
// pattern of panels with classified edges, ready for serialization.
//
// The engine is a pure function of its inputs: every invocation builds
// fresh entities, the only state is the shelf-packing cursor threaded
// through the generators, and identical inputs always yield identical
// panel ordering and coordinates.
//
// The material decides the unfolding algorithm (see StrategyFor):
// foldable paper becomes one folded strip, rigid stock becomes separate
// cut pieces with joint compensation, and thin chipboard folds along
// scored edges.
package unfold

import (
	"github.com/charmbracelet/log"

	"github.com/foldline/foldline/pkg/building"
	"github.com/foldline/foldline/pkg/pattern"
	"github.com/foldline/foldline/pkg/unfold/detail"
	"github.com/foldline/foldline/pkg/unfold/sheet"
	"github.com/foldline/foldline/pkg/unfold/tabs"
)

// Option configures an unfold invocation.
type Option func(*config)

type config struct {
	logger   *log.Logger
	tabWidth float64
}

// WithLogger attaches a logger. Recoverable geometry (skipped degenerate
// tabs) is reported through it at warn level.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithTabWidth overrides the glue tab width in model-scale inches.
func WithTabWidth(w float64) Option {
	return func(c *config) { c.tabWidth = w }
}

// Unfold computes the complete flat pattern for the building.
func Unfold(params *building.Params, opts ...Option) (*pattern.UnfoldedPattern, error) {
	cfg := config{tabWidth: tabs.DefaultWidth}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	b := newBuild(params, cfg)

	var (
		res *strategyResult
		err error
	)
	switch StrategyFor(params.Material) {
	case StrategySeparatePanel:
		res, err = b.separatePanels()
	case StrategyScoreAndFold:
		res, err = b.scoreAndFold()
	default:
		res, err = b.foldedStrip()
	}
	if err != nil {
		return nil, err
	}

	out := &pattern.UnfoldedPattern{
		Panels:        res.structural,
		GlueTabs:      res.tabs,
		FacadePanels:  res.facades,
		BuildingName:  params.Name,
		ScaleLabel:    params.Scale.Label(),
		MaterialType:  params.Material.Type,
		AssemblySteps: res.steps,
		RealWorld: pattern.RealWorldDimensions{
			WidthFeet:  params.WidthFeet,
			DepthFeet:  params.DepthFeet,
			HeightFeet: params.HeightFeet,
		},
	}

	cur := res.cursor
	out.AccessoryPanels, cur = b.accessoryPanels(cur)

	var details []pattern.Panel
	details, cur = detail.OpeningTrim(params, cur)
	out.DetailPanels = append(out.DetailPanels, details...)
	details, cur = detail.WallOrnament(params, cur)
	out.DetailPanels = append(out.DetailPanels, details...)
	details, _ = detail.RoofTrim(params, cur)
	out.DetailPanels = append(out.DetailPanels, details...)

	if err := Assemble(out); err != nil {
		return nil, err
	}
	return out, nil
}

// build carries the model-scale dimensions shared by the strategies.
type build struct {
	params   *building.Params
	cfg      config
	w, d, h  float64 // building extents in model-scale inches
	overhang float64
}

func newBuild(params *building.Params, cfg config) *build {
	s := params.Scale
	return &build{
		params:   params,
		cfg:      cfg,
		w:        s.ToModel(params.WidthFeet),
		d:        s.ToModel(params.DepthFeet),
		h:        s.ToModel(params.HeightFeet),
		overhang: s.ToModel(params.Roof.OverhangFeet),
	}
}

func (b *build) warnf(format string, args ...any) {
	if b.cfg.logger != nil {
		b.cfg.logger.Warnf(format, args...)
	}
}

// strategyResult is what each unfold strategy produces before the
// accessory and detail generators run.
type strategyResult struct {
	structural []pattern.Panel
	tabs       []pattern.GlueTab
	facades    []pattern.Panel
	steps      []string
	cursor     sheet.Cursor
}
