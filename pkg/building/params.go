// Package building defines the input side of the engine: the parametric
// building description in real-world feet, its validation, and the
// conversion into model-scale inches.
//
// Building definitions are TOML files (see Load). All real-world values
// are feet; they cross into model-scale inches exactly once, through
// Scale.ToModel.
package building

import (
	"github.com/foldline/foldline/pkg/errors"
	"github.com/foldline/foldline/pkg/pattern"
)

// RoofStyle selects the roof silhouette.
type RoofStyle string

const (
	RoofFlat    RoofStyle = "flat"
	RoofGable   RoofStyle = "gable"
	RoofHip     RoofStyle = "hip"
	RoofShed    RoofStyle = "shed"
	RoofSaltbox RoofStyle = "saltbox"
	RoofGambrel RoofStyle = "gambrel"
	RoofMansard RoofStyle = "mansard"
)

// validRoofStyles is the closed set of supported silhouettes.
var validRoofStyles = map[RoofStyle]bool{
	RoofFlat: true, RoofGable: true, RoofHip: true, RoofShed: true,
	RoofSaltbox: true, RoofGambrel: true, RoofMansard: true,
}

// GableFamily reports whether the style has sloped rafters meeting a
// ridge on the gable ends (used by roof trim generation).
func (r RoofStyle) GableFamily() bool {
	switch r {
	case RoofGable, RoofSaltbox, RoofGambrel:
		return true
	}
	return false
}

// WallRole identifies which side of the building a wall covers.
type WallRole string

const (
	WallFront WallRole = "front"
	WallBack  WallRole = "back"
	WallLeft  WallRole = "left"
	WallRight WallRole = "right"
)

// WallOrder is the strip order used by the folded layout: front, right,
// back, left.
var WallOrder = [4]WallRole{WallFront, WallRight, WallBack, WallLeft}

// IsSide reports whether the role is a left/right wall, the ones that
// absorb the roof silhouette and joint compensation.
func (w WallRole) IsSide() bool { return w == WallLeft || w == WallRight }

// Roof holds the roof parameters in real-world units.
type Roof struct {
	Style        RoofStyle `json:"style" toml:"style"`
	PitchDegrees float64   `json:"pitchDegrees" toml:"pitch"`
	OverhangFeet float64   `json:"overhangFeet" toml:"overhang"`
}

// TrimStyle selects the architectural trim profile for openings.
type TrimStyle string

const (
	TrimNone      TrimStyle = "none"
	TrimSimple    TrimStyle = "simple"
	TrimColonial  TrimStyle = "colonial"
	TrimCraftsman TrimStyle = "craftsman"
	TrimVictorian TrimStyle = "victorian"
)

var validTrimStyles = map[TrimStyle]bool{
	TrimNone: true, TrimSimple: true, TrimColonial: true,
	TrimCraftsman: true, TrimVictorian: true,
}

// OpeningSpec is a window or door in real-world feet, positioned on a
// wall. X is measured from the wall's left edge, Y from the floor line
// of the assigned floor.
type OpeningSpec struct {
	ID     string   `json:"id" toml:"id"`
	Type   string   `json:"type" toml:"type"` // "window" or "door"
	Wall   WallRole `json:"wall" toml:"wall"`
	X      float64  `json:"x" toml:"x"`
	Y      float64  `json:"y" toml:"y"`
	Width  float64  `json:"width" toml:"width"`
	Height float64  `json:"height" toml:"height"`
	Floor  int      `json:"floor" toml:"floor"`
	Label  string   `json:"label,omitempty" toml:"label"`
}

// Floor describes one storey.
type Floor struct {
	HeightFeet float64 `json:"heightFeet" toml:"height"`
}

// WallDetails toggles the independent wall ornament sub-generators.
type WallDetails struct {
	CornerBoards bool `json:"cornerBoards" toml:"corner_boards"`
	Baseboards   bool `json:"baseboards" toml:"baseboards"`
	BeltCourses  bool `json:"beltCourses" toml:"belt_courses"`
	Wainscoting  bool `json:"wainscoting" toml:"wainscoting"`
	Quoins       bool `json:"quoins" toml:"quoins"`
}

// Any reports whether at least one ornament is enabled.
func (w WallDetails) Any() bool {
	return w.CornerBoards || w.Baseboards || w.BeltCourses || w.Wainscoting || w.Quoins
}

// BargeboardStyle selects the bargeboard bottom-edge treatment.
type BargeboardStyle string

const (
	BargeboardPlain       BargeboardStyle = "plain"
	BargeboardScalloped   BargeboardStyle = "scalloped"
	BargeboardGingerbread BargeboardStyle = "gingerbread"
)

// RoofTrim toggles the roof trim sub-generators.
type RoofTrim struct {
	Fascia          bool            `json:"fascia" toml:"fascia"`
	Bargeboard      bool            `json:"bargeboard" toml:"bargeboard"`
	RidgeCap        bool            `json:"ridgeCap" toml:"ridge_cap"`
	BargeboardStyle BargeboardStyle `json:"bargeboardStyle" toml:"bargeboard_style"`
}

// Any reports whether at least one roof trim element is enabled.
func (r RoofTrim) Any() bool { return r.Fascia || r.Bargeboard || r.RidgeCap }

// AccessoryMode distinguishes accessories drawn flat on the facade from
// ones built as separate 3D pieces.
type AccessoryMode string

const (
	Accessory2D AccessoryMode = "2d"
	Accessory3D AccessoryMode = "3d"
)

// Accessory is an attached structure (chimney, dormer, porch). Only
// 3D-mode accessories produce flat panels in the pattern.
type Accessory struct {
	Type string `json:"type" toml:"type"`
	// Wall the accessory attaches to, and its offset from that wall's
	// left edge in feet.
	Wall       WallRole      `json:"wall" toml:"wall"`
	OffsetFeet float64       `json:"offsetFeet" toml:"offset"`
	Mode       AccessoryMode `json:"mode" toml:"mode"`
	WidthFeet  float64       `json:"widthFeet" toml:"width"`
	HeightFeet float64       `json:"heightFeet" toml:"height"`
}

// Params is the full parametric description of one building.
type Params struct {
	Name       string  `json:"name" toml:"name"`
	WidthFeet  float64 `json:"width" toml:"width"`
	DepthFeet  float64 `json:"depth" toml:"depth"`
	HeightFeet float64 `json:"height" toml:"height"`

	Roof  Roof  `json:"roof" toml:"roof"`
	Scale Scale `json:"scale" toml:"scale"`

	Openings []OpeningSpec `json:"openings,omitempty" toml:"openings"`
	Floors   []Floor       `json:"floors,omitempty" toml:"floors"`

	Material  pattern.MaterialConfig `json:"material" toml:"material"`
	TrimStyle TrimStyle              `json:"trimStyle" toml:"trim_style"`

	WallDetails WallDetails `json:"wallDetails" toml:"wall_details"`
	RoofTrim    RoofTrim    `json:"roofTrim" toml:"roof_trim"`

	Accessories []Accessory `json:"accessories,omitempty" toml:"accessories"`
}

// WallWidthFeet returns the real-world width of the wall with the given
// role: front/back span the building width, left/right span the depth.
func (p *Params) WallWidthFeet(role WallRole) float64 {
	if role.IsSide() {
		return p.DepthFeet
	}
	return p.WidthFeet
}

// FloorHeightsFeet returns the per-floor heights, defaulting to a single
// floor of the full wall height when none are declared.
func (p *Params) FloorHeightsFeet() []float64 {
	if len(p.Floors) == 0 {
		return []float64{p.HeightFeet}
	}
	out := make([]float64, len(p.Floors))
	for i, f := range p.Floors {
		out[i] = f.HeightFeet
	}
	return out
}

// Validate checks the parametric description and applies defaults:
// roof style defaults to gable, trim style to none, scale to HO, and the
// material to paper with glue tabs.
func (p *Params) Validate() error {
	if err := errors.ValidateBuildingName(p.Name); err != nil {
		return err
	}
	if err := errors.ValidateDimension("width", p.WidthFeet); err != nil {
		return err
	}
	if err := errors.ValidateDimension("depth", p.DepthFeet); err != nil {
		return err
	}
	if err := errors.ValidateDimension("height", p.HeightFeet); err != nil {
		return err
	}

	if p.Roof.Style == "" {
		p.Roof.Style = RoofGable
	}
	if !validRoofStyles[p.Roof.Style] {
		return errors.New(errors.ErrCodeInvalidParams, "unknown roof style %q", p.Roof.Style)
	}
	if err := errors.ValidatePitch(p.Roof.PitchDegrees); err != nil {
		return err
	}
	if p.Roof.OverhangFeet < 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "roof overhang cannot be negative, got %g", p.Roof.OverhangFeet)
	}

	if p.Scale.Ratio == 0 {
		p.Scale = ScaleHO
	}
	if err := p.Scale.Validate(); err != nil {
		return err
	}

	if p.Material.Type == "" {
		p.Material = pattern.MaterialConfig{Type: pattern.MaterialPaper, JointMethod: pattern.JointGlueTab}
	}
	if err := p.Material.Validate(); err != nil {
		return err
	}

	if p.TrimStyle == "" {
		p.TrimStyle = TrimNone
	}
	if !validTrimStyles[p.TrimStyle] {
		return errors.New(errors.ErrCodeInvalidParams, "unknown trim style %q", p.TrimStyle)
	}

	if p.RoofTrim.BargeboardStyle == "" {
		p.RoofTrim.BargeboardStyle = BargeboardPlain
	}

	for i := range p.Openings {
		o := &p.Openings[i]
		if err := errors.ValidateDimension("opening width", o.Width); err != nil {
			return err
		}
		if err := errors.ValidateDimension("opening height", o.Height); err != nil {
			return err
		}
		if o.Wall == "" {
			o.Wall = WallFront
		}
		if o.Floor < 1 {
			o.Floor = 1
		}
	}

	for i := range p.Floors {
		if err := errors.ValidateDimension("floor height", p.Floors[i].HeightFeet); err != nil {
			return err
		}
	}

	for i := range p.Accessories {
		a := &p.Accessories[i]
		if a.Mode == "" {
			a.Mode = Accessory2D
		}
		if a.Wall == "" {
			a.Wall = WallFront
		}
	}

	return nil
}
