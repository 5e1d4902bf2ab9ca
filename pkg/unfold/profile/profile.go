// Package profile derives per-wall polygon outlines from the roof style.
//
// The generator is a pure function of its inputs, working entirely in
// model-scale inches. Front/back walls stay rectangular for every style
// except shed; left/right walls absorb the roof silhouette.
//
// The saltbox and gambrel proportions are deliberately not "correct"
// roof trigonometry: the ridge sits at 35% of the depth, the gambrel
// break is fixed at 60 degrees across 35% of the half-depth, and the
// saltbox back slope runs at half the nominal pitch. These constants are
// load-bearing; downstream kits expect these exact shapes.
package profile

import (
	"math"

	"github.com/foldline/foldline/pkg/building"
	"github.com/foldline/foldline/pkg/errors"
	"github.com/foldline/foldline/pkg/geom"
	"github.com/foldline/foldline/pkg/pattern"
)

const (
	// saltboxRidgeFraction positions the saltbox ridge from the front.
	saltboxRidgeFraction = 0.35
	// gambrelBreakDegrees is the fixed pitch of the lower gambrel slope.
	gambrelBreakDegrees = 60.0
	// gambrelBreakFraction is the share of the half-depth covered by the
	// lower slope.
	gambrelBreakFraction = 0.35
	// mansardPitchDegrees is the fixed pitch of the mansard lower slope.
	mansardPitchDegrees = 70.0
	// mansardInsetFraction is the share of the depth each mansard slope
	// runs in from the wall.
	mansardInsetFraction = 0.15
)

// Generate returns the outline of one wall. wallWidth, wallHeight, and
// buildingDepth are model-scale inches; pitch is in degrees.
func Generate(style building.RoofStyle, role building.WallRole, wallWidth, wallHeight, pitchDegrees, buildingDepth float64) (pattern.WallProfile, error) {
	if wallWidth <= 0 || wallHeight <= 0 {
		return pattern.WallProfile{}, errors.New(errors.ErrCodeInvalidGeometry,
			"wall dimensions must be positive, got %g x %g", wallWidth, wallHeight)
	}
	if err := errors.ValidatePitch(pitchDegrees); err != nil {
		return pattern.WallProfile{}, err
	}
	if buildingDepth <= 0 {
		return pattern.WallProfile{}, errors.New(errors.ErrCodeInvalidGeometry,
			"building depth must be positive, got %g", buildingDepth)
	}

	pitch := pitchDegrees * math.Pi / 180

	if !role.IsSide() {
		if style == building.RoofShed {
			return shedProfile(wallWidth, wallHeight, buildingDepth, pitch), nil
		}
		return rectProfile(wallWidth, wallHeight), nil
	}

	switch style {
	case building.RoofFlat, building.RoofHip:
		return rectProfile(wallWidth, wallHeight), nil
	case building.RoofGable:
		return gableProfile(wallWidth, wallHeight, buildingDepth, pitch), nil
	case building.RoofShed:
		return shedProfile(wallWidth, wallHeight, buildingDepth, pitch), nil
	case building.RoofSaltbox:
		return saltboxProfile(wallWidth, wallHeight, pitch), nil
	case building.RoofGambrel:
		return gambrelProfile(wallWidth, wallHeight, pitch), nil
	case building.RoofMansard:
		return mansardProfile(wallWidth, wallHeight, buildingDepth), nil
	default:
		return pattern.WallProfile{}, errors.New(errors.ErrCodeInvalidParams, "unknown roof style %q", style)
	}
}

func rectProfile(w, h float64) pattern.WallProfile {
	return pattern.WallProfile{Vertices: pattern.Rect(w, h)}
}

// gableProfile is a pentagon: rectangle topped by a triangular peak at
// the wall midpoint. The rise uses the building depth, which for side
// walls equals the wall's own span.
func gableProfile(w, h, depth, pitch float64) pattern.WallProfile {
	rise := depth / 2 * math.Tan(pitch)
	return pattern.WallProfile{
		Vertices: []geom.Point{
			{X: 0, Y: 0},
			{X: 0, Y: h},
			{X: w / 2, Y: h + rise},
			{X: w, Y: h},
			{X: w, Y: 0},
		},
		FoldLineY:   h,
		HasFoldLine: true,
	}
}

// shedProfile is a trapezoid: eave at x=0, ridge side at x=w.
func shedProfile(w, h, depth, pitch float64) pattern.WallProfile {
	rise := depth * math.Tan(pitch)
	return pattern.WallProfile{
		Vertices: []geom.Point{
			{X: 0, Y: 0},
			{X: 0, Y: h},
			{X: w, Y: h + rise},
			{X: w, Y: 0},
		},
		FoldLineY:   h,
		HasFoldLine: true,
	}
}

// saltboxProfile is an asymmetric pentagon. The front slope (x=0 side)
// runs at the nominal pitch up to the ridge at 35% of the depth; the
// back slope runs at half the nominal pitch. The peak is the front
// slope's height clamped against the back slope's contribution.
func saltboxProfile(w, h, pitch float64) pattern.WallProfile {
	ridgeX := w * saltboxRidgeFraction
	frontRise := ridgeX * math.Tan(pitch)
	backRise := (w - ridgeX) * math.Tan(pitch/2)
	rise := math.Min(frontRise, backRise)
	return pattern.WallProfile{
		Vertices: []geom.Point{
			{X: 0, Y: 0},
			{X: 0, Y: h},
			{X: ridgeX, Y: h + rise},
			{X: w, Y: h},
			{X: w, Y: 0},
		},
		FoldLineY:   h,
		HasFoldLine: true,
	}
}

// gambrelProfile is a heptagon: each side climbs a steep 60-degree lower
// segment across 35% of the half-depth, then a shallow segment at the
// nominal pitch up to the central ridge.
func gambrelProfile(w, h, pitch float64) pattern.WallProfile {
	half := w / 2
	breakRun := half * gambrelBreakFraction
	breakRise := breakRun * math.Tan(gambrelBreakDegrees*math.Pi/180)
	upperRise := (half - breakRun) * math.Tan(pitch)
	return pattern.WallProfile{
		Vertices: []geom.Point{
			{X: 0, Y: 0},
			{X: 0, Y: h},
			{X: breakRun, Y: h + breakRise},
			{X: half, Y: h + breakRise + upperRise},
			{X: w - breakRun, Y: h + breakRise},
			{X: w, Y: h},
			{X: w, Y: 0},
		},
		FoldLineY:   h,
		HasFoldLine: true,
	}
}

// mansardProfile is a hexagon: a steep 70-degree slope rises from each
// wall top across 15% of the building depth. The inset fraction is
// always taken of the depth, whatever the wall role.
func mansardProfile(w, h, depth float64) pattern.WallProfile {
	inset := depth * mansardInsetFraction
	rise := inset * math.Tan(mansardPitchDegrees*math.Pi/180)
	return pattern.WallProfile{
		Vertices: []geom.Point{
			{X: 0, Y: 0},
			{X: 0, Y: h},
			{X: inset, Y: h + rise},
			{X: w - inset, Y: h + rise},
			{X: w, Y: h},
			{X: w, Y: 0},
		},
		FoldLineY:   h,
		HasFoldLine: true,
	}
}
