// Package joint adjusts panel widths for material thickness at corners.
//
// Folded paper absorbs its own thickness; rigid stock does not. Butt and
// slot-tab joints shorten side walls by twice the thickness so they fit
// between the full-width front and back pieces. Height is never altered
// here; only the wall profile contour changes panel heights.
package joint

import (
	"math"

	"github.com/foldline/foldline/pkg/building"
	"github.com/foldline/foldline/pkg/pattern"
)

// Compensate returns the adjusted panel width for the given wall role,
// material thickness, and joint method.
//
// Miter and glue-tab joints leave every width unchanged. Butt and
// slot-tab joints shorten left/right walls by 2 x thickness; front and
// back walls are unchanged.
func Compensate(baseWidth float64, role building.WallRole, thickness float64, method pattern.JointMethod) float64 {
	switch method {
	case pattern.JointButt, pattern.JointSlotTab:
		if role.IsSide() {
			return baseWidth - 2*thickness
		}
	}
	return baseWidth
}

// toothLengthFactor sizes each tooth relative to the material thickness.
const toothLengthFactor = 4.0

// ToothPositions computes the repeating slot/tab tooth pattern along a
// vertical edge of the given panel height. Teeth are
// toothLengthFactor x thickness long (clamped to a third of the panel
// height), separated by gaps of the same length, with the pattern
// centered on the edge. Positions are distances from the bottom of the
// edge to each tooth start.
//
// The result annotates the panel for the serializers only; the polygon
// itself is not altered. Returns nil when no tooth fits.
func ToothPositions(panelHeight, thickness float64) []float64 {
	if panelHeight <= 0 || thickness <= 0 {
		return nil
	}

	tooth := toothLengthFactor * thickness
	if tooth > panelHeight/3 {
		tooth = panelHeight / 3
	}
	if tooth <= 0 {
		return nil
	}

	// n teeth and n-1 gaps of equal length.
	n := int(math.Floor((panelHeight + tooth) / (2 * tooth)))
	if n < 1 {
		return nil
	}
	span := float64(2*n-1) * tooth
	start := (panelHeight - span) / 2

	positions := make([]float64, n)
	for i := range positions {
		positions[i] = start + float64(i)*2*tooth
	}
	return positions
}

// ToothLength returns the tooth length used by ToothPositions for the
// given panel height and thickness.
func ToothLength(panelHeight, thickness float64) float64 {
	tooth := toothLengthFactor * thickness
	if tooth > panelHeight/3 {
		tooth = panelHeight / 3
	}
	return tooth
}
