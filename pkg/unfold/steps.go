package unfold

import (
	"fmt"

	"github.com/foldline/foldline/pkg/building"
	"github.com/foldline/foldline/pkg/pattern"
)

// Assembly step text per strategy. Ordered for a human following along
// with a hobby knife; the pattern carries them verbatim.

func (b *build) foldedStripSteps() []string {
	steps := []string{
		"Cut out the wall strip and roof pieces along all solid lines.",
	}
	if len(b.params.Openings) > 0 {
		steps = append(steps, "Cut out the window and door openings in the wall strip.")
	}
	steps = append(steps,
		"Fold the wall strip at each valley fold so the four walls form a closed box.",
		"Glue the free end tab behind the opposite end of the strip.",
		"Fold the bottom tabs inward and glue the box to its base.",
		b.roofStep(),
	)
	return b.finishSteps(steps)
}

func (b *build) separateSteps(method pattern.JointMethod) []string {
	steps := []string{
		"Cut out every wall and roof piece along all solid lines.",
	}
	if len(b.params.Openings) > 0 {
		steps = append(steps, "Cut out the window and door openings in each wall piece.")
	}
	switch method {
	case pattern.JointSlotTab:
		steps = append(steps,
			"Cut the slot and tab teeth marked on the vertical wall edges.",
			"Interlock the teeth at each corner, then glue the joints.")
	case pattern.JointMiter:
		steps = append(steps,
			fmt.Sprintf("Sand or cut a 45-degree miter along each vertical wall edge of the %s.", b.params.Material.Type),
			"Glue the mitered corners together.")
	default:
		steps = append(steps,
			"Glue the side walls between the front and back walls; the side pieces are narrowed to allow for material thickness.")
	}
	steps = append(steps, b.roofStep())
	if b.params.Material.GenerateFacades {
		steps = append(steps, "Glue each printed facade sheet onto its matching structural piece.")
	}
	return b.finishSteps(steps)
}

func (b *build) scoreFoldSteps() []string {
	steps := []string{
		"Cut out the wall strip and roof pieces along all solid lines.",
		"Score every marked edge part-way through with the back of the blade.",
	}
	if len(b.params.Openings) > 0 {
		steps = append(steps, "Cut out the window and door openings in the wall strip.")
	}
	steps = append(steps,
		"Crease the strip along each scored line so the four walls form a closed box.",
		"Glue the free end tab behind the opposite end of the strip.",
		b.roofStep(),
	)
	if b.params.Material.GenerateFacades {
		steps = append(steps, "Glue each printed facade sheet onto its matching wall.")
	}
	return b.finishSteps(steps)
}

func (b *build) roofStep() string {
	switch b.params.Roof.Style {
	case building.RoofFlat:
		return "Fold the roof panel tabs down and glue the roof onto the wall tops."
	case building.RoofShed:
		return "Glue the roof panel across the wall tops, low eave at the front."
	case building.RoofHip:
		return "Glue the four hip roof faces together along the hip edges, then set the assembly onto the wall tops."
	case building.RoofMansard:
		return "Glue each mansard slope to its wall top, then glue the roof deck across the slope tops."
	default:
		return "Fold the roof slopes along the ridge and glue the eave tabs to the wall tops."
	}
}

func (b *build) finishSteps(steps []string) []string {
	for _, a := range b.params.Accessories {
		if a.Mode == building.Accessory3D {
			steps = append(steps, "Assemble the accessory pieces and glue each to its wall.")
			break
		}
	}
	if b.params.TrimStyle != building.TrimNone || b.params.WallDetails.Any() || b.params.RoofTrim.Any() {
		steps = append(steps, "Glue the trim pieces onto the assembled shell.")
	}
	return steps
}
