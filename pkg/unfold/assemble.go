package unfold

import (
	"github.com/foldline/foldline/pkg/errors"
	"github.com/foldline/foldline/pkg/geom"
	"github.com/foldline/foldline/pkg/pattern"
	"github.com/foldline/foldline/pkg/unfold/sheet"
)

// Assemble computes the overall sheet extent of the pattern: the tight
// bounding box over every panel group plus the sheet margin. Fails with
// EmptyPattern when no panels were produced.
func Assemble(u *pattern.UnfoldedPattern) error {
	panels := u.AllPanels()
	if len(panels) == 0 {
		return errors.New(errors.ErrCodeEmptyPattern,
			"building %q produced no panels", u.BuildingName)
	}

	maxX, maxY := 0.0, 0.0
	for i := range panels {
		p := &panels[i]
		if err := p.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "pattern assembly")
		}
		b := geom.BoundsOf(p.Vertices)
		if x := p.Position.X + b.MaxX; x > maxX {
			maxX = x
		}
		if y := p.Position.Y + b.MaxY; y > maxY {
			maxY = y
		}
	}

	u.Width = maxX + sheet.Margin
	u.Height = maxY + sheet.Margin
	return nil
}
