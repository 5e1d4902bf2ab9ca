package unfold

import (
	"fmt"

	"github.com/foldline/foldline/pkg/building"
	"github.com/foldline/foldline/pkg/pattern"
)

// wallOpenings converts the building's real-world opening specs for one
// wall into panel-local model-scale cutouts. The Y origin of each
// opening is the floor line of its assigned floor.
func (b *build) wallOpenings(role building.WallRole) []pattern.Opening {
	floors := b.params.FloorHeightsFeet()
	s := b.params.Scale

	var out []pattern.Opening
	for i, o := range b.params.Openings {
		if o.Wall != role {
			continue
		}
		base := 0.0
		for f := 0; f < o.Floor-1 && f < len(floors); f++ {
			base += floors[f]
		}
		id := o.ID
		if id == "" {
			id = fmt.Sprintf("opening-%d", i)
		}
		out = append(out, pattern.Opening{
			ID:     id,
			Type:   o.Type,
			X:      s.ToModel(o.X),
			Y:      s.ToModel(base + o.Y),
			Width:  s.ToModel(o.Width),
			Height: s.ToModel(o.Height),
			Floor:  o.Floor,
			Label:  o.Label,
		})
	}
	return out
}

// wallStickers turns 2D-mode accessories into decorative overlays on
// their host wall. Only 3D-mode accessories become separate panels.
func (b *build) wallStickers(role building.WallRole) []pattern.Sticker {
	s := b.params.Scale

	var out []pattern.Sticker
	for _, a := range b.params.Accessories {
		if a.Mode != building.Accessory2D || a.Wall != role {
			continue
		}
		out = append(out, pattern.Sticker{
			Label:  a.Type,
			X:      s.ToModel(a.OffsetFeet),
			Y:      0,
			Width:  s.ToModel(a.WidthFeet),
			Height: s.ToModel(a.HeightFeet),
		})
	}
	return out
}
