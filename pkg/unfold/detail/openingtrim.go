package detail

import (
	"fmt"

	"github.com/foldline/foldline/pkg/building"
	"github.com/foldline/foldline/pkg/geom"
	"github.com/foldline/foldline/pkg/pattern"
	"github.com/foldline/foldline/pkg/unfold/sheet"
)

// trimProfile sizes the boards around one opening, in real inches.
type trimProfile struct {
	frame    float64 // side frame board width
	extend   float64 // header/sill extension past the frames
	header   float64 // header board height
	sill     float64 // sill board height
	brackets bool    // victorian corbel brackets under the header
}

var trimProfiles = map[building.TrimStyle]trimProfile{
	building.TrimSimple:    {frame: 3, extend: 0, header: 3, sill: 2},
	building.TrimColonial:  {frame: 4, extend: 2, header: 6, sill: 3},
	building.TrimCraftsman: {frame: 5, extend: 3, header: 8, sill: 4},
	building.TrimVictorian: {frame: 4, extend: 4, header: 6, sill: 3, brackets: true},
}

// OpeningTrim emits the frame, header, and sill rectangles for every
// opening. Left, right, header, and sill per opening; the victorian
// style adds two brackets, for six panels total.
func OpeningTrim(p *building.Params, cur sheet.Cursor) ([]pattern.Panel, sheet.Cursor) {
	prof, ok := trimProfiles[p.TrimStyle]
	if !ok || len(p.Openings) == 0 {
		return nil, cur
	}
	cur = cur.Wrap()

	s := p.Scale
	frame := s.InchesToModel(prof.frame)
	extend := s.InchesToModel(prof.extend)
	header := s.InchesToModel(prof.header)
	sill := s.InchesToModel(prof.sill)

	var out []pattern.Panel
	for i, o := range p.Openings {
		ow := s.ToModel(o.Width)
		oh := s.ToModel(o.Height)
		span := ow + 2*frame + 2*extend
		id := o.ID
		if id == "" {
			id = fmt.Sprintf("opening-%d", i)
		}

		out, cur = placeRect(out, cur, "trim-"+id+"-left", "Trim Left Frame", frame, oh)
		out, cur = placeRect(out, cur, "trim-"+id+"-right", "Trim Right Frame", frame, oh)
		out, cur = placeRect(out, cur, "trim-"+id+"-header", "Trim Header", span, header)
		out, cur = placeRect(out, cur, "trim-"+id+"-sill", "Trim Sill", span, sill)

		if prof.brackets {
			bracket := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: frame}, {X: frame, Y: 0}}
			out, cur = place(out, cur, "trim-"+id+"-bracket-0", "Trim Bracket", bracket)
			out, cur = place(out, cur, "trim-"+id+"-bracket-1", "Trim Bracket", bracket)
		}
	}
	return out, cur.Wrap()
}
