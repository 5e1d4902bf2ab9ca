package detail

import (
	"fmt"

	"github.com/foldline/foldline/pkg/building"
	"github.com/foldline/foldline/pkg/pattern"
	"github.com/foldline/foldline/pkg/unfold/sheet"
)

// Ornament board sizes in real inches.
const (
	cornerBoardInches = 4
	baseboardInches   = 6
	beltCourseInches  = 8
	quoinHeightInches = 12
	quoinLargeInches  = 16
	quoinSmallInches  = 10
)

// WallOrnament emits the enabled wall ornament sub-generators: corner
// boards (always 8), baseboards (4), belt courses (4 per floor
// transition), wainscoting (4, a third of the wall height), and quoin
// stacks climbing each corner.
func WallOrnament(p *building.Params, cur sheet.Cursor) ([]pattern.Panel, sheet.Cursor) {
	if !p.WallDetails.Any() {
		return nil, cur
	}
	cur = cur.Wrap()

	s := p.Scale
	h := s.ToModel(p.HeightFeet)
	var out []pattern.Panel

	if p.WallDetails.CornerBoards {
		// Two boards per corner, one for each meeting wall face.
		w := s.InchesToModel(cornerBoardInches)
		for i := 0; i < 8; i++ {
			out, cur = placeRect(out, cur, fmt.Sprintf("corner-board-%d", i), "Corner Board", w, h)
		}
	}

	if p.WallDetails.Baseboards {
		bh := s.InchesToModel(baseboardInches)
		for i, role := range building.WallOrder {
			w := s.ToModel(p.WallWidthFeet(role))
			out, cur = placeRect(out, cur, fmt.Sprintf("baseboard-%d", i), "Baseboard", w, bh)
		}
	}

	if p.WallDetails.BeltCourses && len(p.Floors) > 1 {
		bh := s.InchesToModel(beltCourseInches)
		for t := 0; t < len(p.Floors)-1; t++ {
			for i, role := range building.WallOrder {
				w := s.ToModel(p.WallWidthFeet(role))
				out, cur = placeRect(out, cur,
					fmt.Sprintf("belt-course-%d-%d", t, i), "Belt Course", w, bh)
			}
		}
	}

	if p.WallDetails.Wainscoting {
		for i, role := range building.WallOrder {
			w := s.ToModel(p.WallWidthFeet(role))
			out, cur = placeRect(out, cur, fmt.Sprintf("wainscoting-%d", i), "Wainscoting", w, h/3)
		}
	}

	if p.WallDetails.Quoins {
		qh := s.InchesToModel(quoinHeightInches)
		large := s.InchesToModel(quoinLargeInches)
		small := s.InchesToModel(quoinSmallInches)
		for corner := 0; corner < 4; corner++ {
			for i, y := 0, 0.0; y < h; i, y = i+1, y+qh {
				w := large
				name := "Quoin Large"
				if i%2 == 1 {
					w = small
					name = "Quoin Small"
				}
				out, cur = placeRect(out, cur,
					fmt.Sprintf("quoin-%d-%d", corner, i), name, w, qh)
			}
		}
	}

	return out, cur.Wrap()
}
