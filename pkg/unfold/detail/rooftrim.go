package detail

import (
	"fmt"
	"math"

	"github.com/foldline/foldline/pkg/building"
	"github.com/foldline/foldline/pkg/geom"
	"github.com/foldline/foldline/pkg/pattern"
	"github.com/foldline/foldline/pkg/unfold/profile"
	"github.com/foldline/foldline/pkg/unfold/sheet"
)

// Roof trim board sizes in real inches. The ridge cap width is the
// flattened width of the bent-over cap strip.
const (
	fasciaInches       = 6
	bargeboardInches   = 8
	ridgeCapInches     = 12
	scallopWidthInches = 18
)

// RoofTrim emits fascia boards along the eaves, bargeboards along the
// gable-end rafters, and a ridge cap strip. Flat and shed roofs have no
// ridge, so their ridge cap is skipped; bargeboards exist only for the
// gable family.
func RoofTrim(p *building.Params, cur sheet.Cursor) ([]pattern.Panel, sheet.Cursor) {
	if !p.RoofTrim.Any() {
		return nil, cur
	}
	cur = cur.Wrap()

	s := p.Scale
	w := s.ToModel(p.WidthFeet)
	d := s.ToModel(p.DepthFeet)
	ov := s.ToModel(p.Roof.OverhangFeet)
	var out []pattern.Panel

	if p.RoofTrim.Fascia {
		fh := s.InchesToModel(fasciaInches)
		for i, l := range fasciaLengths(p.Roof.Style, w, d, ov) {
			out, cur = placeRect(out, cur, fmt.Sprintf("fascia-%d", i), "Fascia", l, fh)
		}
	}

	if p.RoofTrim.Bargeboard && p.Roof.Style.GableFamily() {
		bh := s.InchesToModel(bargeboardInches)
		sw := s.InchesToModel(scallopWidthInches)
		segs := rafterLengths(p, d)
		// One board per rafter segment on each of the two gable ends.
		for end := 0; end < 2; end++ {
			for i, l := range segs {
				verts := bargeboardOutline(l, bh, sw, p.RoofTrim.BargeboardStyle)
				out, cur = place(out, cur,
					fmt.Sprintf("bargeboard-%d-%d", end, i), "Bargeboard", verts)
			}
		}
	}

	if p.RoofTrim.RidgeCap {
		if l := ridgeLength(p.Roof.Style, w, d, ov); l > 0 {
			out, cur = placeRect(out, cur, "ridge-cap", "Ridge Cap",
				l, s.InchesToModel(ridgeCapInches))
		}
	}

	return out, cur.Wrap()
}

func fasciaLengths(style building.RoofStyle, w, d, ov float64) []float64 {
	switch {
	case style.GableFamily(), style == building.RoofShed:
		// Eaves on the front and back only; gable ends get bargeboard.
		return []float64{w + 2*ov, w + 2*ov}
	default:
		return []float64{w + 2*ov, d + 2*ov, w + 2*ov, d + 2*ov}
	}
}

func ridgeLength(style building.RoofStyle, w, d, ov float64) float64 {
	switch style {
	case building.RoofGable, building.RoofSaltbox, building.RoofGambrel:
		return w + 2*ov
	case building.RoofHip:
		return math.Max(w-d, 0)
	default:
		return 0
	}
}

// rafterLengths returns the slope segment lengths of the side-wall
// silhouette, front eave to back eave.
func rafterLengths(p *building.Params, d float64) []float64 {
	prof, err := profile.Generate(p.Roof.Style, building.WallLeft,
		d, p.Scale.ToModel(p.HeightFeet), p.Roof.PitchDegrees, d)
	if err != nil {
		return nil
	}
	n := len(prof.Vertices)
	out := make([]float64, 0, n-3)
	for i := 1; i < n-2; i++ {
		out = append(out, prof.Vertices[i+1].Sub(prof.Vertices[i]).Length())
	}
	return out
}

// bargeboardOutline builds the board polygon. Plain boards are
// rectangles; scalloped and gingerbread boards repeat a decorative
// vertex sequence along the bottom edge.
func bargeboardOutline(l, h, scallopW float64, style building.BargeboardStyle) []geom.Point {
	if style == building.BargeboardPlain || scallopW <= 0 || l <= scallopW {
		return pattern.Rect(l, h)
	}

	n := int(math.Round(l / scallopW))
	if n < 1 {
		n = 1
	}
	sw := l / float64(n)

	verts := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: h}, {X: l, Y: h}, {X: l, Y: 0}}
	// Bottom runs right to left; carve one scallop per segment.
	for i := 0; i < n; i++ {
		x1 := l - float64(i)*sw
		x0 := x1 - sw
		switch style {
		case building.BargeboardGingerbread:
			verts = append(verts,
				geom.Point{X: x1 - sw/3, Y: h / 2},
				geom.Point{X: x1 - 2*sw/3, Y: h / 2})
		default: // scalloped
			verts = append(verts, geom.Point{X: (x1 + x0) / 2, Y: h / 3})
		}
		if i < n-1 {
			verts = append(verts, geom.Point{X: x0, Y: 0})
		}
	}
	return verts
}
