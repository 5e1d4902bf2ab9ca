package unfold

import (
	"fmt"
	"math"

	"github.com/foldline/foldline/pkg/building"
	"github.com/foldline/foldline/pkg/geom"
	"github.com/foldline/foldline/pkg/pattern"
	"github.com/foldline/foldline/pkg/unfold/profile"
	"github.com/foldline/foldline/pkg/unfold/sheet"
)

// mansard slope constants mirror the wall profile generator so the roof
// faces land exactly on the silhouette the side walls carve out.
const (
	mansardPitchDegrees  = 70.0
	mansardInsetFraction = 0.15
)

// roofPanels derives the flat roof faces for the building's style and
// appends them to res, threading the placement cursor. Faces carry
// glue-tab eaves and fold-valley ridge edges; the separate-panel
// strategy flattens them to cut afterwards.
func (b *build) roofPanels(res *strategyResult, cur sheet.Cursor) (sheet.Cursor, error) {
	switch b.params.Roof.Style {
	case building.RoofFlat:
		return b.flatRoof(res, cur), nil
	case building.RoofShed:
		return b.shedRoof(res, cur), nil
	case building.RoofHip:
		return b.hipRoof(res, cur), nil
	case building.RoofMansard:
		return b.mansardRoof(res, cur), nil
	default:
		return b.chainedRoof(res, cur)
	}
}

// flatRoof is a single rectangle covering the footprint plus overhang,
// glue-tabbed on all four eaves.
func (b *build) flatRoof(res *strategyResult, cur sheet.Cursor) sheet.Cursor {
	w := b.w + 2*b.overhang
	d := b.d + 2*b.overhang
	p := pattern.Panel{
		ID:       "roof-flat",
		Name:     "Roof",
		Vertices: pattern.Rect(w, d),
		Edges:    pattern.PerimeterEdges(4, pattern.EdgeGlueTab),
		Group:    pattern.GroupStructural,
	}
	p.Position, cur = cur.Place(w, d)
	b.synthesizeTabs(&p, res)
	res.structural = append(res.structural, p)
	return cur
}

// shedRoof is one sloped rectangle. The bottom edge is the low eave,
// the top edge lands on the raised wall side; both are glue-tabbed.
func (b *build) shedRoof(res *strategyResult, cur sheet.Cursor) sheet.Cursor {
	pitch := b.params.Roof.PitchDegrees * math.Pi / 180
	w := b.w + 2*b.overhang
	slope := math.Hypot(b.d, b.d*math.Tan(pitch)) + 2*b.overhang
	p := pattern.Panel{
		ID:       "roof-shed",
		Name:     "Roof",
		Vertices: pattern.Rect(w, slope),
		Edges:    pattern.PerimeterEdges(4, pattern.EdgeCut),
		Group:    pattern.GroupStructural,
	}
	p.Edges[1].Type = pattern.EdgeGlueTab
	p.Edges[3].Type = pattern.EdgeGlueTab
	p.Position, cur = cur.Place(w, slope)
	b.synthesizeTabs(&p, res)
	res.structural = append(res.structural, p)
	return cur
}

// chainedRoof handles the gable family: the side-wall silhouette is
// unrolled into a vertical chain of rectangles, one per contour
// segment, sharing fold-valley edges at the ridge and breaks. The
// outermost edges are the eaves and get glue tabs.
func (b *build) chainedRoof(res *strategyResult, cur sheet.Cursor) (sheet.Cursor, error) {
	prof, err := profile.Generate(b.params.Roof.Style, building.WallLeft, b.d, b.h,
		b.params.Roof.PitchDegrees, b.d)
	if err != nil {
		return cur, err
	}

	// Contour vertices run from the front eave to the back eave.
	n := len(prof.Vertices)
	lens := make([]float64, 0, n-3)
	for i := 1; i < n-2; i++ {
		lens = append(lens, prof.Vertices[i+1].Sub(prof.Vertices[i]).Length())
	}
	lens[0] += b.overhang
	lens[len(lens)-1] += b.overhang

	w := b.w + 2*b.overhang
	total := 0.0
	for _, l := range lens {
		total += l
	}

	pos, next := cur.Place(w, total)
	y := pos.Y
	prev := ""
	for i, l := range lens {
		p := pattern.Panel{
			ID:       fmt.Sprintf("roof-face-%d", i),
			Name:     roofFaceName(i, len(lens)),
			Vertices: pattern.Rect(w, l),
			Edges:    pattern.PerimeterEdges(4, pattern.EdgeCut),
			Group:    pattern.GroupStructural,
			Position: geom.Point{X: pos.X, Y: y},
		}
		if i == 0 {
			p.Edges[3].Type = pattern.EdgeGlueTab
		} else {
			p.Edges[3].Type = pattern.EdgeFoldValley
			p.ConnectsTo = prev
		}
		if i == len(lens)-1 {
			p.Edges[1].Type = pattern.EdgeGlueTab
		} else {
			p.Edges[1].Type = pattern.EdgeFoldValley
		}
		b.synthesizeTabs(&p, res)
		res.structural = append(res.structural, p)
		prev = p.ID
		y += l
	}
	return next, nil
}

func roofFaceName(i, n int) string {
	if n == 2 {
		if i == 0 {
			return "Front Roof Slope"
		}
		return "Back Roof Slope"
	}
	switch i {
	case 0:
		return "Lower Front Roof Slope"
	case n - 1:
		return "Lower Back Roof Slope"
	case 1:
		return "Upper Front Roof Slope"
	default:
		return "Upper Back Roof Slope"
	}
}

// hipRoof emits four separate faces: front/back trapezoids meeting at
// the ridge and triangular side faces rising to the ridge ends. The
// ridge runs parallel to the building width and vanishes when the
// footprint is square or deeper than wide.
func (b *build) hipRoof(res *strategyResult, cur sheet.Cursor) sheet.Cursor {
	pitch := b.params.Roof.PitchDegrees * math.Pi / 180
	rise := b.d / 2 * math.Tan(pitch)
	slant := math.Hypot(b.d/2, rise) + b.overhang
	ridge := math.Max(b.w-b.d, 0)

	frontW := b.w + 2*b.overhang
	sideW := b.d + 2*b.overhang

	for i, name := range []string{"Front Roof Face", "Back Roof Face"} {
		var verts []geom.Point
		if ridge > 0 {
			verts = []geom.Point{
				{X: 0, Y: 0},
				{X: (frontW - ridge) / 2, Y: slant},
				{X: (frontW + ridge) / 2, Y: slant},
				{X: frontW, Y: 0},
			}
		} else {
			verts = []geom.Point{
				{X: 0, Y: 0},
				{X: frontW / 2, Y: slant},
				{X: frontW, Y: 0},
			}
		}
		p := pattern.Panel{
			ID:       fmt.Sprintf("roof-hip-%d", i),
			Name:     name,
			Vertices: verts,
			Edges:    pattern.PerimeterEdges(len(verts), pattern.EdgeCut),
			Group:    pattern.GroupStructural,
		}
		n := len(p.Edges)
		p.Edges[n-1].Type = pattern.EdgeGlueTab
		// The front face carries the tab that closes the ridge seam.
		if i == 0 && ridge > 0 {
			p.Edges[1].Type = pattern.EdgeGlueTab
		}
		p.Position, cur = cur.Place(geom.BoundsOf(verts).Width(), geom.BoundsOf(verts).Height())
		b.synthesizeTabs(&p, res)
		res.structural = append(res.structural, p)
	}

	for i, name := range []string{"Left Roof Face", "Right Roof Face"} {
		verts := []geom.Point{
			{X: 0, Y: 0},
			{X: sideW / 2, Y: slant},
			{X: sideW, Y: 0},
		}
		p := pattern.Panel{
			ID:       fmt.Sprintf("roof-hip-side-%d", i),
			Name:     name,
			Vertices: verts,
			Edges:    pattern.PerimeterEdges(3, pattern.EdgeCut),
			Group:    pattern.GroupStructural,
		}
		// Hip edges tab under the front/back faces; the bottom is the eave.
		p.Edges[0].Type = pattern.EdgeGlueTab
		p.Edges[1].Type = pattern.EdgeGlueTab
		p.Edges[2].Type = pattern.EdgeGlueTab
		p.Position, cur = cur.Place(sideW, slant)
		b.synthesizeTabs(&p, res)
		res.structural = append(res.structural, p)
	}
	return cur
}

// mansardRoof emits one steep trapezoid per wall plus a flat top deck.
// Slope top edges are glue-tabbed to carry the deck.
func (b *build) mansardRoof(res *strategyResult, cur sheet.Cursor) sheet.Cursor {
	inset := b.d * mansardInsetFraction
	rise := inset * math.Tan(mansardPitchDegrees*math.Pi/180)
	slant := math.Hypot(inset, rise)

	for i, role := range building.WallOrder {
		bottom := b.params.Scale.ToModel(b.params.WallWidthFeet(role)) + 2*b.overhang
		top := bottom - 2*b.overhang - 2*inset
		var verts []geom.Point
		if top > 0 {
			verts = []geom.Point{
				{X: 0, Y: 0},
				{X: (bottom - top) / 2, Y: slant},
				{X: (bottom + top) / 2, Y: slant},
				{X: bottom, Y: 0},
			}
		} else {
			verts = []geom.Point{
				{X: 0, Y: 0},
				{X: bottom / 2, Y: slant},
				{X: bottom, Y: 0},
			}
		}
		p := pattern.Panel{
			ID:       fmt.Sprintf("roof-mansard-%d", i),
			Name:     fmt.Sprintf("%s Roof Slope", roleTitles[role]),
			Vertices: verts,
			Edges:    pattern.PerimeterEdges(len(verts), pattern.EdgeCut),
			Group:    pattern.GroupStructural,
		}
		n := len(p.Edges)
		p.Edges[n-1].Type = pattern.EdgeGlueTab
		if top > 0 {
			p.Edges[1].Type = pattern.EdgeGlueTab
		}
		p.Position, cur = cur.Place(bottom, slant)
		b.synthesizeTabs(&p, res)
		res.structural = append(res.structural, p)
	}

	topW := b.w - 2*inset
	topD := b.d - 2*inset
	if topW > 0 && topD > 0 {
		p := pattern.Panel{
			ID:       "roof-mansard-top",
			Name:     "Roof Deck",
			Vertices: pattern.Rect(topW, topD),
			Edges:    pattern.PerimeterEdges(4, pattern.EdgeCut),
			Group:    pattern.GroupStructural,
		}
		p.Position, cur = cur.Place(topW, topD)
		res.structural = append(res.structural, p)
	}
	return cur
}
