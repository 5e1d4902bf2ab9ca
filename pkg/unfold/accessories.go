package unfold

import (
	"fmt"
	"math"

	"github.com/foldline/foldline/pkg/building"
	"github.com/foldline/foldline/pkg/geom"
	"github.com/foldline/foldline/pkg/pattern"
	"github.com/foldline/foldline/pkg/unfold/sheet"
)

// porchPostWidthFeet is the real-world width of a square porch post.
const porchPostWidthFeet = 0.5

// accessoryPanels emits the flat pieces for every 3D-mode accessory.
// Each accessory becomes a small group of cut panels assembled by hand;
// 2D-mode accessories were already attached to their walls as stickers.
func (b *build) accessoryPanels(cur sheet.Cursor) ([]pattern.Panel, sheet.Cursor) {
	var out []pattern.Panel
	first := true
	for i, a := range b.params.Accessories {
		if a.Mode != building.Accessory3D {
			continue
		}
		if first {
			cur = cur.Wrap()
			first = false
		}
		w := b.params.Scale.ToModel(a.WidthFeet)
		h := b.params.Scale.ToModel(a.HeightFeet)
		if w <= 0 || h <= 0 {
			b.warnf("skipping accessory %d (%s): non-positive size %g x %g", i, a.Type, w, h)
			continue
		}

		prefix := fmt.Sprintf("accessory-%d-%s", i, a.Type)
		var pieces []accessoryPiece
		switch a.Type {
		case "chimney":
			pieces = chimneyPieces(w, h)
		case "dormer":
			pieces = dormerPieces(w, h, b.params.Roof.PitchDegrees)
		case "porch":
			pieces = porchPieces(w, h, b.params.Scale.ToModel(porchPostWidthFeet))
		default:
			pieces = []accessoryPiece{{name: "Face", verts: pattern.Rect(w, h)}}
		}

		for j, piece := range pieces {
			p := pattern.Panel{
				ID:       fmt.Sprintf("%s-%d", prefix, j),
				Name:     fmt.Sprintf("%s %s", titled(a.Type), piece.name),
				Vertices: piece.verts,
				Edges:    pattern.PerimeterEdges(len(piece.verts), pattern.EdgeCut),
				Group:    pattern.GroupAccessory,
			}
			bb := geom.BoundsOf(piece.verts)
			p.Position, cur = cur.Place(bb.Width(), bb.Height())
			out = append(out, p)
		}
	}
	if len(out) > 0 {
		cur = cur.Wrap()
	}
	return out, cur
}

type accessoryPiece struct {
	name  string
	verts []geom.Point
}

// chimneyPieces is a square-footprint stack: four sides plus a cap.
func chimneyPieces(w, h float64) []accessoryPiece {
	return []accessoryPiece{
		{name: "Side", verts: pattern.Rect(w, h)},
		{name: "Side", verts: pattern.Rect(w, h)},
		{name: "Side", verts: pattern.Rect(w, h)},
		{name: "Side", verts: pattern.Rect(w, h)},
		{name: "Cap", verts: pattern.Rect(w, w)},
	}
}

// dormerPieces: a front face, two triangular cheeks sized from the main
// roof pitch, and two roof slopes over the dormer ridge.
func dormerPieces(w, h, pitchDegrees float64) []accessoryPiece {
	pitch := pitchDegrees * math.Pi / 180
	run := w / 2
	rise := run * math.Tan(pitch)
	slope := math.Hypot(run, rise)
	cheek := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: rise}, {X: run, Y: 0}}
	if rise <= 0 {
		// Flat-pitched dormer degenerates to a box face and roof.
		return []accessoryPiece{
			{name: "Face", verts: pattern.Rect(w, h)},
			{name: "Roof", verts: pattern.Rect(w, run)},
		}
	}
	return []accessoryPiece{
		{name: "Face", verts: pattern.Rect(w, h)},
		{name: "Cheek", verts: cheek},
		{name: "Cheek", verts: cheek},
		{name: "Roof Slope", verts: pattern.Rect(w, slope)},
		{name: "Roof Slope", verts: pattern.Rect(w, slope)},
	}
}

// porchPieces: a deck, two posts, and a flat roof matching the deck.
func porchPieces(w, h, postW float64) []accessoryPiece {
	depth := w / 2
	return []accessoryPiece{
		{name: "Deck", verts: pattern.Rect(w, depth)},
		{name: "Post", verts: pattern.Rect(postW, h)},
		{name: "Post", verts: pattern.Rect(postW, h)},
		{name: "Roof", verts: pattern.Rect(w, depth)},
	}
}

func titled(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
