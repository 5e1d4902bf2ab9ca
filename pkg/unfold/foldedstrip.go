package unfold

import (
	"github.com/foldline/foldline/pkg/building"
	"github.com/foldline/foldline/pkg/geom"
	"github.com/foldline/foldline/pkg/pattern"
	"github.com/foldline/foldline/pkg/unfold/sheet"
)

// foldedStrip lays the four walls edge-to-edge as one continuous strip
// in front, right, back, left order. Internal vertical joins are valley
// folds, the two free strip ends and every bottom edge carry glue tabs,
// and the roof contour stays cut. Roof faces go on the rows below.
func (b *build) foldedStrip() (*strategyResult, error) {
	res := &strategyResult{}

	x := sheet.Margin
	y := sheet.Margin
	stripH := 0.0
	prev := ""
	for i, role := range building.WallOrder {
		w := b.params.Scale.ToModel(b.params.WallWidthFeet(role))
		p, err := b.wallPanel(role, w)
		if err != nil {
			return nil, err
		}
		n := len(p.Edges)
		p.Edges[bottomEdge(n)].Type = pattern.EdgeGlueTab
		if i == 0 {
			p.Edges[0].Type = pattern.EdgeGlueTab
		} else {
			p.Edges[0].Type = pattern.EdgeFoldValley
			p.ConnectsTo = prev
		}
		if i == len(building.WallOrder)-1 {
			p.Edges[rightEdge(n)].Type = pattern.EdgeGlueTab
		} else {
			p.Edges[rightEdge(n)].Type = pattern.EdgeFoldValley
		}
		p.Position = geom.Point{X: x, Y: y}
		b.synthesizeTabs(&p, res)
		res.structural = append(res.structural, p)

		prev = p.ID
		x += w
		if h := p.Height(); h > stripH {
			stripH = h
		}
	}

	cur := sheet.NewCursor(y + stripH + sheet.Spacing)
	cur, err := b.roofPanels(res, cur)
	if err != nil {
		return nil, err
	}

	res.steps = b.foldedStripSteps()
	res.cursor = cur.Wrap()
	return res, nil
}
