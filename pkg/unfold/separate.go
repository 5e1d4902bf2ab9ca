package unfold

import (
	"github.com/foldline/foldline/pkg/building"
	"github.com/foldline/foldline/pkg/errors"
	"github.com/foldline/foldline/pkg/pattern"
	"github.com/foldline/foldline/pkg/unfold/joint"
	"github.com/foldline/foldline/pkg/unfold/sheet"
)

// separatePanels emits every wall and roof face as an independent piece
// with all edges cut. Side-wall widths pass through joint compensation,
// slot-tab joints annotate the vertical edges with tooth patterns, and
// an optional facade group duplicates the wall outlines for printing.
func (b *build) separatePanels() (*strategyResult, error) {
	method, jerr := b.params.Material.ResolveJoint()
	if jerr != nil {
		b.warnf("%s", errors.UserMessage(jerr))
	}
	t := b.params.Material.Thickness

	res := &strategyResult{}
	cur := sheet.NewCursor(sheet.Margin)

	widths := make(map[building.WallRole]float64, len(building.WallOrder))
	for _, role := range building.WallOrder {
		base := b.params.Scale.ToModel(b.params.WallWidthFeet(role))
		w := joint.Compensate(base, role, t, method)
		if w <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidGeometry,
				"%s wall width %g consumed entirely by joint compensation", role, base)
		}
		widths[role] = w

		p, err := b.wallPanel(role, w)
		if err != nil {
			return nil, err
		}
		if method == pattern.JointSlotTab {
			n := len(p.Edges)
			for _, idx := range []int{0, rightEdge(n)} {
				h := edgeLength(&p, idx)
				positions := joint.ToothPositions(h, t)
				if len(positions) == 0 {
					continue
				}
				p.Teeth = append(p.Teeth, pattern.SlotTeeth{
					EdgeIndex: idx,
					Length:    joint.ToothLength(h, t),
					Depth:     t,
					Positions: positions,
				})
			}
		}
		p.Position, cur = cur.Place(p.Width(), p.Height())
		res.structural = append(res.structural, p)
	}

	cur = cur.Wrap()
	roofStart := len(res.structural)
	cur, err := b.roofPanels(res, cur)
	if err != nil {
		return nil, err
	}
	// Rigid stock: no folds, no tabs. Every roof edge becomes a cut.
	flattenToCut(res.structural[roofStart:])
	res.tabs = nil

	if b.params.Material.GenerateFacades {
		cur = cur.Wrap()
		for _, role := range building.WallOrder {
			f, err := b.facadePanel(role, widths[role])
			if err != nil {
				return nil, err
			}
			f.Position, cur = cur.Place(f.Width(), f.Height())
			res.facades = append(res.facades, f)
		}
	}

	res.steps = b.separateSteps(method)
	res.cursor = cur.Wrap()
	return res, nil
}

// flattenToCut retypes every edge of the given panels to cut and drops
// their fold connectivity.
func flattenToCut(panels []pattern.Panel) {
	for i := range panels {
		for j := range panels[i].Edges {
			panels[i].Edges[j].Type = pattern.EdgeCut
		}
		panels[i].ConnectsTo = ""
	}
}
