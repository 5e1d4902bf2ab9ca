package unfold

import (
	"github.com/foldline/foldline/pkg/building"
	"github.com/foldline/foldline/pkg/pattern"
)

// scoreAndFold delegates to the folded strip and remaps every fold edge
// to a score, since chipboard creases along a scored line instead of
// folding freely. Facades, when requested, go below the structural
// layout.
func (b *build) scoreAndFold() (*strategyResult, error) {
	res, err := b.foldedStrip()
	if err != nil {
		return nil, err
	}

	for i := range res.structural {
		for j := range res.structural[i].Edges {
			switch res.structural[i].Edges[j].Type {
			case pattern.EdgeFoldMountain, pattern.EdgeFoldValley:
				res.structural[i].Edges[j].Type = pattern.EdgeScore
			}
		}
	}

	if b.params.Material.GenerateFacades {
		cur := res.cursor
		for _, role := range building.WallOrder {
			w := b.params.Scale.ToModel(b.params.WallWidthFeet(role))
			f, err := b.facadePanel(role, w)
			if err != nil {
				return nil, err
			}
			f.Position, cur = cur.Place(f.Width(), f.Height())
			res.facades = append(res.facades, f)
		}
		res.cursor = cur.Wrap()
	}

	res.steps = b.scoreFoldSteps()
	return res, nil
}
