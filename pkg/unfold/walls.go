package unfold

import (
	"fmt"

	"github.com/foldline/foldline/pkg/building"
	"github.com/foldline/foldline/pkg/errors"
	"github.com/foldline/foldline/pkg/pattern"
	"github.com/foldline/foldline/pkg/unfold/profile"
	"github.com/foldline/foldline/pkg/unfold/tabs"
)

var roleTitles = map[building.WallRole]string{
	building.WallFront: "Front",
	building.WallBack:  "Back",
	building.WallLeft:  "Left",
	building.WallRight: "Right",
}

var wallNames = map[building.WallRole]string{
	building.WallFront: "Front Wall",
	building.WallBack:  "Back Wall",
	building.WallLeft:  "Left Wall",
	building.WallRight: "Right Wall",
}

// wallPanel builds the structural panel for one wall at the given width
// in model-scale inches. Every edge starts typed cut; the strategies
// retype the vertical and bottom edges afterwards.
//
// Edge indices follow the profile winding: 0 is the left vertical edge,
// len-2 the right vertical edge, len-1 the bottom, and everything in
// between the roof contour.
func (b *build) wallPanel(role building.WallRole, width float64) (pattern.Panel, error) {
	prof, err := profile.Generate(b.params.Roof.Style, role, width, b.h,
		b.params.Roof.PitchDegrees, b.d)
	if err != nil {
		return pattern.Panel{}, err
	}
	return pattern.Panel{
		ID:       "wall-" + string(role),
		Name:     wallNames[role],
		Vertices: prof.Vertices,
		Edges:    pattern.PerimeterEdges(len(prof.Vertices), pattern.EdgeCut),
		Group:    pattern.GroupStructural,
		Openings: b.wallOpenings(role),
		Stickers: b.wallStickers(role),
	}, nil
}

// rightEdge and bottomEdge name the fixed edge positions of a wall
// panel polygon; the left vertical edge is always index 0.
func rightEdge(n int) int  { return n - 2 }
func bottomEdge(n int) int { return n - 1 }

func edgeLength(p *pattern.Panel, i int) float64 {
	e := p.Edges[i]
	return p.Vertices[e.To].Sub(p.Vertices[e.From]).Length()
}

// synthesizeTabs builds a glue tab for every edge of p currently typed
// glue-tab and appends them to res. A degenerate edge skips its tab with
// a warning; the panel keeps its edge type.
func (b *build) synthesizeTabs(p *pattern.Panel, res *strategyResult) {
	for i, e := range p.Edges {
		if e.Type != pattern.EdgeGlueTab {
			continue
		}
		tab, err := tabs.Synthesize(p, i, b.cfg.tabWidth)
		if err != nil {
			if errors.Is(err, errors.ErrCodeDegenerateEdge) {
				b.warnf("skipping glue tab on degenerate edge: %v", err)
				continue
			}
			b.warnf("glue tab synthesis failed: %v", err)
			continue
		}
		res.tabs = append(res.tabs, tab)
	}
}

// facadePanel builds the printed facade duplicate of one wall outline.
// Same polygon and openings as the structural piece, all edges cut.
func (b *build) facadePanel(role building.WallRole, width float64) (pattern.Panel, error) {
	p, err := b.wallPanel(role, width)
	if err != nil {
		return pattern.Panel{}, err
	}
	p.ID = "facade-" + p.ID
	p.Name = fmt.Sprintf("%s Facade", wallNames[role])
	p.Group = pattern.GroupFacade
	return p, nil
}
