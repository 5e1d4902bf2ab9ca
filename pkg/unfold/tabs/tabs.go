// Package tabs synthesizes glue-tab trapezoids off panel edges.
package tabs

import (
	"fmt"

	"github.com/foldline/foldline/pkg/errors"
	"github.com/foldline/foldline/pkg/geom"
	"github.com/foldline/foldline/pkg/pattern"
)

// DefaultWidth is the standard glue tab width in model-scale inches.
const DefaultWidth = 0.25

// depthFactor shrinks the tab depth relative to its nominal width so
// tabs on adjacent edges clear each other at corners.
const depthFactor = 0.7

// minEdgeLength is the threshold below which an edge is considered
// degenerate for tab synthesis.
const minEdgeLength = 1e-9

// Synthesize builds a glue tab for the panel edge at edgeIndex. The tab
// is a trapezoid in panel-local coordinates: its long side coincides
// with the edge, the short side is offset outward along the edge normal
// by depthFactor x tabWidth, and both ends taper inward so neighboring
// tabs cannot overlap at corners.
//
// The first two vertices of the result always equal the parent edge's
// endpoints; callers and serializers rely on that continuity.
//
// Returns a DegenerateEdge error when the edge length is ~0; such edges
// cannot occur for valid positive building dimensions, so callers skip
// the tab and continue.
func Synthesize(p *pattern.Panel, edgeIndex int, tabWidth float64) (pattern.GlueTab, error) {
	if edgeIndex < 0 || edgeIndex >= len(p.Edges) {
		return pattern.GlueTab{}, errors.New(errors.ErrCodeInternal,
			"edge index %d out of range for panel %s", edgeIndex, p.ID)
	}
	if tabWidth <= 0 {
		tabWidth = DefaultWidth
	}

	e := p.Edges[edgeIndex]
	from := p.Vertices[e.From]
	to := p.Vertices[e.To]

	dir := to.Sub(from)
	length := dir.Length()
	if length < minEdgeLength {
		return pattern.GlueTab{}, errors.New(errors.ErrCodeDegenerateEdge,
			"panel %s edge %d has zero length", p.ID, edgeIndex)
	}

	depth := tabWidth * depthFactor
	normal := dir.Normal()
	unit := dir.Scale(1 / length)

	taper := depth
	if max := length / 4; taper > max {
		taper = max
	}

	offset := normal.Scale(depth)
	return pattern.GlueTab{
		ID:          fmt.Sprintf("%s-tab-%d", p.ID, edgeIndex),
		ParentPanel: p.ID,
		EdgeIndex:   edgeIndex,
		Vertices: []geom.Point{
			from,
			to,
			to.Add(offset).Sub(unit.Scale(taper)),
			from.Add(offset).Add(unit.Scale(taper)),
		},
		Position: p.Position,
	}, nil
}
