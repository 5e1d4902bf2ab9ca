// Package pattern defines the flat-pattern data model produced by the
// unfolding engine: panels with typed edges, glue tabs, openings, and the
// assembled pattern placed on a virtual sheet.
//
// All coordinates are in model-scale inches. Panel vertices are
// panel-local; Position offsets them into sheet space. Entities are
// created fresh on every unfold invocation and never mutated afterwards.
package pattern

import (
	"fmt"

	"github.com/foldline/foldline/pkg/geom"
)

// Group classifies which layer of the pattern a panel belongs to.
type Group string

const (
	GroupStructural Group = "structural"
	GroupFacade     Group = "facade"
	GroupAccessory  Group = "accessory"
	GroupDetail     Group = "detail"
)

// Opening is a window or door cutout in panel-local model-scale inches.
// X and Y locate the lower-left corner relative to the panel origin.
type Opening struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"` // "window" or "door"
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Floor  int     `json:"floor"`
	Label  string  `json:"label,omitempty"`
}

// Sticker is a decorative 2D overlay positioned on a panel
// (signage, printed trim). It is rendered but never cut.
type Sticker struct {
	Label  string  `json:"label"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SlotTeeth describes the repeating slot/tab tooth pattern along a
// vertical panel edge. Positions are distances from the bottom of the
// edge; each tooth spans [pos, pos+Length]. Consumed only by the
// serializers.
type SlotTeeth struct {
	EdgeIndex int       `json:"edgeIndex"`
	Length    float64   `json:"length"`
	Depth     float64   `json:"depth"`
	Positions []float64 `json:"positions"`
}

// Panel is one flat piece of the pattern: an ordered polygon with one
// typed edge per side, positioned on the sheet.
type Panel struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Vertices []geom.Point `json:"vertices"`
	Edges    []Edge       `json:"edges"`
	Position geom.Point   `json:"position"`
	Rotation float64      `json:"rotation,omitempty"`
	// ConnectsTo names the panel this one folds from, if any.
	ConnectsTo string      `json:"connectsTo,omitempty"`
	Openings   []Opening   `json:"openings,omitempty"`
	Group      Group       `json:"group"`
	Stickers   []Sticker   `json:"stickers,omitempty"`
	Teeth      []SlotTeeth `json:"teeth,omitempty"`
}

// Width returns the horizontal extent of the panel's local vertices.
func (p *Panel) Width() float64 { return geom.BoundsOf(p.Vertices).Width() }

// Height returns the vertical extent of the panel's local vertices.
func (p *Panel) Height() float64 { return geom.BoundsOf(p.Vertices).Height() }

// Validate checks the structural invariants: at least 3 vertices, one
// edge per polygon side, valid indices, and consecutive edges sharing a
// vertex.
func (p *Panel) Validate() error {
	if len(p.Vertices) < 3 {
		return fmt.Errorf("panel %s: %d vertices, need at least 3", p.ID, len(p.Vertices))
	}
	if len(p.Edges) != len(p.Vertices) {
		return fmt.Errorf("panel %s: %d edges for %d vertices", p.ID, len(p.Edges), len(p.Vertices))
	}
	n := len(p.Vertices)
	for i, e := range p.Edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("panel %s: edge %d references vertex out of range", p.ID, i)
		}
		next := p.Edges[(i+1)%n]
		if e.To != next.From {
			return fmt.Errorf("panel %s: edge %d ends at %d but edge %d starts at %d", p.ID, i, e.To, (i+1)%n, next.From)
		}
	}
	return nil
}

// PerimeterEdges builds the canonical edge ring for a polygon of n
// vertices with every edge assigned the same type.
func PerimeterEdges(n int, t EdgeType) []Edge {
	edges := make([]Edge, n)
	for i := range edges {
		edges[i] = Edge{Type: t, From: i, To: (i + 1) % n}
	}
	return edges
}

// Rect builds a panel-local rectangle polygon of the given size with its
// lower-left corner at the origin. The winding — up the left side, across
// the top, down the right, back along the bottom — makes the (-dy,dx)
// edge normal point outward on every side; all panel polygons share it.
func Rect(w, h float64) []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 0, Y: h}, {X: w, Y: h}, {X: w, Y: 0}}
}
