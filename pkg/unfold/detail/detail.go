// Package detail generates the architectural trim panels: opening trim,
// wall ornament, and roof trim. Each generator is a pure function of
// the building parameters and a starting layout cursor, appending
// self-contained detail panels below the structural layout.
//
// Trim boards are specified in real-world inches (a 4" corner board
// stays 4" whatever the building size) and converted to model scale
// through the building's ratio.
package detail

import (
	"github.com/foldline/foldline/pkg/geom"
	"github.com/foldline/foldline/pkg/pattern"
	"github.com/foldline/foldline/pkg/unfold/sheet"
)

// place appends one cut-edged detail panel at the cursor position.
func place(out []pattern.Panel, cur sheet.Cursor, id, name string, verts []geom.Point) ([]pattern.Panel, sheet.Cursor) {
	p := pattern.Panel{
		ID:       id,
		Name:     name,
		Vertices: verts,
		Edges:    pattern.PerimeterEdges(len(verts), pattern.EdgeCut),
		Group:    pattern.GroupDetail,
	}
	b := geom.BoundsOf(verts)
	p.Position, cur = cur.Place(b.Width(), b.Height())
	return append(out, p), cur
}

// placeRect is place for plain rectangles.
func placeRect(out []pattern.Panel, cur sheet.Cursor, id, name string, w, h float64) ([]pattern.Panel, sheet.Cursor) {
	return place(out, cur, id, name, pattern.Rect(w, h))
}
