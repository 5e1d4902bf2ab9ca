package sheet

import (
	"bytes"
	"fmt"

	"github.com/foldline/foldline/pkg/geom"
	"github.com/foldline/foldline/pkg/pattern"
)

// DXF layer names and AutoCAD color indices, one layer per edge type.
// Laser and CNC software assigns operations per layer.
var dxfLayers = []struct {
	name  string
	color int
	etype pattern.EdgeType
}{
	{"CUT", 7, pattern.EdgeCut},
	{"FOLD-MOUNTAIN", 1, pattern.EdgeFoldMountain},
	{"FOLD-VALLEY", 5, pattern.EdgeFoldValley},
	{"SCORE", 30, pattern.EdgeScore},
	{"GLUE-TAB", 8, pattern.EdgeGlueTab},
}

// RenderDXF serializes the pattern to a minimal R12 DXF document: a
// layer table with one layer per edge type and LINE entities in inches,
// y up, matching the layout coordinates exactly.
func RenderDXF(u *pattern.UnfoldedPattern) []byte {
	var buf bytes.Buffer

	// HEADER
	dxfTag(&buf, 0, "SECTION")
	dxfTag(&buf, 2, "HEADER")
	dxfTag(&buf, 9, "$ACADVER")
	dxfTag(&buf, 1, "AC1009")
	dxfTag(&buf, 9, "$INSUNITS")
	dxfTag(&buf, 70, "1") // inches
	dxfTag(&buf, 0, "ENDSEC")

	// TABLES: the layer table.
	dxfTag(&buf, 0, "SECTION")
	dxfTag(&buf, 2, "TABLES")
	dxfTag(&buf, 0, "TABLE")
	dxfTag(&buf, 2, "LAYER")
	dxfTag(&buf, 70, fmt.Sprint(len(dxfLayers)))
	for _, l := range dxfLayers {
		dxfTag(&buf, 0, "LAYER")
		dxfTag(&buf, 2, l.name)
		dxfTag(&buf, 70, "0")
		dxfTag(&buf, 62, fmt.Sprint(l.color))
		dxfTag(&buf, 6, "CONTINUOUS")
	}
	dxfTag(&buf, 0, "ENDTAB")
	dxfTag(&buf, 0, "ENDSEC")

	// ENTITIES
	dxfTag(&buf, 0, "SECTION")
	dxfTag(&buf, 2, "ENTITIES")
	for _, p := range u.AllPanels() {
		for _, e := range p.Edges {
			from := p.Vertices[e.From].Add(p.Position)
			to := p.Vertices[e.To].Add(p.Position)
			dxfLine(&buf, layerFor(e.Type), from, to)
		}
		for _, teeth := range p.Teeth {
			dxfTeeth(&buf, &p, teeth)
		}
	}
	for _, tab := range u.GlueTabs {
		n := len(tab.Vertices)
		for i := 1; i < n; i++ {
			dxfLine(&buf, "GLUE-TAB",
				tab.Vertices[i-1].Add(tab.Position), tab.Vertices[i].Add(tab.Position))
		}
		// The long side back to the start is the parent edge itself,
		// already emitted by the panel; close only the free sides.
	}
	dxfTag(&buf, 0, "ENDSEC")
	dxfTag(&buf, 0, "EOF")

	return buf.Bytes()
}

func layerFor(t pattern.EdgeType) string {
	for _, l := range dxfLayers {
		if l.etype == t {
			return l.name
		}
	}
	return "CUT"
}

func dxfTag(buf *bytes.Buffer, code int, value string) {
	fmt.Fprintf(buf, "%d\n%s\n", code, value)
}

func dxfLine(buf *bytes.Buffer, layer string, from, to geom.Point) {
	dxfTag(buf, 0, "LINE")
	dxfTag(buf, 8, layer)
	dxfTag(buf, 10, fmt.Sprintf("%.6f", from.X))
	dxfTag(buf, 20, fmt.Sprintf("%.6f", from.Y))
	dxfTag(buf, 11, fmt.Sprintf("%.6f", to.X))
	dxfTag(buf, 21, fmt.Sprintf("%.6f", to.Y))
}

// dxfTeeth emits the tooth boundary ticks for a slot-tab edge on the
// CUT layer so the machine cuts the interlocking teeth.
func dxfTeeth(buf *bytes.Buffer, p *pattern.Panel, teeth pattern.SlotTeeth) {
	e := p.Edges[teeth.EdgeIndex]
	from := p.Vertices[e.From]
	to := p.Vertices[e.To]
	dir := to.Sub(from)
	length := dir.Length()
	if length == 0 {
		return
	}
	unit := dir.Scale(1 / length)
	inward := dir.Normal().Scale(-teeth.Depth)

	for _, pos := range teeth.Positions {
		for _, d := range []float64{pos, pos + teeth.Length} {
			a := from.Add(unit.Scale(d)).Add(p.Position)
			dxfLine(buf, "CUT", a, a.Add(inward))
		}
	}
}
