package sheet

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/foldline/foldline/pkg/geom"
	"github.com/foldline/foldline/pkg/pattern"
)

func testPattern() *pattern.UnfoldedPattern {
	wall := pattern.Panel{
		ID:       "wall-front",
		Name:     "Front Wall",
		Vertices: pattern.Rect(2, 1),
		Edges:    pattern.PerimeterEdges(4, pattern.EdgeCut),
		Position: geom.Point{X: 0.5, Y: 0.5},
		Group:    pattern.GroupStructural,
		Openings: []pattern.Opening{
			{ID: "door", Type: "door", X: 0.8, Y: 0, Width: 0.4, Height: 0.7, Floor: 1, Label: "door"},
		},
		Teeth: []pattern.SlotTeeth{
			{EdgeIndex: 0, Length: 0.3, Depth: 0.1, Positions: []float64{0.1, 0.6}},
		},
	}
	wall.Edges[1].Type = pattern.EdgeFoldValley
	wall.Edges[2].Type = pattern.EdgeScore
	wall.Edges[3].Type = pattern.EdgeGlueTab

	trim := pattern.Panel{
		ID:       "trim-1",
		Name:     "Trim",
		Vertices: pattern.Rect(0.5, 0.2),
		Edges:    pattern.PerimeterEdges(4, pattern.EdgeCut),
		Position: geom.Point{X: 0.5, Y: 2},
		Group:    pattern.GroupDetail,
	}

	return &pattern.UnfoldedPattern{
		Panels: []pattern.Panel{wall},
		GlueTabs: []pattern.GlueTab{
			{
				ID:          "wall-front-tab-3",
				ParentPanel: "wall-front",
				EdgeIndex:   3,
				Vertices: []geom.Point{
					{X: 2, Y: 0}, {X: 0, Y: 0}, {X: 0.175, Y: -0.175}, {X: 1.825, Y: -0.175},
				},
				Position: geom.Point{X: 0.5, Y: 0.5},
			},
		},
		DetailPanels: []pattern.Panel{trim},
		Width:        3,
		Height:       2.7,
		BuildingName: "depot",
		ScaleLabel:   "HO (1:87)",
		MaterialType: pattern.MaterialPaper,
	}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testPattern()))

	if !strings.Contains(svg, `viewBox="0 0 3.0000 2.7000"`) {
		t.Error("viewBox does not match pattern extent")
	}
	// Default DPI canvas: 3in x 2.7in at 96dpi.
	if !strings.Contains(svg, `width="288" height="259"`) {
		t.Error("canvas size not derived from DPI")
	}

	for _, want := range []string{
		`class="edge-cut"`,
		`class="edge-fold-valley"`,
		`class="edge-score"`,
		`class="glue-tab"`,
		`class="opening"`,
		`class="panel-structural"`,
		`id="group-detail"`,
		"stroke-dasharray",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %s", want)
		}
	}

	// Glue-tab edges are not stroked as lines; the tab polygon covers them.
	if strings.Contains(svg, `class="edge-glue-tab"`) {
		t.Error("glue-tab edge rendered as a stroke")
	}

	// Layout coordinates pass through untouched: the panel's lower-left
	// corner (0.5, 0.5) lands at y = height - 0.5 = 2.2.
	if !strings.Contains(svg, "0.5000,2.2000") {
		t.Error("panel vertices not round-tripped into sheet space")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	u := testPattern()

	svg := string(RenderSVG(u, WithDPI(300)))
	if !strings.Contains(svg, `width="900"`) {
		t.Error("custom DPI not applied")
	}

	svg = string(RenderSVG(u, WithoutLabels()))
	if strings.Contains(svg, "Front Wall") {
		t.Error("labels rendered despite WithoutLabels")
	}

	svg = string(RenderSVG(u, WithTexture("wall-front", []byte{0x89, 'P', 'N', 'G'})))
	if !strings.Contains(svg, "clip-wall-front") || !strings.Contains(svg, "data:image/png;base64,") {
		t.Error("texture not embedded with clip path")
	}
}

func TestRenderDXF(t *testing.T) {
	dxf := string(RenderDXF(testPattern()))

	for _, layer := range []string{"CUT", "FOLD-MOUNTAIN", "FOLD-VALLEY", "SCORE", "GLUE-TAB"} {
		if !strings.Contains(dxf, layer) {
			t.Errorf("DXF missing layer %s", layer)
		}
	}
	if !strings.HasSuffix(strings.TrimSpace(dxf), "EOF") {
		t.Error("DXF not terminated with EOF")
	}

	// Wall edge from (0,0) to (0,1) at position (0.5, 0.5): native
	// inch coordinates, no axis flip.
	if !strings.Contains(dxf, "0.500000") || !strings.Contains(dxf, "1.500000") {
		t.Error("DXF coordinates not in sheet-space inches")
	}

	// One LINE per panel edge (8), per tooth boundary tick (4), plus
	// three free tab sides.
	lines := strings.Count(dxf, "\nLINE\n")
	if lines != 15 {
		t.Errorf("LINE entities = %d, want 15", lines)
	}
}

func TestRenderJSONRoundTrip(t *testing.T) {
	u := testPattern()
	data, err := RenderJSON(u, WithJSONGenerator("foldline", "1.2.3"))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var out struct {
		Generator string                  `json:"generator"`
		Version   string                  `json:"version"`
		Pattern   pattern.UnfoldedPattern `json:"pattern"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Generator != "foldline" || out.Version != "1.2.3" {
		t.Errorf("generator = %s %s, want foldline 1.2.3", out.Generator, out.Version)
	}
	if len(out.Pattern.Panels) != 1 || len(out.Pattern.DetailPanels) != 1 {
		t.Error("panel groups lost in round trip")
	}
	if out.Pattern.Panels[0].Edges[1].Type != pattern.EdgeFoldValley {
		t.Error("edge types lost in round trip")
	}
	// Edge types serialize by canonical name, not number.
	if !strings.Contains(string(data), `"fold-valley"`) {
		t.Error("edge type not serialized by name")
	}
}

func TestRenderSVGEscapesMarkup(t *testing.T) {
	u := testPattern()
	u.BuildingName = `<depot> & "co"`
	svg := string(RenderSVG(u))
	if strings.Contains(svg, "<depot>") {
		t.Error("building name not escaped")
	}
	if !strings.Contains(svg, "&lt;depot&gt; &amp;") {
		t.Error("escaped name missing")
	}
}
