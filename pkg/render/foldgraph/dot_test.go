package foldgraph

import (
	"strings"
	"testing"

	"github.com/foldline/foldline/pkg/geom"
	"github.com/foldline/foldline/pkg/pattern"
)

func TestToDOT(t *testing.T) {
	u := &pattern.UnfoldedPattern{
		Panels: []pattern.Panel{
			{ID: "wall-front", Name: "Front Wall", Group: pattern.GroupStructural,
				Vertices: pattern.Rect(2, 1), Edges: pattern.PerimeterEdges(4, pattern.EdgeCut)},
			{ID: "wall-right", Name: "Right Wall", ConnectsTo: "wall-front", Group: pattern.GroupStructural,
				Vertices: pattern.Rect(1.5, 1), Edges: pattern.PerimeterEdges(4, pattern.EdgeCut)},
		},
		GlueTabs: []pattern.GlueTab{
			{ID: "wall-front-tab-3", ParentPanel: "wall-front", EdgeIndex: 3,
				Vertices: []geom.Point{{X: 2}, {}, {X: 0.175, Y: -0.175}, {X: 1.825, Y: -0.175}}},
		},
	}

	dot := ToDOT(u)

	if !strings.Contains(dot, `"wall-front" [label="Front Wall"`) {
		t.Error("panel node missing")
	}
	if !strings.Contains(dot, `"wall-front" -> "wall-right"`) {
		t.Error("fold edge missing")
	}
	if !strings.Contains(dot, `"wall-front" -> "wall-front-tab-3"`) {
		t.Error("tab edge missing")
	}
	if !strings.HasPrefix(dot, "digraph folds {") || !strings.HasSuffix(dot, "}\n") {
		t.Error("malformed DOT document")
	}
}

func TestToDOTFallsBackToID(t *testing.T) {
	u := &pattern.UnfoldedPattern{
		Panels: []pattern.Panel{
			{ID: "p1", Vertices: pattern.Rect(1, 1), Edges: pattern.PerimeterEdges(4, pattern.EdgeCut)},
		},
	}
	if !strings.Contains(ToDOT(u), `"p1" [label="p1"`) {
		t.Error("unnamed panel should label with its id")
	}
}
