package unfold

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/foldline/foldline/pkg/building"
	"github.com/foldline/foldline/pkg/errors"
	"github.com/foldline/foldline/pkg/pattern"
	"github.com/foldline/foldline/pkg/unfold/sheet"
)

const tol = 1e-6

func almostEqual(a, b float64) bool { return math.Abs(a-b) < tol }

// The shared verification building: 20 x 15 x 10 ft at HO scale.
func baseParams() *building.Params {
	return &building.Params{
		Name:       "depot",
		WidthFeet:  20,
		DepthFeet:  15,
		HeightFeet: 10,
		Roof:       building.Roof{Style: building.RoofFlat},
		Scale:      building.ScaleHO,
	}
}

func findPanel(t *testing.T, panels []pattern.Panel, id string) *pattern.Panel {
	t.Helper()
	for i := range panels {
		if panels[i].ID == id {
			return &panels[i]
		}
	}
	t.Fatalf("panel %q not found", id)
	return nil
}

func TestStrategyFor(t *testing.T) {
	tests := []struct {
		name string
		mat  pattern.MaterialConfig
		want Strategy
	}{
		{"paper", pattern.MaterialConfig{Type: pattern.MaterialPaper}, StrategyFoldedStrip},
		{"thin chipboard", pattern.MaterialConfig{Type: pattern.MaterialChipboard, Thickness: 0.02}, StrategyScoreAndFold},
		{"thick chipboard", pattern.MaterialConfig{Type: pattern.MaterialChipboard, Thickness: 0.1}, StrategySeparatePanel},
		{"foamcore", pattern.MaterialConfig{Type: pattern.MaterialFoamcore, Thickness: 0.1875}, StrategySeparatePanel},
		{"plywood", pattern.MaterialConfig{Type: pattern.MaterialPlywood, Thickness: 0.125}, StrategySeparatePanel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StrategyFor(tt.mat); got != tt.want {
				t.Errorf("StrategyFor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlatRoofWallDimensions(t *testing.T) {
	u, err := Unfold(baseParams())
	if err != nil {
		t.Fatalf("Unfold() error = %v", err)
	}

	front := findPanel(t, u.Panels, "wall-front")
	if !almostEqual(front.Width(), 2.758621) || !almostEqual(front.Height(), 1.379310) {
		t.Errorf("front wall = %g x %g, want 2.758621 x 1.379310", front.Width(), front.Height())
	}
	side := findPanel(t, u.Panels, "wall-left")
	if !almostEqual(side.Width(), 2.068966) || !almostEqual(side.Height(), 1.379310) {
		t.Errorf("side wall = %g x %g, want 2.068966 x 1.379310", side.Width(), side.Height())
	}

	// Four walls and the flat roof panel.
	if len(u.Panels) != 5 {
		t.Errorf("structural panels = %d, want 5", len(u.Panels))
	}
}

func TestGableSideWallPeak(t *testing.T) {
	p := baseParams()
	p.Roof = building.Roof{Style: building.RoofGable, PitchDegrees: 30}

	u, err := Unfold(p)
	if err != nil {
		t.Fatalf("Unfold() error = %v", err)
	}

	side := findPanel(t, u.Panels, "wall-left")
	if len(side.Vertices) != 5 {
		t.Fatalf("gable side wall vertices = %d, want 5", len(side.Vertices))
	}
	peak := side.Vertices[2]
	if math.Abs(peak.X-1.034483) > tol || math.Abs(peak.Y-1.976569) > 1e-4 {
		t.Errorf("peak = %+v, want (1.034483, 1.9766)", peak)
	}
}

func TestFoldedStripStructure(t *testing.T) {
	u, err := Unfold(baseParams())
	if err != nil {
		t.Fatalf("Unfold() error = %v", err)
	}

	front := findPanel(t, u.Panels, "wall-front")
	if front.Edges[0].Type != pattern.EdgeGlueTab {
		t.Errorf("front wall left edge = %v, want glue-tab (free strip end)", front.Edges[0].Type)
	}
	if front.Edges[2].Type != pattern.EdgeFoldValley {
		t.Errorf("front wall right edge = %v, want fold-valley", front.Edges[2].Type)
	}

	last := findPanel(t, u.Panels, "wall-left")
	if last.Edges[2].Type != pattern.EdgeGlueTab {
		t.Errorf("strip end right edge = %v, want glue-tab", last.Edges[2].Type)
	}
	if last.ConnectsTo != "wall-back" {
		t.Errorf("wall-left connectsTo = %q, want wall-back", last.ConnectsTo)
	}

	// Walls sit edge to edge: each panel starts where the previous ended.
	x := sheet.Margin
	for _, id := range []string{"wall-front", "wall-right", "wall-back", "wall-left"} {
		p := findPanel(t, u.Panels, id)
		if !almostEqual(p.Position.X, x) {
			t.Errorf("%s at x = %g, want %g", id, p.Position.X, x)
		}
		x += p.Width()
	}

	// Every bottom edge carries a tab.
	for _, id := range []string{"wall-front", "wall-right", "wall-back", "wall-left"} {
		p := findPanel(t, u.Panels, id)
		if p.Edges[len(p.Edges)-1].Type != pattern.EdgeGlueTab {
			t.Errorf("%s bottom edge = %v, want glue-tab", id, p.Edges[len(p.Edges)-1].Type)
		}
	}
}

func TestGlueTabContinuity(t *testing.T) {
	configs := []struct {
		name string
		mat  pattern.MaterialConfig
	}{
		{"paper strip", pattern.MaterialConfig{Type: pattern.MaterialPaper}},
		{"scored chipboard", pattern.MaterialConfig{Type: pattern.MaterialChipboard, Thickness: 0.02, JointMethod: pattern.JointGlueTab}},
	}
	for _, tc := range configs {
		t.Run(tc.name, func(t *testing.T) {
			p := baseParams()
			p.Roof = building.Roof{Style: building.RoofGable, PitchDegrees: 30}
			p.Material = tc.mat

			u, err := Unfold(p)
			if err != nil {
				t.Fatalf("Unfold() error = %v", err)
			}
			if len(u.GlueTabs) == 0 {
				t.Fatal("no glue tabs produced")
			}

			all := u.AllPanels()
			for _, tab := range u.GlueTabs {
				parent := findPanel(t, all, tab.ParentPanel)
				e := parent.Edges[tab.EdgeIndex]
				from := parent.Vertices[e.From]
				to := parent.Vertices[e.To]
				if tab.Vertices[0] != from || tab.Vertices[1] != to {
					t.Errorf("tab %s does not start on its parent edge", tab.ID)
				}
			}
		})
	}
}

func TestButtJointCompensation(t *testing.T) {
	baseline, err := Unfold(baseParams())
	if err != nil {
		t.Fatalf("Unfold() error = %v", err)
	}

	p := baseParams()
	p.Material = pattern.MaterialConfig{
		Type:        pattern.MaterialChipboard,
		Thickness:   0.1,
		JointMethod: pattern.JointButt,
	}
	u, err := Unfold(p)
	if err != nil {
		t.Fatalf("Unfold() error = %v", err)
	}

	baseSide := findPanel(t, baseline.Panels, "wall-left").Width()
	side := findPanel(t, u.Panels, "wall-left").Width()
	if !almostEqual(baseSide-side, 0.2) {
		t.Errorf("side wall narrowed by %g, want 0.2", baseSide-side)
	}

	baseFront := findPanel(t, baseline.Panels, "wall-front").Width()
	front := findPanel(t, u.Panels, "wall-front").Width()
	if !almostEqual(baseFront, front) {
		t.Errorf("front wall changed from %g to %g, want unchanged", baseFront, front)
	}

	// Rigid stock: every edge cut, no tabs.
	for _, panel := range u.Panels {
		for i, e := range panel.Edges {
			if e.Type != pattern.EdgeCut {
				t.Errorf("%s edge %d = %v, want cut", panel.ID, i, e.Type)
			}
		}
	}
	if len(u.GlueTabs) != 0 {
		t.Errorf("glue tabs = %d, want 0", len(u.GlueTabs))
	}
}

func TestMiterLeavesWidthsUnchanged(t *testing.T) {
	baseline, err := Unfold(baseParams())
	if err != nil {
		t.Fatalf("Unfold() error = %v", err)
	}

	p := baseParams()
	p.Material = pattern.MaterialConfig{
		Type:        pattern.MaterialFoamcore,
		Thickness:   0.1875,
		JointMethod: pattern.JointMiter,
	}
	u, err := Unfold(p)
	if err != nil {
		t.Fatalf("Unfold() error = %v", err)
	}

	for _, id := range []string{"wall-front", "wall-left"} {
		want := findPanel(t, baseline.Panels, id).Width()
		got := findPanel(t, u.Panels, id).Width()
		if !almostEqual(want, got) {
			t.Errorf("%s width = %g, want %g", id, got, want)
		}
	}
}

func TestSlotTabTeeth(t *testing.T) {
	p := baseParams()
	p.Material = pattern.MaterialConfig{
		Type:        pattern.MaterialPlywood,
		Thickness:   0.125,
		JointMethod: pattern.JointSlotTab,
	}
	u, err := Unfold(p)
	if err != nil {
		t.Fatalf("Unfold() error = %v", err)
	}

	side := findPanel(t, u.Panels, "wall-left")
	if len(side.Teeth) != 2 {
		t.Fatalf("teeth annotations = %d, want 2 (both vertical edges)", len(side.Teeth))
	}
	for _, teeth := range side.Teeth {
		if teeth.Length <= 0 || len(teeth.Positions) == 0 {
			t.Errorf("edge %d teeth empty: %+v", teeth.EdgeIndex, teeth)
		}
		// Tooth length is clamped to a third of the edge.
		if teeth.Length > side.Height()/3+tol {
			t.Errorf("tooth length %g exceeds clamp %g", teeth.Length, side.Height()/3)
		}
	}
}

func TestScoreAndFoldRemapsFolds(t *testing.T) {
	p := baseParams()
	p.Roof = building.Roof{Style: building.RoofGable, PitchDegrees: 30}
	p.Material = pattern.MaterialConfig{Type: pattern.MaterialChipboard, Thickness: 0.02}

	u, err := Unfold(p)
	if err != nil {
		t.Fatalf("Unfold() error = %v", err)
	}

	scores := 0
	for _, panel := range u.Panels {
		for _, e := range panel.Edges {
			switch e.Type {
			case pattern.EdgeFoldMountain, pattern.EdgeFoldValley:
				t.Errorf("%s still carries fold edge %v", panel.ID, e.Type)
			case pattern.EdgeScore:
				scores++
			}
		}
	}
	if scores == 0 {
		t.Error("no scored edges produced")
	}
}

func TestFacadeGroup(t *testing.T) {
	p := baseParams()
	p.Material = pattern.MaterialConfig{
		Type:            pattern.MaterialFoamcore,
		Thickness:       0.1875,
		GenerateFacades: true,
	}
	u, err := Unfold(p)
	if err != nil {
		t.Fatalf("Unfold() error = %v", err)
	}

	if len(u.FacadePanels) != 4 {
		t.Fatalf("facade panels = %d, want 4", len(u.FacadePanels))
	}
	for _, f := range u.FacadePanels {
		if f.Group != pattern.GroupFacade {
			t.Errorf("%s group = %v, want facade", f.ID, f.Group)
		}
		structural := findPanel(t, u.Panels, strings.TrimPrefix(f.ID, "facade-"))
		if !almostEqual(f.Width(), structural.Width()) || !almostEqual(f.Height(), structural.Height()) {
			t.Errorf("%s outline %g x %g differs from structural %g x %g",
				f.ID, f.Width(), f.Height(), structural.Width(), structural.Height())
		}
	}
}

func TestVictorianOpeningTrim(t *testing.T) {
	p := baseParams()
	p.TrimStyle = building.TrimVictorian
	p.Openings = []building.OpeningSpec{
		{ID: "win-1", Type: "window", Wall: building.WallFront, X: 4, Y: 3, Width: 3, Height: 4},
	}

	u, err := Unfold(p)
	if err != nil {
		t.Fatalf("Unfold() error = %v", err)
	}

	trim := 0
	for _, d := range u.DetailPanels {
		if strings.HasPrefix(d.ID, "trim-win-1-") {
			trim++
		}
	}
	if trim != 6 {
		t.Errorf("victorian trim panels = %d, want 6", trim)
	}
}

func TestOpeningsEmbeddedInWalls(t *testing.T) {
	p := baseParams()
	p.Floors = []building.Floor{{HeightFeet: 5}, {HeightFeet: 5}}
	p.Openings = []building.OpeningSpec{
		{ID: "win-up", Type: "window", Wall: building.WallFront, X: 4, Y: 1, Width: 3, Height: 3, Floor: 2},
	}

	u, err := Unfold(p)
	if err != nil {
		t.Fatalf("Unfold() error = %v", err)
	}

	front := findPanel(t, u.Panels, "wall-front")
	if len(front.Openings) != 1 {
		t.Fatalf("front wall openings = %d, want 1", len(front.Openings))
	}
	o := front.Openings[0]
	// Floor 2 base is 5 ft up; y = (5 + 1) ft in model inches.
	if !almostEqual(o.Y, building.ScaleHO.ToModel(6)) {
		t.Errorf("opening y = %g, want %g", o.Y, building.ScaleHO.ToModel(6))
	}
	if !almostEqual(o.X, building.ScaleHO.ToModel(4)) {
		t.Errorf("opening x = %g, want %g", o.X, building.ScaleHO.ToModel(4))
	}
}

func TestBoundingBoxInvariant(t *testing.T) {
	p := baseParams()
	p.Roof = building.Roof{Style: building.RoofGambrel, PitchDegrees: 25}
	p.TrimStyle = building.TrimSimple
	p.Openings = []building.OpeningSpec{
		{Type: "door", Wall: building.WallFront, X: 8, Width: 4, Height: 7},
	}
	p.WallDetails = building.WallDetails{CornerBoards: true, Baseboards: true}

	u, err := Unfold(p)
	if err != nil {
		t.Fatalf("Unfold() error = %v", err)
	}

	maxX, maxY := 0.0, 0.0
	for _, panel := range u.AllPanels() {
		for _, v := range panel.Vertices {
			if x := panel.Position.X + v.X; x > maxX {
				maxX = x
			}
			if y := panel.Position.Y + v.Y; y > maxY {
				maxY = y
			}
		}
	}
	if !almostEqual(u.Width, maxX+sheet.Margin) {
		t.Errorf("width = %g, want %g", u.Width, maxX+sheet.Margin)
	}
	if !almostEqual(u.Height, maxY+sheet.Margin) {
		t.Errorf("height = %g, want %g", u.Height, maxY+sheet.Margin)
	}
}

func TestDeterminism(t *testing.T) {
	mk := func() *building.Params {
		p := baseParams()
		p.Roof = building.Roof{Style: building.RoofSaltbox, PitchDegrees: 35, OverhangFeet: 1}
		p.TrimStyle = building.TrimCraftsman
		p.Openings = []building.OpeningSpec{
			{Type: "window", Wall: building.WallLeft, X: 3, Y: 3, Width: 3, Height: 4},
		}
		p.WallDetails = building.WallDetails{CornerBoards: true, Quoins: true}
		p.RoofTrim = building.RoofTrim{Fascia: true, Bargeboard: true, RidgeCap: true}
		p.Accessories = []building.Accessory{
			{Type: "chimney", Wall: building.WallBack, Mode: building.Accessory3D, WidthFeet: 2, HeightFeet: 4},
		}
		return p
	}

	a, err := Unfold(mk())
	if err != nil {
		t.Fatalf("Unfold() error = %v", err)
	}
	b, err := Unfold(mk())
	if err != nil {
		t.Fatalf("Unfold() error = %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different patterns")
	}
}

func TestRoofPanelsPerStyle(t *testing.T) {
	tests := []struct {
		style building.RoofStyle
		pitch float64
		want  int // structural panels: 4 walls + roof faces
	}{
		{building.RoofFlat, 0, 5},
		{building.RoofShed, 15, 5},
		{building.RoofGable, 30, 6},
		{building.RoofSaltbox, 35, 6},
		{building.RoofGambrel, 25, 8},
		{building.RoofHip, 30, 8},
		{building.RoofMansard, 30, 9},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			p := baseParams()
			p.Roof = building.Roof{Style: tt.style, PitchDegrees: tt.pitch}
			u, err := Unfold(p)
			if err != nil {
				t.Fatalf("Unfold() error = %v", err)
			}
			if len(u.Panels) != tt.want {
				t.Errorf("structural panels = %d, want %d", len(u.Panels), tt.want)
			}
			for _, panel := range u.Panels {
				if err := panel.Validate(); err != nil {
					t.Errorf("invalid panel: %v", err)
				}
			}
		})
	}
}

func TestAccessories(t *testing.T) {
	p := baseParams()
	p.Accessories = []building.Accessory{
		{Type: "chimney", Wall: building.WallBack, Mode: building.Accessory3D, WidthFeet: 2, HeightFeet: 4},
		{Type: "sign", Wall: building.WallFront, Mode: building.Accessory2D, OffsetFeet: 6, WidthFeet: 8, HeightFeet: 2},
	}

	u, err := Unfold(p)
	if err != nil {
		t.Fatalf("Unfold() error = %v", err)
	}

	// Chimney: 4 sides + cap.
	if len(u.AccessoryPanels) != 5 {
		t.Errorf("accessory panels = %d, want 5", len(u.AccessoryPanels))
	}
	for _, a := range u.AccessoryPanels {
		if a.Group != pattern.GroupAccessory {
			t.Errorf("%s group = %v, want accessory", a.ID, a.Group)
		}
	}

	// The 2D accessory lands on its wall as a sticker.
	front := findPanel(t, u.Panels, "wall-front")
	if len(front.Stickers) != 1 {
		t.Fatalf("front wall stickers = %d, want 1", len(front.Stickers))
	}
	if front.Stickers[0].Label != "sign" {
		t.Errorf("sticker label = %q, want sign", front.Stickers[0].Label)
	}
}

func TestAssemblySteps(t *testing.T) {
	u, err := Unfold(baseParams())
	if err != nil {
		t.Fatalf("Unfold() error = %v", err)
	}
	if len(u.AssemblySteps) == 0 {
		t.Fatal("no assembly steps")
	}
	if !strings.Contains(strings.Join(u.AssemblySteps, " "), "Fold") {
		t.Error("folded strip steps never mention folding")
	}
}

func TestUnsupportedJointFallsBack(t *testing.T) {
	p := baseParams()
	p.Material = pattern.MaterialConfig{
		Type:        pattern.MaterialFoamcore,
		Thickness:   0.1875,
		JointMethod: pattern.JointSlotTab, // foamcore cannot take slot-tab
	}
	u, err := Unfold(p)
	if err != nil {
		t.Fatalf("Unfold() error = %v", err)
	}
	// Fallback is butt: side walls narrowed, no teeth.
	side := findPanel(t, u.Panels, "wall-left")
	if !almostEqual(side.Width(), 2.068966-2*0.1875) {
		t.Errorf("side width = %g, want butt-compensated %g", side.Width(), 2.068966-2*0.1875)
	}
	if len(side.Teeth) != 0 {
		t.Errorf("teeth = %d, want 0 after fallback", len(side.Teeth))
	}
}

func TestInvalidParams(t *testing.T) {
	p := baseParams()
	p.WidthFeet = -3
	if _, err := Unfold(p); !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("error = %v, want InvalidGeometry", err)
	}
}

func TestAssembleEmptyPattern(t *testing.T) {
	u := &pattern.UnfoldedPattern{BuildingName: "empty"}
	if err := Assemble(u); !errors.Is(err, errors.ErrCodeEmptyPattern) {
		t.Errorf("error = %v, want EmptyPattern", err)
	}
}
