package pattern

import "github.com/foldline/foldline/pkg/geom"

// GlueTab is a trapezoid flap synthesized off a panel edge. Its first
// two vertices always equal the parent edge's endpoints.
type GlueTab struct {
	ID          string       `json:"id"`
	ParentPanel string       `json:"parentPanel"`
	EdgeIndex   int          `json:"edgeIndex"`
	Vertices    []geom.Point `json:"vertices"` // 4-point trapezoid, panel-local
	Position    geom.Point   `json:"position"`
}

// WallProfile is the outline of one wall for a given roof style.
// FoldLineY, when set, marks the boundary between the rectangular wall
// base and the roof-integrated extension above it.
type WallProfile struct {
	Vertices  []geom.Point
	FoldLineY float64
	// HasFoldLine distinguishes a profile with a fold line at 0 from a
	// plain rectangle.
	HasFoldLine bool
}

// RealWorldDimensions echoes the input building size in feet for
// human-readable labels.
type RealWorldDimensions struct {
	WidthFeet  float64 `json:"widthFeet"`
	DepthFeet  float64 `json:"depthFeet"`
	HeightFeet float64 `json:"heightFeet"`
}

// UnfoldedPattern is the root output of the engine: every panel group,
// the glue tabs, and the overall sheet extent.
//
// Width and Height are the tight bounding box over every panel group
// plus a fixed margin; Assemble maintains that invariant.
type UnfoldedPattern struct {
	Panels   []Panel   `json:"panels"`
	GlueTabs []GlueTab `json:"glueTabs,omitempty"`
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`

	BuildingName  string              `json:"buildingName"`
	ScaleLabel    string              `json:"scaleLabel"`
	RealWorld     RealWorldDimensions `json:"realWorldDimensions"`
	MaterialType  MaterialType        `json:"materialType"`
	AssemblySteps []string            `json:"assemblySteps"`

	FacadePanels    []Panel `json:"facadePanels,omitempty"`
	AccessoryPanels []Panel `json:"accessoryPanels,omitempty"`
	DetailPanels    []Panel `json:"detailPanels,omitempty"`
}

// AllPanels returns every panel across all groups in deterministic
// order: structural, facade, accessory, detail.
func (u *UnfoldedPattern) AllPanels() []Panel {
	out := make([]Panel, 0, len(u.Panels)+len(u.FacadePanels)+len(u.AccessoryPanels)+len(u.DetailPanels))
	out = append(out, u.Panels...)
	out = append(out, u.FacadePanels...)
	out = append(out, u.AccessoryPanels...)
	out = append(out, u.DetailPanels...)
	return out
}

// PanelCount returns the total number of panels across all groups.
func (u *UnfoldedPattern) PanelCount() int {
	return len(u.Panels) + len(u.FacadePanels) + len(u.AccessoryPanels) + len(u.DetailPanels)
}
