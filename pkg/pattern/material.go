package pattern

import "github.com/foldline/foldline/pkg/errors"

// MaterialType is the stock the pattern will be cut from.
type MaterialType string

const (
	MaterialPaper     MaterialType = "paper"
	MaterialFoamcore  MaterialType = "foamcore"
	MaterialPlywood   MaterialType = "plywood"
	MaterialChipboard MaterialType = "chipboard"
)

// JointMethod is the corner joining technique for a material.
type JointMethod string

const (
	JointGlueTab JointMethod = "glue-tab"
	JointButt    JointMethod = "butt"
	JointSlotTab JointMethod = "slot-tab"
	JointMiter   JointMethod = "miter"
)

// MaterialConfig describes the stock and corner treatment for an unfold.
type MaterialConfig struct {
	Type MaterialType `json:"type" toml:"type"`
	// Thickness in real inches. Must be positive for any rigid stock.
	Thickness   float64     `json:"thickness" toml:"thickness"`
	JointMethod JointMethod `json:"jointMethod" toml:"joint_method"`
	// GenerateFacades emits a paper facade layer to glue onto structural
	// pieces cut from unprintable stock.
	GenerateFacades bool `json:"generateFacades" toml:"generate_facades"`
}

// supportedJoints maps each material to the joint methods it can take.
var supportedJoints = map[MaterialType][]JointMethod{
	MaterialPaper:     {JointGlueTab},
	MaterialFoamcore:  {JointButt, JointMiter},
	MaterialPlywood:   {JointButt, JointSlotTab, JointMiter},
	MaterialChipboard: {JointGlueTab, JointButt, JointSlotTab},
}

// defaultJoints maps each material to its fallback joint method, used
// when an unsupported method is requested.
var defaultJoints = map[MaterialType]JointMethod{
	MaterialPaper:     JointGlueTab,
	MaterialFoamcore:  JointButt,
	MaterialPlywood:   JointButt,
	MaterialChipboard: JointSlotTab,
}

// Supports reports whether the material accepts the given joint method.
func (m MaterialType) Supports(j JointMethod) bool {
	for _, s := range supportedJoints[m] {
		if s == j {
			return true
		}
	}
	return false
}

// DefaultJoint returns the material's fallback joint method.
func (m MaterialType) DefaultJoint() JointMethod {
	return defaultJoints[m]
}

// Foldable reports whether the material can be folded rather than cut
// into separate pieces.
func (m MaterialType) Foldable() bool {
	return m == MaterialPaper
}

// Validate checks the material configuration. An unsupported joint
// method is not an error here; strategies fall back to the material's
// default and report it through their logger.
func (m *MaterialConfig) Validate() error {
	if _, ok := supportedJoints[m.Type]; !ok {
		return errors.New(errors.ErrCodeInvalidMaterial, "unknown material type %q", m.Type)
	}
	if m.Type != MaterialPaper && m.Thickness <= 0 {
		return errors.New(errors.ErrCodeInvalidMaterial, "%s requires a positive thickness, got %g", m.Type, m.Thickness)
	}
	return nil
}

// ResolveJoint returns the joint method to use, falling back to the
// material default when the configured method is unsupported. The second
// return is an UnsupportedJoint error describing the fallback, nil when
// the configured method was accepted.
func (m *MaterialConfig) ResolveJoint() (JointMethod, error) {
	if m.JointMethod == "" {
		return m.Type.DefaultJoint(), nil
	}
	if m.Type.Supports(m.JointMethod) {
		return m.JointMethod, nil
	}
	return m.Type.DefaultJoint(), errors.New(errors.ErrCodeUnsupportedJoint,
		"%s does not support %s joints, using %s", m.Type, m.JointMethod, m.Type.DefaultJoint())
}
