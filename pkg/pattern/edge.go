package pattern

import "fmt"

// EdgeType classifies how a polygon side is treated during cutting and
// assembly. It is a closed enum: serializers switch over it exhaustively.
type EdgeType uint8

const (
	// EdgeCut is cut through completely.
	EdgeCut EdgeType = iota
	// EdgeFoldMountain folds away from the printed face.
	EdgeFoldMountain
	// EdgeFoldValley folds toward the printed face.
	EdgeFoldValley
	// EdgeScore is scored part-way through for rigid stock.
	EdgeScore
	// EdgeGlueTab carries a glue tab synthesized off this edge.
	EdgeGlueTab
)

var edgeTypeNames = map[EdgeType]string{
	EdgeCut:          "cut",
	EdgeFoldMountain: "fold-mountain",
	EdgeFoldValley:   "fold-valley",
	EdgeScore:        "score",
	EdgeGlueTab:      "glue-tab",
}

// String returns the canonical name used in serialized output.
func (t EdgeType) String() string {
	if s, ok := edgeTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("edge-type-%d", uint8(t))
}

// MarshalText implements encoding.TextMarshaler so edge types serialize
// as their canonical names in JSON output.
func (t EdgeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *EdgeType) UnmarshalText(text []byte) error {
	for k, v := range edgeTypeNames {
		if v == string(text) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown edge type %q", text)
}

// Edge is one side of a panel polygon. From and To index the owning
// panel's vertex list; the type is symmetric for rendering purposes.
type Edge struct {
	Type EdgeType `json:"type"`
	From int      `json:"from"`
	To   int      `json:"to"`
}
