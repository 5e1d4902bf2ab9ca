package sheet

import (
	"encoding/json"

	"github.com/foldline/foldline/pkg/pattern"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	generator string
	version   string
}

// WithJSONGenerator records the generator name and version in the
// output for round-trip attribution.
func WithJSONGenerator(name, version string) JSONOption {
	return func(r *jsonRenderer) { r.generator = name; r.version = version }
}

type jsonOutput struct {
	Generator string                   `json:"generator,omitempty"`
	Version   string                   `json:"version,omitempty"`
	Pattern   *pattern.UnfoldedPattern `json:"pattern"`
}

// RenderJSON exports the complete pattern as a pretty-printed JSON
// document, the data interchange format for external visualization and
// caching. The pattern is embedded as-is; edge types serialize as their
// canonical names.
func RenderJSON(u *pattern.UnfoldedPattern, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	return json.MarshalIndent(jsonOutput{
		Generator: r.generator,
		Version:   r.version,
		Pattern:   u,
	}, "", "  ")
}
