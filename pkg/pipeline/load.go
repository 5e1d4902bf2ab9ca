package pipeline

import (
	"fmt"

	"github.com/foldline/foldline/pkg/building"
)

// Load resolves building parameters from the options. In-memory Params
// take precedence over a building file; either way the returned params
// are validated with defaults applied.
func Load(opts Options) (*building.Params, error) {
	if opts.Params != nil {
		// Copy so validation defaults don't mutate the caller's struct.
		p := *opts.Params
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return &p, nil
	}

	if opts.BuildingFile == "" {
		return nil, fmt.Errorf("building file or params is required")
	}
	return building.Load(opts.BuildingFile)
}
