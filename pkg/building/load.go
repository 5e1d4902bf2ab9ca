package building

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/foldline/foldline/pkg/errors"
)

// Load reads a building definition from a TOML file, validates it, and
// applies defaults. See the repository's examples directory for the file
// format.
func Load(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "building file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidParams, err, "reading %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a TOML building definition.
func Parse(data []byte) (*Params, error) {
	var p Params
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidParams, err, "parsing building definition")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
