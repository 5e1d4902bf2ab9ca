package building

import (
	"fmt"

	"github.com/foldline/foldline/pkg/errors"
)

// Scale converts real-world feet into model-scale inches.
type Scale struct {
	// Ratio is the denominator of the model ratio (87 for HO's 1:87).
	Ratio float64 `json:"ratioToReal" toml:"ratio"`
}

// Common model railroad scales.
var (
	ScaleZ  = Scale{Ratio: 220}
	ScaleN  = Scale{Ratio: 160}
	ScaleHO = Scale{Ratio: 87}
	ScaleS  = Scale{Ratio: 64}
	ScaleO  = Scale{Ratio: 48}
)

// scaleNames maps well-known ratios to their letter designation.
var scaleNames = map[float64]string{
	220: "Z",
	160: "N",
	87:  "HO",
	64:  "S",
	48:  "O",
}

// ToModel converts feet to model-scale inches: feet × 12 / ratio.
func (s Scale) ToModel(feet float64) float64 {
	return feet * 12 / s.Ratio
}

// InchesToModel converts real-world inches (trim boards, moldings) to
// model-scale inches.
func (s Scale) InchesToModel(realInches float64) float64 {
	return realInches / s.Ratio
}

// Label returns a human-readable scale label, e.g. "HO (1:87)" or
// "1:100" for ratios without a letter designation.
func (s Scale) Label() string {
	if name, ok := scaleNames[s.Ratio]; ok {
		return fmt.Sprintf("%s (1:%.0f)", name, s.Ratio)
	}
	return fmt.Sprintf("1:%g", s.Ratio)
}

// Validate checks the ratio is usable.
func (s Scale) Validate() error {
	if s.Ratio != s.Ratio || s.Ratio <= 0 {
		return errors.New(errors.ErrCodeInvalidScale, "scale ratio must be positive, got %g", s.Ratio)
	}
	return nil
}
