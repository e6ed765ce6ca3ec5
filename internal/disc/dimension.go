package disc

import (
	"fmt"
	"strings"
)

// Dimension is one of the four DISC behavioral dimensions.
type Dimension int

const (
	Dominance Dimension = iota
	Influence
	Steadiness
	Compliance
)

// DimensionCount is the number of DISC dimensions.
const DimensionCount = 4

// DimensionInfo is the associated data for a dimension.
type DimensionInfo struct {
	Code  string // single-letter code: D, I, S, C
	Name  string // display name
	Key   string // lower-case identifier used in JSON and storage
	Color string // hex color used by charts and the certificate
}

var dimensionInfo = [DimensionCount]DimensionInfo{
	Dominance:  {Code: "D", Name: "Dominance", Key: "dominance", Color: "#3B82F6"},
	Influence:  {Code: "I", Name: "Influence", Key: "influence", Color: "#10B981"},
	Steadiness: {Code: "S", Name: "Steadiness", Key: "steadiness", Color: "#F59E0B"},
	Compliance: {Code: "C", Name: "Compliance", Key: "compliance", Color: "#6366F1"},
}

// AllDimensions returns all dimensions in canonical D, I, S, C order.
func AllDimensions() []Dimension {
	return []Dimension{Dominance, Influence, Steadiness, Compliance}
}

// Valid reports whether d is one of the four dimensions.
func (d Dimension) Valid() bool {
	return d >= Dominance && d <= Compliance
}

// Info returns the associated data for d.
func (d Dimension) Info() DimensionInfo {
	if !d.Valid() {
		return DimensionInfo{Code: "?", Name: "Unknown", Key: "unknown", Color: "#94A3B8"}
	}
	return dimensionInfo[d]
}

// Code returns the single-letter code.
func (d Dimension) Code() string { return d.Info().Code }

// Name returns the display name.
func (d Dimension) Name() string { return d.Info().Name }

// Key returns the lower-case identifier.
func (d Dimension) Key() string { return d.Info().Key }

// Color returns the hex color.
func (d Dimension) Color() string { return d.Info().Color }

func (d Dimension) String() string { return d.Name() }

// ParseDimension accepts a code ("D"), a key ("dominance") or a name ("Dominance").
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	for _, d := range AllDimensions() {
		info := dimensionInfo[d]
		if strings.EqualFold(s, info.Code) || strings.EqualFold(s, info.Key) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown dimension %q", s)
}

// MarshalText encodes a dimension as its single-letter code.
func (d Dimension) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid dimension %d", int(d))
	}
	return []byte(d.Code()), nil
}

// UnmarshalText decodes a code, key or name.
func (d *Dimension) UnmarshalText(text []byte) error {
	parsed, err := ParseDimension(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
