package grid

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownHazardType = errors.New("unknown hazard type")

type HazardType string

const (
	HazardFire     HazardType = "fire"
	HazardSmoke    HazardType = "smoke"
	HazardWater    HazardType = "water"
	HazardChemical HazardType = "chemical"
	HazardBlocked  HazardType = "blocked"
)

const (
	DefaultHazardType = HazardFire
	DefaultIntensity  = 1
)

var hazardTypes = []HazardType{HazardFire, HazardSmoke, HazardWater, HazardChemical, HazardBlocked}

// HazardTypes returns the selectable types in display order.
func HazardTypes() []HazardType {
	out := make([]HazardType, len(hazardTypes))
	copy(out, hazardTypes)
	return out
}

func (t HazardType) Known() bool {
	for _, known := range hazardTypes {
		if t == known {
			return true
		}
	}
	return false
}

func ParseHazardType(raw string) (HazardType, error) {
	t := HazardType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownHazardType, raw)
	}
	return t, nil
}

// Hazard is the descriptor mirrored to the backend. Type is kept as a
// free string so hazards seeded from the backend may carry types this
// client does not know.
type Hazard struct {
	Pos       Point      `json:"pos"`
	Type      HazardType `json:"type"`
	Intensity int        `json:"intensity"`
}

func NewHazard(p Point, t HazardType) Hazard {
	return Hazard{Pos: p, Type: t, Intensity: DefaultIntensity}
}
