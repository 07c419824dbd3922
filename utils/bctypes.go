package utils

import (
	"fmt"
	"strings"
)

// BCType represents the Fluent boundary condition types a face zone can carry.
// The numeric value is the Fluent zone-type code written in face section headers.
type BCType uint16

// Boundary condition constants, valued with the Fluent zone-type codes
const (
	// BCNone indicates no boundary condition has been assigned
	BCNone BCType = 0

	BCInterior         BCType = 2  // Interior faces, two adjacent cells
	BCWall             BCType = 3  // Wall
	BCPressureInlet    BCType = 4  // Pressure inlet
	BCPressureOutlet   BCType = 5  // Pressure outlet
	BCSymmetry         BCType = 7  // Symmetry plane
	BCPeriodicShadow   BCType = 8  // Shadow side of a periodic pair
	BCPressureFarfield BCType = 9  // Pressure far-field
	BCVelocityInlet    BCType = 10 // Velocity inlet
	BCPeriodic         BCType = 12 // Periodic (master side)
	BCFan              BCType = 14 // Intake fan
	BCMassFlowInlet    BCType = 20 // Mass flow inlet
	BCInterface        BCType = 24 // Interface between zones
	BCOutflow          BCType = 36 // Outflow
	BCAxis             BCType = 37 // Axis
)

var bcLabels = map[BCType]string{
	BCNone:             "none",
	BCInterior:         "interior",
	BCWall:             "wall",
	BCPressureInlet:    "pressure-inlet",
	BCPressureOutlet:   "pressure-outlet",
	BCSymmetry:         "symmetry",
	BCPeriodicShadow:   "shadow",
	BCPressureFarfield: "pressure-far-field",
	BCVelocityInlet:    "velocity-inlet",
	BCPeriodic:         "periodic",
	BCFan:              "intake-fan",
	BCMassFlowInlet:    "mass-flow-inlet",
	BCInterface:        "interface",
	BCOutflow:          "outflow",
	BCAxis:             "axis",
}

// String returns the Fluent label of a BCType, as written in the zone table
func (bc BCType) String() string {
	if name, ok := bcLabels[bc]; ok {
		return name
	}
	return fmt.Sprintf("bc-%d", uint16(bc))
}

// Code returns the Fluent zone-type code
func (bc BCType) Code() int { return int(bc) }

// IsValid reports whether bc is one of the supported Fluent zone types
func (bc BCType) IsValid() bool {
	_, ok := bcLabels[bc]
	return ok && bc != BCNone
}

// BCNameMap provides a mapping from boundary condition names to BCType
// Keys are lowercase for case-insensitive matching, '_' and '-' are equivalent
var BCNameMap = map[string]BCType{
	"interior":           BCInterior,
	"wall":               BCWall,
	"pressure-inlet":     BCPressureInlet,
	"pressure-outlet":    BCPressureOutlet,
	"symmetry":           BCSymmetry,
	"shadow":             BCPeriodicShadow,
	"periodic-shadow":    BCPeriodicShadow,
	"pressure-far-field": BCPressureFarfield,
	"pressure-farfield":  BCPressureFarfield,
	"farfield":           BCPressureFarfield,
	"velocity-inlet":     BCVelocityInlet,
	"periodic":           BCPeriodic,
	"intake-fan":         BCFan,
	"fan":                BCFan,
	"mass-flow-inlet":    BCMassFlowInlet,
	"interface":          BCInterface,
	"outflow":            BCOutflow,
	"axis":               BCAxis,
}

// ParseBCName converts a boundary condition name string to BCType
// The matching is case-insensitive and trims whitespace
func ParseBCName(name string) (BCType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")

	if bcType, ok := BCNameMap[key]; ok {
		return bcType, nil
	}
	return BCNone, fmt.Errorf("unknown boundary condition type %q", name)
}
