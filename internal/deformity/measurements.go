// Package deformity computes the 3D placement of two bone fragments on
// either side of a fracture from a set of clinical displacement and
// angulation measurements.
//
// Axis conventions: the proximal end of the bone is the origin, the shaft
// extends toward −Y. +X is medial, +Z is anterior. Angulation signs follow
// the clinical convention: +valgus about Z, +anteversion about X, +external
// rotation about the long axis Y.
package deformity

import (
	"math"
	"strconv"
	"strings"
)

// Measurements is one complete set of fracture measurements. Lengths and
// displacements are in millimetres, angulations in degrees. The set is
// replaced wholesale on every edit; the transform never sees a partial
// update.
type Measurements struct {
	FractureLength   float64 `yaml:"fracture_length" json:"fractureLength"`
	FracturePosition float64 `yaml:"fracture_position" json:"fracturePosition"`

	MedialDisplacement   float64 `yaml:"medial_displacement" json:"medialDisplacement"`
	AnteriorDisplacement float64 `yaml:"anterior_displacement" json:"anteriorDisplacement"`
	ProximalDisplacement float64 `yaml:"proximal_displacement" json:"proximalDisplacement"`

	ValgusAngulation      float64 `yaml:"valgus_angulation" json:"valgusAngulation"`
	AnteversionAngulation float64 `yaml:"anteversion_angulation" json:"anteversionAngulation"`
	RotationalAngulation  float64 `yaml:"rotational_angulation" json:"rotationalAngulation"`
}

// DistalLength returns the length of the distal fragment. It goes negative
// when the fracture position exceeds the bone length; that degenerate case
// is passed through rather than clamped, so exploratory input keeps working.
func (m Measurements) DistalLength() float64 {
	return m.FractureLength - m.FracturePosition
}

// ParseField converts one form-field edit to a measurement value. Anything
// that does not parse as a finite number coerces to zero; the form never
// surfaces a validation error.
func ParseField(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
