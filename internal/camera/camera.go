// Package camera provides the viewer's two fixed camera placements. Both
// look at a fixed target near the fracture region; the user only toggles
// between them, there is no free orbit.
package camera

import (
	"fracture-viewer/internal/mathutil"
)

// Placement identifies one of the two fixed viewpoints.
type Placement int

const (
	// Anterior looks at the front of the limb, tilted slightly down.
	Anterior Placement = iota
	// Lateral looks from the side, a quarter turn around the long axis.
	Lateral
)

func (p Placement) String() string {
	switch p {
	case Anterior:
		return "anterior"
	case Lateral:
		return "lateral"
	default:
		return "unknown"
	}
}

// View matrices for the two placements: a gentle downward tilt, with the
// lateral view rotated 90° about the long axis first.
var (
	anteriorView = mathutil.Mat3Mul(mathutil.RotX(mathutil.Deg2Rad(-12)), mathutil.RotY(mathutil.Deg2Rad(8)))
	lateralView  = mathutil.Mat3Mul(mathutil.RotX(mathutil.Deg2Rad(-12)), mathutil.RotY(mathutil.Deg2Rad(98)))
)

// Camera holds the current placement and the look-at target.
type Camera struct {
	placement Placement
	target    mathutil.Vec3
}

// New returns an anterior-placement camera aimed at the fracture site.
func New(fracturePosition float64) *Camera {
	c := &Camera{}
	c.SetTarget(fracturePosition)
	return c
}

// SetTarget re-aims the camera at the fracture site for the given fracture
// position along the shaft.
func (c *Camera) SetTarget(fracturePosition float64) {
	c.target = mathutil.Vec3{0, -fracturePosition, 0}
}

// Toggle switches between the two placements and returns the new one.
func (c *Camera) Toggle() Placement {
	if c.placement == Anterior {
		c.placement = Lateral
	} else {
		c.placement = Anterior
	}
	return c.placement
}

func (c *Camera) Placement() Placement { return c.placement }

// View returns the world-to-camera rotation for the current placement.
func (c *Camera) View() mathutil.Mat3 {
	if c.placement == Lateral {
		return lateralView
	}
	return anteriorView
}

// Target returns the look-at point.
func (c *Camera) Target() mathutil.Vec3 { return c.target }
