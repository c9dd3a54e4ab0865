package deformity

import (
	"fracture-viewer/internal/mathutil"
)

// Taper factors for the frustum solids: the shaft narrows from the base
// radius at the proximal end to 0.9·R at the fracture and 0.8·R at the
// distal end.
const (
	FractureTaper = 0.9
	DistalTaper   = 0.8
)

// DefaultBaseRadius is the shaft radius in mm at the proximal end.
const DefaultBaseRadius = 14.0

// SegmentDim describes one frustum solid: its length along the long axis and
// the radii at its upper (proximal-facing) and lower (distal-facing) ends.
type SegmentDim struct {
	Length       float64
	RadiusTop    float64
	RadiusBottom float64
}

// SegmentDims splits the bone at the fracture site into the two frustum
// solids. A fracture position beyond the bone length yields a negative
// distal length; the caller gets it as-is.
func SegmentDims(m Measurements, baseRadius float64) (proximal, distal SegmentDim) {
	proximal = SegmentDim{
		Length:       m.FracturePosition,
		RadiusTop:    baseRadius,
		RadiusBottom: baseRadius * FractureTaper,
	}
	distal = SegmentDim{
		Length:       m.DistalLength(),
		RadiusTop:    baseRadius * FractureTaper,
		RadiusBottom: baseRadius * DistalTaper,
	}
	return proximal, distal
}

// Pose is a rigid placement: position of the solid's centroid and its
// rotation, both in the world (proximal) frame.
type Pose struct {
	Position mathutil.Vec3
	Rotation mathutil.Mat3
}

// PosePair holds the placement of both fragments.
type PosePair struct {
	Proximal Pose
	Distal   Pose
}

// AngulationRotation builds the combined angulation as three single-axis
// rotations composed in the fixed order Rz(valgus) · Rx(anteversion) ·
// Ry(rotation). The order is part of the contract: combined angulations are
// not order-independent, and displacement directions depend on it.
func AngulationRotation(m Measurements) mathutil.Mat3 {
	rz := mathutil.RotZ(mathutil.Deg2Rad(m.ValgusAngulation))
	rx := mathutil.RotX(mathutil.Deg2Rad(m.AnteversionAngulation))
	ry := mathutil.RotY(mathutil.Deg2Rad(m.RotationalAngulation))
	return mathutil.Mat3Mul(mathutil.Mat3Mul(rz, rx), ry)
}

// Displacement returns the linear offsets in the distal fragment's own frame.
// +medial along X, +anterior along Z; a positive proximal displacement moves
// the fragment back up the shaft (+Y), shortening the bone.
func Displacement(m Measurements) mathutil.Vec3 {
	return mathutil.Vec3{m.MedialDisplacement, m.ProximalDisplacement, m.AnteriorDisplacement}
}

// PivotPosition is the fracture site in the proximal frame, the center the
// angulation pivots about.
func PivotPosition(m Measurements) mathutil.Vec3 {
	return mathutil.Vec3{0, -m.FracturePosition, 0}
}

// AnatomicalDistalPosition is the distal centroid in undisplaced alignment,
// immediately distal to the proximal solid.
func AnatomicalDistalPosition(m Measurements) mathutil.Vec3 {
	return mathutil.Vec3{0, -(m.FracturePosition + m.DistalLength()/2), 0}
}

// ComputePose is the pure form of the transform: it maps one complete
// Measurement Set to the final placement of both fragments. The distal
// fragment is rotated about the fracture site, then displaced along its own
// now-tilted axes, which is how the displacements are measured clinically.
func ComputePose(m Measurements) PosePair {
	r := AngulationRotation(m)

	restOffset := mathutil.Vec3{0, -m.DistalLength() / 2, 0}
	offset := r.MulVec3(restOffset.Add(Displacement(m)))

	return PosePair{
		Proximal: Pose{
			Position: mathutil.Vec3{0, -m.FracturePosition / 2, 0},
			Rotation: mathutil.Mat3Identity(),
		},
		Distal: Pose{
			Position: PivotPosition(m).Add(offset),
			Rotation: r,
		},
	}
}
