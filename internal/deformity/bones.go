package deformity

import (
	"fracture-viewer/internal/mathutil"
	"fracture-viewer/internal/scene"
)

// Bones owns the scene nodes for the two fragments. The nodes are placement
// handles only; mesh geometry is built elsewhere from the segment dims.
type Bones struct {
	Root     *scene.Node
	Proximal *scene.Node
	Distal   *scene.Node

	ProximalDim SegmentDim
	DistalDim   SegmentDim
}

// NewBones creates the fragment nodes under root in undisplaced alignment.
func NewBones(root *scene.Node, m Measurements, baseRadius float64) *Bones {
	b := &Bones{Root: root}
	b.RebuildGeometry(m, baseRadius)
	return b
}

// RebuildGeometry replaces both fragment nodes and their dims. Called when
// fracture length or position change, since those alter the solids
// themselves rather than their placement. Old nodes are discarded.
func (b *Bones) RebuildGeometry(m Measurements, baseRadius float64) {
	if b.Proximal != nil {
		b.Proximal.Remove()
	}
	if b.Distal != nil {
		b.Distal.Remove()
	}

	b.ProximalDim, b.DistalDim = SegmentDims(m, baseRadius)

	b.Proximal = scene.NewNode()
	b.Proximal.SetLocalPosition(mathutil.Vec3{0, -m.FracturePosition / 2, 0})
	scene.Attach(b.Root, b.Proximal)

	b.Distal = scene.NewNode()
	b.Distal.SetLocalPosition(AnatomicalDistalPosition(m))
	scene.Attach(b.Root, b.Distal)
}

// ApplyDeformity places the distal node according to the measurements by
// rotating a temporary pivot frame at the fracture site and then displacing
// the fragment along its own axes. The distal node is reset to its
// anatomical pose first, so reapplying the same set never compounds.
func (b *Bones) ApplyDeformity(m Measurements) {
	// 1. Reset to undisplaced anatomical pose.
	if b.Distal.Parent() != b.Root {
		scene.Attach(b.Root, b.Distal)
	}
	b.Distal.SetLocalPosition(AnatomicalDistalPosition(m))
	b.Distal.SetLocalRotation(mathutil.Mat3Identity())

	// 2. Pivot frame at the fracture site.
	pivot := scene.NewNode()
	scene.Attach(b.Root, pivot)
	pivot.SetLocalPosition(PivotPosition(m))

	// 3. Move the distal fragment into the pivot frame without moving it
	// in space.
	scene.Attach(pivot, b.Distal)

	// 4. Angulate the pivot. The fragment swings around the fracture site
	// rather than its own centroid.
	pivot.SetLocalRotation(AngulationRotation(m))

	// 5. Displace along the fragment's own axes. Its local rotation inside
	// the pivot is identity, so a local-position add is exactly a
	// translation along the now-tilted axes.
	b.Distal.SetLocalPosition(b.Distal.LocalPosition().Add(Displacement(m)))

	// 6. Back to the root frame; the pivot is discarded.
	scene.Attach(b.Root, b.Distal)
	pivot.Remove()
}
