// Package sceneview assembles the render scene for one measurement set:
// the two bone solids placed by the deformity transform, a marker disc at
// the fracture plane, and a ground grid under the distal end.
package sceneview

import (
	"image"

	"fracture-viewer/internal/bonemesh"
	"fracture-viewer/internal/deformity"
	"fracture-viewer/internal/mathutil"
	"fracture-viewer/internal/raster"
	"fracture-viewer/internal/scene"
)

// Surface colors.
var (
	proximalTint = raster.Tint{R: 237, G: 230, B: 212, A: 255}
	distalTint   = raster.Tint{R: 222, G: 211, B: 188, A: 255}
	markerTint   = raster.Tint{R: 198, G: 62, B: 52, A: 255}
	gridTint     = raster.Tint{R: 74, G: 82, B: 92, A: 255}
)

// Builder owns the scene nodes and meshes and keeps them in sync with the
// latest measurement set. It is the only holder of live scene handles; the
// transform math itself stays in package deformity.
type Builder struct {
	baseRadius float64
	segments   int
	tex        *image.NRGBA

	root  *scene.Node
	bones *deformity.Bones

	proximalMesh *bonemesh.Mesh
	distalMesh   *bonemesh.Mesh
	marker       *bonemesh.Mesh
	grid         *bonemesh.Mesh

	last deformity.Measurements
}

// New builds the scene for the initial measurement set. tex is the optional
// bone-surface texture; nil renders flat tints.
func New(m deformity.Measurements, baseRadius float64, segments int, tex *image.NRGBA) *Builder {
	b := &Builder{
		baseRadius: baseRadius,
		segments:   segments,
		tex:        tex,
		root:       scene.NewNode(),
	}
	b.bones = deformity.NewBones(b.root, m, baseRadius)
	b.rebuildMeshes(m)
	b.last = m
	b.bones.ApplyDeformity(m)
	return b
}

// Update applies a new complete measurement set. Solids are retessellated
// only when the fracture length or position changed; placement-only edits
// reuse the existing meshes.
func (b *Builder) Update(m deformity.Measurements) {
	if m.FractureLength != b.last.FractureLength || m.FracturePosition != b.last.FracturePosition {
		b.bones.RebuildGeometry(m, b.baseRadius)
		b.rebuildMeshes(m)
	}
	b.last = m
	b.bones.ApplyDeformity(m)
}

func (b *Builder) rebuildMeshes(m deformity.Measurements) {
	b.proximalMesh = bonemesh.Frustum(b.bones.ProximalDim, b.segments)
	b.distalMesh = bonemesh.Frustum(b.bones.DistalDim, b.segments)
	b.marker = bonemesh.Disc(b.baseRadius*deformity.FractureTaper*1.35, b.segments)

	extent := m.FractureLength * 0.6
	if extent < 1 {
		extent = 1
	}
	b.grid = bonemesh.Grid(extent, extent/5, extent/120)
}

// Instances returns the placed meshes for the rasterizer, in draw order.
func (b *Builder) Instances() []raster.Instance {
	gridWorld := mathutil.FromMat3Translation(
		mathutil.Mat3Identity(),
		mathutil.Vec3{0, -b.last.FractureLength - b.baseRadius*2, 0},
	)
	markerWorld := mathutil.FromMat3Translation(
		mathutil.Mat3Identity(),
		deformity.PivotPosition(b.last),
	)

	return []raster.Instance{
		{Mesh: b.grid, World: gridWorld, Tint: gridTint},
		{Mesh: b.marker, World: markerWorld, Tint: markerTint},
		{Mesh: b.proximalMesh, World: b.bones.Proximal.World(), Tint: proximalTint, Tex: b.tex},
		{Mesh: b.distalMesh, World: b.bones.Distal.World(), Tint: distalTint, Tex: b.tex},
	}
}

// Measurements returns the set the scene currently reflects.
func (b *Builder) Measurements() deformity.Measurements { return b.last }

// Span returns the framing extent for the current measurement set.
func (b *Builder) Span() float64 {
	m := b.last
	maxDisp := m.MedialDisplacement
	for _, d := range []float64{m.AnteriorDisplacement, m.ProximalDisplacement} {
		if abs(d) > abs(maxDisp) {
			maxDisp = d
		}
	}
	return raster.FitSpan(m.FractureLength, maxDisp)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
