// Package bonemesh generates the triangle meshes the rasterizer draws: the
// tapered frustum solids standing in for bone shafts, plus the viewer's
// ground grid and fracture-plane marker.
package bonemesh

import (
	"math"

	"fracture-viewer/internal/deformity"
)

// Triangle indexes three vertices of a Mesh.
type Triangle struct {
	VI [3]int
}

// Mesh holds tessellated geometry in model space. UVs are per-vertex.
type Mesh struct {
	Verts [][3]float64
	UVs   [][2]float64
	Tris  []Triangle
}

// Frustum tessellates a cone-like solid with independent top and bottom
// radii. The axis runs along Y with the solid centered at the origin: the
// top ring sits at +length/2 (proximal-facing), the bottom at −length/2.
// A negative length simply flips the rings, producing the inverted solid
// the degenerate fracture-position case calls for.
func Frustum(dim deformity.SegmentDim, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}

	m := &Mesh{}
	half := dim.Length / 2

	// Two rings of segments+1 vertices; the seam vertex is duplicated so the
	// texture can wrap without bleeding.
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		c, s := math.Cos(a), math.Sin(a)
		u := float64(i) / float64(segments)

		m.Verts = append(m.Verts, [3]float64{dim.RadiusTop * c, half, dim.RadiusTop * s})
		m.UVs = append(m.UVs, [2]float64{u, 0})
		m.Verts = append(m.Verts, [3]float64{dim.RadiusBottom * c, -half, dim.RadiusBottom * s})
		m.UVs = append(m.UVs, [2]float64{u, 1})
	}

	for i := 0; i < segments; i++ {
		t0 := i * 2
		b0 := i*2 + 1
		t1 := (i + 1) * 2
		b1 := (i+1)*2 + 1
		m.Tris = append(m.Tris,
			Triangle{VI: [3]int{t0, b0, t1}},
			Triangle{VI: [3]int{t1, b0, b1}},
		)
	}

	// End caps: one center vertex each, fanned to the ring.
	topCenter := len(m.Verts)
	m.Verts = append(m.Verts, [3]float64{0, half, 0})
	m.UVs = append(m.UVs, [2]float64{0.5, 0})
	bottomCenter := len(m.Verts)
	m.Verts = append(m.Verts, [3]float64{0, -half, 0})
	m.UVs = append(m.UVs, [2]float64{0.5, 1})

	for i := 0; i < segments; i++ {
		m.Tris = append(m.Tris,
			Triangle{VI: [3]int{topCenter, i * 2, (i + 1) * 2}},
			Triangle{VI: [3]int{bottomCenter, (i+1)*2 + 1, i*2 + 1}},
		)
	}

	return m
}

// Disc builds a flat circle in the XZ plane, used to mark the fracture
// plane at the pivot.
func Disc(radius float64, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}

	m := &Mesh{}
	m.Verts = append(m.Verts, [3]float64{0, 0, 0})
	m.UVs = append(m.UVs, [2]float64{0.5, 0.5})
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		c, s := math.Cos(a), math.Sin(a)
		m.Verts = append(m.Verts, [3]float64{radius * c, 0, radius * s})
		m.UVs = append(m.UVs, [2]float64{0.5 + c/2, 0.5 + s/2})
	}
	for i := 1; i <= segments; i++ {
		m.Tris = append(m.Tris, Triangle{VI: [3]int{0, i, i + 1}})
	}
	return m
}

// Grid builds a square reference grid of thin quads in the XZ plane,
// extent units out from the origin in each direction, one line per step.
func Grid(extent, step, width float64) *Mesh {
	m := &Mesh{}
	half := width / 2

	addQuad := func(x0, z0, x1, z1 float64) {
		i := len(m.Verts)
		m.Verts = append(m.Verts,
			[3]float64{x0, 0, z0},
			[3]float64{x1, 0, z0},
			[3]float64{x1, 0, z1},
			[3]float64{x0, 0, z1},
		)
		m.UVs = append(m.UVs, [2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 1}, [2]float64{0, 1})
		m.Tris = append(m.Tris,
			Triangle{VI: [3]int{i, i + 1, i + 2}},
			Triangle{VI: [3]int{i, i + 2, i + 3}},
		)
	}

	for v := -extent; v <= extent+step/2; v += step {
		addQuad(-extent, v-half, extent, v+half) // line along X
		addQuad(v-half, -extent, v+half, extent) // line along Z
	}
	return m
}
