// Package raster is a small software renderer: orthographic projection,
// z-buffered flat-shaded triangles, sRGB-correct lighting with ACES tone
// mapping, optional supersampling. It draws lists of placed meshes and
// knows nothing about what the meshes represent.
package raster

import (
	"image"
	"math"

	"fracture-viewer/internal/bonemesh"
	"fracture-viewer/internal/mathutil"
)

// Tint is a per-instance base color. With a texture present it modulates
// the texels; without one it is the surface color.
type Tint struct {
	R, G, B, A uint8
}

// Instance is one placed mesh.
type Instance struct {
	Mesh  *bonemesh.Mesh
	World mathutil.Mat4
	Tint  Tint
	Tex   *image.NRGBA
}

// Render rasterizes the instances to an NRGBA image. view rotates world
// space into camera space, target is the look-at point (projected to the
// image center), and span is the world-space extent fitted into the image
// height. Pixels nothing covers stay transparent.
func Render(instances []Instance, view mathutil.Mat3, target mathutil.Vec3, span float64, size, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample

	margin := 16 * supersample
	if span < 0.001 {
		span = 0.001
	}
	scale := float64(renderSize-2*margin) / span
	cx := float64(renderSize) / 2
	cy := float64(renderSize) / 2

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	// Scratch projection buffers, grown as needed across instances.
	var px, py, pz []float64

	for _, inst := range instances {
		m := inst.Mesh
		if m == nil || len(m.Tris) == 0 {
			continue
		}

		n := len(m.Verts)
		if cap(px) < n {
			px = make([]float64, n)
			py = make([]float64, n)
			pz = make([]float64, n)
		}
		px, py, pz = px[:n], py[:n], pz[:n]

		for i, v := range m.Verts {
			wp := inst.World.MulPoint(mathutil.Vec3{v[0], v[1], v[2]})
			cp := view.MulVec3(wp.Sub(target))
			px[i] = cx + cp[0]*scale
			py[i] = cy - cp[1]*scale
			pz[i] = cp[2]
		}

		for _, tri := range m.Tris {
			RasterizeTriangle(fb, px, py, pz, m.UVs, tri.VI, inst.Tex, inst.Tint, &lc)
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	copy(img.Pix, fb.Color)
	return img
}

// FitSpan returns a framing extent that keeps the whole bone in view with
// room for displacement: the bone length plus the largest linear offset,
// padded a quarter out.
func FitSpan(fractureLength, maxDisplacement float64) float64 {
	span := math.Abs(fractureLength) + math.Abs(maxDisplacement)
	if span < 1 {
		span = 1
	}
	return span * 1.25
}
