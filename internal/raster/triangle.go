package raster

import (
	"image"
	"math"
)

// RasterizeTriangle fills one projected triangle with z-buffering, flat
// shading, sRGB-correct lighting, and ACES tone mapping. The base color is
// either a bilinear texture sample modulated by the tint or the tint alone.
//
// This is the hot path; the pixel loop allocates nothing.
func RasterizeTriangle(
	fb *FrameBuffer,
	px, py, pz []float64,
	uvs [][2]float64,
	vi [3]int,
	tex *image.NRGBA,
	tint Tint,
	lc *LightConfig,
) {
	nv := len(px)
	for _, i := range vi {
		if i < 0 || i >= nv {
			return
		}
	}

	x0, y0, z0 := px[vi[0]], py[vi[0]], pz[vi[0]]
	x1, y1, z1 := px[vi[1]], py[vi[1]], pz[vi[1]]
	x2, y2, z2 := px[vi[2]], py[vi[2]], pz[vi[2]]

	u0, v0 := uvs[vi[0]][0], uvs[vi[0]][1]
	u1, v1 := uvs[vi[1]][0], uvs[vi[1]][1]
	u2, v2 := uvs[vi[2]][0], uvs[vi[2]][1]

	// Face normal in view space for flat shading.
	e1x, e1y, e1z := x1-x0, y1-y0, z1-z0
	e2x, e2y, e2z := x2-x0, y2-y0, z2-z0
	nx := e1y*e2z - e1z*e2y
	ny := e1z*e2x - e1x*e2z
	nz := e1x*e2y - e1y*e2x
	nl := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if nl < 1e-8 {
		return
	}
	invNL := 1.0 / nl

	ndlMain := math.Abs((nx*lc.LightDir[0] + ny*lc.LightDir[1] + nz*lc.LightDir[2]) * invNL)
	ndlRim := math.Abs((nx*lc.RimDir[0] + ny*lc.RimDir[1] + nz*lc.RimDir[2]) * invNL)
	hemi := (1.0-math.Abs(ny*invNL))*0.5 + 0.5
	ndh := (nx*lc.HalfMain[0] + ny*lc.HalfMain[1] + nz*lc.HalfMain[2]) * invNL
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt
	shade := lc.Ambient + hemi*lc.Hemi + ndlMain*lc.Direct + ndlRim*lc.Rim + spec

	// Screen-space bounding box, clipped to the framebuffer.
	w, h := fb.Width, fb.Height
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1
	if minX < 0 {
		minX = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup.
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	// Tint in linear space.
	tintR := srgbToLinear[tint.R]
	tintG := srgbToLinear[tint.G]
	tintB := srgbToLinear[tint.B]

	exposure := lc.Exposure
	invGamma := lc.InvGamma

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * w
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.Depth[zIdx] {
				continue
			}

			lr, lg, lb := tintR, tintG, tintB
			alpha := tint.A
			if tex != nil {
				u := w0*u0 + w1*u1 + w2*u2
				v := w0*v0 + w1*v1 + w2*v2
				cr, cg, cb, ca := SampleTexture(tex, u, v)
				if ca < 8 {
					continue
				}
				lr *= srgbToLinear[cr]
				lg *= srgbToLinear[cg]
				lb *= srgbToLinear[cb]
				alpha = ca
			}
			fb.Depth[zIdx] = z

			sr := ACESTonemap(lr * shade * exposure)
			sg := ACESTonemap(lg * shade * exposure)
			sb := ACESTonemap(lb * shade * exposure)

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(math.Pow(sr, invGamma) * 255)
			fb.Color[pxIdx+1] = clamp255(math.Pow(sg, invGamma) * 255)
			fb.Color[pxIdx+2] = clamp255(math.Pow(sb, invGamma) * 255)
			fb.Color[pxIdx+3] = alpha
		}
	}
}
