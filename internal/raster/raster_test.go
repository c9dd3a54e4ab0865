package raster

import (
	"testing"

	"fracture-viewer/internal/bonemesh"
	"fracture-viewer/internal/deformity"
	"fracture-viewer/internal/mathutil"
)

func coveredPixels(img []uint8) int {
	n := 0
	for i := 3; i < len(img); i += 4 {
		if img[i] > 0 {
			n++
		}
	}
	return n
}

func TestRenderCoversPixels(t *testing.T) {
	mesh := bonemesh.Frustum(deformity.SegmentDim{Length: 100, RadiusTop: 14, RadiusBottom: 12}, 16)

	img := Render(
		[]Instance{{
			Mesh:  mesh,
			World: mathutil.Mat4Identity(),
			Tint:  Tint{R: 230, G: 225, B: 210, A: 255},
		}},
		mathutil.Mat3Identity(),
		mathutil.Vec3{},
		200,
		128, 1,
	)

	if img.Bounds().Dx() != 128 {
		t.Fatalf("image size %d, expected 128", img.Bounds().Dx())
	}
	if n := coveredPixels(img.Pix); n == 0 {
		t.Fatal("frustum rendered no pixels")
	}
}

func TestRenderEmptySceneIsTransparent(t *testing.T) {
	img := Render(nil, mathutil.Mat3Identity(), mathutil.Vec3{}, 100, 64, 1)
	if n := coveredPixels(img.Pix); n != 0 {
		t.Fatalf("empty scene covered %d pixels", n)
	}
}

// The nearer of two overlapping triangles wins the depth test.
func TestDepthOrdering(t *testing.T) {
	quad := func(z float64) *bonemesh.Mesh {
		return &bonemesh.Mesh{
			Verts: [][3]float64{{-50, -50, z}, {50, -50, z}, {50, 50, z}, {-50, 50, z}},
			UVs:   [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
			Tris: []bonemesh.Triangle{
				{VI: [3]int{0, 1, 2}},
				{VI: [3]int{0, 2, 3}},
			},
		}
	}

	// Larger view-space Z is nearer the camera.
	img := Render(
		[]Instance{
			{Mesh: quad(10), World: mathutil.Mat4Identity(), Tint: Tint{R: 255, A: 255}},
			{Mesh: quad(-10), World: mathutil.Mat4Identity(), Tint: Tint{G: 255, A: 255}},
		},
		mathutil.Mat3Identity(),
		mathutil.Vec3{},
		100,
		64, 1,
	)

	c := img.NRGBAAt(32, 32)
	if c.R <= c.G {
		t.Fatalf("far quad won the depth test: %+v", c)
	}
}

func TestSupersampleScalesBuffer(t *testing.T) {
	img := Render(nil, mathutil.Mat3Identity(), mathutil.Vec3{}, 100, 64, 2)
	if img.Bounds().Dx() != 128 {
		t.Fatalf("supersampled size %d, expected 128", img.Bounds().Dx())
	}
}

func TestShadeRespondsToLightDirection(t *testing.T) {
	lc := DefaultLightConfig()

	facing := lc.Shade(lc.LightDir)
	orthogonal := lc.Shade(mathutil.Vec3{lc.LightDir[1], -lc.LightDir[0], 0}.Normalize())

	if facing <= orthogonal {
		t.Fatalf("light-facing shade %v not brighter than orthogonal %v", facing, orthogonal)
	}
	if orthogonal <= 0 {
		t.Fatalf("ambient terms should keep shade positive, got %v", orthogonal)
	}
}

func TestFitSpan(t *testing.T) {
	if s := FitSpan(300, 40); s != 425 {
		t.Fatalf("FitSpan(300, 40) = %v, expected 425", s)
	}
	if s := FitSpan(0, 0); s < 1 {
		t.Fatalf("FitSpan floor broken: %v", s)
	}
}
