package raster

import "math"

// FrameBuffer is the render target: interleaved RGBA color plus a depth
// value per pixel, kept as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	Depth  []float64 // per pixel, initialized to -inf, larger is nearer
}

// NewFrameBuffer allocates a transparent color buffer and a -inf depth buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	depth := make([]float64, n)
	for i := range depth {
		depth[i] = math.Inf(-1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		Depth:  depth,
	}
}
