// Package texture loads an optional bone-surface texture. Missing or
// unreadable textures are not fatal; the renderer falls back to flat tints.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"sync"

	_ "image/jpeg"
	_ "image/png"

	_ "github.com/ftrvxmtrx/tga"
)

// Load reads a PNG, JPEG, or TGA file and returns an NRGBA image.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

// Cache memoizes loads by path. A failed load is cached as nil so the
// render loop does not retry every frame.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*image.NRGBA
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]*image.NRGBA)}
}

// Resolve returns the texture for path, or nil when it cannot be loaded.
func (c *Cache) Resolve(path string) *image.NRGBA {
	if path == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if img, ok := c.entries[path]; ok {
		return img
	}
	img, err := Load(path)
	if err != nil {
		img = nil
	}
	c.entries[path] = img
	return img
}

// toNRGBA converts any decoded image to NRGBA format.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha channel; draw and force opaque.
		draw.Draw(dst, b, src, b.Min, draw.Src)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.Pix[dst.PixOffset(x, y)+3] = 255
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				i := dst.PixOffset(x, y)
				dst.Pix[i] = c.R
				dst.Pix[i+1] = c.G
				dst.Pix[i+2] = c.B
				dst.Pix[i+3] = c.A
			}
		}
	}
	return dst
}
