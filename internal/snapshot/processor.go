// Package snapshot renders measurement presets to WebP images offline,
// one file per case, using a worker pool.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"fracture-viewer/internal/camera"
	"fracture-viewer/internal/config"
	"fracture-viewer/internal/postprocess"
	"fracture-viewer/internal/preset"
	"fracture-viewer/internal/raster"
	"fracture-viewer/internal/sceneview"
	"fracture-viewer/internal/texture"
)

// Result holds the outcome of rendering one case.
type Result struct {
	Name    string
	Path    string
	Success bool
	Error   string
}

// Run renders all cases using a worker pool and reports per-case results.
func Run(cfg config.Config, cases []preset.Case) []Result {
	total := len(cases)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter.
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f cases/sec\n", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	texCache := texture.NewCache()

	caseChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range caseChan {
				results[idx] = processCase(cfg, texCache, cases[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range cases {
		caseChan <- i
	}
	close(caseChan)

	wg.Wait()
	close(done)

	return results
}

func processCase(cfg config.Config, texCache *texture.Cache, c preset.Case) Result {
	view := sceneview.New(c.Measurements, cfg.BoneRadius, cfg.Segments, texCache.Resolve(cfg.TexturePath))

	// One anterior frame per case, matching what the interactive viewer
	// opens with.
	cam := camera.New(c.Measurements.FracturePosition)

	img := raster.Render(view.Instances(), cam.View(), cam.Target(), view.Span(), cfg.RenderSize, cfg.Supersample)
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	outPath := filepath.Join(cfg.OutputDir, fileName(c.Name))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Name: c.Name, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Name: c.Name, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Name: c.Name, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Name: c.Name, Path: outPath, Success: true}
}

// fileName turns a case name into a filesystem-safe WebP file name.
func fileName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, s)
	s = strings.Trim(s, "-")
	if s == "" {
		s = "case"
	}
	return s + ".webp"
}
