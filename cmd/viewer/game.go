package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"fracture-viewer/internal/camera"
	"fracture-viewer/internal/config"
	"fracture-viewer/internal/postprocess"
	"fracture-viewer/internal/preset"
	"fracture-viewer/internal/raster"
	"fracture-viewer/internal/sceneview"
	"fracture-viewer/internal/texture"
)

// Game wires the measurement form, the camera, and the scene together. The
// scene is re-rendered only when something changed; frames in between just
// blit the cached image.
type Game struct {
	cfg config.Config

	ui   *ebitenui.UI
	form *measurementForm

	view *sceneview.Builder
	cam  *camera.Camera

	rendered *ebiten.Image
	dirty    bool
}

func NewGame(cfg config.Config, lib preset.Library) *Game {
	tex := texture.NewCache().Resolve(cfg.TexturePath)

	initial := preset.Default().Cases[0].Measurements
	if len(lib.Cases) > 0 {
		initial = lib.Cases[0].Measurements
	}

	g := &Game{
		cfg:   cfg,
		view:  sceneview.New(initial, cfg.BoneRadius, cfg.Segments, tex),
		cam:   camera.New(initial.FracturePosition),
		dirty: true,
	}
	g.form = newMeasurementForm(g, lib)
	g.form.setMeasurements(initial)
	g.ui = g.form.ui
	return g
}

func (g *Game) Update() error {
	g.ui.Update()

	if g.dirty {
		// Re-read the whole form: the transform always gets one complete,
		// consistent measurement set, never a field-level diff.
		m := g.form.measurements()
		g.view.Update(m)
		g.cam.SetTarget(m.FracturePosition)
		g.rerender()
		g.dirty = false
	}
	return nil
}

func (g *Game) rerender() {
	img := raster.Render(g.view.Instances(), g.cam.View(), g.cam.Target(), g.view.Span(), g.cfg.RenderSize, g.cfg.Supersample)
	if g.cfg.Supersample > 1 {
		img = postprocess.Downsample(img, g.cfg.RenderSize)
	}
	g.rendered = ebiten.NewImageFromImage(img)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 24, G: 27, B: 33, A: 255})

	if g.rendered != nil {
		viewportW := g.cfg.WindowWidth - panelWidth
		b := g.rendered.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(
			float64(viewportW-b.Dx())/2,
			float64(g.cfg.WindowHeight-b.Dy())/2,
		)
		screen.DrawImage(g.rendered, op)
	}

	g.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}
