package main

import (
	"image/color"
	"strconv"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"fracture-viewer/internal/deformity"
	"fracture-viewer/internal/preset"
)

const panelWidth = 240

// Field order in the form, top to bottom.
const (
	fieldFractureLength = iota
	fieldFracturePosition
	fieldMedialDisplacement
	fieldAnteriorDisplacement
	fieldProximalDisplacement
	fieldValgusAngulation
	fieldAnteversionAngulation
	fieldRotationalAngulation
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Bone length (mm)",
	"Fracture position (mm)",
	"Medial displacement (mm)",
	"Anterior displacement (mm)",
	"Proximal displacement (mm)",
	"Valgus angulation (deg)",
	"Anteversion angulation (deg)",
	"Rotation angulation (deg)",
}

// measurementForm owns the side-panel widgets. Every committed edit marks
// the game dirty; the game then re-reads the whole form as one set.
type measurementForm struct {
	ui     *ebitenui.UI
	inputs [fieldCount]*widget.TextInput

	cameraCaption *widget.Text

	// suppress blocks change handlers while the form itself is being
	// written to (preset application).
	suppress bool
}

func solidNineSlice(c color.Color) *imageui.NineSlice {
	return imageui.NewNineSliceColor(c)
}

func newMeasurementForm(g *Game, lib preset.Library) *measurementForm {
	f := &measurementForm{}

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	labelColor := &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.NRGBA{R: 38, G: 42, B: 48, A: 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchVertical:    true,
			}),
		),
	)

	for i := 0; i < fieldCount; i++ {
		panel.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(fieldLabels[i], &face, labelColor),
		))
		input := widget.NewTextInput(
			widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(panelWidth-24, 24)),
			widget.TextInputOpts.Image(&widget.TextInputImage{
				Idle:     solidNineSlice(color.RGBA{245, 245, 245, 255}),
				Disabled: solidNineSlice(color.RGBA{200, 200, 200, 255}),
			}),
			widget.TextInputOpts.Color(&widget.TextInputColor{
				Idle:     color.Black,
				Disabled: color.Gray{Y: 120},
				Caret:    color.Black,
			}),
			widget.TextInputOpts.Face(&face),
			widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
				if f.suppress {
					return
				}
				g.dirty = true
			}),
		)
		f.inputs[i] = input
		panel.AddChild(input)
	}

	btnImg := solidNineSlice(color.NRGBA{R: 58, G: 64, B: 74, A: 255})
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	f.cameraCaption = widget.NewText(
		widget.TextOpts.Text("View: anterior", &face, color.NRGBA{R: 180, G: 190, B: 200, A: 255}),
	)
	cameraBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Toggle camera", &face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p := g.cam.Toggle()
			f.cameraCaption.Label = "View: " + p.String()
			g.dirty = true
		}),
	)
	panel.AddChild(cameraBtn)
	panel.AddChild(f.cameraCaption)

	if len(lib.Cases) > 0 {
		panel.AddChild(widget.NewLabel(
			widget.LabelOpts.Text("Cases", &face, labelColor),
		))
		for _, c := range lib.Cases {
			c := c
			panel.AddChild(widget.NewButton(
				widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
				widget.ButtonOpts.Text(c.Name, &face, btnTextColor),
				widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
					f.setMeasurements(c.Measurements)
					g.dirty = true
				}),
			))
		}
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	f.ui = &ebitenui.UI{Container: root}
	return f
}

// measurements parses the whole form into one measurement set. Unparseable
// fields come back as zero.
func (f *measurementForm) measurements() deformity.Measurements {
	var v [fieldCount]float64
	for i, input := range f.inputs {
		v[i] = deformity.ParseField(input.GetText())
	}
	return deformity.Measurements{
		FractureLength:        v[fieldFractureLength],
		FracturePosition:      v[fieldFracturePosition],
		MedialDisplacement:    v[fieldMedialDisplacement],
		AnteriorDisplacement:  v[fieldAnteriorDisplacement],
		ProximalDisplacement:  v[fieldProximalDisplacement],
		ValgusAngulation:      v[fieldValgusAngulation],
		AnteversionAngulation: v[fieldAnteversionAngulation],
		RotationalAngulation:  v[fieldRotationalAngulation],
	}
}

// setMeasurements writes a measurement set into the form without firing the
// per-field change handlers.
func (f *measurementForm) setMeasurements(m deformity.Measurements) {
	f.suppress = true
	defer func() { f.suppress = false }()

	values := [fieldCount]float64{
		m.FractureLength,
		m.FracturePosition,
		m.MedialDisplacement,
		m.AnteriorDisplacement,
		m.ProximalDisplacement,
		m.ValgusAngulation,
		m.AnteversionAngulation,
		m.RotationalAngulation,
	}
	for i, input := range f.inputs {
		input.SetText(strconv.FormatFloat(values[i], 'f', -1, 64))
	}
}
