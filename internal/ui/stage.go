package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// imageStage hosts the displayed image and exposes the property surface the
// transition engine drives: horizontal offset, opacity, and scale. All
// methods run on the Fyne thread.
type imageStage struct {
	widget.BaseWidget

	img    *canvas.Image
	offset float32 // fraction of the stage width, 0 = centred
	scale  float32
}

func newImageStage() *imageStage {
	s := &imageStage{
		img:   &canvas.Image{},
		scale: 1,
	}
	s.img.FillMode = canvas.ImageFillContain
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer is a mandatory method for a Fyne widget.
func (s *imageStage) CreateRenderer() fyne.WidgetRenderer {
	return &imageStageRenderer{stage: s}
}

// SetOffset implements transition.Stage.
func (s *imageStage) SetOffset(frac float32) {
	s.offset = frac
	s.Refresh()
}

// SetOpacity implements transition.Stage.
func (s *imageStage) SetOpacity(opacity float32) {
	s.img.Translucency = float64(1 - opacity)
	canvas.Refresh(s.img)
}

// SetScale implements transition.Stage.
func (s *imageStage) SetScale(scale float32) {
	s.scale = scale
	s.Refresh()
}

// Install implements transition.Stage. A nil image clears the display.
func (s *imageStage) Install(img image.Image) {
	s.img.Image = img
	s.img.Refresh()
}

type imageStageRenderer struct {
	stage *imageStage
}

func (r *imageStageRenderer) Layout(size fyne.Size) {
	s := r.stage
	w := size.Width * s.scale
	h := size.Height * s.scale
	x := s.offset*size.Width + (size.Width-w)/2
	y := (size.Height - h) / 2
	s.img.Move(fyne.NewPos(x, y))
	s.img.Resize(fyne.NewSize(w, h))
}

func (r *imageStageRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 240)
}

func (r *imageStageRenderer) Refresh() {
	r.Layout(r.stage.Size())
	canvas.Refresh(r.stage.img)
}

func (r *imageStageRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.stage.img}
}

func (r *imageStageRenderer) Destroy() {}
