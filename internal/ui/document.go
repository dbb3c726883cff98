package ui

import (
	"image/color"

	"InkOverlay/internal/view"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

var (
	paperColor = color.NRGBA{R: 245, G: 246, B: 248, A: 255}
	gridColor  = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
)

// documentView stands in for the document viewer underneath the overlay:
// a ruled page whose rules follow the zoom factor.
type documentView struct {
	widget.BaseWidget
	zoom     view.ZoomSource
	gridSize float64 // canonical units
}

func newDocumentView(zoom view.ZoomSource) *documentView {
	d := &documentView{zoom: zoom, gridSize: 50}
	d.ExtendBaseWidget(d)
	return d
}

// pixel works in device pixels, where canonical * zoom == pixels.
func (d *documentView) pixel(x, y, _, _ int) color.Color {
	step := int(d.gridSize * d.zoom.Zoom())
	if step < 2 {
		step = 2
	}
	if x%step == 0 || y%step == 0 {
		return gridColor
	}
	return paperColor
}

func (d *documentView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRasterWithPixels(d.pixel))
}
