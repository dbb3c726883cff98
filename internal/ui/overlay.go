package ui

import (
	"fmt"
	"image/color"
	"io"

	"InkOverlay/internal/config"
	"InkOverlay/internal/engine"
	"InkOverlay/internal/render"
	"InkOverlay/internal/state"
	"InkOverlay/internal/view"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// Overlay is a transparent drawing layer placed over a document view. It
// feeds mouse input to the engines and redraws from the path store.
type Overlay struct {
	widget.BaseWidget
	store      *state.PathStore
	controller *engine.Controller
	renderer   *render.Renderer
	zoom       stepper
	sketch     [][2]state.Point
	OnStatus   func(string)
}

// stepper is the part of a zoom model the scroll wheel drives.
type stepper interface {
	ZoomIn()
	ZoomOut()
}

var _ fyne.Widget = (*Overlay)(nil)
var _ desktop.Mouseable = (*Overlay)(nil)
var _ desktop.Hoverable = (*Overlay)(nil)
var _ fyne.Scrollable = (*Overlay)(nil)
var _ engine.Sketcher = (*Overlay)(nil)

// NewOverlay creates an overlay drawing into store. zoom is the document
// viewer's zoom factor; if it can also step the zoom, the scroll wheel
// zooms in and out.
func NewOverlay(store *state.PathStore, zoom view.ZoomSource, cfg config.Config) *Overlay {
	o := &Overlay{
		store:    store,
		renderer: render.NewRenderer(cfg.Style()),
	}
	o.zoom, _ = zoom.(stepper)
	mapper := view.NewMapper(zoom, canvasDensity{obj: o})
	o.controller = engine.NewController(store, mapper, cfg.EraserConfig(), o)
	o.ExtendBaseWidget(o)
	store.OnChange(o.Refresh)
	return o
}

// canvasDensity reads the scale of the canvas the widget is shown on.
type canvasDensity struct {
	obj fyne.CanvasObject
}

func (d canvasDensity) PixelRatio() float64 {
	a := fyne.CurrentApp()
	if a == nil {
		return 1
	}
	c := a.Driver().CanvasForObject(d.obj)
	if c == nil {
		return 1
	}
	return float64(c.Scale())
}

func (o *Overlay) SetToolMode(m state.ToolMode) {
	o.controller.SetToolMode(m)
	o.status("Tool: " + m.String())
}

func (o *Overlay) Store() *state.PathStore { return o.store }

// ZoomChanged must be called whenever the document zoom changes. The
// committed paths and the preview of an open stroke are both reprojected.
func (o *Overlay) ZoomChanged() {
	o.controller.Mapper().Invalidate()
	o.Refresh()
}

// Resize invalidates the cached scale factors before the next event.
func (o *Overlay) Resize(size fyne.Size) {
	o.controller.Mapper().Invalidate()
	o.BaseWidget.Resize(size)
}

// ClearPaths removes every annotation.
func (o *Overlay) ClearPaths() {
	o.store.Clear()
	o.status("Cleared")
}

// ExportPDF writes the current annotations as a single PDF page the size
// of the overlay.
func (o *Overlay) ExportPDF(w io.Writer) error {
	size := o.Size()
	pw, ph := float64(size.Width), float64(size.Height)
	if pw <= 0 || ph <= 0 {
		pw, ph = 595, 842
	}
	paths := o.store.Paths()
	if err := render.WritePDF(w, o.renderer, paths, o.controller.Mapper().Factors(), pw, ph); err != nil {
		return err
	}
	o.status(fmt.Sprintf("Exported %d drawings", len(paths)))
	return nil
}

func (o *Overlay) status(text string) {
	if o.OnStatus != nil {
		o.OnStatus(text)
	}
}

func (o *Overlay) pointer(kind engine.PointerKind, pos fyne.Position) {
	o.controller.HandlePointer(engine.PointerEvent{Kind: kind, X: float64(pos.X), Y: float64(pos.Y)})
	if kind == engine.PointerUp || kind == engine.PointerLeave {
		o.Refresh()
	}
}

func (o *Overlay) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		o.pointer(engine.PointerDown, e.Position)
	}
}

func (o *Overlay) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		o.pointer(engine.PointerUp, e.Position)
	}
}

func (o *Overlay) MouseMoved(e *desktop.MouseEvent) {
	o.pointer(engine.PointerMove, e.Position)
}

func (o *Overlay) MouseIn(*desktop.MouseEvent) {}

// Scrolled zooms the document: up zooms in, down zooms out.
func (o *Overlay) Scrolled(ev *fyne.ScrollEvent) {
	if o.zoom == nil {
		return
	}
	switch {
	case ev.Scrolled.DY > 0:
		o.zoom.ZoomIn()
	case ev.Scrolled.DY < 0:
		o.zoom.ZoomOut()
	}
}

func (o *Overlay) MouseOut() {
	o.pointer(engine.PointerLeave, fyne.Position{})
}

// SketchSegment adds the newest pencil segment to the preview layer. The
// segment is kept in canonical space and projected on every refresh.
func (o *Overlay) SketchSegment(a, b state.Point) {
	o.sketch = append(o.sketch, [2]state.Point{a, b})
	o.Refresh()
}

func previewColor(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 128}
}

func (o *Overlay) CreateRenderer() fyne.WidgetRenderer {
	return &overlayRenderer{overlay: o, surface: &lineSurface{}}
}

// overlayRenderer replays the whole store whenever the store or the view
// factors changed since the last pass; otherwise it only adds the preview
// segments of the open stroke on top.
type overlayRenderer struct {
	overlay *Overlay
	surface *lineSurface
	objects []fyne.CanvasObject
	rev     uint64
	factors view.Factors
	drawn   bool
}

func (r *overlayRenderer) Refresh() {
	r.update()
	canvas.Refresh(r.overlay)
}

func (r *overlayRenderer) update() {
	o := r.overlay
	f := o.controller.Mapper().Factors()
	rev := o.store.Revision()
	if !r.drawn || rev != r.rev || f != r.factors {
		o.renderer.Render(r.surface, o.store.Paths(), f)
		r.rev, r.factors, r.drawn = rev, f, true
	}
	if o.controller.Pencil().State() == engine.Idle {
		o.sketch = nil
	}

	objects := make([]fyne.CanvasObject, 0, len(r.surface.objects)+len(o.sketch))
	objects = append(objects, r.surface.objects...)
	col := previewColor(o.renderer.Style.Color)
	for _, seg := range o.sketch {
		ax, ay := f.Project(seg[0])
		bx, by := f.Project(seg[1])
		line := canvas.NewLine(col)
		line.StrokeWidth = float32(o.renderer.Style.Width)
		line.Position1 = fyne.NewPos(float32(ax), float32(ay))
		line.Position2 = fyne.NewPos(float32(bx), float32(by))
		objects = append(objects, line)
	}
	r.objects = objects
}

func (r *overlayRenderer) Objects() []fyne.CanvasObject {
	if !r.drawn {
		r.update()
	}
	return r.objects
}

func (r *overlayRenderer) Layout(fyne.Size) {}

func (r *overlayRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *overlayRenderer) Destroy() {}

// lineSurface turns render calls into canvas lines.
type lineSurface struct {
	objects []fyne.CanvasObject
	style   render.Style
	last    fyne.Position
}

func (s *lineSurface) Clear() { s.objects = nil }

func (s *lineSurface) BeginStroke(style render.Style) { s.style = style }

func (s *lineSurface) MoveTo(x, y float64) {
	s.last = fyne.NewPos(float32(x), float32(y))
}

func (s *lineSurface) LineTo(x, y float64) {
	p := fyne.NewPos(float32(x), float32(y))
	line := canvas.NewLine(s.style.Color)
	line.StrokeWidth = float32(s.style.Width)
	line.Position1 = s.last
	line.Position2 = p
	s.objects = append(s.objects, line)
	s.last = p
}

func (s *lineSurface) Stroke() {}
