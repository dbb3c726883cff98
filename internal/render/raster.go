package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ Surface = (*RasterSurface)(nil)

// RasterSurface draws into an RGBA image through rasterx.
type RasterSurface struct {
	img        *image.RGBA
	scanner    *rasterx.ScannerGV
	dasher     *rasterx.Dasher
	background color.Color
}

// NewRasterSurface returns a w x h surface filled with background.
func NewRasterSurface(w, h int, background color.Color) *RasterSurface {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	s := &RasterSurface{
		img:        img,
		scanner:    scanner,
		dasher:     rasterx.NewDasher(w, h, scanner),
		background: background,
	}
	s.Clear()
	return s
}

// Image returns the backing image.
func (s *RasterSurface) Image() *image.RGBA { return s.img }

func (s *RasterSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
	s.dasher.Clear()
}

func (s *RasterSurface) BeginStroke(style Style) {
	s.dasher.Clear()
	s.dasher.SetStroke(
		fixed.Int26_6(style.Width*64), 4<<6,
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap,
		rasterx.Round, nil, 0,
	)
	s.scanner.SetColor(style.Color)
}

func (s *RasterSurface) MoveTo(x, y float64) {
	s.dasher.Start(rasterx.ToFixedP(x, y))
}

func (s *RasterSurface) LineTo(x, y float64) {
	s.dasher.Line(rasterx.ToFixedP(x, y))
}

func (s *RasterSurface) Stroke() {
	s.dasher.Stop(false)
	s.dasher.Draw()
}
