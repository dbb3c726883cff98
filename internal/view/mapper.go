// Package view converts between surface-local pointer coordinates and the
// canonical drawing space, where geometry stays valid across zoom and
// pixel density changes.
package view

import (
	"math"

	"InkOverlay/internal/state"
)

// ZoomSource is the document viewer's current zoom factor.
type ZoomSource interface {
	Zoom() float64
}

// DensitySource reports device pixels per surface-local unit.
type DensitySource interface {
	PixelRatio() float64
}

// Density is a fixed pixel ratio.
type Density float64

func (d Density) PixelRatio() float64 { return float64(d) }

// positive returns v, or 1 when v cannot be used as a scale factor.
func positive(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	return v
}

// ToCanonical maps a surface-local position to canonical space:
// (local * devicePixelRatio) / zoomFactor. A zero, negative or non-finite
// factor is treated as 1.
func ToCanonical(localX, localY, devicePixelRatio, zoomFactor float64) state.Point {
	return Factors{PixelRatio: devicePixelRatio, Zoom: zoomFactor}.ToCanonical(localX, localY)
}

// Factors is the pair of scale factors that define the mapping.
type Factors struct {
	PixelRatio float64
	Zoom       float64
}

// Identity maps canonical space onto itself.
var Identity = Factors{PixelRatio: 1, Zoom: 1}

// Sanitized returns f with unusable factors replaced by 1.
func (f Factors) Sanitized() Factors {
	return Factors{PixelRatio: positive(f.PixelRatio), Zoom: positive(f.Zoom)}
}

func (f Factors) ToCanonical(localX, localY float64) state.Point {
	f = f.Sanitized()
	return state.Point{
		X: localX * f.PixelRatio / f.Zoom,
		Y: localY * f.PixelRatio / f.Zoom,
	}
}

// Project maps a canonical point back to surface-local units.
func (f Factors) Project(p state.Point) (x, y float64) {
	f = f.Sanitized()
	return p.X * f.Zoom / f.PixelRatio, p.Y * f.Zoom / f.PixelRatio
}

// Device returns factors that project canonical points into device pixels.
func (f Factors) Device() Factors {
	return Factors{PixelRatio: 1, Zoom: positive(f.Zoom)}
}

// Mapper caches the factors read from the viewer and the display. Any
// resize or zoom change must call Invalidate; the next Map or Factors call
// then re-reads both sources before use.
type Mapper struct {
	zoom    ZoomSource
	density DensitySource
	factors Factors
	stale   bool
}

// NewMapper returns a mapper over the given sources. A nil source counts
// as a factor of 1.
func NewMapper(zoom ZoomSource, density DensitySource) *Mapper {
	return &Mapper{zoom: zoom, density: density, stale: true}
}

// SetDensity swaps the density source, e.g. once the widget is attached to
// a window.
func (m *Mapper) SetDensity(d DensitySource) {
	m.density = d
	m.stale = true
}

// Invalidate marks the cached factors as out of date.
func (m *Mapper) Invalidate() {
	m.stale = true
}

// Factors returns the current factors, recomputing them if stale.
func (m *Mapper) Factors() Factors {
	if m.stale {
		f := Identity
		if m.zoom != nil {
			f.Zoom = m.zoom.Zoom()
		}
		if m.density != nil {
			f.PixelRatio = m.density.PixelRatio()
		}
		m.factors = f.Sanitized()
		m.stale = false
	}
	return m.factors
}

// Map converts a surface-local position to canonical space.
func (m *Mapper) Map(localX, localY float64) state.Point {
	return m.Factors().ToCanonical(localX, localY)
}
