package view

import "sync"

// Zoom is a clamped zoom factor with change listeners. It stands in for the
// document viewer in the demo window and implements ZoomSource.
type Zoom struct {
	factor    float64
	min, max  float64
	step      float64
	listeners []func(float64)
	mu        sync.RWMutex
}

// NewZoom returns a zoom at 1.0 clamped to [min, max]. Each ZoomIn or
// ZoomOut multiplies or divides by step.
func NewZoom(min, max, step float64) *Zoom {
	if min <= 0 || min > 1 {
		min = 1
	}
	if max < 1 {
		max = 1
	}
	if step <= 1 {
		step = 1.2
	}
	return &Zoom{factor: 1, min: min, max: max, step: step}
}

func (z *Zoom) Zoom() float64 {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.factor
}

// OnChange registers fn to run with the new factor after every change.
func (z *Zoom) OnChange(fn func(float64)) {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.listeners = append(z.listeners, fn)
}

// Set changes the factor, clamped to the configured range.
func (z *Zoom) Set(f float64) {
	z.mu.Lock()
	f = positive(f)
	if f < z.min {
		f = z.min
	}
	if f > z.max {
		f = z.max
	}
	if f == z.factor {
		z.mu.Unlock()
		return
	}
	z.factor = f
	listeners := make([]func(float64), len(z.listeners))
	copy(listeners, z.listeners)
	z.mu.Unlock()

	for _, fn := range listeners {
		fn(f)
	}
}

func (z *Zoom) ZoomIn()  { z.Set(z.Zoom() * z.step) }
func (z *Zoom) ZoomOut() { z.Set(z.Zoom() / z.step) }
func (z *Zoom) Reset()   { z.Set(1) }
