package view

import "math"

// Scale clamp keeps repeated zooming away from 0 and +Inf.
const (
	minScale = 1e-9
	maxScale = 1e9
)

// Transform owns the world-to-screen projection: a uniform scale plus a
// translation, over a viewport whose Y axis increases downward while the
// document's Y axis increases upward. All mutation goes through Fit,
// ZoomAt, and Pan.
type Transform struct {
	scale      float64
	translateX float64
	translateY float64

	offsetX float64
	offsetY float64

	viewportW float64
	viewportH float64
}

// NewTransform returns an identity-scale transform.
func NewTransform() Transform {
	return Transform{scale: 1}
}

func (t *Transform) SetOffset(x, y float64) {
	t.offsetX = x
	t.offsetY = y
}

func (t *Transform) SetViewport(w, h float64) {
	t.viewportW = w
	t.viewportH = h
}

func (t *Transform) Scale() float64 { return t.scale }

func (t *Transform) Viewport() (w, h float64) { return t.viewportW, t.viewportH }

// Fit chooses scale and translation so the bounds rectangle is centered
// in the viewport with the given margin fraction per axis (0.9 leaves 10%).
// Empty bounds or an unsized viewport leave the current state untouched,
// never producing a degenerate scale. A zero-width or zero-height box
// takes its scale from the other axis; a single point gets scale 1.
func (t *Transform) Fit(b Bounds, margin float64) {
	if b.Empty() || t.viewportW <= 0 || t.viewportH <= 0 {
		return
	}
	w, h := b.Width(), b.Height()
	var scale float64
	switch {
	case w == 0 && h == 0:
		scale = 1
	case w == 0:
		scale = t.viewportH * margin / h
	case h == 0:
		scale = t.viewportW * margin / w
	default:
		scale = math.Min(t.viewportW*margin/w, t.viewportH*margin/h)
	}
	t.scale = clampScale(scale)
	t.translateX = t.viewportW/2 - b.CenterX()*t.scale
	t.translateY = t.viewportH/2 - b.CenterY()*t.scale
}

// WorldToScreen projects a raw document coordinate to viewport pixels.
func (t *Transform) WorldToScreen(x, y float64) (sx, sy float64) {
	sx = (x-t.offsetX)*t.scale + t.translateX
	sy = t.viewportH - ((y-t.offsetY)*t.scale + t.translateY)
	return sx, sy
}

// ScreenToWorld is the exact inverse, re-adding the document offset.
func (t *Transform) ScreenToWorld(sx, sy float64) (x, y float64) {
	x = (sx-t.translateX)/t.scale + t.offsetX
	y = ((t.viewportH-sy)-t.translateY)/t.scale + t.offsetY
	return x, y
}

// ZoomAt rescales by factor while keeping the world point currently under
// the given screen position fixed on screen.
func (t *Transform) ZoomAt(factor, screenX, screenY float64) {
	wx, wy := t.ScreenToWorld(screenX, screenY)
	t.scale = clampScale(t.scale * factor)
	t.translateX = screenX - (wx-t.offsetX)*t.scale
	t.translateY = (t.viewportH - screenY) - (wy-t.offsetY)*t.scale
}

// Pan shifts the view by screen pixels. The Y sign flip matches the
// WorldToScreen convention.
func (t *Transform) Pan(dx, dy float64) {
	t.translateX += dx
	t.translateY -= dy
}

func clampScale(s float64) float64 {
	if s < minScale {
		return minScale
	}
	if s > maxScale {
		return maxScale
	}
	return s
}
