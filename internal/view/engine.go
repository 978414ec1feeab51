// Package view is the geometry and interaction core of the viewer:
// bounds with outlier rejection, the world/screen transform, draw-command
// emission, and nearest-segment picking. It performs no I/O and knows
// nothing about terminals; the viewport is abstract pixels.
package view

import "roadview/internal/roadmap"

// Options are the tunable constants. Defaults match the ingested map
// coordinate system this viewer was built for; override via config for
// other datasets.
type Options struct {
	OutlierLimit    float64
	PickTolerancePx float64
	ZoomStep        float64
	FitMargin       float64
	GridSpacingPx   float64
}

func DefaultOptions() Options {
	return Options{
		OutlierLimit:    1e12,
		PickTolerancePx: 5,
		ZoomStep:        1.2,
		FitMargin:       0.9,
		GridSpacingPx:   16,
	}
}

// Engine owns the document, its bounds, the transform, and the selection.
// Single-threaded by contract: every operation runs to completion before
// the next arrives, so there is no locking.
type Engine struct {
	opts Options

	doc    roadmap.Document
	bounds Bounds
	tr     Transform

	selected int // road index, -1 when nothing is selected
	showGrid bool

	// a document loaded before the viewport has a size is fitted on the
	// first SetViewport instead
	pendingFit bool
}

func NewEngine(opts Options) *Engine {
	return &Engine{
		opts:     opts,
		bounds:   EmptyBounds(),
		tr:       NewTransform(),
		selected: -1,
	}
}

// LoadDocument replaces the document wholesale: bounds are recomputed
// before the swap, the selection is cleared, and the view is refitted.
func (e *Engine) LoadDocument(doc roadmap.Document) {
	b := ComputeBounds(doc, e.opts.OutlierLimit)
	e.doc = doc
	e.bounds = b
	e.selected = -1
	e.tr.SetOffset(doc.Offset.X, doc.Offset.Y)
	if w, h := e.tr.Viewport(); w <= 0 || h <= 0 {
		e.pendingFit = true
		return
	}
	e.tr.Fit(b, e.opts.FitMargin)
}

// SetViewport records the viewport pixel dimensions. Resizing does not
// refit an already-fitted view; only a load that arrived before the
// first size is fitted here.
func (e *Engine) SetViewport(w, h float64) {
	e.tr.SetViewport(w, h)
	if e.pendingFit && w > 0 && h > 0 {
		e.pendingFit = false
		e.tr.Fit(e.bounds, e.opts.FitMargin)
	}
}

// FitToViewport resizes the viewport and fits the last-known bounds into
// it. Empty bounds leave the projection untouched.
func (e *Engine) FitToViewport(w, h float64) {
	e.tr.SetViewport(w, h)
	e.pendingFit = false
	e.tr.Fit(e.bounds, e.opts.FitMargin)
}

func (e *Engine) ZoomIn() {
	w, h := e.tr.Viewport()
	e.tr.ZoomAt(e.opts.ZoomStep, w/2, h/2)
}

func (e *Engine) ZoomOut() {
	w, h := e.tr.Viewport()
	e.tr.ZoomAt(1/e.opts.ZoomStep, w/2, h/2)
}

// ZoomAt keeps the world point under (cx,cy) fixed while rescaling.
func (e *Engine) ZoomAt(factor, cx, cy float64) { e.tr.ZoomAt(factor, cx, cy) }

// Pan shifts the view by screen pixels.
func (e *Engine) Pan(dx, dy float64) { e.tr.Pan(dx, dy) }

// ResetView refits the last-known bounds into the current viewport.
func (e *Engine) ResetView() { e.tr.Fit(e.bounds, e.opts.FitMargin) }

// ToggleGrid flips the screen-space grid overlay and reports the new state.
func (e *Engine) ToggleGrid() bool {
	e.showGrid = !e.showGrid
	return e.showGrid
}

func (e *Engine) GridShown() bool { return e.showGrid }

// PickAt selects the road nearest the screen point within tolerance, or
// clears the selection when nothing is close enough.
func (e *Engine) PickAt(screenX, screenY float64) (PickResult, bool) {
	idx := e.pickAt(screenX, screenY, e.opts.PickTolerancePx)
	e.selected = idx
	if idx < 0 {
		return PickResult{}, false
	}
	r := e.doc.Roads[idx]
	return PickResult{ID: r.ID, Length: r.Length()}, true
}

// ClearSelection drops the current selection, if any.
func (e *Engine) ClearSelection() { e.selected = -1 }

// Selection returns the selected road, if any.
func (e *Engine) Selection() (roadmap.Road, bool) {
	if e.selected < 0 || e.selected >= len(e.doc.Roads) {
		return roadmap.Road{}, false
	}
	return e.doc.Roads[e.selected], true
}

// Draw emits the draw commands for the current state.
func (e *Engine) Draw() []DrawOp {
	return render(e.doc, &e.tr, e.selected, e.showGrid, e.opts.GridSpacingPx)
}

// WorldToScreen projects a raw document coordinate to viewport pixels.
func (e *Engine) WorldToScreen(x, y float64) (sx, sy float64) {
	return e.tr.WorldToScreen(x, y)
}

// ScreenToWorld maps a viewport pixel back to a raw document coordinate.
func (e *Engine) ScreenToWorld(sx, sy float64) (x, y float64) {
	return e.tr.ScreenToWorld(sx, sy)
}

func (e *Engine) Scale() float64 { return e.tr.Scale() }

func (e *Engine) Bounds() Bounds { return e.bounds }

func (e *Engine) Document() roadmap.Document { return e.doc }
