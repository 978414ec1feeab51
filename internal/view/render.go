package view

import (
	"math"

	"roadview/internal/roadmap"
)

// Vec2 is a screen-space position in viewport pixels.
type Vec2 struct {
	X float64
	Y float64
}

// StrokeColor is a resolved color class; the rasterizer maps it to an
// actual terminal color.
type StrokeColor int

const (
	StrokeWhite StrokeColor = iota
	StrokeGray
	StrokeHighlight
)

// LineStyle is the per-road resolved style.
type LineStyle struct {
	Color  StrokeColor
	Dashed bool
	Wide   bool
}

// DrawOp is one rendering command. Ops are emitted in paint order: grid
// first, then roads in document order.
type DrawOp interface{ drawOp() }

// PolylineOp strokes the projected boundary points in order.
type PolylineOp struct {
	Points []Vec2
	Style  LineStyle
}

// ArrowOp places a directional arrowhead at a point, oriented along the
// given screen-space angle in radians.
type ArrowOp struct {
	At    Vec2
	Angle float64
	Style LineStyle
}

// LabelOp anchors text at a screen position (already lifted above the
// labeled vertex).
type LabelOp struct {
	At   Vec2
	Text string
}

// GridLineOp is a screen-space overlay line; it does not pan or zoom
// with the map.
type GridLineOp struct {
	From Vec2
	To   Vec2
}

func (PolylineOp) drawOp() {}
func (ArrowOp) drawOp()    {}
func (LabelOp) drawOp()    {}
func (GridLineOp) drawOp() {}

// labelLiftPx raises labels a few pixels above their anchor vertex.
const labelLiftPx = 5

// styleFor resolves the stroke style from the first boundary point.
// The whole polyline takes that one point's attributes; this mirrors the
// document producer and is not per-segment styling.
func styleFor(r roadmap.Road, selected bool) LineStyle {
	if selected {
		return LineStyle{Color: StrokeHighlight, Wide: true}
	}
	s := LineStyle{Color: StrokeWhite}
	first := r.BoundaryPoints[0]
	if first.LineColor == roadmap.ColorStandard {
		s.Color = StrokeGray
	}
	if first.LineType == roadmap.TypeBroken {
		s.Dashed = true
	}
	return s
}

// render walks the document and emits draw commands through the current
// transform. selected is a road index (-1 for none).
func render(doc roadmap.Document, t *Transform, selected int, showGrid bool, gridSpacing float64) []DrawOp {
	var ops []DrawOp
	if showGrid {
		ops = append(ops, gridOps(t, gridSpacing)...)
	}
	for i, r := range doc.Roads {
		if !r.Drawable() {
			continue
		}
		style := styleFor(r, i == selected)
		pts := make([]Vec2, len(r.BoundaryPoints))
		for j, p := range r.BoundaryPoints {
			sx, sy := t.WorldToScreen(p.X, p.Y)
			pts[j] = Vec2{X: sx, Y: sy}
		}
		ops = append(ops, PolylineOp{Points: pts, Style: style})
		ops = append(ops, ArrowOp{
			At:    pts[1],
			Angle: math.Atan2(pts[1].Y-pts[0].Y, pts[1].X-pts[0].X),
			Style: style,
		})
		if r.ID != "" {
			mid := pts[len(pts)/2]
			ops = append(ops, LabelOp{
				At:   Vec2{X: mid.X, Y: mid.Y - labelLiftPx},
				Text: r.ID,
			})
		}
	}
	return ops
}

// gridOps covers the viewport with fixed-pixel-spacing lines.
func gridOps(t *Transform, spacing float64) []DrawOp {
	w, h := t.Viewport()
	if spacing <= 0 || w <= 0 || h <= 0 {
		return nil
	}
	var ops []DrawOp
	for x := 0.0; x <= w; x += spacing {
		ops = append(ops, GridLineOp{From: Vec2{X: x, Y: 0}, To: Vec2{X: x, Y: h}})
	}
	for y := 0.0; y <= h; y += spacing {
		ops = append(ops, GridLineOp{From: Vec2{X: 0, Y: y}, To: Vec2{X: w, Y: y}})
	}
	return ops
}
