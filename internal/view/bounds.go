package view

import (
	"math"

	"roadview/internal/roadmap"
)

// Bounds is an axis-aligned rectangle in offset-adjusted world space.
// The zero-area +Inf/-Inf form is the "no valid data" sentinel.
type Bounds struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// EmptyBounds returns the sentinel bounds.
func EmptyBounds() Bounds {
	return Bounds{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// Empty reports whether no in-threshold point has been folded in.
func (b Bounds) Empty() bool { return math.IsInf(b.MinX, 1) }

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// CenterX and CenterY are only meaningful on non-empty bounds.
func (b Bounds) CenterX() float64 { return (b.MinX + b.MaxX) / 2 }
func (b Bounds) CenterY() float64 { return (b.MinY + b.MaxY) / 2 }

// ComputeBounds folds every boundary point of every road into a bounding
// rectangle after subtracting the document offset. Points whose adjusted
// coordinate magnitude exceeds outlierLimit are excluded from the fold
// but stay in the road data and are still rendered.
func ComputeBounds(doc roadmap.Document, outlierLimit float64) Bounds {
	b := EmptyBounds()
	for _, r := range doc.Roads {
		for _, p := range r.BoundaryPoints {
			x := p.X - doc.Offset.X
			y := p.Y - doc.Offset.Y
			if math.Abs(x) > outlierLimit || math.Abs(y) > outlierLimit {
				continue
			}
			if x < b.MinX {
				b.MinX = x
			}
			if y < b.MinY {
				b.MinY = y
			}
			if x > b.MaxX {
				b.MaxX = x
			}
			if y > b.MaxY {
				b.MaxY = y
			}
		}
	}
	return b
}
