package view

import "math"

// PickResult identifies the selected road and its raw-point length.
type PickResult struct {
	ID     string
	Length float64
}

// segmentDistSq returns the squared distance from (px,py) to the nearest
// point on segment (ax,ay)-(bx,by). The projection parameter is clamped
// to [0,1] so the segment, not its infinite extension, is measured.
func segmentDistSq(px, py, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	l2 := dx*dx + dy*dy
	t := 0.0
	if l2 > 0 {
		t = ((px-ax)*dx + (py-ay)*dy) / l2
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	nx := ax + t*dx
	ny := ay + t*dy
	return (px-nx)*(px-nx) + (py-ny)*(py-ny)
}

// pickAt finds the road whose nearest segment is closest to the screen
// point, within a tolerance that stays visually constant across zoom
// levels. Every segment of every road is scanned; the first road to
// reach the strict minimum wins ties. Returns the winning road index or
// -1 when nothing is within tolerance.
func (e *Engine) pickAt(screenX, screenY, tolerancePx float64) int {
	wx, wy := e.tr.ScreenToWorld(screenX, screenY)
	px := wx - e.doc.Offset.X
	py := wy - e.doc.Offset.Y

	best := math.Inf(1)
	bestIdx := -1
	for i, r := range e.doc.Roads {
		pts := r.BoundaryPoints
		for j := 0; j+1 < len(pts); j++ {
			ax := pts[j].X - e.doc.Offset.X
			ay := pts[j].Y - e.doc.Offset.Y
			bx := pts[j+1].X - e.doc.Offset.X
			by := pts[j+1].Y - e.doc.Offset.Y
			if d := segmentDistSq(px, py, ax, ay, bx, by); d < best {
				best = d
				bestIdx = i
			}
		}
	}
	tol := tolerancePx / e.tr.Scale()
	if bestIdx >= 0 && best <= tol*tol {
		return bestIdx
	}
	return -1
}
