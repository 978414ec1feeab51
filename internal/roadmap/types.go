package roadmap

import "math"

// Point3 is the document offset; z is carried for the wire format but
// ignored by all geometry.
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Line style attributes as they appear in the document. Unknown values
// are kept verbatim; consumers fall back to the defaults.
const (
	ColorWhite    = "white"
	ColorStandard = "standard"

	TypeSolid  = "solid"
	TypeBroken = "broken"
)

// BoundaryPoint is a polyline vertex. Style fields are only meaningful
// on the first point of a road; the whole polyline takes its style from
// there.
type BoundaryPoint struct {
	X         float64
	Y         float64
	LineColor string
	LineType  string
}

// Road is an ordered point sequence. Fewer than 2 points is valid data
// but nothing to draw or pick.
type Road struct {
	ID             string
	BoundaryPoints []BoundaryPoint
}

// Document is an immutable map description; replaced wholesale on load.
type Document struct {
	Offset Point3
	Roads  []Road
}

// Drawable reports whether the road has enough points for a segment.
func (r Road) Drawable() bool { return len(r.BoundaryPoints) >= 2 }

// Length sums the Euclidean distances between consecutive raw points.
// The document offset is a pure translation and does not affect it.
func (r Road) Length() float64 {
	var total float64
	for i := 0; i+1 < len(r.BoundaryPoints); i++ {
		a, b := r.BoundaryPoints[i], r.BoundaryPoints[i+1]
		total += math.Hypot(b.X-a.X, b.Y-a.Y)
	}
	return total
}
