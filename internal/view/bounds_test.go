package view

import (
	"math"
	"testing"

	"roadview/internal/roadmap"
)

func road(pts ...[2]float64) roadmap.Road {
	r := roadmap.Road{}
	for _, p := range pts {
		r.BoundaryPoints = append(r.BoundaryPoints, roadmap.BoundaryPoint{X: p[0], Y: p[1]})
	}
	return r
}

func TestComputeBoundsSubtractsOffset(t *testing.T) {
	doc := roadmap.Document{
		Offset: roadmap.Point3{X: 100, Y: 200},
		Roads: []roadmap.Road{
			road([2]float64{100, 200}, [2]float64{110, 230}),
		},
	}
	b := ComputeBounds(doc, 1e12)
	if b.Empty() {
		t.Fatal("bounds should not be empty")
	}
	if b.MinX != 0 || b.MinY != 0 || b.MaxX != 10 || b.MaxY != 30 {
		t.Errorf("bounds = %+v, want [0,0,10,30]", b)
	}
}

func TestComputeBoundsExcludesOutliers(t *testing.T) {
	doc := roadmap.Document{
		Roads: []roadmap.Road{
			road([2]float64{0, 0}, [2]float64{10, 10}, [2]float64{5e12, 3}),
		},
	}
	b := ComputeBounds(doc, 1e12)
	if b.MaxX != 10 || b.MaxY != 10 {
		t.Errorf("outlier leaked into bounds: %+v", b)
	}
	// the outlier stays in the road data
	if len(doc.Roads[0].BoundaryPoints) != 3 {
		t.Error("outlier must not be removed from the point list")
	}
}

func TestComputeBoundsEmptySentinel(t *testing.T) {
	cases := []roadmap.Document{
		{},
		{Roads: []roadmap.Road{}},
		{Roads: []roadmap.Road{road([2]float64{2e12, 0})}}, // all outliers
	}
	for i, doc := range cases {
		b := ComputeBounds(doc, 1e12)
		if !b.Empty() {
			t.Errorf("case %d: bounds should be empty, got %+v", i, b)
		}
		if !math.IsInf(b.MinX, 1) {
			t.Errorf("case %d: MinX should be +Inf", i)
		}
	}
}
