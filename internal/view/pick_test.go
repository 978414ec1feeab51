package view

import (
	"math"
	"testing"

	"roadview/internal/roadmap"
)

func namedRoad(id string, pts ...[2]float64) roadmap.Road {
	r := road(pts...)
	r.ID = id
	return r
}

func TestPickOffsetDocument(t *testing.T) {
	// offset={100,100}, one road from (100,100) to (110,100): length is
	// computed on raw points (10), picking in offset-adjusted space.
	e := testEngine(200, 100)
	e.LoadDocument(roadmap.Document{
		Offset: roadmap.Point3{X: 100, Y: 100},
		Roads: []roadmap.Road{
			namedRoad("R1", [2]float64{100, 100}, [2]float64{110, 100}),
		},
	})
	sx, sy := e.WorldToScreen(105, 100)
	res, ok := e.PickAt(sx, sy)
	if !ok {
		t.Fatal("click on the road midpoint should select it")
	}
	if res.ID != "R1" {
		t.Errorf("picked %q, want R1", res.ID)
	}
	if math.Abs(res.Length-10) > 1e-9 {
		t.Errorf("length = %v, want 10", res.Length)
	}
	if sel, selOK := e.Selection(); !selOK || sel.ID != "R1" {
		t.Error("selection should hold R1")
	}
}

// tieDoc builds two parallel horizontal roads with a pair of single-point
// roads pinning the bounds to 90x90, so a 100x100 viewport fits at
// scale 1 (tolerance = 5 world units).
func tieDoc() roadmap.Document {
	return roadmap.Document{Roads: []roadmap.Road{
		namedRoad("A", [2]float64{-10, 0}, [2]float64{10, 0}),
		namedRoad("B", [2]float64{-10, 10}, [2]float64{10, 10}),
		road([2]float64{-45, -45}),
		road([2]float64{45, 45}),
	}}
}

func TestPickTieBreakDocumentOrder(t *testing.T) {
	e := testEngine(100, 100)
	e.LoadDocument(tieDoc())
	if s := e.Scale(); math.Abs(s-1) > eps {
		t.Fatalf("fixture expects scale 1, got %v", s)
	}
	// (0,5) is exactly 5 world units from both roads
	sx, sy := e.WorldToScreen(0, 5)
	res, ok := e.PickAt(sx, sy)
	if !ok {
		t.Fatal("equidistant click within tolerance should select")
	}
	if res.ID != "A" {
		t.Errorf("tie broke to %q, want first road A", res.ID)
	}
	if math.Abs(res.Length-20) > 1e-9 {
		t.Errorf("length = %v, want 20", res.Length)
	}
}

func TestPickOutsideToleranceClearsSelection(t *testing.T) {
	e := testEngine(100, 100)
	e.LoadDocument(tieDoc())
	sx, sy := e.WorldToScreen(0, 5)
	if _, ok := e.PickAt(sx, sy); !ok {
		t.Fatal("setup pick failed")
	}
	sx, sy = e.WorldToScreen(0, 30)
	if _, ok := e.PickAt(sx, sy); ok {
		t.Error("click 20 world units away should not select")
	}
	if _, ok := e.Selection(); ok {
		t.Error("failed pick must clear the previous selection")
	}
}

func TestPickToleranceScalesWithZoom(t *testing.T) {
	e := testEngine(100, 100)
	e.LoadDocument(tieDoc())
	// 7 world units from road A: outside the 5px tolerance at scale 1
	sx, sy := e.WorldToScreen(0, -7)
	if _, ok := e.PickAt(sx, sy); ok {
		t.Fatal("7 world units should miss at scale 1")
	}
	// zooming out widens the world-space tolerance (5px / 0.5 = 10 units)
	e.ZoomAt(0.5, 50, 50)
	sx, sy = e.WorldToScreen(0, -7)
	res, ok := e.PickAt(sx, sy)
	if !ok {
		t.Fatal("7 world units should hit at scale 0.5")
	}
	if res.ID != "A" {
		t.Errorf("picked %q, want A", res.ID)
	}
}

func TestPickClampsToSegmentEnds(t *testing.T) {
	e := testEngine(100, 100)
	e.LoadDocument(roadmap.Document{Roads: []roadmap.Road{
		namedRoad("seg", [2]float64{0, 0}, [2]float64{10, 0}),
	}})
	// beyond the segment end: distance is measured to the endpoint, not
	// the infinite line
	opts := DefaultOptions()
	tol := opts.PickTolerancePx / e.Scale()
	sx, sy := e.WorldToScreen(10+2*tol, 0)
	if _, ok := e.PickAt(sx, sy); ok {
		t.Error("click past the endpoint beyond tolerance should miss")
	}
	sx, sy = e.WorldToScreen(10+tol/2, 0)
	if _, ok := e.PickAt(sx, sy); !ok {
		t.Error("click just past the endpoint within tolerance should hit")
	}
}

func TestPickSkipsShortRoads(t *testing.T) {
	e := testEngine(100, 100)
	e.LoadDocument(roadmap.Document{Roads: []roadmap.Road{
		road([2]float64{0, 0}), // single point, not pickable
		namedRoad("real", [2]float64{-5, -5}, [2]float64{5, 5}),
	}})
	sx, sy := e.WorldToScreen(0, 0)
	res, ok := e.PickAt(sx, sy)
	if !ok || res.ID != "real" {
		t.Errorf("pick = %+v ok=%v, want the two-point road", res, ok)
	}
}

func TestSegmentDistSq(t *testing.T) {
	cases := []struct {
		px, py, ax, ay, bx, by float64
		want                   float64
	}{
		{5, 3, 0, 0, 10, 0, 9},    // perpendicular drop inside segment
		{-4, 3, 0, 0, 10, 0, 25},  // clamps to start
		{13, 4, 0, 0, 10, 0, 25},  // clamps to end
		{3, 7, 4, 4, 4, 4, 10},    // degenerate segment is a point
		{0, 0, -1, -1, 1, 1, 0},   // on the segment
	}
	for i, c := range cases {
		got := segmentDistSq(c.px, c.py, c.ax, c.ay, c.bx, c.by)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("case %d: got %v, want %v", i, got, c.want)
		}
	}
}
