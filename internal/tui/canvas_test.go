package tui

import (
	"strings"
	"testing"

	"roadview/internal/view"
)

func TestSetPixelBrailleBits(t *testing.T) {
	c := newCanvas(2, 1)
	// the 2x4 micro-pixels of cell (0,0), left column then right
	bits := []struct {
		mx, my int
		want   uint8
	}{
		{0, 0, 0x01}, {0, 1, 0x02}, {0, 2, 0x04}, {0, 3, 0x40},
		{1, 0, 0x08}, {1, 1, 0x10}, {1, 2, 0x20}, {1, 3, 0x80},
	}
	for _, b := range bits {
		c := newCanvas(1, 1)
		c.setPixel(b.mx, b.my, colorWhite)
		if c.mask[0][0] != b.want {
			t.Errorf("pixel (%d,%d): mask = %#x, want %#x", b.mx, b.my, c.mask[0][0], b.want)
		}
	}
	// out of range is a no-op
	c.setPixel(-1, 0, colorWhite)
	c.setPixel(0, -2, colorWhite)
	c.setPixel(4, 0, colorWhite)
	c.setPixel(0, 4, colorWhite)
	if c.mask[0][0] != 0 || c.mask[0][1] != 0 {
		t.Error("out-of-range setPixel must not write")
	}
}

func TestColorPriority(t *testing.T) {
	c := newCanvas(1, 1)
	c.setPixel(0, 0, colorHighlight)
	c.setPixel(1, 0, colorGray)
	if c.color[0][0] != colorHighlight {
		t.Errorf("cell color = %v, lower class must not overwrite highlight", c.color[0][0])
	}
	c = newCanvas(1, 1)
	c.setPixel(0, 0, colorGrid)
	c.setPixel(1, 0, colorWhite)
	if c.color[0][0] != colorWhite {
		t.Errorf("cell color = %v, geometry must overdraw grid", c.color[0][0])
	}
}

func TestDashedLineSkipsPixels(t *testing.T) {
	solid := newCanvas(20, 1)
	solid.line(0, 0, 39, 0, colorWhite, false, false)
	dashed := newCanvas(20, 1)
	dashed.line(0, 0, 39, 0, colorWhite, true, false)
	count := func(c *canvas) int {
		n := 0
		for x := 0; x < c.w; x++ {
			if c.mask[0][x]&0x09 != 0 { // top-row bits
				if c.mask[0][x]&0x01 != 0 {
					n++
				}
				if c.mask[0][x]&0x08 != 0 {
					n++
				}
			}
		}
		return n
	}
	if count(solid) != 40 {
		t.Errorf("solid line set %d pixels, want 40", count(solid))
	}
	if got := count(dashed); got >= 40 || got == 0 {
		t.Errorf("dashed line set %d pixels, want a strict subset", got)
	}
}

func TestWideLineThickens(t *testing.T) {
	thin := newCanvas(10, 2)
	thin.line(0, 0, 19, 0, colorWhite, false, false)
	wide := newCanvas(10, 2)
	wide.line(0, 0, 19, 0, colorWhite, false, true)
	thinBits, wideBits := 0, 0
	for x := 0; x < 10; x++ {
		for b := 0; b < 8; b++ {
			if thin.mask[0][x]&(1<<b) != 0 {
				thinBits++
			}
			if wide.mask[0][x]&(1<<b) != 0 {
				wideBits++
			}
		}
	}
	if wideBits <= thinBits {
		t.Errorf("wide line set %d pixels vs thin %d", wideBits, thinBits)
	}
}

func TestLabelWritesText(t *testing.T) {
	c := newCanvas(10, 3)
	c.label(view.LabelOp{At: view.Vec2{X: 4, Y: 5}, Text: "R1"})
	cy, cx := 5/4, 4/2
	if c.text[cy][cx] != 'R' || c.text[cy][cx+1] != '1' {
		t.Errorf("label not placed at cell (%d,%d)", cx, cy)
	}
	// clipped labels drop out-of-range runes without panicking
	c.label(view.LabelOp{At: view.Vec2{X: 18, Y: 0}, Text: "LONG"})
	if c.text[0][9] != 'L' {
		t.Error("label head should land in the last column")
	}
}

func TestRenderShowsLabelOverGeometry(t *testing.T) {
	c := newCanvas(4, 1)
	c.line(0, 0, 7, 0, colorWhite, false, false)
	c.label(view.LabelOp{At: view.Vec2{X: 0, Y: 0}, Text: "ab"})
	out := c.render()
	if !strings.Contains(out, "ab") {
		t.Errorf("render output missing label text: %q", out)
	}
}
