package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"roadview/internal/view"
)

// cellColor orders stroke classes by paint priority: a pixel keeps the
// highest class drawn into its cell, so the selection stays visible where
// roads cross and geometry overdraws the grid.
type cellColor uint8

const (
	colorNone cellColor = iota
	colorGrid
	colorGray
	colorWhite
	colorHighlight
)

// dash period in micro-pixels: 5 on, 3 off
const (
	dashOn     = 5
	dashPeriod = 8
)

const arrowBarbPx = 4

// canvas rasterizes view draw commands into a braille microgrid with 2x4
// pixels per terminal cell, plus a text overlay for labels.
type canvas struct {
	w, h  int // cells
	mask  [][]uint8
	color [][]cellColor
	text  [][]rune
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h}
	c.mask = make([][]uint8, h)
	c.color = make([][]cellColor, h)
	c.text = make([][]rune, h)
	for i := 0; i < h; i++ {
		c.mask[i] = make([]uint8, w)
		c.color[i] = make([]cellColor, w)
		c.text[i] = make([]rune, w)
	}
	return c
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (c *canvas) setPixel(mx, my int, col cellColor) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= c.h || cx >= c.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	c.mask[cy][cx] |= bit
	if col > c.color[cy][cx] {
		c.color[cy][cx] = col
	}
}

// line draws on the microgrid using Bresenham. Dashed lines skip pixels
// on a fixed period; wide lines also fill the pixel below and to the
// right of each step.
func (c *canvas) line(x0, y0, x1, y1 int, col cellColor, dashed, wide bool) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	step := 0
	for {
		if !dashed || step%dashPeriod < dashOn {
			c.setPixel(x0, y0, col)
			if wide {
				c.setPixel(x0+1, y0, col)
				c.setPixel(x0, y0+1, col)
			}
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		step++
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func strokeColor(s view.LineStyle) cellColor {
	switch s.Color {
	case view.StrokeHighlight:
		return colorHighlight
	case view.StrokeGray:
		return colorGray
	default:
		return colorWhite
	}
}

func px(v float64) int { return int(math.Round(v)) }

func (c *canvas) polyline(op view.PolylineOp) {
	col := strokeColor(op.Style)
	for i := 0; i+1 < len(op.Points); i++ {
		a, b := op.Points[i], op.Points[i+1]
		c.line(px(a.X), px(a.Y), px(b.X), px(b.Y), col, op.Style.Dashed, op.Style.Wide)
	}
}

// arrow draws two barbs sweeping back from the tip.
func (c *canvas) arrow(op view.ArrowOp) {
	col := strokeColor(op.Style)
	tx, ty := px(op.At.X), px(op.At.Y)
	for _, spread := range []float64{0.6, -0.6} {
		a := op.Angle + math.Pi + spread
		bx := op.At.X + arrowBarbPx*math.Cos(a)
		by := op.At.Y + arrowBarbPx*math.Sin(a)
		c.line(tx, ty, px(bx), px(by), col, false, false)
	}
}

// label writes text into the cell grid at the anchor's cell.
func (c *canvas) label(op view.LabelOp) {
	cy := px(op.At.Y) / 4
	cx := px(op.At.X) / 2
	if cy < 0 || cy >= c.h {
		return
	}
	for i, r := range []rune(op.Text) {
		x := cx + i
		if x < 0 || x >= c.w {
			continue
		}
		c.text[cy][x] = r
	}
}

func (c *canvas) gridLine(op view.GridLineOp) {
	c.line(px(op.From.X), px(op.From.Y), px(op.To.X), px(op.To.Y), colorGrid, false, false)
}

func (c *canvas) draw(ops []view.DrawOp) {
	for _, op := range ops {
		switch op := op.(type) {
		case view.GridLineOp:
			c.gridLine(op)
		case view.PolylineOp:
			c.polyline(op)
		case view.ArrowOp:
			c.arrow(op)
		case view.LabelOp:
			c.label(op)
		}
	}
}

func styleOf(col cellColor) lipgloss.Style {
	switch col {
	case colorGrid:
		return gridStyle
	case colorGray:
		return grayStyle
	case colorHighlight:
		return highlightStyle
	default:
		return whiteStyle
	}
}

// render emits the canvas as styled terminal rows, grouping runs of
// same-colored cells to keep the escape-sequence volume down.
func (c *canvas) render() string {
	rows := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var sb strings.Builder
		var run []rune
		var runCol cellColor
		runLabel := false
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runLabel {
				sb.WriteString(labelStyle.Render(string(run)))
			} else if runCol == colorNone {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(styleOf(runCol).Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < c.w; x++ {
			var r rune
			col := c.color[y][x]
			isLabel := false
			switch {
			case c.text[y][x] != 0:
				r = c.text[y][x]
				isLabel = true
			case c.mask[y][x] != 0:
				r = rune(0x2800 + int(c.mask[y][x]))
			default:
				r = ' '
				col = colorNone
			}
			if isLabel != runLabel || (!isLabel && col != runCol) {
				flush()
				runCol = col
				runLabel = isLabel
			}
			run = append(run, r)
		}
		flush()
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}
