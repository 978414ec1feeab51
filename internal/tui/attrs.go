package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"roadview/internal/roadmap"
)

// refreshAttrs rebuilds the attribute table from the current document:
// one row per road with its first-point style and raw-point length.
func (m *Model) refreshAttrs() {
	doc := m.engine.Document()
	if len(doc.Roads) == 0 {
		m.showAttrs = false
		m.status = "no roads to list"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "id", Width: 14},
		{Title: "points", Width: 7},
		{Title: "color", Width: 9},
		{Title: "type", Width: 7},
		{Title: "length", Width: 10},
	}
	rows := make([]table.Row, 0, len(doc.Roads))
	for i, r := range doc.Roads {
		color, ltype := "", ""
		if len(r.BoundaryPoints) > 0 {
			color = r.BoundaryPoints[0].LineColor
			ltype = r.BoundaryPoints[0].LineType
		}
		if color == "" {
			color = roadmap.ColorWhite
		}
		if ltype == "" {
			ltype = roadmap.TypeSolid
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			r.ID,
			fmt.Sprintf("%d", len(r.BoundaryPoints)),
			color,
			ltype,
			fmt.Sprintf("%.2f", r.Length()),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
