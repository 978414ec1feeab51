package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"roadview/internal/roadmap"
)

// panStepPx is the pan distance per arrow key in micro-pixels.
const panStepPx = 4

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncViewport()
		if m.showSidebar {
			lo := m.layout()
			m.l.SetSize(28-2, lo.contentH-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				raw := strings.TrimSpace(m.ta.Value())
				if raw == "" {
					m.status = "paste: empty"
					return m, nil
				}
				doc, err := roadmap.Parse([]byte(raw))
				if err != nil {
					m.status = "parse error: " + err.Error()
					return m, nil
				}
				m.engine.LoadDocument(doc)
				m.selPath = ""
				m.status = fmt.Sprintf("rendered pasted map  roads=%d", len(doc.Roads))
				m.pasteMode = false
				m.ta.Blur()
				if m.showAttrs {
					m.refreshAttrs()
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			m.engine.ZoomIn()
			m.status = fmt.Sprintf("zoom: %.3g px/unit", m.engine.Scale())
		case "-", "_":
			m.engine.ZoomOut()
			m.status = fmt.Sprintf("zoom: %.3g px/unit", m.engine.Scale())
		case "0", "r":
			m.engine.ResetView()
			m.status = "view reset"
		case "g":
			if m.engine.ToggleGrid() {
				m.status = "grid: on"
			} else {
				m.status = "grid: off"
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			m.syncViewport()
			if m.showSidebar {
				m.refreshDir()
				lo := m.layout()
				m.l.SetSize(28-2, lo.contentH-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "i":
			m.inspectPopup = m.buildInspect()
			m.status = "inspect popup"
		case "esc":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
			} else {
				m.engine.ClearSelection()
				m.status = "selection cleared"
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.engine.Pan(0, -panStepPx)
		case "down":
			m.engine.Pan(0, panStepPx)
		case "left":
			m.engine.Pan(-panStepPx, 0)
		case "right":
			m.engine.Pan(panStepPx, 0)
		}
	case tea.MouseMsg:
		lo := m.layout()
		cx, cy := msg.X, msg.Y
		inMap := cx >= lo.mapOriginX && cx < lo.mapOriginX+lo.mapW &&
			cy >= lo.mapOriginY && cy < lo.mapOriginY+lo.mapH
		if !inMap {
			m.hoverHasWorld = false
			break
		}
		// cell center in micro-pixels
		mx := float64((cx-lo.mapOriginX)*2 + 1)
		my := float64((cy-lo.mapOriginY)*4 + 2)
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			m.engine.ZoomAt(m.cfg.ZoomStep, mx, my)
		case msg.Button == tea.MouseButtonWheelDown:
			m.engine.ZoomAt(1/m.cfg.ZoomStep, mx, my)
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			if res, ok := m.engine.PickAt(mx, my); ok {
				id := res.ID
				if id == "" {
					id = "<unnamed>"
				}
				m.status = fmt.Sprintf("selected %s  length=%.2f", id, res.Length)
			} else {
				m.status = "no road within reach"
			}
		default:
			wx, wy := m.engine.ScreenToWorld(mx, my)
			m.hoverHasWorld = true
			m.hoverX = wx
			m.hoverY = wy
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) buildInspect() string {
	doc := m.engine.Document()
	b := m.engine.Bounds()
	name := m.selPath
	if name == "" {
		name = "<unsaved>"
	}
	npts := 0
	for _, r := range doc.Roads {
		npts += len(r.BoundaryPoints)
	}
	meta := []string{
		fmt.Sprintf("path: %s", name),
		fmt.Sprintf("offset: x=%.2f y=%.2f z=%.2f", doc.Offset.X, doc.Offset.Y, doc.Offset.Z),
		fmt.Sprintf("roads: %d  points: %d", len(doc.Roads), npts),
	}
	if b.Empty() {
		meta = append(meta, "bounds: <empty>")
	} else {
		meta = append(meta, fmt.Sprintf("bounds: [%.2f, %.2f, %.2f, %.2f]", b.MinX, b.MinY, b.MaxX, b.MaxY))
	}
	if sel, ok := m.engine.Selection(); ok {
		id := sel.ID
		if id == "" {
			id = "<unnamed>"
		}
		meta = append(meta, fmt.Sprintf("selected: %s  length=%.2f", id, sel.Length()))
	} else {
		meta = append(meta, "selected: none")
	}
	return strings.Join(meta, "\n")
}
