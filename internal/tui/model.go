package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"roadview/internal/config"
	"roadview/internal/view"
)

type Model struct {
	width  int
	height int

	cfg    *config.Config
	engine *view.Engine

	showSidebar bool
	helpVisible bool

	status string

	// File explorer
	cwd     string
	l       list.Model
	selPath string

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// attributes table
	showAttrs bool
	tbl       table.Model

	// inspect popup
	inspectPopup string

	// hover state (world coordinates under the cursor)
	hoverHasWorld bool
	hoverX        float64
	hoverY        float64
}

func New(cfg *config.Config) Model {
	m := Model{
		cfg:         cfg,
		engine:      view.NewEngine(cfg.ViewOptions()),
		showSidebar: false,
		helpVisible: true,
		status:      "roadview ready",
	}
	m.cwd = cfg.MapDir
	if m.cwd == "" || m.cwd == "." {
		m.cwd, _ = os.Getwd()
	}
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Maps"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste a map document here ({offset, roadLine}). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// attributes table setup (rows are rebuilt per document)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a map file at launch.
func NewWithPath(cfg *config.Config, path string) Model {
	m := New(cfg)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// layout holds the cell geometry shared by Update (mouse hit tests) and
// View (composition). Header is 1 row, footer 2.
type layout struct {
	sidebarW   int
	contentW   int
	contentH   int
	mapW       int
	mapH       int
	mapOriginX int
	mapOriginY int
}

func (m Model) layout() layout {
	var lo layout
	if m.showSidebar {
		lo.sidebarW = 28
	}
	headerHeight := 1
	footerHeight := 2
	lo.contentH = m.height - headerHeight - footerHeight
	if lo.contentH < 4 {
		lo.contentH = 4
	}
	lo.contentW = max(10, m.width)
	lo.mapW = lo.contentW - lo.sidebarW - 1
	if lo.mapW < 10 {
		lo.mapW = 10
	}
	lo.mapH = lo.contentH
	lo.mapOriginX = lo.sidebarW
	if m.showSidebar {
		lo.mapOriginX++
	}
	lo.mapOriginY = headerHeight
	return lo
}

// syncViewport pushes the map pane size to the engine in micro-pixels
// (2x4 per cell, matching the braille canvas).
func (m *Model) syncViewport() {
	lo := m.layout()
	m.engine.SetViewport(float64(lo.mapW*2), float64(lo.mapH*4))
}
