// SPDX-License-Identifier: MIT
// Package: wavefront/view
//
// model.go — the Bubble Tea model: frame clock, input handling, and
// frame rendering. The model owns the engine by value-of-pointer and is
// the only caller of Retarget/Step/Snapshot, which satisfies the
// engine's single-threaded stepping contract (Bubble Tea delivers
// messages to Update sequentially).

package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/wavefront/proximity"
	"github.com/katalvlaran/wavefront/stepbfs"
)

// statusRows is the number of terminal rows reserved below the canvas
// for the status line and the help line.
const statusRows = 2

// minCanvasDim is the smallest canvas dimension the projection math
// supports; smaller terminals render a placeholder instead.
const minCanvasDim = 2

// DefaultFPS is the stepping clock rate: one engine Step per frame.
const DefaultFPS = 30

// Config bundles the knobs the command line exposes.
type Config struct {
	NodeCount       int
	WorldW, WorldH  float64
	ProximityRadius float64
	Seed            int64
	FPS             int
}

// DefaultConfig mirrors the original sketch: 250 nodes on a 1000×1000
// world with a radius of one tenth of the width.
func DefaultConfig() Config {
	return Config{
		NodeCount:       proximity.DefaultNodeCount,
		WorldW:          proximity.DefaultWorldWidth,
		WorldH:          proximity.DefaultWorldHeight,
		ProximityRadius: proximity.DefaultProximityRadius,
		Seed:            time.Now().UnixNano(),
		FPS:             DefaultFPS,
	}
}

// frameMsg ticks once per animation frame.
type frameMsg time.Time

type keyMap struct {
	Regenerate key.Binding
	Pause      key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Regenerate: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "new graph"),
	),
	Pause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Regenerate, k.Pause, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Regenerate, k.Pause, k.Quit}}
}

// Model is the Bubble Tea model driving one engine.
type Model struct {
	cfg    Config
	engine *stepbfs.Engine
	canvas Canvas
	keys   keyMap
	help   help.Model
	paused bool
	ready  bool
}

// New builds the graph and engine from cfg and wraps them in a model.
// Build and engine errors propagate unchanged.
func New(cfg Config) (Model, error) {
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}
	g, err := proximity.Build(cfg.NodeCount, cfg.WorldW, cfg.WorldH,
		cfg.ProximityRadius, proximity.WithSeed(cfg.Seed))
	if err != nil {
		return Model{}, err
	}
	eng, err := stepbfs.New(g)
	if err != nil {
		return Model{}, err
	}

	return Model{
		cfg:    cfg,
		engine: eng,
		keys:   keys,
		help:   help.New(),
	}, nil
}

// frameInterval converts the configured FPS into a tick duration.
func (m Model) frameInterval() time.Duration {
	return time.Second / time.Duration(m.cfg.FPS)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.canvas = Canvas{
			Cols:   msg.Width,
			Rows:   msg.Height - statusRows,
			WorldW: m.cfg.WorldW,
			WorldH: m.cfg.WorldH,
		}
		m.help.Width = msg.Width
		m.ready = m.canvas.Cols >= minCanvasDim && m.canvas.Rows >= minCanvasDim

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Regenerate):
			m.regenerate()
		}

	case tea.MouseMsg:
		m.click(msg)

	case frameMsg:
		if !m.paused {
			m.engine.Step()
		}
		return m, m.tick()
	}

	return m, nil
}

// regenerate rebuilds graph and engine with the next seed, discarding
// the current search entirely.
func (m *Model) regenerate() {
	m.cfg.Seed++
	g, err := proximity.Build(m.cfg.NodeCount, m.cfg.WorldW, m.cfg.WorldH,
		m.cfg.ProximityRadius, proximity.WithSeed(m.cfg.Seed))
	if err != nil {
		return // parameters were valid at startup; keep the old graph
	}
	if eng, err := stepbfs.New(g); err == nil {
		m.engine = eng
	}
}

// click resolves a mouse press to its nearest node and retargets the
// engine: left button picks the source, right button the target.
func (m *Model) click(msg tea.MouseMsg) {
	if !m.ready || msg.Action != tea.MouseActionPress {
		return
	}
	if msg.Y >= m.canvas.Rows {
		return // status area, not the canvas
	}
	id, ok := Nearest(m.engine.Graph(), m.canvas.World(msg.X, msg.Y))
	if !ok {
		return
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		// Nearest always returns an in-range ID, so Retarget cannot fail.
		_ = m.engine.Retarget(id, m.engine.Target())
	case tea.MouseButtonRight:
		_ = m.engine.Retarget(m.engine.Source(), id)
	}
}

// View implements tea.Model: one styled frame of canvas plus status.
func (m Model) View() string {
	if !m.ready {
		return "terminal too small — enlarge the window"
	}

	s := m.engine.Snapshot()
	grid := m.rasterize(s)

	var b strings.Builder
	for row := 0; row < m.canvas.Rows; row++ {
		b.WriteString(renderRow(grid[row]))
		b.WriteByte('\n')
	}
	b.WriteString(m.statusLine(s))
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// rasterize draws edges then nodes into a paint grid. Later paint
// classes only override earlier ones when they rank higher, which
// reproduces the original's z-ordering.
func (m Model) rasterize(s stepbfs.Snapshot) [][]paint {
	grid := make([][]paint, m.canvas.Rows)
	for i := range grid {
		grid[i] = make([]paint, m.canvas.Cols)
	}
	set := func(col, row int, p paint) {
		if grid[row][col] < p {
			grid[row][col] = p
		}
	}

	g := m.engine.Graph()

	// Consecutive path pairs, normalized U < V, for edge classification.
	onPath := make(map[proximity.Edge]bool, len(s.Path))
	for i := 1; i < len(s.Path); i++ {
		u, v := s.Path[i-1], s.Path[i]
		if u > v {
			u, v = v, u
		}
		onPath[proximity.Edge{U: u, V: v}] = true
	}

	for _, e := range g.Edges() {
		p := paintEdge
		switch {
		case onPath[e]:
			p = paintPath
		case s.Visited[e.U] || s.Visited[e.V]:
			p = paintVisited
		}
		pu, _ := g.Position(e.U)
		pv, _ := g.Position(e.V)
		for _, cell := range m.canvas.Line(pu, pv) {
			set(cell[0], cell[1], p)
		}
	}

	for i := 0; i < g.Order(); i++ {
		id := proximity.NodeID(i)
		p := paintNode
		switch id {
		case s.Source:
			p = paintSource
		case s.Target:
			p = paintTarget
		}
		pos, _ := g.Position(id)
		col, row := m.canvas.Cell(pos)
		set(col, row, p)
	}

	return grid
}

// renderRow styles one canvas row, grouping equal-paint runs to keep the
// escape-sequence overhead down.
func renderRow(row []paint) string {
	var b strings.Builder
	for i := 0; i < len(row); {
		j := i
		for j < len(row) && row[j] == row[i] {
			j++
		}
		style, glyph := styleFor(row[i])
		b.WriteString(style.Render(strings.Repeat(string(glyph), j-i)))
		i = j
	}

	return b.String()
}

// statusLine summarizes the snapshot for the bottom bar.
func (m Model) statusLine(s stepbfs.Snapshot) string {
	visited := 0
	for _, v := range s.Visited {
		if v {
			visited++
		}
	}
	state := s.Phase.String()
	if m.paused {
		state += " (paused)"
	}
	status := fmt.Sprintf("%s  source:%d  target:%d  visited:%d  path:%d  seed:%d",
		state, s.Source, s.Target, visited, len(s.Path), m.cfg.Seed)

	return statusStyle.Render(status)
}
