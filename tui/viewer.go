// Package tui runs the simulation as an interactive bubbletea program.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gameoflife/model"
	"github.com/sheikhrachel/gameoflife/utils"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688")).
			Italic(true)
)

// tickMsg carries the id of the tick chain that scheduled it, so a chain
// replaced after a pause stops on its next tick.
type tickMsg struct {
	id int
}

// Viewer is the bubbletea model: one generation is shown per tick until
// the iteration budget is spent.
type Viewer struct {
	grid       *model.Grid
	generation int
	iterations int
	delay      time.Duration
	workers    int
	paused     bool
	tickID     int
	stats      *utils.Stats
}

// NewViewer creates a viewer starting from grid
func NewViewer(grid *model.Grid, config utils.Config, stats *utils.Stats) *Viewer {
	v := &Viewer{
		grid:       grid,
		iterations: config.Iterations,
		delay:      config.Delay,
		workers:    config.Workers,
		stats:      stats,
	}
	v.record()
	return v
}

// Grid returns the generation currently on screen
func (v *Viewer) Grid() *model.Grid {
	return v.grid
}

// Generation returns the index of the generation currently on screen
func (v *Viewer) Generation() int {
	return v.generation
}

func (v *Viewer) Init() tea.Cmd {
	if v.iterations <= 0 {
		return tea.Quit
	}
	return v.tick()
}

func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return v, tea.Quit
		case " ", "p":
			v.paused = !v.paused
			if !v.paused {
				v.tickID++
				return v, v.tick()
			}
		case "n":
			if v.paused && !v.lastGeneration() {
				v.advance()
			}
		}
	case tickMsg:
		if v.paused || msg.id != v.tickID {
			return v, nil
		}
		if v.lastGeneration() {
			return v, tea.Quit
		}
		v.advance()
		return v, v.tick()
	}
	return v, nil
}

func (v *Viewer) View() string {
	title := titleStyle.Render("Game of Life")
	if v.paused {
		title += " " + pausedStyle.Render("[paused]")
	}
	status := v.stats.Status(v.grid.CountLivingCells(), v.grid.Width()*v.grid.Height())
	hints := hintStyle.Render("space: pause • n: step • q: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		model.BoxGrid(v.grid),
		status,
		hints,
	) + "\n"
}

func (v *Viewer) tick() tea.Cmd {
	id := v.tickID
	return tea.Tick(v.delay, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

func (v *Viewer) lastGeneration() bool {
	return v.generation >= v.iterations-1
}

func (v *Viewer) advance() {
	v.grid = model.StepParallel(v.grid, v.workers)
	v.generation++
	v.record()
}

func (v *Viewer) record() {
	v.stats.Update(v.generation, v.grid.CountLivingCells(), v.grid.Hash(), v.delay)
}

// Run starts the interactive program and returns the viewer in its final state
func Run(grid *model.Grid, config utils.Config, stats *utils.Stats, opts ...tea.ProgramOption) (*Viewer, error) {
	final, err := tea.NewProgram(NewViewer(grid, config, stats), opts...).Run()
	if err != nil {
		return nil, errors.Wrap(err, "[Run] interactive viewer failed")
	}
	return final.(*Viewer), nil
}
