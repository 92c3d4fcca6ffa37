package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

const (
	gridPosAlive = "@"
	gridPosEmpty = " "

	// ansiClear moves the cursor home and clears the screen
	ansiClear = "\033[1;1H\033[2J"
)

// Renderer draws one generation to a display
type Renderer interface {
	Clear()
	Display(g *Grid, status string)
}

// NewRenderer returns the renderer for a display style ("plain" or "box")
func NewRenderer(style string, out io.Writer) (Renderer, error) {
	switch style {
	case "", StylePlain:
		return &TerminalRenderer{Out: out}, nil
	case StyleBox:
		return NewBoxRenderer(out), nil
	default:
		return nil, errors.Errorf("unknown display style %q", style)
	}
}

// Display styles
const (
	StylePlain = "plain"
	StyleBox   = "box"
)

// TerminalRenderer draws the grid inside a dashed frame using '@' for living cells
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the grid followed by the status line, if any
func (r *TerminalRenderer) Display(g *Grid, status string) {
	fmt.Fprint(r.Out, FrameGrid(g))
	if status != "" {
		fmt.Fprintln(r.Out, status)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.Out, ansiClear)
}

// FrameGrid returns the plain framed text of a grid:
//
//	 ---
//	|@ @|
//	| @ |
//	 ---
func FrameGrid(g *Grid) string {
	var sb strings.Builder
	border := " " + strings.Repeat("-", g.Width()) + "\n"

	sb.WriteString(border)
	for i := range g.Height() {
		sb.WriteByte('|')
		for j := range g.Width() {
			if g.Get(i, j) {
				sb.WriteString(gridPosAlive)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)

	return sb.String()
}

var (
	boxFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466"))

	boxCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff88"))

	boxStatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))
)

// BoxRenderer draws the grid with lipgloss styling
type BoxRenderer struct {
	Out io.Writer
}

// NewBoxRenderer creates a styled renderer writing to out
func NewBoxRenderer(out io.Writer) *BoxRenderer {
	return &BoxRenderer{Out: out}
}

// Display renders the styled grid followed by the status line, if any
func (r *BoxRenderer) Display(g *Grid, status string) {
	fmt.Fprintln(r.Out, BoxGrid(g))
	if status != "" {
		fmt.Fprintln(r.Out, boxStatusStyle.Render(status))
	}
}

// Clear clears the terminal screen
func (r *BoxRenderer) Clear() {
	fmt.Fprint(r.Out, ansiClear)
}

// BoxGrid returns the grid inside a rounded lipgloss border
func BoxGrid(g *Grid) string {
	rows := make([]string, g.Height())
	for i := range g.Height() {
		var sb strings.Builder
		for j := range g.Width() {
			if g.Get(i, j) {
				sb.WriteString(boxCellStyle.Render(gridPosAlive))
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		rows[i] = sb.String()
	}
	return boxFrameStyle.Render(strings.Join(rows, "\n"))
}
