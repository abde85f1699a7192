// Package tui is the Bubble Tea front end: it maps key presses to engine
// actions, drives the simulation from tick messages, and renders engine
// snapshots into the terminal. It also hosts the remote-play SSH server.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is a small palette for canvas cells.
type Color uint8

const (
	ColorDefault Color = iota
	ColorYellow
	ColorGreen
	ColorGray
	ColorRed
	ColorCyan
	ColorWhite
)

var colorStyles = map[Color]lipgloss.Style{
	ColorDefault: lipgloss.NewStyle(),
	ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

type cell struct {
	r rune
	c Color
}

// Canvas is a colored character buffer the renderer draws a frame into
// before it is converted to ANSI output.
type Canvas struct {
	w, h  int
	cells []cell
}

// NewCanvas creates a cleared canvas.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the buffer. Content is discarded; a frame is always
// drawn from scratch.
func (c *Canvas) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.w, c.h = w, h
	c.cells = make([]cell, w*h)
	c.Clear()
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.h }

// Clear fills the canvas with spaces.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
}

// Set places a rune; out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y int, r rune, col Color) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, c: col}
}

// Get returns the rune at a position, space if out of bounds.
func (c *Canvas) Get(x, y int) rune {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return ' '
	}
	return c.cells[y*c.w+x].r
}

// Text writes a string starting at (x, y).
func (c *Canvas) Text(x, y int, s string, col Color) {
	for i, r := range s {
		c.Set(x+i, y, r, col)
	}
}

// FillRect fills a rectangle with a rune.
func (c *Canvas) FillRect(x, y, w, h int, r rune, col Color) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c.Set(x+dx, y+dy, r, col)
		}
	}
}

// Box clears a rectangle and draws a border around it.
func (c *Canvas) Box(x, y, w, h int, col Color) {
	c.FillRect(x, y, w, h, ' ', ColorDefault)
	for dx := 0; dx < w; dx++ {
		c.Set(x+dx, y, '─', col)
		c.Set(x+dx, y+h-1, '─', col)
	}
	for dy := 0; dy < h; dy++ {
		c.Set(x, y+dy, '│', col)
		c.Set(x+w-1, y+dy, '│', col)
	}
	c.Set(x, y, '╭', col)
	c.Set(x+w-1, y, '╮', col)
	c.Set(x, y+h-1, '╰', col)
	c.Set(x+w-1, y+h-1, '╯', col)
}

// String returns the plain-rune contents, used for screenshots and tests.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow((c.w + 1) * c.h)
	for y := 0; y < c.h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.w; x++ {
			sb.WriteRune(c.cells[y*c.w+x].r)
		}
	}
	return sb.String()
}

// Render converts the canvas to a styled string, grouping consecutive cells
// of the same color to keep the ANSI escape overhead down.
func (c *Canvas) Render() string {
	var sb strings.Builder
	sb.Grow(c.w*c.h*2 + c.h)
	for y := 0; y < c.h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < c.w {
			start := c.cells[y*c.w+x].c
			var run strings.Builder
			for x < c.w && c.cells[y*c.w+x].c == start {
				run.WriteRune(c.cells[y*c.w+x].r)
				x++
			}
			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
