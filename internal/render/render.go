// Package render draws search results for a terminal.
package render

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/statespace/maze"
)

// Cell colours.
const (
	ColorWall  = "#6b7280"
	ColorPath  = "#f472b6"
	ColorStart = "#34d399"
	ColorGoal  = "#818cf8"
	ColorNote  = "#a78bfa"
)

// Profile returns the detected colour profile of stdout, or termenv.Ascii
// when colour is disabled.
func Profile(color bool) termenv.Profile {
	if !color {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}

// Maze renders m with path marked, colouring each cell kind. With the Ascii
// profile the result equals m.Render(path).
func Maze(m *maze.Maze, path []maze.Location, p termenv.Profile) string {
	var b strings.Builder
	m.Cells(path, func(l maze.Location, c maze.Cell) bool {
		if l.Column == 0 && l.Row > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(cell(c, p))
		return true
	})

	return b.String()
}

func cell(c maze.Cell, p termenv.Profile) string {
	var hex string
	switch c {
	case maze.Blocked:
		hex = ColorWall
	case maze.Path:
		hex = ColorPath
	case maze.Start:
		hex = ColorStart
	case maze.Goal:
		hex = ColorGoal
	default:
		return c.String()
	}

	return termenv.String(c.String()).Foreground(p.Color(hex)).String()
}

// Note colours a summary line.
func Note(s string, p termenv.Profile) string {
	return termenv.String(s).Foreground(p.Color(ColorNote)).String()
}
