package maze

import "strings"

// Render draws the maze with every location of path that is neither the
// start nor the goal marked as Path. The maze itself is not modified;
// locations outside the grid are ignored. Rows are separated by "\n" with
// no trailing newline.
func (m *Maze) Render(path []Location) string {
	var b strings.Builder
	b.Grow(m.rows * (m.columns + 1))
	m.Cells(path, func(l Location, c Cell) bool {
		if l.Column == 0 && l.Row > 0 {
			b.WriteByte('\n')
		}
		b.WriteRune(rune(c))
		return true
	})

	return b.String()
}

// String renders the maze without a path.
func (m *Maze) String() string { return m.Render(nil) }

// Cells calls fn for every cell in row-major order, reporting path
// locations as Path the same way Render does. Iteration stops when fn
// returns false.
func (m *Maze) Cells(path []Location, fn func(l Location, c Cell) bool) {
	onPath := make(map[Location]bool, len(path))
	for _, l := range path {
		if l != m.start && l != m.goal {
			onPath[l] = true
		}
	}
	for r, row := range m.grid {
		for c, cell := range row {
			l := Location{Row: r, Column: c}
			if onPath[l] {
				cell = Path
			}
			if !fn(l, cell) {
				return
			}
		}
	}
}
