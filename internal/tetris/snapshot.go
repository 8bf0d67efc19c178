package tetris

import "strings"

// Grid is an immutable copy of the board, handed to renderers.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.height
}

// At returns the cell at (x, y). Out-of-bounds positions read as Empty.
func (g Grid) At(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Empty
	}
	return g.cells[y*g.width+x]
}

// Row returns a copy of row y.
func (g Grid) Row(y int) []Cell {
	row := make([]Cell, g.width)
	if y >= 0 && y < g.height {
		copy(row, g.cells[y*g.width:(y+1)*g.width])
	}
	return row
}

// OccupiedCount returns the number of occupied cells.
func (g Grid) OccupiedCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Occupied() {
			n++
		}
	}
	return n
}

// String renders the grid one row per line, "." for empty cells and the
// kind letter otherwise.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			sb.WriteString(g.At(x, y).String())
		}
	}
	return sb.String()
}

// Snapshot captures the complete game state for tests and renderers.
type Snapshot struct {
	Phase Phase
	Piece *Piece // nil outside PhaseActive
	Grid  Grid
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase: g.phase,
		Grid:  g.board.Snapshot(),
	}
	if g.piece != nil {
		p := *g.piece
		s.Piece = &p
	}
	return s
}
