package tetris

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Default board dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 18

	// MinDimension is the smallest width or height a board may have; below
	// it some pieces cannot spawn at all.
	MinDimension = 4
)

// ErrInvalidDimensions is returned when a board is smaller than MinDimension
// in either direction.
var ErrInvalidDimensions = errors.New("tetris: invalid board dimensions")

// Board is the fixed-size grid of cells. Row 0 is the top.
type Board struct {
	width  int
	height int
	cells  []Cell // row-major, len == width*height
}

// NewBoard creates an empty board.
func NewBoard(width, height int) (*Board, error) {
	if width < MinDimension || height < MinDimension {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)",
			ErrInvalidDimensions, width, height, MinDimension, MinDimension)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether (x, y) is a position on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y). Out-of-bounds positions read as Empty.
func (b *Board) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.cells[y*b.width+x]
}

// Occupied reports whether (x, y) holds a block.
func (b *Board) Occupied(x, y int) bool {
	return b.At(x, y).Occupied()
}

func (b *Board) set(p core.Point, c Cell) {
	if !b.InBounds(p.X, p.Y) {
		return
	}
	b.cells[p.Y*b.width+p.X] = c
}

// Place marks the piece's cells as occupied by its kind. The caller must
// have validated the placement.
func (b *Board) Place(p Piece) {
	cell := Filled(p.Kind)
	for _, c := range p.Cells() {
		b.set(c, cell)
	}
}

// Clear empties the given cells.
func (b *Board) Clear(cells ...core.Point) {
	for _, c := range cells {
		b.set(c, Empty)
	}
}

// IsLineFull reports whether every cell of row y is occupied.
func (b *Board) IsLineFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	row := b.cells[y*b.width : (y+1)*b.width]
	for _, c := range row {
		if !c.Occupied() {
			return false
		}
	}
	return true
}

// ClearLine empties row y.
func (b *Board) ClearLine(y int) {
	if y < 0 || y >= b.height {
		return
	}
	clear(b.cells[y*b.width : (y+1)*b.width])
}

// CollapseAbove shifts every row above y down by one, overwriting row y.
// Row 0 becomes empty; rows below y are untouched. Call it once per cleared
// row with that row's index.
func (b *Board) CollapseAbove(y int) {
	if y < 0 || y >= b.height {
		return
	}
	// copy handles the overlap; rows 0..y-1 land in 1..y.
	copy(b.cells[b.width:(y+1)*b.width], b.cells[:y*b.width])
	b.ClearLine(0)
}

// Reset empties the whole board.
func (b *Board) Reset() {
	clear(b.cells)
}

// Snapshot returns an immutable copy of the current grid.
func (b *Board) Snapshot() Grid {
	return Grid{
		width:  b.width,
		height: b.height,
		cells:  slices.Clone(b.cells),
	}
}

// accepts reports whether every target cell is on the board and either
// empty or listed in own.
func (b *Board) accepts(targets [4]core.Point, own []core.Point) bool {
	for _, t := range targets {
		if !b.InBounds(t.X, t.Y) {
			return false
		}
		if b.Occupied(t.X, t.Y) && !slices.Contains(own, t) {
			return false
		}
	}
	return true
}

// String renders the board one row per line, "." for empty cells.
func (b *Board) String() string {
	return b.Snapshot().String()
}
