package tetris

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Piece is a tetromino in flight. It is a value type: movement methods
// return the moved piece and leave the receiver untouched.
type Piece struct {
	Kind     Kind
	Rotation Rotation
	Anchor   core.Point
}

// Spawn returns a piece of kind k in rotation 0, horizontally centered on a
// board of the given width and touching the top row.
func Spawn(k Kind, boardWidth int) Piece {
	return Piece{
		Kind:     k,
		Rotation: 0,
		Anchor:   core.Pt(boardWidth/2-2, 0),
	}
}

// Cells returns the absolute board positions covered by the piece.
func (p Piece) Cells() [4]core.Point {
	shape := ShapeOf(p.Kind, p.Rotation)
	var cells [4]core.Point
	for i, off := range shape {
		cells[i] = p.Anchor.Add(off)
	}
	return cells
}

// Fits reports whether every cell of the piece is inside the board and empty.
// Used to validate a freshly spawned piece.
func (p Piece) Fits(b *Board) bool {
	return b.accepts(p.Cells(), nil)
}

// Translate moves the piece by (dx, dy). The move is accepted only if every
// target cell is inside the board and either empty or already covered by the
// piece itself. On rejection the original piece is returned with false.
func (p Piece) Translate(dx, dy int, b *Board) (Piece, bool) {
	moved := p
	moved.Anchor = p.Anchor.Add(core.Pt(dx, dy))

	own := p.Cells()
	if !b.accepts(moved.Cells(), own[:]) {
		return p, false
	}
	return moved, true
}

// Rotate turns the piece a quarter turn. The new orientation is shifted so
// that its first cell lands where the old first cell was. If the rotated
// footprint is out of bounds or overlaps foreign blocks the original piece
// is returned.
func (p Piece) Rotate(clockwise bool, b *Board) Piece {
	pivot := p.Cells()[0]

	rotated := p
	if clockwise {
		rotated.Rotation = p.Rotation.CW()
	} else {
		rotated.Rotation = p.Rotation.CCW()
	}

	// Cells of the new orientation at the unchanged anchor, then the
	// correction that puts cell zero back on the pivot.
	correction := pivot.Sub(rotated.Cells()[0])
	rotated.Anchor = rotated.Anchor.Add(correction)

	own := p.Cells()
	if !b.accepts(rotated.Cells(), own[:]) {
		return p
	}
	return rotated
}

// Rows returns the distinct rows spanned by the piece in ascending order.
func (p Piece) Rows() []int {
	rows := make([]int, 0, 4)
	for _, c := range p.Cells() {
		rows = append(rows, c.Y)
	}
	slices.Sort(rows)
	return slices.Compact(rows)
}

func (p Piece) String() string {
	return fmt.Sprintf("%s/%d@(%d,%d)", p.Kind, p.Rotation, p.Anchor.X, p.Anchor.Y)
}
