// Package tetris implements the rules of a falling-block puzzle game:
// the tetromino shape table, piece geometry, the board, and the phase
// machine that turns player input into board mutations.
//
// The package performs no I/O. Rendering and input capture are supplied by
// the caller through the Renderer interface and Game.HandleInput.
package tetris

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	KindL Kind = iota
	KindJ
	KindT
	KindI
	KindO
	KindZ
	KindS

	kindCount = 7
)

// Kinds lists every piece kind in table order.
var Kinds = [kindCount]Kind{KindL, KindJ, KindT, KindI, KindO, KindZ, KindS}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindT:
		return "T"
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindZ:
		return "Z"
	case KindS:
		return "S"
	default:
		return "?"
	}
}

// ParseKind returns the kind named by a single letter (case-insensitive).
func ParseKind(s string) (Kind, bool) {
	if len(s) != 1 {
		return 0, false
	}
	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	for _, k := range Kinds {
		if k.String()[0] == letter {
			return k, true
		}
	}
	return 0, false
}

// Cell is the content of one board position: empty, or occupied by a block
// of some kind. The zero value is Empty.
type Cell uint8

// Empty is the unoccupied cell.
const Empty Cell = 0

// Filled returns a cell occupied by a block of kind k.
func Filled(k Kind) Cell {
	return Cell(k) + 1
}

// Occupied reports whether the cell holds a block.
func (c Cell) Occupied() bool {
	return c != Empty
}

// Kind returns the kind of the block in the cell. ok is false for Empty.
func (c Cell) Kind() (k Kind, ok bool) {
	if c == Empty {
		return 0, false
	}
	return Kind(c - 1), true
}

// String returns "." for Empty, otherwise the kind letter.
func (c Cell) String() string {
	k, ok := c.Kind()
	if !ok {
		return "."
	}
	return k.String()
}
