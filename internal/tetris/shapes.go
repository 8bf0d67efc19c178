package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// RotationCount is the number of orientations every kind has.
const RotationCount = 4

// Rotation is an orientation index in [0, RotationCount). Consecutive
// indices are 90 degrees apart, clockwise.
type Rotation uint8

// CW returns the next orientation clockwise.
func (r Rotation) CW() Rotation {
	return (r + 1) % RotationCount
}

// CCW returns the next orientation counter-clockwise.
func (r Rotation) CCW() Rotation {
	return (r + RotationCount - 1) % RotationCount
}

// Shape is the four cell offsets of one orientation, relative to the
// orientation's own top-left origin.
type Shape [4]core.Point

// shapeTable holds every (kind, rotation) footprint. Filled once in init and
// never written again.
var shapeTable [kindCount][RotationCount]Shape

// shapeSource is the table in kind order L, J, T, I, O, Z, S.
//
// Reading aid, rotation 0 of each kind:
//
//	L  J   T    I  O   Z    S
//	X  .X  .X.  X  XX  XX.  .XX
//	X  .X  XXX  X  XX  .XX  XX.
//	XX XX       X
//	            X
var shapeSource = [kindCount][RotationCount][4][2]int{
	KindL: {
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
	},
	KindJ: {
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {1, 1}, {0, 1}, {2, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
	},
	KindT: {
		{{1, 0}, {0, 1}, {2, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
		{{1, 0}, {0, 1}, {1, 2}, {1, 1}},
	},
	KindI: {
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	},
	KindO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	KindZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {0, 1}, {0, 2}, {1, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {0, 1}, {0, 2}, {1, 1}},
	},
	KindS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
}

func init() {
	for _, k := range Kinds {
		for r := 0; r < RotationCount; r++ {
			var s Shape
			for i, off := range shapeSource[k][r] {
				s[i] = core.Pt(off[0], off[1])
			}
			if err := validateShape(s); err != nil {
				panic(fmt.Sprintf("tetris: shape %s/%d: %v", k, r, err))
			}
			shapeTable[k][r] = s
		}
	}
}

// validateShape checks that a footprint has four distinct, non-negative
// offsets forming a single edge-connected tetromino.
func validateShape(s Shape) error {
	seen := make(map[core.Point]bool, len(s))
	for _, p := range s {
		if p.X < 0 || p.Y < 0 {
			return fmt.Errorf("negative offset %v", p)
		}
		if seen[p] {
			return fmt.Errorf("duplicate offset %v", p)
		}
		seen[p] = true
	}

	// Flood fill from the first cell; all four must be reached.
	reached := map[core.Point]bool{s[0]: true}
	queue := []core.Point{s[0]}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []core.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
			n := p.Add(d)
			if seen[n] && !reached[n] {
				reached[n] = true
				queue = append(queue, n)
			}
		}
	}
	if len(reached) != len(s) {
		return fmt.Errorf("offsets are not connected")
	}
	return nil
}

// ShapeOf returns the footprint of kind k at rotation r.
func ShapeOf(k Kind, r Rotation) Shape {
	return shapeTable[k][r%RotationCount]
}

// Rotations returns all four footprints of kind k, indexed by rotation.
func Rotations(k Kind) [RotationCount]Shape {
	return shapeTable[k]
}
