package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes [kind]",
	Short: "Print the tetromino shape table",
	Long: `Shows every orientation of each tetromino as it sits in its 4x4 box.
Cell 0 of each orientation (the cell that stays put when rotating) is
drawn in lower case.

Examples:
  tetris shapes
  tetris shapes T`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShapes,
}

func runShapes(cmd *cobra.Command, args []string) error {
	kinds := tetris.Kinds[:]
	if len(args) == 1 {
		k, ok := tetris.ParseKind(args[0])
		if !ok {
			return fmt.Errorf("unknown kind %q (expected one of L J T I O Z S)", args[0])
		}
		kinds = []tetris.Kind{k}
	}

	out := cmd.OutOrStdout()
	for i, k := range kinds {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, formatShapes(k))
	}
	return nil
}

// formatShapes draws the four orientations of k side by side.
func formatShapes(k tetris.Kind) string {
	const box = 4

	var sb strings.Builder
	sb.WriteString(k.String())
	sb.WriteByte('\n')

	for r := 0; r < tetris.RotationCount; r++ {
		fmt.Fprintf(&sb, "  rot %d", r)
	}
	sb.WriteByte('\n')

	letter := k.String()
	rotations := tetris.Rotations(k)
	for y := 0; y < box; y++ {
		for _, shape := range rotations {
			sb.WriteString("  ")
			for x := 0; x < box; x++ {
				cell := "."
				for i, off := range shape {
					if off.X == x && off.Y == y {
						cell = letter
						if i == 0 {
							cell = strings.ToLower(letter)
						}
					}
				}
				sb.WriteString(cell)
			}
			sb.WriteString(" ")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
