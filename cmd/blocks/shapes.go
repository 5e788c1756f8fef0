package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	blocks "github.com/vovakirdan/tui-blocks/internal/games/blockblast/core"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print the shape catalog",
	Long: `Print every shape archetype with its cell count and the number of
distinct orientations derived from rotation and mirroring.`,
	Run: runShapes,
}

func runShapes(cmd *cobra.Command, args []string) {
	fmt.Println("Shape catalog:")
	fmt.Println()

	total := 0
	for _, a := range blocks.Archetypes() {
		variations := blocks.Variations(a)
		total += len(variations)

		fmt.Printf("%-10s %-18s cells: %-2d orientations: %d\n",
			a.ID, a.Label, a.CellCount(), len(variations))
		fmt.Println(renderMatrix(a.Canonical))
	}

	fmt.Printf("Total orientations: %d\n", total)
}

// renderMatrix draws a canonical pattern as a small ASCII grid.
func renderMatrix(m blocks.Matrix) string {
	var sb strings.Builder
	for _, row := range m {
		sb.WriteString("  ")
		for _, filled := range row {
			if filled {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
