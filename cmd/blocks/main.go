// blocks is a TUI block puzzle for the terminal: drag shapes onto a grid
// and clear full rows and columns.
//
// Usage:
//
//	blocks list              - List available board modes
//	blocks play <mode>       - Play a mode
//	blocks scores <mode>     - Show high scores for a mode
//	blocks shapes            - Print the shape catalog
//	blocks serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.blocks/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/tui-blocks/internal/games/blockblast"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - A drag-and-drop block puzzle in your terminal",
	Long: `Blocks is a terminal block puzzle. Drag shapes from the tray onto
the board; full rows and columns clear. The round ends when no offered
shape fits anywhere.

Available commands:
  list     - Show all available board modes
  play     - Play a specific mode
  scores   - View high scores
  shapes   - Print the shape catalog
  serve    - Start SSH server for remote play

Examples:
  blocks list
  blocks play classic
  blocks play grand --difficulty hard
  blocks serve --ssh :2222
  blocks scores classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blocks/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(serveCmd)
}
