package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var flagScoresInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a board mode",
	Long: `Display the top 10 high scores for the specified mode.

With --interactive, opens a browsable scoreboard where tab switches
between modes.

Examples:
  blocks scores classic
  blocks scores grand
  blocks scores classic --interactive`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse scores in a full-screen scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	modeID := args[0]

	// Check if mode exists
	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'blocks list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, sbErr := tui.RunScoreboard(store, modeID, width, height); sbErr != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", sbErr)
			os.Exit(1)
		}
		return
	}

	// Get top scores
	scores, err := store.TopScores(modeID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blocks play %s' to set the first high score!\n", modeID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-7s  %s\n", "Rank", "Score", "Lines", "Pieces", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-7s  %s\n", "----", "-----", "-----", "------", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-7d  %s\n", i+1, entry.Score, entry.Lines, entry.Pieces, dateStr)
	}

	// Show aggregate stats
	fmt.Println()
	stats, err := store.GetModeStats(modeID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Printf("Best: %d | Games: %d | Avg: %.0f | Total lines: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines)
	}
}
