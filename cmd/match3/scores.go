package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagScoresEndless bool
	flagScoresLimit   int
	flagScoresClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top campaign scores, optionally for one level, or the
endless mode scores with --endless.

Examples:
  match3 scores
  match3 scores 2
  match3 scores --endless --limit 20
  match3 scores --endless --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresEndless, "endless", false, "Show endless mode scores")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores of the selected mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := match3.GameID
	title := "Campaign"
	if flagScoresEndless {
		gameID = match3.EndlessGameID
		title = "Endless"
	}

	level := storage.AnyLevel
	if len(args) == 1 {
		if flagScoresEndless {
			fail("endless mode has no levels")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fail("invalid level %q", args[0])
		}
		level = id
		title = fmt.Sprintf("Level %d", id)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared %s scores.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, level, flagScoresLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'match3 play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-5s  %-10s  %-5s  %-5s  %s\n", "Rank", "Level", "Score", "Combo", "Moves", "Date")
	fmt.Printf("  %-4s  %-5s  %-10s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "-----", "----")

	for i, e := range scores {
		lvl := "-"
		if e.Level > 0 {
			lvl = strconv.Itoa(e.Level)
		}
		date := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-5s  %-10d  %-5d  %-5d  %s\n", i+1, lvl, e.Score, e.BestCombo, e.Moves, date)
	}

	fmt.Println()
	if stats, err := store.Stats(gameID); err == nil && stats.Sessions > 0 {
		fmt.Printf("Best: %d  Sessions: %d  Average: %.0f\n", stats.HighScore, stats.Sessions, stats.AvgScore)
	}
}
