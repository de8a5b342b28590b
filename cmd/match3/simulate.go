package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	flagSimMoves   int
	flagSimJSON    bool
	flagSimEndless bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [level]",
	Short: "Play a level headless and print a report",
	Long: `Play a level without a terminal UI. Every move is drawn at random from
the moves the hint table finds, then the cascade runs to completion.
The report lists the waves of each move and the final score.

Examples:
  match3 simulate 1
  match3 simulate 2 --moves 100 --seed 7
  match3 simulate --endless --json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimMoves, "moves", 20, "Number of moves to play")
	simulateCmd.Flags().BoolVar(&flagSimJSON, "json", false, "Print the report as JSON")
	simulateCmd.Flags().BoolVar(&flagSimEndless, "endless", false, "Simulate a random endless board")
}

func runSimulate(_ *cobra.Command, args []string) {
	settings, closeLog := setup(false)
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var (
		report match3.SimulationReport
		err    error
	)
	switch {
	case flagSimEndless:
		report, err = match3.SimulateEndless(settings.Config, flagSimMoves, seed, settings.Logger)
	case len(args) == 1:
		id, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			fail("invalid level %q", args[0])
		}
		level, lvlErr := settings.Levels.Level(id)
		if lvlErr != nil {
			fail("%v", lvlErr)
		}
		report, err = match3.Simulate(settings.Config, level, flagSimMoves, seed, settings.Logger)
	default:
		fail("a level id or --endless is required")
	}
	if err != nil {
		fail("%v", err)
	}

	if flagSimJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fail("%v", err)
		}
		return
	}
	printReport(report)
}

func printReport(r match3.SimulationReport) {
	fmt.Printf("Simulation - level %d (%dx%d), seed %d\n", r.Level, r.Rows, r.Cols, r.Seed)
	fmt.Println()
	fmt.Printf("  %-4s  %-12s  %-5s  %-20s  %s\n", "#", "Move", "Valid", "Waves", "Score")
	fmt.Printf("  %-4s  %-12s  %-5s  %-20s  %s\n", "-", "----", "-----", "-----", "-----")

	for i, m := range r.Moves {
		waves := make([]string, len(m.Waves))
		for j, w := range m.Waves {
			waves[j] = strconv.Itoa(w)
		}
		fmt.Printf("  %-4d  %-12s  %-5t  %-20s  %d\n", i+1, m.Move, m.Valid, strings.Join(waves, " "), m.Score)
	}

	fmt.Println()
	fmt.Printf("Score: %d  Best combo: %d  Destroyed: %d  Shuffles: %d\n", r.Score, r.BestCombo, r.Destroyed, r.Shuffles)
	fmt.Println()
	fmt.Println(r.Board)
}
