package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign levels",
	Long:  `Shows every campaign level with its size, move budget and target score.`,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	settings, closeLog := setup(false)
	defer closeLog()

	specs, err := settings.Levels.All()
	if err != nil {
		fail("%v", err)
	}
	if len(specs) == 0 {
		fmt.Println("No levels available.")
		return
	}

	campaign := settings.Config.Campaign
	fmt.Println("Campaign levels:")
	fmt.Println()
	fmt.Printf("  %-4s  %-20s  %-6s  %-5s  %s\n", "ID", "Name", "Size", "Moves", "Target")
	fmt.Printf("  %-4s  %-20s  %-6s  %-5s  %s\n", "--", "----", "----", "-----", "------")

	for i, lvl := range specs {
		moves := lvl.Moves
		if moves <= 0 {
			moves = campaign.Moves
		}
		target := lvl.Target
		if target <= 0 {
			target = campaign.TargetFor(i)
		}
		size := fmt.Sprintf("%dx%d", lvl.Rows, lvl.Cols)
		fmt.Printf("  %-4d  %-20s  %-6s  %-5d  %d\n", lvl.ID, lvl.Name, size, moves, target)
	}

	fmt.Println()
	fmt.Println("Run 'match3 play <id>' to start at a level.")
}
