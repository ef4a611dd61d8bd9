package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paper-flight/internal/registry"
	"github.com/vovakirdan/paper-flight/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs of a mode",
	Long: `Display the best runs of the given mode (default: normal).

Examples:
  flight scores
  flight scores competition --limit 20
  flight scores chill --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history of the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID, err := gameIDFor(args)
	if err != nil {
		return err
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared the runs of %s.\n", game.Title())
		return nil
	}

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Runs - %s\n\n", game.Title())

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'flight play %s' to set the first high score!\n", args0(args))
		return nil
	}

	fmt.Printf("  %-4s  %-9s  %-7s  %-6s  %-7s  %-10s  %s\n", "Rank", "Score", "Coins", "Time", "Revives", "Player", "When")
	fmt.Printf("  %-4s  %-9s  %-7s  %-6s  %-7s  %-10s  %s\n", "----", "-----", "-----", "----", "-------", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-9s  %-7s  %-6s  %-7d  %-10s  %s\n",
			i+1,
			humanize.Comma(int64(r.Score)),
			humanize.Comma(int64(r.Coins)),
			fmt.Sprintf("%d:%02d", r.Duration/60, r.Duration%60),
			r.Revives,
			r.Player,
			humanize.Time(r.CreatedAt),
		)
	}
	return nil
}

func args0(args []string) string {
	if len(args) == 0 {
		return "normal"
	}
	return args[0]
}
