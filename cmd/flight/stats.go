package main

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paper-flight/internal/core"
	"github.com/vovakirdan/paper-flight/internal/registry"
	"github.com/vovakirdan/paper-flight/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the wallet and lifetime totals",
	Long: `Display the coin wallet, lifetime statistics and a summary per mode.

Examples:
  flight stats
  flight stats --db ./flight.db`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	balance, err := store.Balance()
	if err != nil {
		return err
	}
	totals, err := store.Stats()
	if err != nil {
		return err
	}
	games, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Printf("Wallet: %s coins\n\n", humanize.Comma(int64(balance)))

	fmt.Println("Lifetime")
	for _, kind := range core.EventKinds {
		fmt.Printf("  %-9s %s\n", kind, humanize.Comma(int64(totals[kind])))
	}

	if len(games) == 0 {
		return nil
	}

	modeIDs := make([]string, 0, len(games))
	for id := range games {
		modeIDs = append(modeIDs, id)
	}
	sort.Strings(modeIDs)

	fmt.Println()
	fmt.Printf("  %-24s  %-5s  %-9s  %-9s  %-8s  %s\n", "Mode", "Runs", "Best", "Average", "Coins", "Last played")
	for _, id := range modeIDs {
		gs := games[id]
		title := id
		if g, err := registry.Create(id); err == nil {
			title = g.Title()
		}
		fmt.Printf("  %-24s  %-5d  %-9s  %-9s  %-8s  %s\n",
			title,
			gs.RunsCount,
			humanize.Comma(int64(gs.HighScore)),
			humanize.CommafWithDigits(gs.AvgScore, 1),
			humanize.Comma(gs.TotalCoins),
			humanize.Time(gs.LastPlayed),
		)
	}
	return nil
}
