package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paper-flight/internal/catalog"
	"github.com/vovakirdan/paper-flight/internal/core"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List planes, skins, trails and death effects",
	Long: `List the built-in cosmetic items with their ids and prices.
Ids are accepted by the --model, --skin, --trail and --death flags.`,
	Args: cobra.NoArgs,
	Run:  runCatalog,
}

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

func runCatalog(_ *cobra.Command, _ []string) {
	items := catalog.NewBuiltin()

	section("Models")
	for _, m := range items.Models() {
		row(m.ID, m.Name, m.Price, m.Rarity, core.Color{},
			fmt.Sprintf("speed x%.2f  turn x%.2f", m.Speed, m.Turn))
	}

	section("Skins")
	for _, s := range items.Skins() {
		row(s.ID, s.Name, s.Price, s.Rarity, s.Primary, "")
	}

	section("Trails")
	for _, t := range items.Trails() {
		extra := string(t.Style)
		if t.Rainbow {
			extra += ", rainbow"
		}
		row(t.ID, t.Name, t.Price, t.Rarity, t.Color, extra)
	}

	section("Death effects")
	for _, d := range items.DeathEffects() {
		row(d.ID, d.Name, d.Price, d.Rarity, d.Color, fmt.Sprintf("%d particles", d.Count))
	}
}

func section(title string) {
	fmt.Println()
	fmt.Println(headingStyle.Render(title))
}

func row(id, name string, price int, rarity catalog.Rarity, swatch core.Color, extra string) {
	mark := " "
	if swatch.IsSet() {
		mark = lipgloss.NewStyle().Foreground(lipgloss.Color(swatch.Hex())).Render("■")
	}
	cost := "free"
	if price > 0 {
		cost = humanize.Comma(int64(price))
	}
	fmt.Printf("  %s %-14s %-14s %-10s %6s  %s\n", mark, id, name, rarity, cost, extra)
}
