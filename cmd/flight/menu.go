package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paper-flight/internal/games/flight"
	"github.com/vovakirdan/paper-flight/internal/platform/tui"
	"github.com/vovakirdan/paper-flight/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Paper Flight with a mode picker menu",
	Long: `Start in interactive menu mode.

Pick a mode with the arrow keys, choose the sky with left/right and
press Enter to take off. After a run, press B to return to the menu.

Controls:
  Up/Down/j/k     - Choose mode
  Left/Right/h/l  - Choose sky
  Enter/Space     - Take off
  Tab             - Best runs
  Q               - Quit

Examples:
  flight menu
  flight menu --fps 30
  flight menu --db ./flight.db`,
	RunE: runMenu,
}

func init() {
	addLoadoutFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyLoadout(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			log.Error("cannot create game", "id", menuResult.GameID, "err", err)
			continue
		}
		if g, ok := game.(*flight.Game); ok {
			g.SetSkyMode(menuResult.Sky)
		}

		// Fresh seed per run unless one was forced
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg, currentUser())
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
