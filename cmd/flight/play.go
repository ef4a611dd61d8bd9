package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paper-flight/internal/catalog"
	"github.com/vovakirdan/paper-flight/internal/config"
	"github.com/vovakirdan/paper-flight/internal/core"
	"github.com/vovakirdan/paper-flight/internal/games/flight"
	"github.com/vovakirdan/paper-flight/internal/platform/tui"
	"github.com/vovakirdan/paper-flight/internal/registry"
	"github.com/vovakirdan/paper-flight/internal/storage"
)

var (
	flagModel  string
	flagSkin   string
	flagTrail  string
	flagDeath  string
	flagBoosts []string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Fly a run",
	Long: `Start a run in the given mode (default: normal).

Modes:
  normal       - Missiles, coins and power-ups; revives cost coins
  competition  - Like normal, at most 3 revives per run
  chill        - No missiles, constant difficulty

Controls:
  Mouse drag / Arrows / WASD  - Steer
  Enter/Space                 - Take off
  P/Esc                       - Pause
  R                           - Restart (after a crash)
  V                           - Revive (after a crash)
  Ctrl+S                      - Save a screenshot
  Q/Ctrl+C                    - Quit

Examples:
  flight play
  flight play chill --sky snow
  flight play --boost shield,magnet --trail rainbow`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addLoadoutFlags(playCmd)
}

// addLoadoutFlags registers the cosmetic and boost flags on cmd.
func addLoadoutFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagModel, "model", catalog.DefaultID, "Plane model id (see 'flight catalog')")
	cmd.Flags().StringVar(&flagSkin, "skin", catalog.DefaultID, "Skin id")
	cmd.Flags().StringVar(&flagTrail, "trail", catalog.DefaultID, "Trail id")
	cmd.Flags().StringVar(&flagDeath, "death", catalog.DefaultID, "Death effect id")
	cmd.Flags().StringSliceVar(&flagBoosts, "boost", nil, "Pre-run boosts: shield, magnet, speed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := gameIDFor(args)
	if err != nil {
		return err
	}
	if err := applyLoadout(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig(), currentUser()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// modeFor parses an optional mode argument.
func modeFor(args []string) (config.Mode, error) {
	if len(args) == 0 {
		return config.ModeNormal, nil
	}
	mode, ok := config.ParseMode(args[0])
	if !ok {
		names := make([]string, len(config.Modes))
		for i, m := range config.Modes {
			names[i] = string(m)
		}
		return mode, errUnknown("mode", args[0], names)
	}
	return mode, nil
}

// gameIDFor maps an optional mode argument to a registered game id.
func gameIDFor(args []string) (string, error) {
	mode, err := modeFor(args)
	if err != nil {
		return "", err
	}
	return flight.New(mode).ID(), nil
}

// applyLoadout validates the loadout flags and makes them the default of
// new games.
func applyLoadout() error {
	items := catalog.NewBuiltin()
	if _, ok := items.Model(flagModel); !ok {
		return errUnknown("model", flagModel, ids(items.Models(), func(m catalog.Model) string { return m.ID }))
	}
	if _, ok := items.Skin(flagSkin); !ok {
		return errUnknown("skin", flagSkin, ids(items.Skins(), func(s catalog.Skin) string { return s.ID }))
	}
	if _, ok := items.Trail(flagTrail); !ok {
		return errUnknown("trail", flagTrail, ids(items.Trails(), func(t catalog.Trail) string { return t.ID }))
	}
	if _, ok := items.DeathEffect(flagDeath); !ok {
		return errUnknown("death effect", flagDeath, ids(items.DeathEffects(), func(d catalog.DeathEffect) string { return d.ID }))
	}

	var boosts flight.Boost
	for _, name := range flagBoosts {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "shield":
			boosts |= flight.BoostShield
		case "magnet":
			boosts |= flight.BoostMagnet
		case "speed":
			boosts |= flight.BoostSpeed
		default:
			return errUnknown("boost", name, []string{"shield", "magnet", "speed"})
		}
	}

	flight.SetCatalog(items)
	flight.SetLoadout(flight.Loadout{
		ModelID:       flagModel,
		SkinID:        flagSkin,
		TrailID:       flagTrail,
		DeathEffectID: flagDeath,
		Boosts:        boosts,
	})
	return nil
}

// openStore opens the database, or returns nil so the game still works
// without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open database, runs will not be saved", "err", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}

func skyNames() []string {
	return ids(flight.SkyModes, flight.SkyMode.String)
}

func errUnknown(what, got string, valid []string) error {
	return fmt.Errorf("unknown %s %q (valid: %s)", what, got, strings.Join(valid, ", "))
}
