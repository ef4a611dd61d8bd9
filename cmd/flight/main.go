// flight is Paper Flight, an endless paper-plane flyer for the terminal.
//
// Usage:
//
//	flight play [mode]       - Fly a run (normal, competition, chill)
//	flight menu              - Pick modes and skies interactively
//	flight serve             - Start SSH server for remote play
//	flight scores [mode]     - Show the best runs of a mode
//	flight stats             - Show the wallet and lifetime totals
//	flight catalog           - List cosmetic items
//	flight sim               - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>      - Set display refresh rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible runs
//	--db <path>       - Set database path (default: ~/.flight/flight.db)
//	--config <path>   - Use a custom flight.yaml
//	--sky <mode>      - Force a sky (auto, day, sunset, ...)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paper-flight/internal/games/flight"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagSky     string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flight",
	Short: "Paper Flight - an endless paper-plane flyer in your terminal",
	Long: `Paper Flight is an endless arcade flyer. Drag with the mouse (or hold
the arrow keys) to steer a paper plane, dodge homing missiles, collect
coins and power-ups while the sky turns from day to night.

Available commands:
  play     - Fly a run in the given mode
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View the best runs
  stats    - View the wallet and lifetime totals
  catalog  - List planes, skins, trails and death effects
  sim      - Run the simulation headless

Examples:
  flight play
  flight play competition --sky night
  flight menu
  flight serve --ssh :2222
  flight sim --ticks 3600 --seed 42`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
		flight.SetConfigPath(flagConfig)
		if flagSky != "" && !flight.SetSkyMode(flagSky) {
			return errUnknown("sky", flagSky, skyNames())
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Display refresh rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flight/flight.db", "Path to runs and wallet database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom flight.yaml")
	rootCmd.PersistentFlags().StringVar(&flagSky, "sky", "", "Sky mode: auto, day, sunset, purple, night, storm, snow")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(simCmd)
}
