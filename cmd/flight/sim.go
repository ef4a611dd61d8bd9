package main

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paper-flight/internal/core"
	"github.com/vovakirdan/paper-flight/internal/games/flight"
)

var (
	flagTicks  int
	flagTurn   int
	flagRender bool
)

var simCmd = &cobra.Command{
	Use:   "sim [mode]",
	Short: "Run the simulation headless",
	Long: `Fly a run without a terminal UI and print what happened.

The autopilot drags in a direction that rotates a quarter turn every
--turn ticks. With the same --seed the output is identical on every run.

Examples:
  flight sim --seed 42
  flight sim chill --ticks 36000 --render`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Logic ticks to simulate")
	simCmd.Flags().IntVar(&flagTurn, "turn", 90, "Ticks between autopilot turns")
	simCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final frame")
}

// tally counts everything the simulation reports.
type tally struct {
	events map[core.EventKind]int
	cues   map[core.Cue]int
	coins  int
	deaths int
}

func (t *tally) OnEvent(kind core.EventKind, amount int) { t.events[kind] += amount }
func (t *tally) OnCoinsCollected(amount int)             { t.coins += amount }
func (t *tally) OnPlayerDied()                           { t.deaths++ }
func (t *tally) OnRevive()                               {}
func (t *tally) OnCue(c core.Cue)                        { t.cues[c]++ }

func runSim(_ *cobra.Command, args []string) error {
	mode, err := modeFor(args)
	if err != nil {
		return err
	}

	t := &tally{events: make(map[core.EventKind]int), cues: make(map[core.Cue]int)}
	game := flight.New(mode)
	game.SetSinks(core.Sinks{Stats: t, Currency: t, Lifecycle: t, Cues: t})

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	game.Reset(cfg)

	turn := max(flagTurn, 1)
	center := core.Vec(400, 240)
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)

	crashedAt := -1
	for tick := range flagTicks {
		angle := float64(tick/turn) * math.Pi / 2
		in.Steer = core.Steer{
			Active:  true,
			Origin:  center,
			Current: center.Add(core.FromAngle(angle, 100)),
		}
		result := game.Step(in)
		in.Clear()
		if result.Ended {
			crashedAt = tick
			break
		}
	}

	state := game.State()
	fmt.Printf("%s, seed %d\n\n", game.Title(), flagSeed)
	if crashedAt >= 0 {
		fmt.Printf("Crashed at tick %s\n", humanize.Comma(int64(crashedAt)))
	} else {
		fmt.Printf("Survived %s ticks\n", humanize.Comma(int64(flagTicks)))
	}
	fmt.Printf("Score:  %s\n", humanize.Comma(int64(state.Score)))
	fmt.Printf("Coins:  %s\n", humanize.Comma(int64(state.Coins)))
	fmt.Printf("Level:  x%.2f\n", game.World().Difficulty())

	fmt.Println()
	for _, kind := range core.EventKinds {
		fmt.Printf("  %-9s %s\n", kind, humanize.Comma(int64(t.events[kind])))
	}
	for c := core.CueCoin; c <= core.CueThunder; c++ {
		if n := t.cues[c]; n > 0 {
			fmt.Printf("  cue %-9s %d\n", c, n)
		}
	}

	if flagRender {
		screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
		game.Render(screen)
		fmt.Println()
		fmt.Println(screen.String())
	}
	return nil
}
