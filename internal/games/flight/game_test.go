package flight

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/paper-flight/internal/config"
	"github.com/vovakirdan/paper-flight/internal/core"
	"github.com/vovakirdan/paper-flight/internal/registry"
)

func newTestGame(t *testing.T, mode config.Mode) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New(mode)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// crash puts an unshielded player nose-first into a missile.
func crash(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	p := g.world.Player
	p.ShieldActive, p.ShieldTicks = false, 0
	addMissile(g.world, p.Pos.Add(core.FromAngle(p.Heading, g.cfg.Player.Speed)), 0)
	return g.Step(input())
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{"flight", "flight_competition", "flight_chill"} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestGameStartsOnConfirmOrDrag(t *testing.T) {
	g := newTestGame(t, config.ModeNormal)

	g.Step(input())
	if g.RunState() != StateReady || g.State().Ticks != 0 {
		t.Fatalf("idle input should keep the game ready, state %s", g.RunState())
	}

	g.Step(core.InputFrame{Steer: core.Steer{Active: true, Current: core.Vec(0, 50)}})
	if g.RunState() != StatePlaying || g.State().Ticks != 1 {
		t.Errorf("drag should take off, state %s ticks %d", g.RunState(), g.State().Ticks)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, config.ModeNormal)
	g.Step(input(core.ActionConfirm))

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	ticks := g.State().Ticks
	for i := 0; i < 5; i++ {
		g.Step(input())
	}
	if g.State().Ticks != ticks {
		t.Error("paused game should not advance")
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGameCompetitionReviveLimit(t *testing.T) {
	g := newTestGame(t, config.ModeCompetition)
	rec := &recorder{}
	g.SetSinks(rec.sinks())
	g.Step(input(core.ActionConfirm))

	for i := 0; i < 3; i++ {
		res := crash(t, g)
		if !res.Ended || !res.State.GameOver {
			t.Fatalf("crash %d did not end the run", i)
		}
		if !g.CanRevive() {
			t.Fatalf("revive %d should be allowed", i+1)
		}
		g.Step(input(core.ActionRevive))
		if g.RunState() != StatePlaying {
			t.Fatalf("revive %d did not resume, state %s", i+1, g.RunState())
		}
		if !g.world.Player.ShieldActive {
			t.Errorf("revive %d should re-arm the shield", i+1)
		}
	}

	crash(t, g)
	if g.CanRevive() {
		t.Error("fourth revive should be refused in competition mode")
	}
	g.Step(input(core.ActionRevive))
	if g.RunState() != StateGameOver {
		t.Errorf("refused revive changed state to %s", g.RunState())
	}
	if rec.revived != 3 || rec.died != 4 {
		t.Errorf("revived %d, died %d; want 3 and 4", rec.revived, rec.died)
	}
	if g.State().Revives != 3 {
		t.Errorf("State().Revives = %d, want 3", g.State().Revives)
	}

	g.Step(input(core.ActionRestart))
	if g.RunState() != StateReady || g.State().Revives != 0 {
		t.Errorf("restart should begin a fresh run, state %s", g.RunState())
	}
}

func TestGameNormalModeUnlimitedRevives(t *testing.T) {
	g := newTestGame(t, config.ModeNormal)
	g.Step(input(core.ActionConfirm))

	for i := 0; i < 5; i++ {
		crash(t, g)
		if !g.CanRevive() {
			t.Fatalf("revive %d refused in normal mode", i+1)
		}
		g.Step(input(core.ActionRevive))
	}
	if g.ReviveCost() != 200 {
		t.Errorf("ReviveCost = %d, want 200", g.ReviveCost())
	}
}

func TestGameEndedOnlyOnDeathTick(t *testing.T) {
	g := newTestGame(t, config.ModeNormal)
	g.Step(input(core.ActionConfirm))

	if res := crash(t, g); !res.Ended {
		t.Fatal("death tick should report Ended")
	}
	if res := g.Step(input()); res.Ended {
		t.Error("Ended should be reported once")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, config.ModeNormal)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "PAPER FLIGHT") {
		t.Error("ready overlay missing")
	}
	if !screen.GetCell(0, 23).BG.IsSet() {
		t.Error("sky background should be painted")
	}

	g.Step(input(core.ActionConfirm))
	crash(t, g)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "CRASHED") || !strings.Contains(out, "V revive") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		heading float64
		want    rune
	}{
		{0, '→'},
		{math.Pi / 2, '↓'},
		{math.Pi, '←'},
		{-math.Pi / 2, '↑'},
		{math.Pi / 4, '↘'},
		{-3 * math.Pi / 4, '↖'},
		{4*math.Pi + 0.1, '→'},
	}
	for _, tt := range tests {
		if got := HeadingGlyph(tt.heading); got != tt.want {
			t.Errorf("HeadingGlyph(%v) = %c, want %c", tt.heading, got, tt.want)
		}
	}
}
