package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paper-flight/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey('w'), core.ActionUp, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"v", runeKey('v'), core.ActionRevive, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey('l'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestDragTrackerMouse(t *testing.T) {
	var d DragTracker
	d.SetScreen(80, 24)

	d.HandleMouse(tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	d.HandleMouse(tea.MouseMsg{X: 14, Y: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})

	s := d.Sample()
	if !s.Active {
		t.Fatal("drag should be active while the button is held")
	}
	if got := s.Vector(); got != core.Vec(4*defaultCellW, 0) {
		t.Errorf("drag vector = %v, want (%d,0)", got, 4*defaultCellW)
	}

	d.HandleMouse(tea.MouseMsg{X: 14, Y: 10, Action: tea.MouseActionRelease})
	if d.Sample().Active {
		t.Error("release should end the drag")
	}
}

func TestDragTrackerCellSize(t *testing.T) {
	tests := []struct {
		cellW, cellH float64
		want         core.Vector
	}{
		{0, 0, core.Vec(2*defaultCellW, 3*defaultCellH)},
		{20, 40, core.Vec(40, 120)},
		{4, 8, core.Vec(8, 24)},
	}

	for _, tt := range tests {
		var d DragTracker
		d.SetScreen(80, 24)
		d.SetCellSize(tt.cellW, tt.cellH)

		d.HandleMouse(tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		d.HandleMouse(tea.MouseMsg{X: 12, Y: 13, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})

		if got := d.Sample().Vector(); got != tt.want {
			t.Errorf("cell %gx%g: drag vector = %v, want %v", tt.cellW, tt.cellH, got, tt.want)
		}
	}
}

func TestDragTrackerKeyDragCentreFollowsCellSize(t *testing.T) {
	var d DragTracker
	d.SetScreen(80, 24)
	d.SetCellSize(20, 40)
	d.Key(core.Vec(1, 0))

	s := d.Sample()
	if s.Origin != core.Vec(800, 480) {
		t.Errorf("key drag origin = %v, want the screen centre (800,480)", s.Origin)
	}
	if s.Vector() != core.Vec(keySteerLength, 0) {
		t.Errorf("key drag vector = %v", s.Vector())
	}
}

func TestDragTrackerIgnoresOtherButtons(t *testing.T) {
	var d DragTracker
	d.HandleMouse(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if d.Sample().Active {
		t.Error("right button should not start a drag")
	}
}

func TestDragTrackerKeyExpires(t *testing.T) {
	var d DragTracker
	d.SetScreen(80, 24)

	dir, ok := SteerDirection(core.ActionUp)
	if !ok {
		t.Fatal("up should steer")
	}
	d.Key(dir)

	for i := range keySteerTicks {
		s := d.Sample()
		if !s.Active {
			t.Fatalf("key drag ended early at tick %d", i)
		}
		if v := s.Vector(); v.Y >= 0 || v.X != 0 {
			t.Fatalf("key drag vector = %v, want straight up", v)
		}
	}
	if d.Sample().Active {
		t.Error("key drag should expire without repeats")
	}
}

func TestDragTrackerMousePrecedence(t *testing.T) {
	var d DragTracker
	d.SetScreen(80, 24)
	d.Key(core.Vec(1, 0))
	d.HandleMouse(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if s := d.Sample(); !s.Vector().IsZero() {
		t.Errorf("mouse drag should win, got vector %v", s.Vector())
	}
}

func TestSteerDirectionNonSteering(t *testing.T) {
	if _, ok := SteerDirection(core.ActionConfirm); ok {
		t.Error("confirm is not a steering action")
	}
}
