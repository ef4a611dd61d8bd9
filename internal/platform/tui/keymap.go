package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paper-flight/internal/core"
)

// Cell size in simulation pixels until the game reports its own.
const (
	defaultCellW = 10
	defaultCellH = 20
)

// Keyboard steering synthesizes a drag of keySteerLength pixels. Terminals
// report no key release, so a steering key holds for keySteerTicks ticks
// and key repeat keeps it alive.
const (
	keySteerLength = 120
	keySteerTicks  = 18
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "b":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	case "v":
		return core.ActionRevive, false
	}

	return core.ActionNone, false
}

// SteerDirection returns the unit drag direction of a steering action.
// Screen y grows downward.
func SteerDirection(a core.Action) (core.Vector, bool) {
	switch a {
	case core.ActionUp:
		return core.Vec(0, -1), true
	case core.ActionDown:
		return core.Vec(0, 1), true
	case core.ActionLeft:
		return core.Vec(-1, 0), true
	case core.ActionRight:
		return core.Vec(1, 0), true
	}
	return core.Vector{}, false
}

// DragTracker turns mouse and keyboard input into the steering state
// sampled by each logic tick. Drags are measured in the same pixels the
// simulation uses for one terminal cell.
type DragTracker struct {
	mouse    core.Steer
	keyDir   core.Vector
	keyTicks int
	center   core.Vector
	screenW  int
	screenH  int
	cellW    float64
	cellH    float64
}

// cellSize returns the pixel size of one cell.
func (d *DragTracker) cellSize() (float64, float64) {
	if d.cellW <= 0 || d.cellH <= 0 {
		return defaultCellW, defaultCellH
	}
	return d.cellW, d.cellH
}

// SetCellSize sets the pixel size of one terminal cell. Non-positive
// sizes are ignored.
func (d *DragTracker) SetCellSize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	d.cellW, d.cellH = w, h
	d.SetScreen(d.screenW, d.screenH)
}

// SetScreen records the screen size used as the origin of key drags.
func (d *DragTracker) SetScreen(w, h int) {
	d.screenW, d.screenH = w, h
	cw, ch := d.cellSize()
	d.center = core.Vec(float64(w)*cw/2, float64(h)*ch/2)
}

// pixels converts a terminal cell to the centre of its pixel area.
func (d *DragTracker) pixels(x, y int) core.Vector {
	cw, ch := d.cellSize()
	return core.Vec((float64(x)+0.5)*cw, (float64(y)+0.5)*ch)
}

// HandleMouse updates the drag from a mouse event: press anchors the
// origin, motion moves the pointer and release ends the drag.
func (d *DragTracker) HandleMouse(msg tea.MouseMsg) {
	p := d.pixels(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		d.mouse = core.Steer{Active: true, Origin: p, Current: p}
	case tea.MouseActionMotion:
		if d.mouse.Active {
			d.mouse.Current = p
		}
	case tea.MouseActionRelease:
		d.mouse.Active = false
	}
}

// Key starts or refreshes a keyboard drag in direction dir.
func (d *DragTracker) Key(dir core.Vector) {
	d.keyDir = dir
	d.keyTicks = keySteerTicks
}

// Sample returns the steering for the next tick and ages keyboard input.
// A mouse drag takes precedence.
func (d *DragTracker) Sample() core.Steer {
	if d.mouse.Active {
		return d.mouse
	}
	if d.keyTicks > 0 {
		d.keyTicks--
		return core.Steer{
			Active:  true,
			Origin:  d.center,
			Current: d.center.Add(d.keyDir.Scale(keySteerLength)),
		}
	}
	return core.Steer{}
}

// Release drops any drag in progress.
func (d *DragTracker) Release() {
	d.mouse.Active = false
	d.keyTicks = 0
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
