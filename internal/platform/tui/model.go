package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paper-flight/internal/core"
	"github.com/vovakirdan/paper-flight/internal/registry"
	"github.com/vovakirdan/paper-flight/internal/storage"
)

// noticeTicks is how long a status notice stays on screen.
const noticeTicks = 120

var colorNotice = core.Hex("#ffd166")

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	progress   *storage.Progress
	logger     *log.Logger
	config     core.RuntimeConfig
	clock      *core.Clock
	drag       DragTracker
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	notice     string
	noticeLeft int
	embedded   bool // running inside a SessionModel
	quitting   bool
	backToMenu bool
	runSaved   bool // whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game. store may be
// nil, in which case nothing is persisted and revives are free.
// cfg.TickRate only paces redraws; logic always runs at core.DefaultTickRate.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	progress := storage.NewProgress(store, game.ID(), player, logger)
	if g, ok := game.(registry.Progressive); ok {
		g.SetSinks(progress.Sinks())
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		progress:   progress,
		logger:     logger,
		config:     cfg,
		clock:      core.NewClock(core.DefaultTickRate, core.DefaultMaxDelta),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	m.drag.SetScreen(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.syncCellSize()
		m.drag.HandleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.finishRun()
		m.quitting = true
		return m, tea.Quit
	}

	if dir, ok := SteerDirection(action); ok {
		m.drag.Key(dir)
		return m, nil
	}

	switch action {
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.finishRun()
			m.backToMenu = true
			if !m.embedded {
				return m, tea.Quit
			}
		}
	case core.ActionRestart:
		// A revive already paid for wins over a restart in the same frame.
		if m.gameState.GameOver && !m.inputFrame.Has(core.ActionRevive) {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionRevive:
		m.requestRevive()
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// requestRevive pays for a revive and queues it for the next tick.
func (m *Model) requestRevive() {
	r, ok := m.game.(registry.Revivable)
	if !ok || !m.gameState.GameOver || !r.CanRevive() {
		return
	}
	if m.inputFrame.Has(core.ActionRevive) || m.inputFrame.Has(core.ActionRestart) {
		return
	}

	if m.store != nil {
		cost := r.ReviveCost()
		if err := m.store.SpendCoins(cost); err != nil {
			if errors.Is(err, storage.ErrInsufficientCoins) {
				m.setNotice(fmt.Sprintf("Not enough coins: a revive costs %d", cost))
			} else {
				m.logger.Error("revive payment failed", "err", err)
				m.setNotice("Revive unavailable")
			}
			return
		}
	}
	m.inputFrame.Set(core.ActionRevive)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.drag.SetScreen(msg.Width, msg.Height)

	if g, ok := m.game.(registry.Resizable); ok {
		g.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs the logic ticks that are due since the last frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.finishRun()
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		m.drag.Release()
		m.clock.Reset(now)
		return m, tickCmd(m.config.TickRate)
	}

	m.syncCellSize()
	for range m.clock.Advance(now) {
		m.step()
	}

	if m.noticeLeft > 0 {
		m.noticeLeft--
	}

	return m, tickCmd(m.config.TickRate)
}

// syncCellSize measures drags in the pixels of the game's current config.
func (m *Model) syncCellSize() {
	if g, ok := m.game.(registry.Scaled); ok {
		m.drag.SetCellSize(g.CellSize())
	}
}

// step advances the game by one logic tick. Actions apply to the first tick
// after they were pressed.
func (m *Model) step() {
	m.inputFrame.Steer = m.drag.Sample()
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Ended {
		m.drag.Release()
	}
}

// finishRun records the current run once.
func (m *Model) finishRun() {
	if m.runSaved {
		return
	}
	m.progress.FinishRun(m.game.State())
	m.runSaved = true
}

func (m *Model) setNotice(s string) {
	m.notice = s
	m.noticeLeft = noticeTicks
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".flight", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.setNotice("Screenshot saved")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.noticeLeft > 0 && m.notice != "" {
		text := " " + m.notice + " "
		x := (m.screen.Width() - len([]rune(text))) / 2
		m.screen.DrawTextColored(x, m.screen.Height()-2, text, colorNotice)
	}

	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model. It reports
// whether the player asked to return to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, player, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag steering
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
