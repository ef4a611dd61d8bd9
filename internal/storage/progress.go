package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paper-flight/internal/core"
)

// Progress connects one player's runs to the store. It implements the
// simulation sinks, aggregating in memory while flying; nothing touches
// the database until Flush or FinishRun.
//
// A Progress is owned by the goroutine that steps the game.
type Progress struct {
	store  *Store
	gameID string
	player string
	logger *log.Logger

	pending      map[core.EventKind]int
	pendingCoins int

	// Run totals for the history record.
	missiles int
	seconds  int
	revives  int
	active   bool
}

// NewProgress creates an adapter for runs of gameID. logger may be nil.
func NewProgress(store *Store, gameID, player string, logger *log.Logger) *Progress {
	if logger == nil {
		logger = log.Default()
	}
	return &Progress{
		store:   store,
		gameID:  gameID,
		player:  player,
		logger:  logger,
		pending: make(map[core.EventKind]int),
	}
}

// Sinks returns the adapter wired into every sink slot except cues.
func (p *Progress) Sinks() core.Sinks {
	return core.Sinks{Stats: p, Currency: p, Lifecycle: p}
}

// OnEvent implements core.StatSink.
func (p *Progress) OnEvent(kind core.EventKind, amount int) {
	p.active = true
	p.pending[kind] += amount
	switch kind {
	case core.EventMissiles:
		p.missiles += amount
	case core.EventTime:
		p.seconds += amount
	}
}

// OnCoinsCollected implements core.CurrencySink.
func (p *Progress) OnCoinsCollected(amount int) {
	p.active = true
	p.pendingCoins += amount
}

// OnPlayerDied implements core.LifecycleSink. The wallet is settled at
// once so the coins of this run can pay for a revive.
func (p *Progress) OnPlayerDied() {
	p.Flush()
}

// OnRevive implements core.LifecycleSink.
func (p *Progress) OnRevive() {
	p.revives++
}

// Flush writes pending coins and statistics. Failures are logged and the
// amounts are kept for the next attempt.
func (p *Progress) Flush() {
	if p.store == nil {
		return
	}
	if p.pendingCoins > 0 {
		if err := p.store.AddCoins(p.pendingCoins); err != nil {
			p.logger.Error("wallet update failed", "coins", p.pendingCoins, "err", err)
		} else {
			p.pendingCoins = 0
		}
	}
	if len(p.pending) > 0 {
		if err := p.store.AddStats(p.pending); err != nil {
			p.logger.Error("stats update failed", "err", err)
		} else {
			clear(p.pending)
		}
	}
}

// FinishRun flushes and records the run described by state, then resets
// the run totals. Runs without any activity are not recorded.
func (p *Progress) FinishRun(state core.GameState) {
	p.Flush()
	defer p.reset()

	if p.store == nil || (!p.active && state.Score == 0) {
		return
	}
	id, err := p.store.SaveRun(Run{
		GameID:   p.gameID,
		Player:   p.player,
		Score:    state.Score,
		Coins:    state.Coins,
		Missiles: p.missiles,
		Duration: p.seconds,
		Revives:  max(p.revives, state.Revives),
	})
	if err != nil {
		p.logger.Error("run not saved", "game", p.gameID, "score", state.Score, "err", err)
		return
	}
	p.logger.Debug("run saved", "id", id, "game", p.gameID, "score", state.Score)
}

// Revives returns the revives of the current run.
func (p *Progress) Revives() int { return p.revives }

func (p *Progress) reset() {
	p.missiles, p.seconds, p.revives = 0, 0, 0
	p.active = false
}
