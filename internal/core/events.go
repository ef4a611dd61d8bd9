package core

// EventKind names a progression statistic reported by the simulation.
type EventKind string

const (
	EventScore    EventKind = "score"    // points gained
	EventCoins    EventKind = "coins"    // coins picked up
	EventTime     EventKind = "time"     // seconds survived
	EventMissiles EventKind = "missiles" // missiles neutralised
)

// EventKinds lists every kind in display order.
var EventKinds = []EventKind{EventScore, EventCoins, EventTime, EventMissiles}

// Cue is a one-shot presentation hint (sound effect, screen flash).
type Cue int

const (
	CueCoin Cue = iota
	CueExplosion
	CuePowerUp
	CueShockwave
	CueGraze
	CueGameOver
	CueThunder
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueCoin:
		return "coin"
	case CueExplosion:
		return "explosion"
	case CuePowerUp:
		return "powerup"
	case CueShockwave:
		return "shockwave"
	case CueGraze:
		return "graze"
	case CueGameOver:
		return "gameover"
	case CueThunder:
		return "thunder"
	default:
		return "unknown"
	}
}

// StatSink receives mission and statistics events.
type StatSink interface {
	OnEvent(kind EventKind, amount int)
}

// CurrencySink receives collected coins for the persistent wallet.
type CurrencySink interface {
	OnCoinsCollected(amount int)
}

// LifecycleSink is told when the player dies or is revived.
type LifecycleSink interface {
	OnPlayerDied()
	OnRevive()
}

// CueSink receives presentation cues. Optional.
type CueSink interface {
	OnCue(c Cue)
}

// Sinks bundles every outbound interface of a run.
// Sinks are called synchronously from the tick and must not block.
type Sinks struct {
	Stats     StatSink
	Currency  CurrencySink
	Lifecycle LifecycleSink
	Cues      CueSink
}

// WithDefaults returns a copy where nil members are replaced by no-ops.
func (s Sinks) WithDefaults() Sinks {
	if s.Stats == nil {
		s.Stats = NopSink{}
	}
	if s.Currency == nil {
		s.Currency = NopSink{}
	}
	if s.Lifecycle == nil {
		s.Lifecycle = NopSink{}
	}
	if s.Cues == nil {
		s.Cues = NopSink{}
	}
	return s
}

// NopSink implements every sink interface and discards everything.
type NopSink struct{}

func (NopSink) OnEvent(EventKind, int) {}
func (NopSink) OnCoinsCollected(int)   {}
func (NopSink) OnPlayerDied()          {}
func (NopSink) OnRevive()              {}
func (NopSink) OnCue(Cue)              {}
