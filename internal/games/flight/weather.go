package flight

import (
	"github.com/vovakirdan/paper-flight/internal/config"
	"github.com/vovakirdan/paper-flight/internal/core"
)

// SkyMode selects a fixed sky or the automatic day/night cycle.
type SkyMode int

const (
	SkyAuto SkyMode = iota
	SkyDay
	SkySunset
	SkyPurpleSunset
	SkyNight
	SkyStorm
	SkySnow
)

// SkyModes lists every mode in toggle order.
var SkyModes = []SkyMode{SkyAuto, SkyDay, SkySunset, SkyPurpleSunset, SkyNight, SkyStorm, SkySnow}

// String returns the mode name.
func (m SkyMode) String() string {
	switch m {
	case SkyAuto:
		return "auto"
	case SkyDay:
		return "day"
	case SkySunset:
		return "sunset"
	case SkyPurpleSunset:
		return "purple"
	case SkyNight:
		return "night"
	case SkyStorm:
		return "storm"
	case SkySnow:
		return "snow"
	default:
		return "unknown"
	}
}

// ParseSkyMode parses a mode name.
func ParseSkyMode(s string) (SkyMode, bool) {
	for _, m := range SkyModes {
		if m.String() == s {
			return m, true
		}
	}
	return SkyAuto, false
}

// Phase is a third of the automatic cycle.
type Phase int

const (
	PhaseFixed Phase = iota // manual sky mode
	PhaseDayToSunset
	PhaseSunsetToNight
	PhaseNightToDay
)

// Sky palette endpoints.
var (
	dayTop       = core.Hex("#38bdf8")
	dayBottom    = core.Hex("#bae6fd")
	sunsetTop    = core.Hex("#f97316")
	sunsetBottom = core.Hex("#fecca9")
	purpleTop    = core.Hex("#4c1d95")
	purpleBottom = core.Hex("#d946ef")
	nightTop     = core.Hex("#0f172a")
	nightBottom  = core.Hex("#1e293b")
	stormTop     = core.Hex("#1e1b4b")
	stormBottom  = core.Hex("#334155")
	snowTop      = core.Hex("#cbd5e1")
	snowBottom   = core.Hex("#f8fafc")
)

// Sky is the renderer-facing snapshot of the weather.
type Sky struct {
	Mode           SkyMode
	Phase          Phase
	T              float64 // blend progress within the phase, 0 while holding
	Top            core.Color
	Bottom         core.Color
	StarOpacity    float64 // already faded by storm and snow
	StormIntensity float64
	SnowIntensity  float64
	Lightning      float64 // flash alpha
}

// Weather drives the day/night cycle, storm and snow overlays and lightning.
type Weather struct {
	cfg  config.WeatherConfig
	rng  core.RNG
	mode SkyMode

	cycleFrame int
	storming   bool
	snowing    bool
	eventTicks int
	storm      float64
	snow       float64

	lightningTicks int
	lightning      float64

	backdrop *Backdrop
}

// NewWeather creates the weather state. rng drives event and lightning rolls;
// backdrop may be nil.
func NewWeather(cfg config.WeatherConfig, mode SkyMode, rng core.RNG, backdrop *Backdrop) *Weather {
	w := &Weather{cfg: cfg, rng: rng, backdrop: backdrop}
	w.SetMode(mode)
	return w
}

// Mode returns the current sky mode.
func (w *Weather) Mode() SkyMode { return w.mode }

// SetMode switches the sky mode. Manual modes pin the intensities at once.
func (w *Weather) SetMode(m SkyMode) {
	w.mode = m
	if m != SkyAuto {
		w.storming, w.snowing, w.eventTicks = false, false, 0
		w.pinIntensity()
	}
}

// SetCycleFrame positions the automatic cycle.
func (w *Weather) SetCycleFrame(f int) { w.cycleFrame = f }

// CycleFrame returns the automatic cycle position.
func (w *Weather) CycleFrame() int { return w.cycleFrame }

// Backdrop returns the cosmetic backdrop, possibly nil.
func (w *Weather) Backdrop() *Backdrop { return w.backdrop }

// Tick advances one logic tick of active play.
func (w *Weather) Tick(cues core.CueSink, camera, viewport core.Vector) {
	if w.mode == SkyAuto {
		w.cycleFrame++
		w.rollEvents()
		w.storm = w.ease(w.storm, w.storming)
		w.snow = w.ease(w.snow, w.snowing)
	} else {
		w.pinIntensity()
	}
	w.updateLightning(cues)
	w.CosmeticTick(camera, viewport)
}

// CosmeticTick advances only the backdrop. Used outside active play.
func (w *Weather) CosmeticTick(camera, viewport core.Vector) {
	if w.backdrop != nil {
		w.backdrop.Update(camera, viewport, w.storm, w.snow)
	}
}

// rollEvents starts or expires the random storm/snow overlay.
func (w *Weather) rollEvents() {
	if !w.storming && !w.snowing {
		roll := w.rng.Float64()
		switch {
		case roll < w.cfg.StormChance:
			w.storming = true
			w.eventTicks = w.cfg.StormTicks
		case roll < w.cfg.StormChance+w.cfg.SnowChance:
			w.snowing = true
			w.eventTicks = w.cfg.SnowTicks
		}
		return
	}
	w.eventTicks--
	if w.eventTicks <= 0 {
		w.storming, w.snowing = false, false
	}
}

func (w *Weather) ease(v float64, active bool) float64 {
	target := 0.0
	if active {
		target = 1
	}
	return core.Lerp(v, target, w.cfg.IntensityRate)
}

func (w *Weather) pinIntensity() {
	w.storm, w.snow = 0, 0
	switch w.mode {
	case SkyStorm:
		w.storm = 1
	case SkySnow:
		w.snow = 1
	}
}

func (w *Weather) updateLightning(cues core.CueSink) {
	if w.storm <= w.cfg.LightningThreshold {
		w.lightning = 0
		return
	}
	if w.lightningTicks <= 0 {
		if w.rng.Float64() < w.cfg.LightningChance {
			w.lightningTicks = w.cfg.LightningTicks
			w.lightning = w.cfg.LightningAlpha
			cues.OnCue(core.CueThunder)
		}
		return
	}
	w.lightningTicks--
	w.lightning *= w.cfg.LightningDecay
}

// Sky computes the current snapshot.
func (w *Weather) Sky() Sky {
	s := Sky{
		Mode:           w.mode,
		StormIntensity: w.storm,
		SnowIntensity:  w.snow,
		Lightning:      w.lightning,
	}

	var stars float64
	switch w.mode {
	case SkyAuto:
		s.Phase, s.T = w.phase()
		switch s.Phase {
		case PhaseDayToSunset:
			s.Top = core.LerpColor(dayTop, sunsetTop, s.T)
			s.Bottom = core.LerpColor(dayBottom, sunsetBottom, s.T)
		case PhaseSunsetToNight:
			s.Top = core.LerpColor(sunsetTop, nightTop, s.T)
			s.Bottom = core.LerpColor(sunsetBottom, nightBottom, s.T)
			stars = s.T
		default:
			s.Top = core.LerpColor(nightTop, dayTop, s.T)
			s.Bottom = core.LerpColor(nightBottom, dayBottom, s.T)
			stars = 1 - s.T
		}
		if w.storm > 0 {
			s.Top = core.LerpColor(s.Top, stormTop, w.storm)
			s.Bottom = core.LerpColor(s.Bottom, stormBottom, w.storm)
		}
		if w.snow > 0 {
			s.Top = core.LerpColor(s.Top, snowTop, w.snow)
			s.Bottom = core.LerpColor(s.Bottom, snowBottom, w.snow)
		}
	case SkySunset:
		s.Top, s.Bottom = sunsetTop, sunsetBottom
	case SkyPurpleSunset:
		s.Top, s.Bottom = purpleTop, purpleBottom
	case SkyNight:
		s.Top, s.Bottom = nightTop, nightBottom
		stars = 1
	case SkyStorm:
		s.Top, s.Bottom = stormTop, stormBottom
	case SkySnow:
		s.Top, s.Bottom = snowTop, snowBottom
	default:
		s.Top, s.Bottom = dayTop, dayBottom
	}

	s.StarOpacity = max(0, stars-w.storm-w.snow)
	return s
}

// phase splits the cycle into thirds. Each endpoint is held for the first
// Hold fraction of the phase, then blended linearly.
func (w *Weather) phase() (Phase, float64) {
	total := float64(w.cfg.CycleTicks)
	segment := total / 3
	t := float64(w.cycleFrame % w.cfg.CycleTicks)

	phase := PhaseDayToSunset
	switch {
	case t >= 2*segment:
		phase = PhaseNightToDay
		t -= 2 * segment
	case t >= segment:
		phase = PhaseSunsetToNight
		t -= segment
	}

	raw := t / segment
	if raw < w.cfg.Hold {
		return phase, 0
	}
	return phase, (raw - w.cfg.Hold) / (1 - w.cfg.Hold)
}
